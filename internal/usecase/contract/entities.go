package contract

import (
	domain "nextgear-contracts/internal/domain/contract"
)

type CreateContractInput struct {
	Name            string      `json:"name"`
	BusinessNumber  int64       `json:"businessNumber"`
	Type            domain.Type `json:"type"`
	AmountRequested int         `json:"amountRequested"`
}
