package http

import (
	"errors"
	"net/http"
	"strconv"

	"nextgear-contracts/internal/adapter/metrics"
	contractDomain "nextgear-contracts/internal/domain/contract"
	"nextgear-contracts/internal/usecase/contract"

	"github.com/labstack/echo/v4"
)

type ContractHandler struct {
	uc      *contract.Usecase
	metrics *metrics.Collector
}

// NewContractHandler accepts a nil collector when metrics are disabled.
func NewContractHandler(uc *contract.Usecase, m *metrics.Collector) *ContractHandler {
	return &ContractHandler{uc: uc, metrics: m}
}

type createContractReq struct {
	Name            string              `json:"name" validate:"max=255"`
	BusinessNumber  int64               `json:"businessNumber" validate:"gte=0"`
	Type            contractDomain.Type `json:"type" validate:"omitempty,contract_type"`
	AmountRequested int                 `json:"amountRequested"`
}

// updateContractReq carries only the writable fields; id, type, status and
// activationDate in the body are dropped here.
type updateContractReq struct {
	Name            string `json:"name" validate:"max=255"`
	BusinessNumber  int64  `json:"businessNumber" validate:"gte=0"`
	AmountRequested int    `json:"amountRequested"`
}

type listContractsReq struct {
	Status string `query:"status" validate:"omitempty,contract_status"`
	Type   string `query:"type" validate:"omitempty,contract_type"`
}

func (h *ContractHandler) ListContracts(c echo.Context) error {
	req := listContractsReq{Status: c.QueryParam("status"), Type: c.QueryParam("type")}
	if err := c.Validate(&req); err != nil {
		fe := ToFieldErrors(err)
		return writeError(c, http.StatusBadRequest, string(contractDomain.KindInvalidArgument), summarize(fe), fe...)
	}

	var f contractDomain.Filter
	if req.Status != "" {
		s := contractDomain.Status(req.Status)
		f.Status = &s
	}
	if req.Type != "" {
		t := contractDomain.Type(req.Type)
		f.Type = &t
	}
	if raw := c.QueryParam("businessNumber"); raw != "" {
		bn, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondErr(c, contractDomain.InvalidArgument("Invalid businessNumber: %s", raw))
		}
		f.BusinessNumber = &bn
	}

	list, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ContractHandler) GetContract(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondErr(c, err)
	}
	ct, err := h.uc.Get(c.Request().Context(), id)
	if errors.Is(err, contractDomain.ErrNotFound) {
		return respondErr(c, contractDomain.NotFound("Contract does not exist."))
	}
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, ct)
}

func (h *ContractHandler) CreateContract(c echo.Context) error {
	var req createContractReq
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, string(contractDomain.KindInvalidArgument), "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		fe := ToFieldErrors(err)
		h.metrics.RecordRejected("create")
		return writeError(c, http.StatusBadRequest, string(contractDomain.KindInvalidArgument), summarize(fe), fe...)
	}

	ct, err := h.uc.Create(c.Request().Context(), contract.CreateContractInput(req))
	if err != nil {
		if contractDomain.IsInvalidArgument(err) {
			h.metrics.RecordRejected("create")
		}
		return respondErr(c, err)
	}
	h.metrics.RecordCreated(ct)
	return c.JSON(http.StatusCreated, ct)
}

func (h *ContractHandler) UpdateContract(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondErr(c, err)
	}
	var req updateContractReq
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, string(contractDomain.KindInvalidArgument), "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		fe := ToFieldErrors(err)
		h.metrics.RecordRejected("update")
		return writeError(c, http.StatusBadRequest, string(contractDomain.KindInvalidArgument), summarize(fe), fe...)
	}

	_, err = h.uc.Update(c.Request().Context(), &contractDomain.Contract{
		ID:              id,
		Name:            req.Name,
		BusinessNumber:  req.BusinessNumber,
		AmountRequested: req.AmountRequested,
	})
	if err != nil {
		if contractDomain.IsInvalidArgument(err) {
			h.metrics.RecordRejected("update")
		}
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ContractHandler) DeleteContract(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondErr(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, contractDomain.InvalidArgument("Invalid contract id: %s", raw)
	}
	return id, nil
}
