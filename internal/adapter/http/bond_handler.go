package http

import (
	"net/http"

	bondDomain "bytebonds-backend/internal/domain/bond"
	"bytebonds-backend/internal/usecase/bond"

	"github.com/labstack/echo/v4"
)

type BondHandler struct{ uc *bond.Usecase }

func NewBondHandler(uc *bond.Usecase) *BondHandler { return &BondHandler{uc: uc} }

type createBondReq struct {
	BondSeed      uint64 `json:"bond_seed"`
	Amount        uint64 `json:"amount"         validate:"required,gte=1"`
	Duration      uint8  `json:"duration"       validate:"required,gte=1,lte=60"`
	InterestRate  uint8  `json:"interest_rate"  validate:"required,gte=1,lte=50"`
	IncomeProof   string `json:"income_proof"   validate:"max=200"`
	Description   string `json:"description"    validate:"max=500"`
	RepaymentType string `json:"repayment_type" validate:"required,oneof=lump_sum installments"`
}

func (h *BondHandler) CreateBond(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Caller-Id"})
	}
	var req createBondReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), bond.CreateBondInput{
		Freelancer:    caller,
		BondSeed:      req.BondSeed,
		Amount:        req.Amount,
		Duration:      req.Duration,
		InterestRate:  req.InterestRate,
		IncomeProof:   req.IncomeProof,
		Description:   req.Description,
		RepaymentType: bondDomain.RepaymentType(req.RepaymentType),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BondHandler) GetBond(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("bond_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BondHandler) ListOpenBonds(c echo.Context) error {
	dtos, err := h.uc.ListOpen(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *BondHandler) ListFreelancerBonds(c echo.Context) error {
	dtos, err := h.uc.ListByFreelancer(c.Request().Context(), c.Param("freelancer_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
