package http

import (
	"net/http"

	"bytebonds-backend/internal/usecase/investment"

	"github.com/labstack/echo/v4"
)

type InvestmentHandler struct{ uc *investment.Usecase }

func NewInvestmentHandler(uc *investment.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type investReq struct {
	Amount uint64 `json:"amount" validate:"required,gte=1"`
}

func (h *InvestmentHandler) Invest(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Caller-Id"})
	}
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Invest(c.Request().Context(), investment.InvestInput{
		Investor: caller,
		BondID:   c.Param("bond_id"),
		Amount:   req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) ListInvestorInvestments(c echo.Context) error {
	dtos, err := h.uc.ListByInvestor(c.Request().Context(), c.Param("investor_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
