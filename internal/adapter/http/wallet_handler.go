package http

import (
	"net/http"

	"bytebonds-backend/internal/usecase/wallet"

	"github.com/labstack/echo/v4"
)

type WalletHandler struct{ uc *wallet.Usecase }

func NewWalletHandler(uc *wallet.Usecase) *WalletHandler { return &WalletHandler{uc: uc} }

type creditReq struct {
	Address string `json:"address" validate:"required,hex32"`
	Amount  uint64 `json:"amount"  validate:"required,gte=1"`
}

// CreditWallet tops up a wallet. Top-ups stand in for external deposits, so
// the target address comes from the body rather than the caller header.
func (h *WalletHandler) CreditWallet(c echo.Context) error {
	var req creditReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Credit(c.Request().Context(), wallet.CreditInput{
		Address: req.Address,
		Amount:  req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WalletHandler) GetWallet(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("address"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
