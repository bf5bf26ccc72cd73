package http

import (
	"errors"
	"net/http"

	bondDomain "bytebonds-backend/internal/domain/bond"
	investmentDomain "bytebonds-backend/internal/domain/investment"
	repaymentDomain "bytebonds-backend/internal/domain/repayment"
	walletDomain "bytebonds-backend/internal/domain/wallet"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// writeError maps domain sentinels to HTTP codes. Transfer failures get
// their own code so clients can tell "top up and retry" from "fix the
// request".
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, bondDomain.ErrNotFound),
		errors.Is(err, investmentDomain.ErrNotFound),
		errors.Is(err, repaymentDomain.ErrNotFound),
		errors.Is(err, walletDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, bondDomain.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, bondDomain.ErrNotOwner):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, walletDomain.ErrInsufficientFunds):
		return c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: err.Error()})

	case errors.Is(err, bondDomain.ErrNotOpen),
		errors.Is(err, bondDomain.ErrNotFunded),
		errors.Is(err, bondDomain.ErrOverfunded),
		errors.Is(err, repaymentDomain.ErrNotPending),
		errors.Is(err, repaymentDomain.ErrBondMismatch),
		errors.Is(err, investmentDomain.ErrBondMismatch):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, bondDomain.ErrInvalidAmount),
		errors.Is(err, bondDomain.ErrInvalidDuration),
		errors.Is(err, bondDomain.ErrInvalidInterestRate),
		errors.Is(err, bondDomain.ErrStringTooLong),
		errors.Is(err, bondDomain.ErrInvalidRepaymentType),
		errors.Is(err, bondDomain.ErrInvalidInstallments),
		errors.Is(err, bondDomain.ErrInvalidFreelancer),
		errors.Is(err, investmentDomain.ErrInvalidInvestor),
		errors.Is(err, walletDomain.ErrInvalidAddress):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// callerID pulls the already-authenticated caller identity from the header.
func callerID(c echo.Context) (string, bool) {
	id := c.Request().Header.Get("Ax-Caller-Id")
	return id, reHex32.MatchString(id)
}
