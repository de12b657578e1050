package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-engine/internal/access"
	"loan-engine/internal/domain/customer"
	loanDomain "loan-engine/internal/domain/loan"
	authuc "loan-engine/internal/usecase/auth"
)

// writeDomainError maps core errors onto HTTP statuses. Unknown errors are
// logged and hidden behind a generic 500.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrOperationBusy):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrInsufficientCredit),
		errors.Is(err, loanDomain.ErrInvalidInterestRate),
		errors.Is(err, loanDomain.ErrInvalidInstallmentCount),
		errors.Is(err, loanDomain.ErrNoUnpaidInstallments):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrNotFound), errors.Is(err, customer.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, access.ErrAccessDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, authuc.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
