package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loan-engine/internal/usecase/loan"
	"loan-engine/internal/usecase/payment"
)

type LoanService interface {
	Create(ctx context.Context, in loan.CreateLoanInput) (*loan.LoanDTO, error)
	Get(ctx context.Context, loanID uint64) (*loan.LoanDTO, error)
	GetCustomerLoans(ctx context.Context, customerID uint64) ([]loan.LoanDTO, error)
}

type PaymentService interface {
	Pay(ctx context.Context, in payment.PayInput) (*payment.PaymentResult, error)
}

type LoanHandler struct {
	loans    LoanService
	payments PaymentService
}

func NewLoanHandler(loans LoanService, payments PaymentService) *LoanHandler {
	return &LoanHandler{loans: loans, payments: payments}
}

type createLoanReq struct {
	CustomerID           uint64  `json:"customer_id"            validate:"required"`
	Amount               float64 `json:"amount"                 validate:"required,gte=1000,lte=1000000,dec2"`
	InterestRate         float64 `json:"interest_rate"          validate:"required,gte=0.1,lte=0.5"`
	NumberOfInstallments int     `json:"number_of_installments" validate:"required,gte=6,lte=24"`
}

type payReq struct {
	LoanID uint64  `json:"loan_id" validate:"required"`
	Amount float64 `json:"amount"  validate:"required,gte=10,lte=100000,dec2"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.loans.Create(c.Request().Context(), loan.CreateLoanInput{
		CustomerID:           req.CustomerID,
		Amount:               decimal.NewFromFloat(req.Amount),
		InterestRate:         decimal.NewFromFloat(req.InterestRate),
		NumberOfInstallments: req.NumberOfInstallments,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Pay(c echo.Context) error {
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.payments.Pay(c.Request().Context(), payment.PayInput{
		LoanID: req.LoanID,
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, err := parseIDParam(c, "loan_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	dto, err := h.loans.Get(c.Request().Context(), loanID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetCustomerLoans(c echo.Context) error {
	customerID, err := parseIDParam(c, "customer_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id path param"})
	}
	dtos, err := h.loans.GetCustomerLoans(c.Request().Context(), customerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func parseIDParam(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
