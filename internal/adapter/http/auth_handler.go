package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	authuc "loan-engine/internal/usecase/auth"
)

type AuthService interface {
	Login(ctx context.Context, in authuc.LoginInput) (*authuc.LoginResult, error)
}

type AuthHandler struct{ auth AuthService }

func NewAuthHandler(auth AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.auth.Login(c.Request().Context(), authuc.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
