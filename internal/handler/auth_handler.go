package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Omer-KISAKOL/site-builder/internal/auth"
	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	// verifyCodec backs the lightweight /auth/verify path; it is the
	// second codec implementation, exercising the shared token contract.
	verifyCodec auth.Codec
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, verifyCodec auth.Codec) *AuthHandler {
	return &AuthHandler{authService: authService, verifyCodec: verifyCodec}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "email and password are required", Code: "BAD_REQUEST"})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "user registered successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary Login and receive a session credential
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "email and password are required", Code: "BAD_REQUEST"})
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(auth.NewCookie(token, auth.TokenTTL))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// Me godoc
// @Summary Current user, read fresh from the store
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	ident, ok := auth.IdentityFrom(c.Request().Context())
	if !ok {
		return respondError(c, apperr.ErrInvalidToken)
	}
	user, err := h.authService.Me(c.Request().Context(), ident.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Verify godoc
// @Summary Check the credential cookie without touching the store
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"authenticated": false,
			"error":         "no token provided",
		})
	}

	claims, err := h.verifyCodec.Verify(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"authenticated": false,
			"error":         apperr.ErrInvalidToken.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"authenticated": true,
		"user": echo.Map{
			"user_id": claims.UserID,
			"email":   claims.Email,
		},
	})
}

// Logout godoc
// @Summary Logout by expiring the credential cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(auth.ExpiredCookie())
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out successfully"})
}
