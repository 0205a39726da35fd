package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name        string `json:"name"          validate:"required,min=2,max=50"`
	Email       string `json:"email"         validate:"required,email"`
	Password    string `json:"password"      validate:"required,min=6"`
	Phone       string `json:"phone"         validate:"max=32"`
	Gender      string `json:"gender"        validate:"max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,yyyymmdd"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
	User      *domain.User `json:"user,omitempty"`
}

func newAuthResponse(s *ports.Session, user *domain.User) authResponse {
	exp := s.ExpiresAt.UTC()
	return authResponse{Token: s.Token, ExpiresAt: &exp, User: user}
}

// Register creates a new user account and signs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Gender:   req.Gender,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(domain.DateLayout, req.DateOfBirth)
		if err != nil {
			return domain.Validation("date_of_birth must be formatted as YYYY-MM-DD")
		}
		in.DateOfBirth = &dob
	}

	session, user, err := h.authService.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newAuthResponse(session, user))
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newAuthResponse(session, user))
}

// Logout revokes the token used for this request.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}
	jti, exp := ctxToken(c)
	if err := h.authService.Logout(c.Request().Context(), jti, exp); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the signed-in user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.authService.Me(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
