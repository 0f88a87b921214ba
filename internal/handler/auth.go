package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/config"
	"github.com/iliyamo/residence-hall-booking/internal/model"
	"github.com/iliyamo/residence-hall-booking/internal/repository"
	"github.com/iliyamo/residence-hall-booking/internal/utils"
)

// AuthHandler owns registration, login and the refresh-token lifecycle.
// Access tokens are short-lived JWTs; refresh tokens are opaque strings
// whose SHA-256 hash lives in MySQL so they can be revoked.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo, tokens *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Tokens: tokens}
}

type registerReq struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	RoomNumber string `json:"roomNumber"`
	Role       string `json:"role"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type userResp struct {
	ID         uint64 `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	RoomNumber string `json:"roomNumber"`
	Role       string `json:"role"`
}

type authResp struct {
	User         userResp `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresAt    string   `json:"expires_at"`
}

// Register handles POST /v1/auth/register. The role defaults to MEMBER and
// is stored as-is; nothing reads it for authorization decisions yet.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email is required"})
	}
	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 8 characters"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	switch req.Role {
	case "":
		req.Role = model.RoleMember
	case model.RoleMember, model.RoleHallLeader, model.RoleSuperAdmin:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Users.Create(ctx, req.Email, req.Password, req.Name, req.RoomNumber, req.Role, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}

	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load user"})
	}
	resp, err := h.issueTokens(ctx, user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue tokens"})
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil || !utils.VerifyPassword(user.PasswordHash, req.Password) {
		// same response for unknown email and wrong password
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	resp, err := h.issueTokens(ctx, user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue tokens"})
	}
	return c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /v1/auth/refresh: the presented refresh token is
// revoked and a fresh pair is issued (rotation).
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hash := utils.HashRefreshRaw(req.RefreshToken)
	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not rotate token"})
	}
	resp, err := h.issueTokens(ctx, user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue tokens"})
	}
	return c.JSON(http.StatusOK, resp)
}

// RefreshAccess handles POST /v1/auth/refresh-access: a new access token
// only, without rotating the refresh token. Useful for clients that poll.
func (h *AuthHandler) RefreshAccess(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, utils.HashRefreshRaw(req.RefreshToken))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": access.Token,
		"expires_at":   access.Exp.Format(time.RFC3339),
	})
}

// Logout handles POST /v1/auth/logout. With a bearer token and no body it
// revokes every refresh token of that user; with a refresh_token in the
// body it revokes just that session.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var req refreshReq
	_ = c.Bind(&req)

	if req.RefreshToken != "" {
		hash := utils.HashRefreshRaw(req.RefreshToken)
		if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
		}
		if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not revoke token"})
		}
		return c.NoContent(http.StatusNoContent)
	}

	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		raw := strings.TrimPrefix(header, "Bearer ")
		if userID, _, err := utils.ParseAccessToken(h.Cfg.JWTSecret, raw); err == nil {
			if err := h.Tokens.RevokeAllForUser(ctx, userID); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not revoke tokens"})
			}
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no credentials to revoke"})
}

// issueTokens signs an access token and stores a hashed refresh token.
func (h *AuthHandler) issueTokens(ctx context.Context, user model.User) (authResp, error) {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return authResp{}, err
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return authResp{}, err
	}
	if err := h.Tokens.StoreRefresh(ctx, user.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return authResp{}, err
	}
	return authResp{
		User: userResp{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.DisplayName,
			RoomNumber: user.RoomNumber,
			Role:       user.Role,
		},
		AccessToken:  access.Token,
		RefreshToken: refresh.Raw,
		ExpiresAt:    access.Exp.Format(time.RFC3339),
	}, nil
}
