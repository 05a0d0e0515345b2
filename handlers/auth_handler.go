package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/IshaanAggrawal/InstituteManager/database"
	"github.com/IshaanAggrawal/InstituteManager/models"
)

/* ====================== Config & Helpers ====================== */

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(u *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  u.Role,
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

/* ====================== DTOs ====================== */

type CredentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/* ====================== Handlers ====================== */

// POST /auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req CredentialsReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	pass := strings.TrimSpace(req.Password)
	if email == "" || !strings.Contains(email, "@") || len(pass) < 6 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var dup models.User
	if err := database.DB.Where("email = ?", email).First(&dup).Error; err == nil {
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "EMAIL_EXISTS"})
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	u := models.User{Email: email, PasswordHash: string(hash), Role: "staff"}
	if err := database.DB.Create(&u).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	token, err := h.signJWT(&u, 7*24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"token": token, "user": u})
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var u models.User
	if err := database.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	token, err := h.signJWT(&u, 7*24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": u})
}

// GET /auth/me — session retrieval for the logged-in UI state
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"id":    c.Get("user_id"),
		"email": c.Get("email"),
		"role":  c.Get("role"),
	})
}

// POST /auth/logout — tokens are stateless; the client discards its copy
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
