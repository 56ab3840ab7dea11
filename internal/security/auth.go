package security

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/harborlight/teamlens/internal/errors"
)

// DashboardAuth issues and validates the signed tokens that scope supervisor
// dashboard access to one organizational unit. This is deliberately a thin
// layer: the tool runs inside a trusted network and the token exists to carry
// the unit scope, not to be an identity system.
type DashboardAuth struct {
	secret   []byte
	password string
	tokenTTL time.Duration
}

// NewDashboardAuth creates the auth layer. The shared password gates login;
// the secret signs tokens.
func NewDashboardAuth(secret, password string) *DashboardAuth {
	return &DashboardAuth{
		secret:   []byte(secret),
		password: password,
		tokenTTL: 8 * time.Hour,
	}
}

// Login validates the shared supervisor password and issues a token scoped to
// the requested unit. An empty unit grants the all-units view.
func (a *DashboardAuth) Login(password, unit string) (string, error) {
	if a.password == "" {
		return "", fmt.Errorf("dashboard access is not configured")
	}
	if password != a.password {
		return "", fmt.Errorf("invalid dashboard password")
	}

	claims := jwt.MapClaims{
		"unit": unit,
		"role": "supervisor",
		"exp":  time.Now().Add(a.tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign dashboard token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses a token and returns the unit scope it carries.
func (a *DashboardAuth) ValidateToken(tokenString string) (unit string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid dashboard token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid dashboard token claims")
	}

	unit, _ = claims["unit"].(string)
	return unit, nil
}

// Middleware guards dashboard routes. On success the token's unit scope is
// stored on the context under "unit" for handlers and the response cache.
func (a *DashboardAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			appErr := apperrors.NewUnauthorizedError("dashboard token required")
			apperrors.LogError(c, appErr)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}

		unit, err := a.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			appErr := apperrors.NewUnauthorizedError(err.Error())
			apperrors.LogError(c, appErr)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}

		c.Set("unit", unit)
		c.Next()
	}
}
