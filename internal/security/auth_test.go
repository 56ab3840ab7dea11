package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndValidate(t *testing.T) {
	auth := NewDashboardAuth("test-secret", "letmein")

	token, err := auth.Login("letmein", "north-house")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	unit, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "north-house", unit)
}

func TestLoginAllUnitsScope(t *testing.T) {
	auth := NewDashboardAuth("test-secret", "letmein")

	token, err := auth.Login("letmein", "")
	require.NoError(t, err)

	unit, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, unit)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth := NewDashboardAuth("test-secret", "letmein")
	_, err := auth.Login("wrong", "north-house")
	assert.Error(t, err)
}

func TestLoginRejectsWhenUnconfigured(t *testing.T) {
	auth := NewDashboardAuth("test-secret", "")
	_, err := auth.Login("", "north-house")
	assert.Error(t, err)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	issuer := NewDashboardAuth("secret-a", "letmein")
	verifier := NewDashboardAuth("secret-b", "letmein")

	token, err := issuer.Login("letmein", "north-house")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := NewDashboardAuth("test-secret", "letmein")

	r := gin.New()
	r.GET("/dashboard", auth.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"unit": c.GetString("unit")})
	})

	token, err := auth.Login("letmein", "north-house")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid bearer token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "north-house")
			}
		})
	}
}
