package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"hiringbooth/internal/models"
	"hiringbooth/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuthFlow гоняет полный путь: регистрация -> подтверждение OTP -> логин.
// Код OTP берем из базы: SMTP в тестовом окружении не сконфигурирован
// и письма только логируются.
func TestAuthFlow(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("flow")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":     email,
		"password":  "super_password123",
		"role":      "user",
		"full_name": "Flow Tester",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// логин до подтверждения запрещен
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	})
	require.Equal(t, http.StatusForbidden, res.StatusCode, body)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", email).Error)
	require.Len(t, user.OTPCode, 6)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/verify-otp", "", map[string]interface{}{
		"email": email,
		"code":  user.OTPCode,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResp))
	assert.NotEmpty(t, loginResp.AccessToken)

	// токен открывает защищенные маршруты
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/me", loginResp.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	_, user := helpers.CreateSeeker(t, ts.DB)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":     user.Email,
		"password":  "super_password123",
		"role":      "user",
		"full_name": "Duplicate",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
