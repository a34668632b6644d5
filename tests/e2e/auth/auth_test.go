//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"bookit-api/internal/handler/dto/request"
	"bookit-api/internal/handler/dto/response"
	"bookit-api/tests/common/httptest"
	"bookit-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestAuthFlow() {
	s.Run("register, login and fetch the current user", func() {
		t := s.T()

		registerReq := request.RegisterRequest{
			Name:     "Carol Example",
			Email:    "carol@example.com",
			Password: "password123",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/auth/register", registerReq, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// duplicate email is rejected
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/auth/register", registerReq, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		// login sets token cookies and returns the pair
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/auth/login", request.LoginRequest{
			Email:    registerReq.Email,
			Password: registerReq.Password,
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var login response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &login))
		require.NotEmpty(t, login.AccessToken)
		require.NotEmpty(t, login.RefreshToken)
		require.Equal(t, registerReq.Email, login.User.Email)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)
		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		// the access token authenticates /auth/me
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/auth/me", nil, login.AccessToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, registerReq.Email, me.Email)
		require.Equal(t, "user", me.Role)

		// refresh rotates the pair
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/auth/refresh", request.RefreshRequest{
			RefreshToken: login.RefreshToken,
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var pair response.TokenPairResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &pair))
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
	})

	s.Run("wrong password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/auth/register", request.RegisterRequest{
			Name:     "Dan Example",
			Email:    "dan@example.com",
			Password: "password123",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/auth/login", request.LoginRequest{
			Email:    "dan@example.com",
			Password: "wrongpassword",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())

		// unknown email looks the same as a bad password
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/auth/login", request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("protected endpoints reject missing and garbage tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/auth/me", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/auth/me", nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
