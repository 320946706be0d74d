package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
)

const testCookie = "storefront_session"

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	session := middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
		TokenService: mockService.NewMockTokenService(t),
		Config:       &config.Config{Session: &config.SessionConfig{CookieName: testCookie, TTL: time.Hour}},
	})

	return NewAuthHandler(AuthHandlerParams{UserUC: userUC, Session: session, Logger: slog.New(slog.DiscardHandler)}), userUC
}

func sessionFor(userID uint) *usecase.SessionOutput {
	return &usecase.SessionOutput{
		User:      &entity.User{ID: userID, Username: "ivan"},
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAuthHandler_Register(t *testing.T) {
	valid := url.Values{
		"username":         {"ivan"},
		"email":            {"ivan@example.com"},
		"phone":            {"+79001234567"},
		"first_name":       {"Иван"},
		"last_name":        {"Петров"},
		"password":         {"s3cretpass"},
		"password_confirm": {"s3cretpass"},
	}

	t.Run("creates the account and logs in", func(t *testing.T) {
		h, userUC := newAuthHandler(t)
		userUC.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
			return in.Username == "ivan" && in.Phone == "+79001234567" && in.Password == "s3cretpass" && in.Avatar == nil
		})).Return(sessionFor(1), nil)

		c, rec := newContext(newTestEcho(t), http.MethodPost, "/register/", valid)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), testCookie+"=signed-token")
	})

	t.Run("mismatched passwords never reach the usecase", func(t *testing.T) {
		h, _ := newAuthHandler(t)
		form := url.Values{}
		for k, v := range valid {
			form[k] = v
		}
		form.Set("password_confirm", "other")

		c, rec := newContext(newTestEcho(t), http.MethodPost, "/register/", form)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.MsgPasswordsMismatch)
		assert.Contains(t, rec.Body.String(), `value="ivan"`)
		assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
	})

	t.Run("taken username", func(t *testing.T) {
		h, userUC := newAuthHandler(t)
		userUC.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewValidationError("username", domainerrors.MsgUsernameTaken))

		c, rec := newContext(newTestEcho(t), http.MethodPost, "/register/", valid)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.MsgUsernameTaken)
	})
}

func TestAuthHandler_LoginForm(t *testing.T) {
	h, _ := newAuthHandler(t)
	c, rec := newContext(newTestEcho(t), http.MethodGet, "/login/?tab=email&next=/orders/", nil)

	require.NoError(t, h.LoginForm(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="email"`)
	assert.Contains(t, rec.Body.String(), `name="next" value="/orders/"`)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		wantCred entity.Credential
	}{
		{
			name:     "username tab",
			form:     url.Values{"auth_type": {"username"}, "username": {"ivan"}, "password": {"pw"}},
			wantCred: entity.Credential{Kind: entity.CredentialUsername, Value: "ivan"},
		},
		{
			name:     "email tab",
			form:     url.Values{"auth_type": {"email"}, "email": {"ivan@example.com"}, "password": {"pw"}},
			wantCred: entity.Credential{Kind: entity.CredentialEmail, Value: "ivan@example.com"},
		},
		{
			name:     "phone tab",
			form:     url.Values{"auth_type": {"phone"}, "phone": {"+79001234567"}, "password": {"pw"}},
			wantCred: entity.Credential{Kind: entity.CredentialPhone, Value: "+79001234567"},
		},
		{
			name:     "unknown tab falls back to username",
			form:     url.Values{"auth_type": {"passport"}, "username": {"ivan"}, "password": {"pw"}},
			wantCred: entity.Credential{Kind: entity.CredentialUsername, Value: "ivan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, userUC := newAuthHandler(t)
			userUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Credential: tt.wantCred, Password: "pw"}).Return(sessionFor(1), nil)

			c, rec := newContext(newTestEcho(t), http.MethodPost, "/login/", tt.form)

			require.NoError(t, h.Login(c))
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestAuthHandler_Login_Next(t *testing.T) {
	for next, want := range map[string]string{"/orders/": "/orders/", "https://evil.example/": "/"} {
		h, userUC := newAuthHandler(t)
		userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(sessionFor(1), nil)

		form := url.Values{"auth_type": {"username"}, "username": {"ivan"}, "password": {"pw"}, "next": {next}}
		c, rec := newContext(newTestEcho(t), http.MethodPost, "/login/", form)

		require.NoError(t, h.Login(c))
		assert.Equal(t, want, rec.Header().Get(echo.HeaderLocation), next)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, userUC := newAuthHandler(t)
	userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	form := url.Values{"auth_type": {"email"}, "email": {"ivan@example.com"}, "password": {"wrong"}}
	c, rec := newContext(newTestEcho(t), http.MethodPost, "/login/", form)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Неверный логин или пароль")
	assert.Contains(t, rec.Body.String(), `value="ivan@example.com"`)
	assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
}

func TestAuthHandler_Logout(t *testing.T) {
	h, _ := newAuthHandler(t)
	c, rec := newContext(newTestEcho(t), http.MethodGet, "/logout/", nil)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), testCookie+"=;")
}
