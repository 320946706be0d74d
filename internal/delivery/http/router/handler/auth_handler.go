package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

const (
	registerPage = "register"
	loginPage    = "login"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC  usecase.UserUsecase
	Session *middleware.SessionMiddleware
	Logger  *slog.Logger
}

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	userUC  usecase.UserUsecase
	session *middleware.SessionMiddleware
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:  params.UserUC,
		session: params.Session,
		logger:  params.Logger,
	}
}

type registerForm struct {
	Username        string `form:"username" validate:"required,max=150"`
	Email           string `form:"email" validate:"omitempty,email"`
	Phone           string `form:"phone" validate:"required,ruphone"`
	FirstName       string `form:"first_name" validate:"max=150"`
	LastName        string `form:"last_name" validate:"max=150"`
	Password        string `form:"password" validate:"required"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

func (f *registerForm) values() map[string]string {
	return map[string]string{
		"username":   f.Username,
		"email":      f.Email,
		"phone":      f.Phone,
		"first_name": f.FirstName,
		"last_name":  f.LastName,
	}
}

type loginForm struct {
	AuthType string `form:"auth_type"`
	Username string `form:"username"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

// credential picks the identifier of the submitted tab.
func (f *loginForm) credential() entity.Credential {
	kind := entity.ParseCredentialKind(f.AuthType)

	switch kind {
	case entity.CredentialEmail:
		return entity.Credential{Kind: kind, Value: f.Email}
	case entity.CredentialPhone:
		return entity.Credential{Kind: kind, Value: f.Phone}
	default:
		return entity.Credential{Kind: kind, Value: f.Username}
	}
}

func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return response.Render(c, registerPage, response.NewPage(c, "Регистрация", nil))
}

// Register creates the account, logs it in and redirects home.
func (h *AuthHandler) Register(c echo.Context) error {
	page := response.NewPage(c, "Регистрация", nil)

	var form registerForm
	if err := c.Bind(&form); err != nil {
		return response.RenderInvalid(c, registerPage, page, malformedForm())
	}
	page.Form = form.values()

	if err := c.Validate(&form); err != nil {
		if verr, ok := asValidation(err); ok {
			return response.RenderInvalid(c, registerPage, page, verr)
		}

		return err
	}

	avatar, closeAvatar, err := formUpload(c, "avatar")
	if err != nil {
		return err
	}
	defer closeAvatar()

	out, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Username:        form.Username,
		Email:           form.Email,
		Phone:           form.Phone,
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Password:        form.Password,
		PasswordConfirm: form.PasswordConfirm,
		Avatar:          avatar,
	})
	if err != nil {
		if verr, ok := asValidation(err); ok {
			return response.RenderInvalid(c, registerPage, page, verr)
		}

		return err
	}

	h.session.Issue(c, out.Token, out.ExpiresAt)

	return response.Redirect(c, "/")
}

// LoginForm shows the tab chosen by the "tab" query parameter.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	page := response.NewPage(c, "Вход", string(entity.ParseCredentialKind(c.QueryParam("tab"))))
	page.Form["next"] = c.QueryParam("next")

	return response.Render(c, loginPage, page)
}

// Login authenticates by username, email or phone. The tab comes from the
// auth_type field, falling back to the "tab" query parameter.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		page := response.NewPage(c, "Вход", string(entity.CredentialUsername))

		return response.RenderInvalid(c, loginPage, page, malformedForm())
	}
	if form.AuthType == "" {
		form.AuthType = c.QueryParam("tab")
	}

	cred := form.credential()
	page := response.NewPage(c, "Вход", string(cred.Kind))
	page.Form = map[string]string{
		string(cred.Kind): cred.Value,
		"next":            form.Next,
	}

	out, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{Credential: cred, Password: form.Password})
	if err != nil {
		if verr, ok := asValidation(err); ok {
			return response.RenderInvalid(c, loginPage, page, verr)
		}
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return response.RenderInvalid(c, loginPage, page,
				domainerrors.NewValidationError("", domainerrors.ErrInvalidCredentials.Message()))
		}

		return err
	}

	h.session.Issue(c, out.Token, out.ExpiresAt)

	return response.Redirect(c, middleware.SafeRedirect(form.Next))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Clear(c)

	return response.Redirect(c, "/")
}
