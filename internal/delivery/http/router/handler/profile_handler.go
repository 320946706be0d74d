package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

const profilePage = "profile"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// ProfileHandler shows and edits the logged-in user's profile.
type ProfileHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

type profileForm struct {
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`
	Email     string `form:"email" validate:"omitempty,email"`
	Phone     string `form:"phone" validate:"omitempty,ruphone"`
	Address   string `form:"address"`
	City      string `form:"city" validate:"max=100"`
	Country   string `form:"country" validate:"max=100"`
}

func (f *profileForm) values() map[string]string {
	return map[string]string{
		"first_name": f.FirstName,
		"last_name":  f.LastName,
		"email":      f.Email,
		"phone":      f.Phone,
		"address":    f.Address,
		"city":       f.City,
		"country":    f.Country,
	}
}

func profileValues(user *entity.User) map[string]string {
	form := profileForm{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Address:   user.Address,
		City:      user.City,
		Country:   user.Country,
	}

	return form.values()
}

func (h *ProfileHandler) Profile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	page := response.NewPage(c, "Профиль", profile)
	page.Form = profileValues(profile.User)

	return response.Render(c, profilePage, page)
}

// UpdateProfile saves the form and returns to the profile page.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	var form profileForm
	err := h.save(c, userID, &form)
	if err == nil {
		return response.Redirect(c, "/profile/")
	}

	verr, ok := asValidation(err)
	if !ok {
		return err
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	page := response.NewPage(c, "Профиль", profile)
	page.Form = form.values()

	return response.RenderInvalid(c, profilePage, page, verr)
}

func (h *ProfileHandler) save(c echo.Context, userID uint, form *profileForm) error {
	if err := c.Bind(form); err != nil {
		return malformedForm()
	}
	if err := c.Validate(form); err != nil {
		return err
	}

	avatar, closeAvatar, err := formUpload(c, "avatar")
	if err != nil {
		return err
	}
	defer closeAvatar()

	_, err = h.userUC.UpdateProfile(c.Request().Context(), userID, usecase.ProfileInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Address:   form.Address,
		City:      form.City,
		Country:   form.Country,
		Avatar:    avatar,
	})

	return err
}
