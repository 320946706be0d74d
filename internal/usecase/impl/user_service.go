// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

const avatarPrefix = "avatars"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	orderRepo    repository.OrderRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	storage      service.FileStorage
	metrics      service.MetricsRecorder
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	OrderRepo    repository.OrderRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Storage      service.FileStorage
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		orderRepo:    params.OrderRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		storage:      params.Storage,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and opens a session for it.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SessionOutput, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)

	if err := srv.validateRegistration(input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithCause(err)
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: hash,
	}

	if input.Avatar != nil {
		key, err := srv.storage.Save(ctx, avatarPrefix, input.Avatar.Filename, input.Avatar.ContentType, input.Avatar.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store avatar")
		}
		user.Avatar = key
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.discardFile(ctx, user.Avatar)

		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.NewValidationError("username", domainerrors.MsgUsernameTaken)
		}

		return nil, domainerrors.ErrUserCreationFailed.WithCause(err)
	}

	srv.metrics.UserRegistered()
	srv.log(ctx).Info("User registered", slog.Uint64("user_id", uint64(user.ID)), slog.String("username", user.Username))

	return srv.openSession(user)
}

func (srv *userService) validateRegistration(input usecase.RegisterInput) error {
	verr := new(domainerrors.ValidationError)

	if input.Username == "" {
		verr.Add("username", domainerrors.MsgRequired)
	}

	switch {
	case input.Phone == "":
		verr.Add("phone", domainerrors.MsgRequired)
	case !entity.IsValidPhone(input.Phone):
		verr.Add("phone", domainerrors.MsgInvalidPhone)
	}

	switch {
	case input.Password == "":
		verr.Add("password", domainerrors.MsgRequired)
	case input.Password != input.PasswordConfirm:
		verr.Add("password_confirm", domainerrors.MsgPasswordsMismatch)
	default:
		if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
			verr.Add("password", passwordPolicyMessage(err))
		}
	}

	return verr.OrNil()
}

func passwordPolicyMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if details := appErr.Details(); details != "" {
			return appErr.Message() + ": " + details
		}

		return appErr.Message()
	}

	return domainerrors.ErrPasswordStrength.Message()
}

func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	user, err := srv.Authenticate(ctx, input.Credential, input.Password)
	srv.metrics.LoginAttempt(string(input.Credential.Kind), err == nil)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("credential", string(input.Credential.Kind)),
	)

	return srv.openSession(user)
}

// Authenticate dispatches the credential to a single lookup. An unknown
// identifier and a wrong password both yield ErrInvalidCredentials.
func (srv *userService) Authenticate(ctx context.Context, cred entity.Credential, password string) (*entity.User, error) {
	cred.Value = strings.TrimSpace(cred.Value)

	verr := new(domainerrors.ValidationError)
	field := string(cred.Kind)
	switch {
	case cred.Value == "":
		verr.Add(field, domainerrors.MsgRequired)
	case cred.Kind == entity.CredentialPhone && !entity.IsValidPhone(cred.Value):
		verr.Add(field, domainerrors.MsgInvalidPhone)
	}
	if password == "" {
		verr.Add("password", domainerrors.MsgRequired)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByCredential(ctx, cred)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by credential")
	}

	if !srv.hasher.Matches(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

func (srv *userService) openSession(user *entity.User) (*usecase.SessionOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateSessionToken(user.ID, user.Roles().Strings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.SessionOutput{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (srv *userService) GetProfile(ctx context.Context, userID uint) (*usecase.ProfileOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.ProfileOutput{User: user, Orders: orders}, nil
}

func (srv *userService) UpdateProfile(ctx context.Context, userID uint, input usecase.ProfileInput) (*entity.User, error) {
	input.Phone = strings.TrimSpace(input.Phone)
	if input.Phone != "" && !entity.IsValidPhone(input.Phone) {
		return nil, domainerrors.NewValidationError("phone", domainerrors.MsgInvalidPhone)
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	user.Email = strings.TrimSpace(input.Email)
	user.Phone = input.Phone
	user.Address = strings.TrimSpace(input.Address)
	user.City = strings.TrimSpace(input.City)
	user.Country = strings.TrimSpace(input.Country)

	previousAvatar := ""
	if input.Avatar != nil {
		key, err := srv.storage.Save(ctx, avatarPrefix, input.Avatar.Filename, input.Avatar.ContentType, input.Avatar.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store avatar")
		}
		previousAvatar, user.Avatar = user.Avatar, key
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if input.Avatar != nil {
			srv.discardFile(ctx, user.Avatar)
		}

		return nil, domainerrors.ErrUserUpdateFailed.WithCause(err)
	}

	srv.discardFile(ctx, previousAvatar)
	srv.log(ctx).Info("Profile updated", slog.Uint64("user_id", uint64(userID)))

	return user, nil
}

func (srv *userService) findUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// discardFile removes an orphaned upload; failures are only logged.
func (srv *userService) discardFile(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete stored file", slog.String("key", key), slog.Any("error", err))
	}
}
