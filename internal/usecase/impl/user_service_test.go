package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	orderRepo    *mockRepo.MockOrderRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	storage      *mockSvc.MockFileStorage
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		storage:      mockSvc.NewMockFileStorage(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}

	fx.service = NewUserService(UserServiceParams{
		UserRepo:     fx.userRepo,
		OrderRepo:    fx.orderRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Storage:      fx.storage,
		Metrics:      fx.metrics,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username:        "ivan",
		Email:           "ivan@example.com",
		Phone:           "+79991234567",
		FirstName:       "Ivan",
		LastName:        "Petrov",
		Password:        "Secret123",
		PasswordConfirm: "Secret123",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	fx.hasher.EXPECT().ValidatePasswordStrength("Secret123").Return(nil)
	fx.hasher.EXPECT().Hash("Secret123").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "ivan" && u.PasswordHash == "hashed" && u.Phone == "+79991234567" && !u.IsStaff
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = 10 }).
		Return(nil)
	fx.metrics.EXPECT().UserRegistered().Return()
	fx.tokenService.EXPECT().GenerateSessionToken(uint(10), []string{"customer"}).Return("token", expiresAt, nil)

	out, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.Equal(t, uint(10), out.User.ID)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestUserService_Register_WithAvatar(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validRegisterInput()
	input.Avatar = &usecase.Upload{Filename: "me.png", ContentType: "image/png", Reader: strings.NewReader("png")}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.storage.EXPECT().Save(ctx, "avatars", "me.png", "image/png", input.Avatar.Reader).Return("avatars/abc.png", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Avatar == "avatars/abc.png" })).
		Return(nil)
	fx.metrics.EXPECT().UserRegistered().Return()
	fx.tokenService.EXPECT().GenerateSessionToken(mock.Anything, mock.Anything).Return("token", time.Now(), nil)

	out, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "avatars/abc.png", out.User.Avatar)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUsername)

	out, err := fx.service.Register(ctx, validRegisterInput())
	assert.Nil(t, out)

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domainerrors.MsgUsernameTaken, verr.Field("username"))
}

func TestUserService_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
		field  string
	}{
		{name: "bad phone", mutate: func(in *usecase.RegisterInput) { in.Phone = "12345" }, field: "phone"},
		{name: "missing username", mutate: func(in *usecase.RegisterInput) { in.Username = "  " }, field: "username"},
		{name: "password mismatch", mutate: func(in *usecase.RegisterInput) { in.PasswordConfirm = "other" }, field: "password_confirm"},
		{name: "missing password", mutate: func(in *usecase.RegisterInput) { in.Password = "" }, field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil).Maybe()

			input := validRegisterInput()
			tt.mutate(&input)

			_, err := fx.service.Register(context.Background(), input)

			var verr *domainerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.NotEmpty(t, verr.Field(tt.field))
			fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("Secret123").
		Return(domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character"))

	_, err := fx.service.Register(context.Background(), validRegisterInput())

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Field("password"), "special character")
}

func TestUserService_Authenticate_AllCredentialKinds(t *testing.T) {
	creds := []entity.Credential{
		{Kind: entity.CredentialUsername, Value: "ivan"},
		{Kind: entity.CredentialEmail, Value: "ivan@example.com"},
		{Kind: entity.CredentialPhone, Value: "+79991234567"},
	}

	for _, cred := range creds {
		t.Run(string(cred.Kind), func(t *testing.T) {
			fx := createTestUserService(t)

			ctx := context.Background()
			user := &entity.User{ID: 1, Username: "ivan", PasswordHash: "hashed"}
			fx.userRepo.EXPECT().FindByCredential(ctx, cred).Return(user, nil)
			fx.hasher.EXPECT().Matches("Secret123", "hashed").Return(true)

			got, err := fx.service.Authenticate(ctx, cred, "Secret123")
			require.NoError(t, err)
			assert.Equal(t, user, got)
		})
	}
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	cred := entity.Credential{Kind: entity.CredentialUsername, Value: "ivan"}
	fx.userRepo.EXPECT().FindByCredential(ctx, cred).Return(&entity.User{ID: 1, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Matches("nope", "hashed").Return(false)

	user, err := fx.service.Authenticate(ctx, cred, "nope")
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Authenticate_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	cred := entity.Credential{Kind: entity.CredentialEmail, Value: "ghost@example.com"}
	fx.userRepo.EXPECT().FindByCredential(ctx, cred).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Authenticate(ctx, cred, "whatever")
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Authenticate_MalformedPhoneSkipsLookup(t *testing.T) {
	fx := createTestUserService(t)

	cred := entity.Credential{Kind: entity.CredentialPhone, Value: "89991234567"}

	_, err := fx.service.Authenticate(context.Background(), cred, "Secret123")

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domainerrors.MsgInvalidPhone, verr.Field("phone"))
	fx.userRepo.AssertNotCalled(t, "FindByCredential", mock.Anything, mock.Anything)
}

func TestUserService_Login_RecordsAttempt(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	cred := entity.Credential{Kind: entity.CredentialUsername, Value: "admin"}
	user := &entity.User{ID: 1, Username: "admin", PasswordHash: "hashed", IsStaff: true}

	fx.userRepo.EXPECT().FindByCredential(ctx, cred).Return(user, nil)
	fx.hasher.EXPECT().Matches("Secret123", "hashed").Return(true)
	fx.metrics.EXPECT().LoginAttempt("username", true).Return()
	fx.tokenService.EXPECT().GenerateSessionToken(uint(1), []string{"customer", "staff"}).Return("token", time.Now(), nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Credential: cred, Password: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
}

func TestUserService_Login_Failure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	cred := entity.Credential{Kind: entity.CredentialUsername, Value: "ivan"}
	fx.userRepo.EXPECT().FindByCredential(ctx, cred).Return(nil, repository.ErrUserNotFound)
	fx.metrics.EXPECT().LoginAttempt("username", false).Return()

	out, err := fx.service.Login(ctx, usecase.LoginInput{Credential: cred, Password: "x"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1}
	orders := []*entity.Order{{ID: 5}}
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(user, nil)
	fx.orderRepo.EXPECT().ListByUser(ctx, uint(1)).Return(orders, nil)

	out, err := fx.service.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, orders, out.Orders)
}

func TestUserService_UpdateProfile_ReplacesAvatar(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Avatar: "avatars/old.png"}
	avatar := &usecase.Upload{Filename: "new.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("jpg")}

	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(user, nil)
	fx.storage.EXPECT().Save(ctx, "avatars", "new.jpg", "image/jpeg", avatar.Reader).Return("avatars/new.jpg", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Avatar == "avatars/new.jpg" && u.City == "Kazan" && u.Phone == "+79990001122"
		})).
		Return(nil)
	fx.storage.EXPECT().Delete(ctx, "avatars/old.png").Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, 1, usecase.ProfileInput{
		FirstName: "Ivan",
		Phone:     "+79990001122",
		City:      " Kazan ",
		Avatar:    avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kazan", updated.City)
}

func TestUserService_UpdateProfile_InvalidPhone(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.UpdateProfile(context.Background(), 1, usecase.ProfileInput{Phone: "+7123"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_EmptyPhoneAllowed(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1, Phone: "+79990001122"}, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Phone == "" })).Return(nil)

	_, err := fx.service.UpdateProfile(ctx, 1, usecase.ProfileInput{})
	require.NoError(t, err)
}
