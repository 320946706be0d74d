// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// Upload is a file received from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username        string
	Email           string
	Phone           string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm string
	Avatar          *Upload
}

// LoginInput is a credential of one kind plus the password.
type LoginInput struct {
	Credential entity.Credential
	Password   string
}

// ProfileInput holds the editable profile fields.
type ProfileInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
	Avatar    *Upload
}

// --- Output DTOs ---

// SessionOutput is returned after a successful login or registration.
type SessionOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// ProfileOutput is the profile page model.
type ProfileOutput struct {
	User   *entity.User
	Orders []*entity.Order
}

// UserUsecase covers registration, login and profile management.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*SessionOutput, error)

	// Login authenticates the credential and opens a session. A wrong
	// identifier and a wrong password fail the same way.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Authenticate resolves the credential to a user without opening a session.
	Authenticate(ctx context.Context, cred entity.Credential, password string) (*entity.User, error)

	GetProfile(ctx context.Context, userID uint) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID uint, input ProfileInput) (*entity.User, error)
}
