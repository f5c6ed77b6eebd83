// Package auth implements session-based registration and login, and the
// middleware that resolves the acting user for each request.
package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/verdetech/verdetech/config"
	"github.com/verdetech/verdetech/database"
)

// Authentication failures are reported distinctly so the login page can tell
// a missing account from a wrong password.
var (
	ErrUnknownAccount = errors.New("conta ainda não existe")
	ErrWrongPassword  = errors.New("senha incorreta")
)

// Service implements registration and credential checks on top of the
// database client.
type Service struct {
	db  *database.Client
	cfg *config.Config
}

// NewService creates the auth service.
func NewService(db *database.Client, cfg *config.Config) *Service {
	return &Service{db: db, cfg: cfg}
}

// Register validates the registration input and creates the user with a
// bcrypt-hashed credential. All-or-nothing: a failure leaves no partial
// account behind.
func (s *Service) Register(ctx context.Context, name, email, password, confirm string) (*database.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if password != confirm {
		return nil, errors.New("as senhas não conferem")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user, err := s.db.CreateUser(ctx, name, email, string(hash))
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			return nil, errors.New("e-mail já está em uso")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the matching credential with
// its user preloaded.
func (s *Service) Login(ctx context.Context, email, password string) (*database.Credential, error) {
	cred, err := s.db.GetCredentialByUsername(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownAccount
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return cred, nil
}

// IsAdmin reports whether the given login identifier is the designated admin
// account. An empty configured admin email matches nobody.
func (s *Service) IsAdmin(username string) bool {
	return s.cfg.AdminEmail != "" && username == s.cfg.AdminEmail
}
