package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/verdetech/verdetech/config"
	"github.com/verdetech/verdetech/database"
)

type ServiceTestSuite struct {
	suite.Suite
	svc *Service
	db  *database.Client
	ctx context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	db, err := database.New(":memory:")
	require.NoError(s.T(), err)
	s.db = db
	s.svc = NewService(db, &config.Config{AdminEmail: "gestor@verdetech.com"})
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Close())
}

func (s *ServiceTestSuite) TestRegisterAndLogin() {
	user, err := s.svc.Register(s.ctx, "Ana", "Ana@Example.com", "SenhaForte", "SenhaForte")
	s.Require().NoError(err)
	s.Equal("ana@example.com", user.Email)

	cred, err := s.svc.Login(s.ctx, "ANA@example.com", "SenhaForte")
	s.Require().NoError(err)
	s.Equal(user.ID, cred.UserID)
	s.Equal("Ana", cred.User.Name)
	// The stored hash never equals the plain password.
	s.NotEqual("SenhaForte", cred.PasswordHash)
}

func (s *ServiceTestSuite) TestLoginUnknownAccount() {
	_, err := s.svc.Login(s.ctx, "ghost@example.com", "SenhaForte")
	s.ErrorIs(err, ErrUnknownAccount)
}

func (s *ServiceTestSuite) TestLoginWrongPassword() {
	_, err := s.svc.Register(s.ctx, "Ana", "ana@example.com", "SenhaForte", "SenhaForte")
	s.Require().NoError(err)

	_, err = s.svc.Login(s.ctx, "ana@example.com", "SenhaErrada")
	s.ErrorIs(err, ErrWrongPassword)
}

func (s *ServiceTestSuite) TestRegisterRejectsInvalidInput() {
	cases := []struct {
		name, email, password, confirm string
	}{
		{"admin", "a@b.com", "SenhaForte", "SenhaForte"},
		{"Ana", "a@b.com", "curta", "curta"},
		{"Ana", "a@b.com", "SenhaForte", "SenhaOutra"},
	}
	for _, tc := range cases {
		_, err := s.svc.Register(s.ctx, tc.name, tc.email, tc.password, tc.confirm)
		s.Error(err)
	}

	users, err := s.db.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *ServiceTestSuite) TestIsAdmin() {
	s.True(s.svc.IsAdmin("gestor@verdetech.com"))
	s.False(s.svc.IsAdmin("ana@example.com"))

	// An unset admin email must match nobody, not everybody.
	unset := NewService(s.db, &config.Config{})
	s.False(unset.IsAdmin(""))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
