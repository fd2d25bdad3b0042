package auth

import (
	"testing"

	"finguard/internal/models"
	"finguard/internal/repositories"
	"finguard/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func hashedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Email: "analyst@example.com", Password: string(hash), Role: "analyst"}
	user.ID = 1
	return user
}

func TestService_Register(t *testing.T) {
	t.Run("creates analyst account", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "new@example.com").Return(nil, repositories.ErrUserNotFound)
		repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

		user, err := NewService(repo).Register("New@Example.com ", "longpassword", "New Analyst")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, "analyst", user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("longpassword")))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "taken@example.com").Return(hashedUser(t, "x"), nil)

		_, err := NewService(repo).Register("taken@example.com", "longpassword", "")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := NewService(new(MockUserRepo)).Register("a@b.c", "short", "")
		assert.Error(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := NewService(new(MockUserRepo)).Register("not-an-email", "longpassword", "")
		assert.Error(t, err)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "analyst@example.com").Return(hashedUser(t, "correct-pass"), nil)

		user, access, refresh, err := NewService(repo).Login("analyst@example.com", "correct-pass")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		claims, err := utils.ParseToken(access)
		require.NoError(t, err)
		assert.Equal(t, "analyst", claims.Role)
		assert.Contains(t, claims.Permissions, models.PermissionComplianceAnalyze)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "analyst@example.com").Return(hashedUser(t, "correct-pass"), nil)

		_, _, _, err := NewService(repo).Login("analyst@example.com", "wrong-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "ghost@example.com").Return(nil, repositories.ErrUserNotFound)

		_, _, _, err := NewService(repo).Login("ghost@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_RefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid refresh token", func(t *testing.T) {
		repo := new(MockUserRepo)
		user := hashedUser(t, "x")
		repo.On("GetByEmail", "analyst@example.com").Return(user, nil)
		repo.On("GetByID", uint(1)).Return(user, nil)

		s := NewService(repo)
		_, _, refresh, err := s.Login("analyst@example.com", "x")
		require.NoError(t, err)

		access, newRefresh, err := s.RefreshTokens(refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, err := NewService(new(MockUserRepo)).RefreshTokens("garbage")
		assert.Error(t, err)
	})
}
