package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, email, password, role string) (User, error) {
	args := m.Called(ctx, name, email, password, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Success with default role", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "John Doe", "john.doe@example.com", mock.AnythingOfType("string"), "user").
			Return(User{ID: "user-1", Name: "John Doe", Email: "john.doe@example.com", Role: RoleUser}, nil)

		token, u, err := svc.Register(ctx, "John Doe", "john.doe@example.com", "password123", "")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, RoleUser, u.Role)
		repo.AssertExpectations(t)
	})

	t.Run("Employee role accepted", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "Mike Johnson", "mike.j@fixit.com", mock.AnythingOfType("string"), "employee").
			Return(User{ID: "emp-1", Email: "mike.j@fixit.com", Role: RoleEmployee}, nil)

		_, u, err := svc.Register(ctx, "Mike Johnson", "mike.j@fixit.com", "password123", "employee")
		require.NoError(t, err)
		assert.Equal(t, RoleEmployee, u.Role)
	})

	t.Run("Invalid role", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, _, err := svc.Register(ctx, "Eve", "eve@example.com", "password123", "admin")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("Missing fields", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, _, err := svc.Register(ctx, "", "john.doe@example.com", "password123", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "John Doe", "john.doe@example.com", mock.AnythingOfType("string"), "user").
			Return(User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, _, err := svc.Register(ctx, "John Doe", "john.doe@example.com", "password123", "")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := HashPassword("password123")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "john.doe@example.com").
			Return(User{ID: "user-1", Email: "john.doe@example.com", Password: hashed, Role: RoleUser}, nil)

		token, u, err := svc.Login(ctx, "john.doe@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "user-1", u.ID)
	})

	t.Run("Unknown email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "nobody@example.com").Return(User{}, ErrUserNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "john.doe@example.com").
			Return(User{ID: "user-1", Password: hashed}, nil)

		_, _, err := svc.Login(ctx, "john.doe@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("No fields", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.UpdateProfile(ctx, UpdateProfileParams{UserID: "user-1"})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})

	t.Run("Blank name rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		blank := "   "
		_, err := svc.UpdateProfile(ctx, UpdateProfileParams{UserID: "user-1", Name: &blank})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		name := "John D."
		params := UpdateProfileParams{UserID: "user-1", Name: &name}
		repo.On("UpdateProfile", ctx, params).
			Return(User{ID: "user-1", Name: "John D.", Role: RoleUser}, nil)

		u, err := svc.UpdateProfile(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "John D.", u.Name)
		repo.AssertExpectations(t)
	})
}
