package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
	repository_mocks "github.com/campuslib/circulation/internal/repository/mocks"
	"github.com/campuslib/circulation/pkg/auth"
)

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := model.RegisterRequest{
		Username:   "alice",
		Password:   "secret123",
		Email:      "alice@campus.edu",
		PhoneNo:    "555-0101",
		RollNumber: "CS-21-042",
		Branch:     "CS",
		Year:       3,
	}

	repo := repository_mocks.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateStudentAccount(gomock.Any(), req, gomock.Any()).
		DoAndReturn(func(_ context.Context, r model.RegisterRequest, hash string) (model.Student, error) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(r.Password)))
			return model.Student{ID: 7, Username: r.Username, Email: r.Email}, nil
		})

	student, err := newTestService(repo, date("2024-01-10")).Register(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "alice", student.Username)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := model.UserProfile{
		Username:     "alice",
		Role:         model.RoleStudent,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetUser(gomock.Any(), "alice").Return(user, nil)

		token, err := newTestService(repo, date("2024-01-10")).
			Login(context.Background(), model.LoginRequest{Username: "alice", Password: "secret123"})
		require.NoError(t, err)

		claims := new(auth.Claims)
		parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)
		require.Equal(t, "alice", claims.Profile.Username)
		require.Equal(t, auth.RoleStudent, claims.Profile.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetUser(gomock.Any(), "alice").Return(user, nil)

		_, err := newTestService(repo, date("2024-01-10")).
			Login(context.Background(), model.LoginRequest{Username: "alice", Password: "nope"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetUser(gomock.Any(), "ghost").
			Return(model.UserProfile{}, errs.ErrNotFound)

		_, err := newTestService(repo, date("2024-01-10")).
			Login(context.Background(), model.LoginRequest{Username: "ghost", Password: "x"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inactive := user
		inactive.IsActive = false

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetUser(gomock.Any(), "alice").Return(inactive, nil)

		_, err := newTestService(repo, date("2024-01-10")).
			Login(context.Background(), model.LoginRequest{Username: "alice", Password: "secret123"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
