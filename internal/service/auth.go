package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
	"github.com/campuslib/circulation/pkg/auth"
)

const tokenTTL = 24 * time.Hour

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.Student, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Student{}, err
	}
	student, err := s.repo.CreateStudentAccount(ctx, req, string(hash))
	if err != nil {
		return model.Student{}, err
	}
	s.log.Info("register", zap.String("username", student.Username))
	return student, nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.repo.GetUser(ctx, req.Username)
	if err != nil {
		return "", errs.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", errs.ErrInvalidCredentials
	}
	return auth.NewToken(user.Username, string(user.Role), tokenTTL)
}
