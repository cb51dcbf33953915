package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"agri-assistant-be/internal/dto"
	"agri-assistant-be/internal/entity"
	"agri-assistant-be/internal/pkg/apperror"
	"agri-assistant-be/internal/repository/contract"
	"agri-assistant-be/pkg/store"

	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	// Register creates the account and logs the user straight in.
	Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, *store.LoginSession, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, *store.LoginSession, error)
	// Logout is idempotent; an unknown token is not an error.
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userId string) (*entity.User, error)
	// ChangePassword re-verifies the current password before storing the new
	// hash. Existing sessions stay valid.
	ChangePassword(ctx context.Context, userId string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	users    contract.UserRepository
	sessions store.SessionStore
}

func NewAuthService(users contract.UserRepository, sessions store.SessionStore) IAuthService {
	return &authService{users: users, sessions: sessions}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, *store.LoginSession, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, apperror.Validation("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.startSession(user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, *store.LoginSession, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	// One failure message for unknown email and wrong password
	if user == nil {
		return nil, nil, apperror.Auth("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, apperror.Auth("invalid email or password")
	}

	session, err := s.startSession(user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(token)
}

func (s *authService) Profile(ctx context.Context, userId string) (*entity.User, error) {
	user, err := s.users.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userId string, req *dto.ChangePasswordRequest) error {
	user, err := s.users.FindById(ctx, userId)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperror.Auth("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userId, string(hash))
}

func (s *authService) startSession(user *entity.User) (*store.LoginSession, error) {
	token, err := generateSessionToken()
	if err != nil {
		return nil, err
	}

	session := &store.LoginSession{
		Token:     token,
		UserId:    user.Id,
		UserName:  user.Name,
		UserEmail: user.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
