package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"agri-assistant-be/internal/dto"
	"agri-assistant-be/internal/entity"
	"agri-assistant-be/internal/pkg/apperror"
	"agri-assistant-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byId    map[string]*entity.User
	nextId  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*entity.User{},
		byId:    map[string]*entity.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.nextId++
	user.Id = fmt.Sprintf("user-%03d", f.nextId)
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	f.byEmail[user.Email] = user
	f.byId[user.Id] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindById(_ context.Context, id string) (*entity.User, error) {
	return f.byId[id], nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id string, hash string) error {
	user, ok := f.byId[id]
	if !ok {
		return fmt.Errorf("user not found")
	}
	user.PasswordHash = hash
	return nil
}

func newAuthFixture() (IAuthService, *fakeUserRepo, *memory.SessionStore) {
	users := newFakeUserRepo()
	sessions := memory.NewSessionStore(time.Hour)
	return NewAuthService(users, sessions), users, sessions
}

func TestRegisterCreatesAccountAndLogsIn(t *testing.T) {
	svc, users, sessions := newAuthFixture()

	user, session, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "plowshare42",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, user.Id)
	assert.Equal(t, "budi@example.com", user.Email)
	// never store the plaintext
	assert.NotEqual(t, "plowshare42", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "plowshare42")

	assert.NotEmpty(t, session.Token)
	stored, ok := sessions.Get(session.Token)
	assert.True(t, ok)
	assert.Equal(t, user.Id, stored.UserId)

	assert.NotNil(t, users.byEmail["budi@example.com"])
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "plowshare42"})
	assert.NoError(t, err)

	_, _, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Other", Email: "budi@example.com", Password: "different99"})
	assert.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestLoginOutcomes(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "plowshare42"})
	assert.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantAuth bool
	}{
		{name: "correct credentials", email: "budi@example.com", password: "plowshare42", wantAuth: false},
		{name: "wrong password", email: "budi@example.com", password: "wrong", wantAuth: true},
		{name: "unknown email", email: "nobody@example.com", password: "plowshare42", wantAuth: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, session, err := svc.Login(ctx, &dto.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantAuth {
				assert.Error(t, err)
				assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
				// same message either way, no account probing
				assert.Equal(t, "invalid email or password", apperror.PublicMessage(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "budi@example.com", user.Email)
			assert.NotEmpty(t, session.Token)
		})
	}
}

func TestLoginIssuesFreshTokenEachTime(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, first, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "plowshare42"})
	assert.NoError(t, err)

	_, second, err := svc.Login(ctx, &dto.LoginRequest{Email: "budi@example.com", Password: "plowshare42"})
	assert.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	ctx := context.Background()

	_, session, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "plowshare42"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(ctx, session.Token))
	_, ok := sessions.Get(session.Token)
	assert.False(t, ok)

	// idempotent
	assert.NoError(t, svc.Logout(ctx, session.Token))
	assert.NoError(t, svc.Logout(ctx, "never-issued"))
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	created, _, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "plowshare42"})
	assert.NoError(t, err)

	err = svc.ChangePassword(ctx, created.Id, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "harvest2025",
	})
	assert.Error(t, err)
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))

	err = svc.ChangePassword(ctx, created.Id, &dto.ChangePasswordRequest{
		CurrentPassword: "plowshare42",
		NewPassword:     "harvest2025",
	})
	assert.NoError(t, err)

	// old password stops working, new one logs in
	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "budi@example.com", Password: "plowshare42"})
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "budi@example.com", Password: "harvest2025"})
	assert.NoError(t, err)
}

func TestProfile(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	created, _, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "plowshare42"})
	assert.NoError(t, err)

	user, err := svc.Profile(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Budi", user.Name)

	_, err = svc.Profile(ctx, "user-999")
	assert.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
