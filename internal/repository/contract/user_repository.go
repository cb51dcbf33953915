package contract

import (
	"context"

	"agri-assistant-be/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindById returns (nil, nil) when the id is unknown; a malformed id is
	// an error.
	FindById(ctx context.Context, id string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id string, hash string) error
}
