package mapper

import (
	"agri-assistant-be/internal/entity"
	"agri-assistant-be/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) UserToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:           u.Id.Hex(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.Password,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) UserToModel(u *entity.User) (*model.User, error) {
	if u == nil {
		return nil, nil
	}

	var id bson.ObjectID
	if u.Id != "" {
		parsed, err := bson.ObjectIDFromHex(u.Id)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	return &model.User{
		Id:        id,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, nil
}
