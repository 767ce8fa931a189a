package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoleStore interface {
	GetAll(ctx context.Context) ([]*Role, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Role, error)
	Insert(ctx context.Context, role *Role) (*Role, error)
	Update(ctx context.Context, role *Role) (*Role, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	EnsureDefaults(ctx context.Context, names []string) error
}
