package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassTypeStore interface {
	GetAll(ctx context.Context) ([]*ClassType, error)
	Get(ctx context.Context, id primitive.ObjectID) (*ClassType, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*ClassType, error)
	FindByLabel(ctx context.Context, label string) (*ClassType, error)
	Insert(ctx context.Context, classType *ClassType) (*ClassType, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	EnsureDefaults(ctx context.Context, labels []string) error
}
