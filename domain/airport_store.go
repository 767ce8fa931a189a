package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AirportStore interface {
	GetAll(ctx context.Context) ([]*Airport, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Airport, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Airport, error)
	Insert(ctx context.Context, airport *Airport) (*Airport, error)
	Update(ctx context.Context, airport *Airport) (*Airport, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
