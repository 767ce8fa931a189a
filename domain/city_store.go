package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CityStore interface {
	GetAll(ctx context.Context) ([]*City, error)
	Get(ctx context.Context, id primitive.ObjectID) (*City, error)
	GetFeatured(ctx context.Context) ([]*City, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*City, error)
	FindByCodes(ctx context.Context, countryCode, cityCode string) ([]*City, error)
	Insert(ctx context.Context, city *City) (*City, error)
	Update(ctx context.Context, city *City) (*City, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
