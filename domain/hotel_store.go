package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HotelStore interface {
	GetAll(ctx context.Context) ([]*Hotel, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Hotel, error)
	Search(ctx context.Context, criteria HotelSearchCriteria) ([]*Hotel, error)
	GetByCity(ctx context.Context, cityID primitive.ObjectID) ([]*Hotel, error)
	GetByCities(ctx context.Context, cityIDs []primitive.ObjectID) ([]*Hotel, error)
	GetScoped(ctx context.Context, scope HotelStatisticsScope) ([]*Hotel, error)
	Insert(ctx context.Context, hotel *Hotel) (*Hotel, error)
	Update(ctx context.Context, hotel *Hotel) (*Hotel, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ExistsWithCity(ctx context.Context, cityID primitive.ObjectID) (bool, error)
}
