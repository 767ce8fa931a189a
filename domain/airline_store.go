package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AirlineStore interface {
	GetAll(ctx context.Context) ([]*Airline, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Airline, error)
	FindByNames(ctx context.Context, names []string) ([]*Airline, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Airline, error)
	Insert(ctx context.Context, airline *Airline) (*Airline, error)
	Update(ctx context.Context, airline *Airline) (*Airline, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
