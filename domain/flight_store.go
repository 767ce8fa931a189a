package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FlightStore interface {
	GetAll(ctx context.Context) ([]*Flight, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Flight, error)
	Search(ctx context.Context, filter FlightFilter) ([]*Flight, error)
	Insert(ctx context.Context, flight *Flight) (*Flight, error)
	Update(ctx context.Context, flight *Flight) (*Flight, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ExistsWithFlightNumber(ctx context.Context, flightNumber string) (bool, error)
	ExistsWithCity(ctx context.Context, cityID primitive.ObjectID) (bool, error)
	ExistsWithAirport(ctx context.Context, airportID primitive.ObjectID) (bool, error)
	ExistsWithAirline(ctx context.Context, airlineID primitive.ObjectID) (bool, error)
	ExistsWithClassType(ctx context.Context, classTypeID primitive.ObjectID) (bool, error)
}
