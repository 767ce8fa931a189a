package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

type AirportService struct {
	airports domain.AirportStore
	flights  domain.FlightStore
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewAirportService(airports domain.AirportStore, flights domain.FlightStore, tracer trace.Tracer, logger *logrus.Logger) *AirportService {
	return &AirportService{
		airports: airports,
		flights:  flights,
		tracer:   tracer,
		logger:   logger,
	}
}

func (service *AirportService) GetAll(ctx context.Context) ([]*domain.Airport, error) {
	return service.airports.GetAll(ctx)
}

func (service *AirportService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Airport, error) {
	return service.airports.Get(ctx, id)
}

func (service *AirportService) Create(ctx context.Context, airport *domain.Airport) (*domain.Airport, error) {
	if err := airport.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return service.airports.Insert(ctx, airport)
}

func (service *AirportService) Update(ctx context.Context, airport *domain.Airport) (*domain.Airport, error) {
	if err := airport.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return service.airports.Update(ctx, airport)
}

// Delete refuses while any flight still uses the airport on either leg.
func (service *AirportService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := service.tracer.Start(ctx, "AirportService.Delete")
	defer span.End()

	inUse, err := service.flights.ExistsWithAirport(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrInUse
	}
	return service.airports.Delete(ctx, id)
}
