package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

type AirlineService struct {
	airlines domain.AirlineStore
	flights  domain.FlightStore
	assets   *AssetChecker
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewAirlineService(airlines domain.AirlineStore, flights domain.FlightStore, assets *AssetChecker, tracer trace.Tracer, logger *logrus.Logger) *AirlineService {
	return &AirlineService{
		airlines: airlines,
		flights:  flights,
		assets:   assets,
		tracer:   tracer,
		logger:   logger,
	}
}

func (service *AirlineService) GetAll(ctx context.Context) ([]*domain.Airline, error) {
	return service.airlines.GetAll(ctx)
}

func (service *AirlineService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error) {
	return service.airlines.Get(ctx, id)
}

func (service *AirlineService) Create(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	ctx, span := service.tracer.Start(ctx, "AirlineService.Create")
	defer span.End()

	if err := airline.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if service.assets != nil && airline.Logo != "" {
		if err := service.assets.CheckURL(ctx, airline.Logo); err != nil {
			return nil, err
		}
	}
	return service.airlines.Insert(ctx, airline)
}

func (service *AirlineService) Update(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	if err := airline.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return service.airlines.Update(ctx, airline)
}

// Delete refuses while any flight still flies under the airline.
func (service *AirlineService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := service.tracer.Start(ctx, "AirlineService.Delete")
	defer span.End()

	inUse, err := service.flights.ExistsWithAirline(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrInUse
	}
	return service.airlines.Delete(ctx, id)
}
