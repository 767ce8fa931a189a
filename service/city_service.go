package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

type CityService struct {
	cities  domain.CityStore
	flights domain.FlightStore
	hotels  domain.HotelStore
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewCityService(cities domain.CityStore, flights domain.FlightStore, hotels domain.HotelStore, tracer trace.Tracer, logger *logrus.Logger) *CityService {
	return &CityService{
		cities:  cities,
		flights: flights,
		hotels:  hotels,
		tracer:  tracer,
		logger:  logger,
	}
}

func (service *CityService) GetAll(ctx context.Context) ([]*domain.City, error) {
	return service.cities.GetAll(ctx)
}

func (service *CityService) Get(ctx context.Context, id primitive.ObjectID) (*domain.City, error) {
	return service.cities.Get(ctx, id)
}

func (service *CityService) GetFeatured(ctx context.Context) ([]*domain.City, error) {
	return service.cities.GetFeatured(ctx)
}

func (service *CityService) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	if err := city.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return service.cities.Insert(ctx, city)
}

func (service *CityService) Update(ctx context.Context, city *domain.City) (*domain.City, error) {
	if err := city.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return service.cities.Update(ctx, city)
}

// Delete refuses while any flight or hotel still references the city, the
// document stays untouched in that case.
func (service *CityService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := service.tracer.Start(ctx, "CityService.Delete")
	defer span.End()

	inFlights, err := service.flights.ExistsWithCity(ctx, id)
	if err != nil {
		return err
	}
	if inFlights {
		return ErrInUse
	}
	inHotels, err := service.hotels.ExistsWithCity(ctx, id)
	if err != nil {
		return err
	}
	if inHotels {
		return ErrInUse
	}
	return service.cities.Delete(ctx, id)
}
