package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

type UserService struct {
	users   domain.UserStore
	flights domain.FlightStore
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewUserService(users domain.UserStore, flights domain.FlightStore, tracer trace.Tracer, logger *logrus.Logger) *UserService {
	return &UserService{
		users:   users,
		flights: flights,
		tracer:  tracer,
		logger:  logger,
	}
}

func (service *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return service.users.GetAll(ctx)
}

func (service *UserService) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return service.users.Get(ctx, id)
}

// ToggleFavorite adds the flight to the user's favorites, or removes it if
// already present, and returns the updated list.
func (service *UserService) ToggleFavorite(ctx context.Context, userID, flightID primitive.ObjectID) ([]primitive.ObjectID, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.ToggleFavorite")
	defer span.End()

	if _, err := service.flights.Get(ctx, flightID); err != nil {
		return nil, err
	}
	user, err := service.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorites := make([]primitive.ObjectID, 0, len(user.FavoriteFlights)+1)
	removed := false
	for _, id := range user.FavoriteFlights {
		if id == flightID {
			removed = true
			continue
		}
		favorites = append(favorites, id)
	}
	if !removed {
		favorites = append(favorites, flightID)
	}
	user.FavoriteFlights = favorites

	if _, err := service.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return favorites, nil
}
