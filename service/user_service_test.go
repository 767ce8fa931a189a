package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Warsame-Adam/skystream-api/domain"
)

func TestToggleFavoriteAddsAbsentFlight(t *testing.T) {
	users := new(mockUserStore)
	flights := new(mockFlightStore)
	userID := primitive.NewObjectID()
	flightID := primitive.NewObjectID()

	flights.On("Get", mock.Anything, flightID).Return(&domain.Flight{ID: flightID}, nil)
	users.On("Get", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(&domain.User{}, nil)

	service := NewUserService(users, flights, noopTracer(), logrus.New())

	favorites, err := service.ToggleFavorite(context.Background(), userID, flightID)

	assert.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{flightID}, favorites)
}

func TestToggleFavoriteRemovesPresentFlight(t *testing.T) {
	users := new(mockUserStore)
	flights := new(mockFlightStore)
	userID := primitive.NewObjectID()
	flightID := primitive.NewObjectID()
	other := primitive.NewObjectID()

	flights.On("Get", mock.Anything, flightID).Return(&domain.Flight{ID: flightID}, nil)
	users.On("Get", mock.Anything, userID).Return(&domain.User{
		ID:              userID,
		FavoriteFlights: []primitive.ObjectID{other, flightID},
	}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(&domain.User{}, nil)

	service := NewUserService(users, flights, noopTracer(), logrus.New())

	favorites, err := service.ToggleFavorite(context.Background(), userID, flightID)

	assert.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{other}, favorites)
}

func TestToggleFavoriteUnknownFlight(t *testing.T) {
	users := new(mockUserStore)
	flights := new(mockFlightStore)
	flightID := primitive.NewObjectID()

	flights.On("Get", mock.Anything, flightID).Return(nil, mongo.ErrNoDocuments)

	service := NewUserService(users, flights, noopTracer(), logrus.New())

	_, err := service.ToggleFavorite(context.Background(), primitive.NewObjectID(), flightID)

	assert.Equal(t, mongo.ErrNoDocuments, err)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCityDeleteBlockedWhileReferenced(t *testing.T) {
	cities := new(mockCityStore)
	flights := new(mockFlightStore)
	hotels := new(mockHotelStore)
	cityID := primitive.NewObjectID()

	flights.On("ExistsWithCity", mock.Anything, cityID).Return(true, nil)

	service := NewCityService(cities, flights, hotels, noopTracer(), logrus.New())

	err := service.Delete(context.Background(), cityID)

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInUse)
	cities.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCityDeleteBlockedByHotels(t *testing.T) {
	cities := new(mockCityStore)
	flights := new(mockFlightStore)
	hotels := new(mockHotelStore)
	cityID := primitive.NewObjectID()

	flights.On("ExistsWithCity", mock.Anything, cityID).Return(false, nil)
	hotels.On("ExistsWithCity", mock.Anything, cityID).Return(true, nil)

	service := NewCityService(cities, flights, hotels, noopTracer(), logrus.New())

	err := service.Delete(context.Background(), cityID)

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInUse)
}

func TestCityDeleteProceedsWhenUnreferenced(t *testing.T) {
	cities := new(mockCityStore)
	flights := new(mockFlightStore)
	hotels := new(mockHotelStore)
	cityID := primitive.NewObjectID()

	flights.On("ExistsWithCity", mock.Anything, cityID).Return(false, nil)
	hotels.On("ExistsWithCity", mock.Anything, cityID).Return(false, nil)
	cities.On("Delete", mock.Anything, cityID).Return(nil)

	service := NewCityService(cities, flights, hotels, noopTracer(), logrus.New())

	assert.NoError(t, service.Delete(context.Background(), cityID))
	cities.AssertExpectations(t)
}

func TestRoleDeleteBlockedWhileAssigned(t *testing.T) {
	roles := new(mockRoleStore)
	users := new(mockUserStore)
	roleID := primitive.NewObjectID()

	users.On("ExistsWithRole", mock.Anything, roleID).Return(true, nil)

	service := NewRoleService(roles, users, noopTracer(), logrus.New())

	err := service.Delete(context.Background(), roleID)

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInUse)
	roles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestClassTypeDeleteBlockedWhileSold(t *testing.T) {
	classTypes := new(mockClassTypeStore)
	flights := new(mockFlightStore)
	classID := primitive.NewObjectID()

	flights.On("ExistsWithClassType", mock.Anything, classID).Return(true, nil)

	service := NewClassTypeService(classTypes, flights, noopTracer(), logrus.New())

	err := service.Delete(context.Background(), classID)

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInUse)
	classTypes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
