package application

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Warsame-Adam/skystream-api/domain"
)

type mockFlightStore struct {
	mock.Mock
}

func (m *mockFlightStore) GetAll(ctx context.Context) ([]*domain.Flight, error) {
	args := m.Called(ctx)
	flights, _ := args.Get(0).([]*domain.Flight)
	return flights, args.Error(1)
}

func (m *mockFlightStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	flight, _ := args.Get(0).(*domain.Flight)
	return flight, args.Error(1)
}

func (m *mockFlightStore) Search(ctx context.Context, filter domain.FlightFilter) ([]*domain.Flight, error) {
	args := m.Called(ctx, filter)
	flights, _ := args.Get(0).([]*domain.Flight)
	return flights, args.Error(1)
}

func (m *mockFlightStore) Insert(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	args := m.Called(ctx, flight)
	inserted, _ := args.Get(0).(*domain.Flight)
	return inserted, args.Error(1)
}

func (m *mockFlightStore) Update(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	args := m.Called(ctx, flight)
	updated, _ := args.Get(0).(*domain.Flight)
	return updated, args.Error(1)
}

func (m *mockFlightStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockFlightStore) ExistsWithFlightNumber(ctx context.Context, flightNumber string) (bool, error) {
	args := m.Called(ctx, flightNumber)
	return args.Bool(0), args.Error(1)
}

func (m *mockFlightStore) ExistsWithCity(ctx context.Context, cityID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, cityID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFlightStore) ExistsWithAirport(ctx context.Context, airportID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, airportID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFlightStore) ExistsWithAirline(ctx context.Context, airlineID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, airlineID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFlightStore) ExistsWithClassType(ctx context.Context, classTypeID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, classTypeID)
	return args.Bool(0), args.Error(1)
}

type mockCityStore struct {
	mock.Mock
}

func (m *mockCityStore) GetAll(ctx context.Context) ([]*domain.City, error) {
	args := m.Called(ctx)
	cities, _ := args.Get(0).([]*domain.City)
	return cities, args.Error(1)
}

func (m *mockCityStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.City, error) {
	args := m.Called(ctx, id)
	city, _ := args.Get(0).(*domain.City)
	return city, args.Error(1)
}

func (m *mockCityStore) GetFeatured(ctx context.Context) ([]*domain.City, error) {
	args := m.Called(ctx)
	cities, _ := args.Get(0).([]*domain.City)
	return cities, args.Error(1)
}

func (m *mockCityStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.City, error) {
	args := m.Called(ctx, ids)
	cities, _ := args.Get(0).([]*domain.City)
	return cities, args.Error(1)
}

func (m *mockCityStore) FindByCodes(ctx context.Context, countryCode, cityCode string) ([]*domain.City, error) {
	args := m.Called(ctx, countryCode, cityCode)
	cities, _ := args.Get(0).([]*domain.City)
	return cities, args.Error(1)
}

func (m *mockCityStore) Insert(ctx context.Context, city *domain.City) (*domain.City, error) {
	args := m.Called(ctx, city)
	inserted, _ := args.Get(0).(*domain.City)
	return inserted, args.Error(1)
}

func (m *mockCityStore) Update(ctx context.Context, city *domain.City) (*domain.City, error) {
	args := m.Called(ctx, city)
	updated, _ := args.Get(0).(*domain.City)
	return updated, args.Error(1)
}

func (m *mockCityStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAirlineStore struct {
	mock.Mock
}

func (m *mockAirlineStore) GetAll(ctx context.Context) ([]*domain.Airline, error) {
	args := m.Called(ctx)
	airlines, _ := args.Get(0).([]*domain.Airline)
	return airlines, args.Error(1)
}

func (m *mockAirlineStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error) {
	args := m.Called(ctx, id)
	airline, _ := args.Get(0).(*domain.Airline)
	return airline, args.Error(1)
}

func (m *mockAirlineStore) FindByNames(ctx context.Context, names []string) ([]*domain.Airline, error) {
	args := m.Called(ctx, names)
	airlines, _ := args.Get(0).([]*domain.Airline)
	return airlines, args.Error(1)
}

func (m *mockAirlineStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Airline, error) {
	args := m.Called(ctx, ids)
	airlines, _ := args.Get(0).([]*domain.Airline)
	return airlines, args.Error(1)
}

func (m *mockAirlineStore) Insert(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	args := m.Called(ctx, airline)
	inserted, _ := args.Get(0).(*domain.Airline)
	return inserted, args.Error(1)
}

func (m *mockAirlineStore) Update(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	args := m.Called(ctx, airline)
	updated, _ := args.Get(0).(*domain.Airline)
	return updated, args.Error(1)
}

func (m *mockAirlineStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockClassTypeStore struct {
	mock.Mock
}

func (m *mockClassTypeStore) GetAll(ctx context.Context) ([]*domain.ClassType, error) {
	args := m.Called(ctx)
	classTypes, _ := args.Get(0).([]*domain.ClassType)
	return classTypes, args.Error(1)
}

func (m *mockClassTypeStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.ClassType, error) {
	args := m.Called(ctx, id)
	classType, _ := args.Get(0).(*domain.ClassType)
	return classType, args.Error(1)
}

func (m *mockClassTypeStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.ClassType, error) {
	args := m.Called(ctx, ids)
	classTypes, _ := args.Get(0).([]*domain.ClassType)
	return classTypes, args.Error(1)
}

func (m *mockClassTypeStore) FindByLabel(ctx context.Context, label string) (*domain.ClassType, error) {
	args := m.Called(ctx, label)
	classType, _ := args.Get(0).(*domain.ClassType)
	return classType, args.Error(1)
}

func (m *mockClassTypeStore) Insert(ctx context.Context, classType *domain.ClassType) (*domain.ClassType, error) {
	args := m.Called(ctx, classType)
	inserted, _ := args.Get(0).(*domain.ClassType)
	return inserted, args.Error(1)
}

func (m *mockClassTypeStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockClassTypeStore) EnsureDefaults(ctx context.Context, labels []string) error {
	args := m.Called(ctx, labels)
	return args.Error(0)
}

type mockAirportStore struct {
	mock.Mock
}

func (m *mockAirportStore) GetAll(ctx context.Context) ([]*domain.Airport, error) {
	args := m.Called(ctx)
	airports, _ := args.Get(0).([]*domain.Airport)
	return airports, args.Error(1)
}

func (m *mockAirportStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	airport, _ := args.Get(0).(*domain.Airport)
	return airport, args.Error(1)
}

func (m *mockAirportStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Airport, error) {
	args := m.Called(ctx, ids)
	airports, _ := args.Get(0).([]*domain.Airport)
	return airports, args.Error(1)
}

func (m *mockAirportStore) Insert(ctx context.Context, airport *domain.Airport) (*domain.Airport, error) {
	args := m.Called(ctx, airport)
	inserted, _ := args.Get(0).(*domain.Airport)
	return inserted, args.Error(1)
}

func (m *mockAirportStore) Update(ctx context.Context, airport *domain.Airport) (*domain.Airport, error) {
	args := m.Called(ctx, airport)
	updated, _ := args.Get(0).(*domain.Airport)
	return updated, args.Error(1)
}

func (m *mockAirportStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockHotelStore struct {
	mock.Mock
}

func (m *mockHotelStore) GetAll(ctx context.Context) ([]*domain.Hotel, error) {
	args := m.Called(ctx)
	hotels, _ := args.Get(0).([]*domain.Hotel)
	return hotels, args.Error(1)
}

func (m *mockHotelStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	hotel, _ := args.Get(0).(*domain.Hotel)
	return hotel, args.Error(1)
}

func (m *mockHotelStore) Search(ctx context.Context, criteria domain.HotelSearchCriteria) ([]*domain.Hotel, error) {
	args := m.Called(ctx, criteria)
	hotels, _ := args.Get(0).([]*domain.Hotel)
	return hotels, args.Error(1)
}

func (m *mockHotelStore) GetByCity(ctx context.Context, cityID primitive.ObjectID) ([]*domain.Hotel, error) {
	args := m.Called(ctx, cityID)
	hotels, _ := args.Get(0).([]*domain.Hotel)
	return hotels, args.Error(1)
}

func (m *mockHotelStore) GetByCities(ctx context.Context, cityIDs []primitive.ObjectID) ([]*domain.Hotel, error) {
	args := m.Called(ctx, cityIDs)
	hotels, _ := args.Get(0).([]*domain.Hotel)
	return hotels, args.Error(1)
}

func (m *mockHotelStore) GetScoped(ctx context.Context, scope domain.HotelStatisticsScope) ([]*domain.Hotel, error) {
	args := m.Called(ctx, scope)
	hotels, _ := args.Get(0).([]*domain.Hotel)
	return hotels, args.Error(1)
}

func (m *mockHotelStore) Insert(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	args := m.Called(ctx, hotel)
	inserted, _ := args.Get(0).(*domain.Hotel)
	return inserted, args.Error(1)
}

func (m *mockHotelStore) Update(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	args := m.Called(ctx, hotel)
	updated, _ := args.Get(0).(*domain.Hotel)
	return updated, args.Error(1)
}

func (m *mockHotelStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockHotelStore) ExistsWithCity(ctx context.Context, cityID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, cityID)
	return args.Bool(0), args.Error(1)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *mockUserStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserStore) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	inserted, _ := args.Get(0).(*domain.User)
	return inserted, args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	updated, _ := args.Get(0).(*domain.User)
	return updated, args.Error(1)
}

func (m *mockUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserStore) ExistsWithRole(ctx context.Context, roleID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, roleID)
	return args.Bool(0), args.Error(1)
}

type mockRoleStore struct {
	mock.Mock
}

func (m *mockRoleStore) GetAll(ctx context.Context) ([]*domain.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]*domain.Role)
	return roles, args.Error(1)
}

func (m *mockRoleStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Role, error) {
	args := m.Called(ctx, id)
	role, _ := args.Get(0).(*domain.Role)
	return role, args.Error(1)
}

func (m *mockRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*domain.Role)
	return role, args.Error(1)
}

func (m *mockRoleStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Role, error) {
	args := m.Called(ctx, ids)
	roles, _ := args.Get(0).([]*domain.Role)
	return roles, args.Error(1)
}

func (m *mockRoleStore) Insert(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	args := m.Called(ctx, role)
	inserted, _ := args.Get(0).(*domain.Role)
	return inserted, args.Error(1)
}

func (m *mockRoleStore) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	args := m.Called(ctx, role)
	updated, _ := args.Get(0).(*domain.Role)
	return updated, args.Error(1)
}

func (m *mockRoleStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRoleStore) EnsureDefaults(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

type mockTokenCache struct {
	mock.Mock
}

func (m *mockTokenCache) PostCacheData(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockTokenCache) GetCachedValue(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockTokenCache) DelCachedValue(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
