package store

import (
	"context"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

const FLIGHTS_COLLECTION = "FLIGHTS"

// SearchResultLimit caps the number of documents any single search returns.
const SearchResultLimit = 200

type FlightMongoDBStore struct {
	flights *mongo.Collection
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewFlightMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.FlightStore {
	flights := client.Database(DATABASE).Collection(FLIGHTS_COLLECTION)
	return &FlightMongoDBStore{
		flights: flights,
		tracer:  tracer,
		logger:  logger,
	}
}

func (store *FlightMongoDBStore) GetAll(ctx context.Context) ([]*domain.Flight, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.M{})
}

func (store *FlightMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.Get")
	defer span.End()

	return store.filterOne(ctx, bson.M{"_id": id})
}

func (store *FlightMongoDBStore) Search(ctx context.Context, f domain.FlightFilter) ([]*domain.Flight, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.Search")
	defer span.End()

	filter := BuildFlightFilter(f, time.Now())
	opts := options.Find().SetLimit(SearchResultLimit)
	cursor, err := store.flights.Find(ctx, filter, opts)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodeFlights(ctx, cursor)
}

func (store *FlightMongoDBStore) Insert(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.Insert")
	defer span.End()

	flight.ID = primitive.NewObjectID()
	flight.CreatedAt = time.Now()
	flight.UpdatedAt = flight.CreatedAt
	result, err := store.flights.InsertOne(ctx, flight)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	flight.ID = result.InsertedID.(primitive.ObjectID)
	return flight, nil
}

func (store *FlightMongoDBStore) Update(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.Update")
	defer span.End()

	flight.UpdatedAt = time.Now()
	result, err := store.flights.UpdateOne(ctx,
		bson.M{"_id": flight.ID},
		bson.M{"$set": flight})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return flight, nil
}

func (store *FlightMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "FlightStore.Delete")
	defer span.End()

	result, err := store.flights.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ExistsWithFlightNumber matches the number exactly, ignoring case.
func (store *FlightMongoDBStore) ExistsWithFlightNumber(ctx context.Context, flightNumber string) (bool, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.ExistsWithFlightNumber")
	defer span.End()

	return store.exists(ctx, bson.M{"flightNumber": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(flightNumber) + "$",
		"$options": "i",
	}})
}

// ExistsWithCity reports whether any flight still references the city as a
// departure, arrival or stopover point.
func (store *FlightMongoDBStore) ExistsWithCity(ctx context.Context, cityID primitive.ObjectID) (bool, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.ExistsWithCity")
	defer span.End()

	return store.exists(ctx, bson.M{"$or": bson.A{
		bson.M{"location.departureCity": cityID},
		bson.M{"location.arrivalCity": cityID},
		bson.M{"location.outboundStops.stopAtCity": cityID},
		bson.M{"location.returnStops.stopAtCity": cityID},
	}})
}

func (store *FlightMongoDBStore) ExistsWithAirport(ctx context.Context, airportID primitive.ObjectID) (bool, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.ExistsWithAirport")
	defer span.End()

	return store.exists(ctx, bson.M{"$or": bson.A{
		bson.M{"location.departureAirport": airportID},
		bson.M{"location.arrivalAirport": airportID},
		bson.M{"location.outboundStops.stopAtAirport": airportID},
		bson.M{"location.returnStops.stopAtAirport": airportID},
	}})
}

func (store *FlightMongoDBStore) ExistsWithAirline(ctx context.Context, airlineID primitive.ObjectID) (bool, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.ExistsWithAirline")
	defer span.End()

	return store.exists(ctx, bson.M{"$or": bson.A{
		bson.M{"outboundAirline": airlineID},
		bson.M{"returnAirline": airlineID},
	}})
}

func (store *FlightMongoDBStore) ExistsWithClassType(ctx context.Context, classTypeID primitive.ObjectID) (bool, error) {
	ctx, span := store.tracer.Start(ctx, "FlightStore.ExistsWithClassType")
	defer span.End()

	return store.exists(ctx, bson.M{"classes.classType": classTypeID})
}

func (store *FlightMongoDBStore) exists(ctx context.Context, filter bson.M) (bool, error) {
	count, err := store.flights.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		store.logger.Errorln(err)
		return false, err
	}
	return count > 0, nil
}

func (store *FlightMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Flight, error) {
	cursor, err := store.flights.Find(ctx, filter)
	if err != nil {
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodeFlights(ctx, cursor)
}

func (store *FlightMongoDBStore) filterOne(ctx context.Context, filter interface{}) (flight *domain.Flight, err error) {
	result := store.flights.FindOne(ctx, filter)
	err = result.Decode(&flight)
	return
}

func decodeFlights(ctx context.Context, cursor *mongo.Cursor) (flights []*domain.Flight, err error) {
	for cursor.Next(ctx) {
		var flight domain.Flight
		err = cursor.Decode(&flight)
		if err != nil {
			return
		}
		flights = append(flights, &flight)
	}
	err = cursor.Err()
	return
}
