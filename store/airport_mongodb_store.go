package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

const AIRPORTS_COLLECTION = "AIRPORTS"

type AirportMongoDBStore struct {
	airports *mongo.Collection
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewAirportMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.AirportStore {
	airports := client.Database(DATABASE).Collection(AIRPORTS_COLLECTION)
	return &AirportMongoDBStore{
		airports: airports,
		tracer:   tracer,
		logger:   logger,
	}
}

func (store *AirportMongoDBStore) GetAll(ctx context.Context) ([]*domain.Airport, error) {
	ctx, span := store.tracer.Start(ctx, "AirportStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.M{})
}

func (store *AirportMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Airport, error) {
	ctx, span := store.tracer.Start(ctx, "AirportStore.Get")
	defer span.End()

	return store.filterOne(ctx, bson.M{"_id": id})
}

func (store *AirportMongoDBStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Airport, error) {
	ctx, span := store.tracer.Start(ctx, "AirportStore.GetByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*domain.Airport{}, nil
	}
	return store.filter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (store *AirportMongoDBStore) Insert(ctx context.Context, airport *domain.Airport) (*domain.Airport, error) {
	ctx, span := store.tracer.Start(ctx, "AirportStore.Insert")
	defer span.End()

	airport.ID = primitive.NewObjectID()
	airport.CreatedAt = time.Now()
	airport.UpdatedAt = airport.CreatedAt
	result, err := store.airports.InsertOne(ctx, airport)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	airport.ID = result.InsertedID.(primitive.ObjectID)
	return airport, nil
}

func (store *AirportMongoDBStore) Update(ctx context.Context, airport *domain.Airport) (*domain.Airport, error) {
	ctx, span := store.tracer.Start(ctx, "AirportStore.Update")
	defer span.End()

	airport.UpdatedAt = time.Now()
	result, err := store.airports.UpdateOne(ctx, bson.M{"_id": airport.ID}, bson.M{"$set": airport})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return airport, nil
}

func (store *AirportMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "AirportStore.Delete")
	defer span.End()

	result, err := store.airports.DeleteOne(ctx, bson.M{"_id": id})
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

func (store *AirportMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Airport, error) {
	cursor, err := store.airports.Find(ctx, filter)
	if err != nil {
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var airports []*domain.Airport
	for cursor.Next(ctx) {
		var airport domain.Airport
		if err := cursor.Decode(&airport); err != nil {
			return nil, err
		}
		airports = append(airports, &airport)
	}
	return airports, cursor.Err()
}

func (store *AirportMongoDBStore) filterOne(ctx context.Context, filter interface{}) (airport *domain.Airport, err error) {
	result := store.airports.FindOne(ctx, filter)
	err = result.Decode(&airport)
	return
}
