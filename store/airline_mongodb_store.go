package store

import (
	"context"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

const AIRLINES_COLLECTION = "AIRLINES"

type AirlineMongoDBStore struct {
	airlines *mongo.Collection
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewAirlineMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.AirlineStore {
	airlines := client.Database(DATABASE).Collection(AIRLINES_COLLECTION)
	return &AirlineMongoDBStore{
		airlines: airlines,
		tracer:   tracer,
		logger:   logger,
	}
}

func (store *AirlineMongoDBStore) GetAll(ctx context.Context) ([]*domain.Airline, error) {
	ctx, span := store.tracer.Start(ctx, "AirlineStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.M{})
}

func (store *AirlineMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error) {
	ctx, span := store.tracer.Start(ctx, "AirlineStore.Get")
	defer span.End()

	return store.filterOne(ctx, bson.M{"_id": id})
}

// FindByNames matches airline names case-insensitively and anchored, so
// "klm" finds "KLM" but not "KLM Cityhopper".
func (store *AirlineMongoDBStore) FindByNames(ctx context.Context, names []string) ([]*domain.Airline, error) {
	ctx, span := store.tracer.Start(ctx, "AirlineStore.FindByNames")
	defer span.End()

	if len(names) == 0 {
		return []*domain.Airline{}, nil
	}
	patterns := make([]bson.M, 0, len(names))
	for _, name := range names {
		patterns = append(patterns, bson.M{"name": bson.M{
			"$regex":   "^" + regexp.QuoteMeta(name) + "$",
			"$options": "i",
		}})
	}
	return store.filter(ctx, bson.M{"$or": patterns})
}

func (store *AirlineMongoDBStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Airline, error) {
	ctx, span := store.tracer.Start(ctx, "AirlineStore.GetByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*domain.Airline{}, nil
	}
	return store.filter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (store *AirlineMongoDBStore) Insert(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	ctx, span := store.tracer.Start(ctx, "AirlineStore.Insert")
	defer span.End()

	airline.ID = primitive.NewObjectID()
	airline.CreatedAt = time.Now()
	airline.UpdatedAt = airline.CreatedAt
	result, err := store.airlines.InsertOne(ctx, airline)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	airline.ID = result.InsertedID.(primitive.ObjectID)
	return airline, nil
}

func (store *AirlineMongoDBStore) Update(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	ctx, span := store.tracer.Start(ctx, "AirlineStore.Update")
	defer span.End()

	airline.UpdatedAt = time.Now()
	result, err := store.airlines.UpdateOne(ctx, bson.M{"_id": airline.ID}, bson.M{"$set": airline})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return airline, nil
}

func (store *AirlineMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "AirlineStore.Delete")
	defer span.End()

	result, err := store.airlines.DeleteOne(ctx, bson.M{"_id": id})
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

func (store *AirlineMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Airline, error) {
	cursor, err := store.airlines.Find(ctx, filter)
	if err != nil {
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var airlines []*domain.Airline
	for cursor.Next(ctx) {
		var airline domain.Airline
		if err := cursor.Decode(&airline); err != nil {
			return nil, err
		}
		airlines = append(airlines, &airline)
	}
	return airlines, cursor.Err()
}

func (store *AirlineMongoDBStore) filterOne(ctx context.Context, filter interface{}) (airline *domain.Airline, err error) {
	result := store.airlines.FindOne(ctx, filter)
	err = result.Decode(&airline)
	return
}
