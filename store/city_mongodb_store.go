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

const CITIES_COLLECTION = "CITIES"

type CityMongoDBStore struct {
	cities *mongo.Collection
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewCityMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.CityStore {
	cities := client.Database(DATABASE).Collection(CITIES_COLLECTION)
	return &CityMongoDBStore{
		cities: cities,
		tracer: tracer,
		logger: logger,
	}
}

func (store *CityMongoDBStore) GetAll(ctx context.Context) ([]*domain.City, error) {
	ctx, span := store.tracer.Start(ctx, "CityStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.M{})
}

func (store *CityMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.City, error) {
	ctx, span := store.tracer.Start(ctx, "CityStore.Get")
	defer span.End()

	return store.filterOne(ctx, bson.M{"_id": id})
}

func (store *CityMongoDBStore) GetFeatured(ctx context.Context) ([]*domain.City, error) {
	ctx, span := store.tracer.Start(ctx, "CityStore.GetFeatured")
	defer span.End()

	return store.filter(ctx, bson.M{"isFeatured": true})
}

func (store *CityMongoDBStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.City, error) {
	ctx, span := store.tracer.Start(ctx, "CityStore.GetByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*domain.City{}, nil
	}
	return store.filter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// FindByCodes matches country and city code case-insensitively. Either code
// may be empty, an empty result is not an error.
func (store *CityMongoDBStore) FindByCodes(ctx context.Context, countryCode, cityCode string) ([]*domain.City, error) {
	ctx, span := store.tracer.Start(ctx, "CityStore.FindByCodes")
	defer span.End()

	filter := bson.M{}
	if countryCode != "" {
		filter["countryCode"] = bson.M{"$regex": regexp.QuoteMeta(countryCode), "$options": "i"}
	}
	if cityCode != "" {
		filter["cityCode"] = bson.M{"$regex": regexp.QuoteMeta(cityCode), "$options": "i"}
	}
	return store.filter(ctx, filter)
}

func (store *CityMongoDBStore) Insert(ctx context.Context, city *domain.City) (*domain.City, error) {
	ctx, span := store.tracer.Start(ctx, "CityStore.Insert")
	defer span.End()

	city.ID = primitive.NewObjectID()
	city.CreatedAt = time.Now()
	city.UpdatedAt = city.CreatedAt
	result, err := store.cities.InsertOne(ctx, city)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	city.ID = result.InsertedID.(primitive.ObjectID)
	return city, nil
}

func (store *CityMongoDBStore) Update(ctx context.Context, city *domain.City) (*domain.City, error) {
	ctx, span := store.tracer.Start(ctx, "CityStore.Update")
	defer span.End()

	city.UpdatedAt = time.Now()
	result, err := store.cities.UpdateOne(ctx, bson.M{"_id": city.ID}, bson.M{"$set": city})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return city, nil
}

func (store *CityMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "CityStore.Delete")
	defer span.End()

	result, err := store.cities.DeleteOne(ctx, bson.M{"_id": id})
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

func (store *CityMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.City, error) {
	cursor, err := store.cities.Find(ctx, filter)
	if err != nil {
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodeCities(ctx, cursor)
}

func (store *CityMongoDBStore) filterOne(ctx context.Context, filter interface{}) (city *domain.City, err error) {
	result := store.cities.FindOne(ctx, filter)
	err = result.Decode(&city)
	return
}

func decodeCities(ctx context.Context, cursor *mongo.Cursor) (cities []*domain.City, err error) {
	for cursor.Next(ctx) {
		var city domain.City
		err = cursor.Decode(&city)
		if err != nil {
			return
		}
		cities = append(cities, &city)
	}
	err = cursor.Err()
	return
}
