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

const HOTELS_COLLECTION = "HOTELS"

type HotelMongoDBStore struct {
	hotels *mongo.Collection
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewHotelMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.HotelStore {
	hotels := client.Database(DATABASE).Collection(HOTELS_COLLECTION)
	return &HotelMongoDBStore{
		hotels: hotels,
		tracer: tracer,
		logger: logger,
	}
}

func (store *HotelMongoDBStore) GetAll(ctx context.Context) ([]*domain.Hotel, error) {
	ctx, span := store.tracer.Start(ctx, "HotelStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.M{})
}

func (store *HotelMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Hotel, error) {
	ctx, span := store.tracer.Start(ctx, "HotelStore.Get")
	defer span.End()

	return store.filterOne(ctx, bson.M{"_id": id})
}

// Search runs the plain Find predicate unless a review-rating filter is
// present, which needs the aggregation pipeline.
func (store *HotelMongoDBStore) Search(ctx context.Context, criteria domain.HotelSearchCriteria) ([]*domain.Hotel, error) {
	ctx, span := store.tracer.Start(ctx, "HotelStore.Search")
	defer span.End()

	if criteria.MinRating != nil || criteria.Stars != nil {
		return store.aggregate(ctx, BuildHotelRatingPipeline(criteria, SearchResultLimit))
	}

	opts := options.Find().SetLimit(SearchResultLimit)
	cursor, err := store.hotels.Find(ctx, BuildHotelFilter(criteria), opts)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodeHotels(ctx, cursor)
}

func (store *HotelMongoDBStore) GetByCity(ctx context.Context, cityID primitive.ObjectID) ([]*domain.Hotel, error) {
	ctx, span := store.tracer.Start(ctx, "HotelStore.GetByCity")
	defer span.End()

	return store.filter(ctx, bson.M{"city": cityID})
}

func (store *HotelMongoDBStore) GetByCities(ctx context.Context, cityIDs []primitive.ObjectID) ([]*domain.Hotel, error) {
	ctx, span := store.tracer.Start(ctx, "HotelStore.GetByCities")
	defer span.End()

	if len(cityIDs) == 0 {
		return []*domain.Hotel{}, nil
	}
	return store.filter(ctx, bson.M{"city": bson.M{"$in": cityIDs}})
}

func (store *HotelMongoDBStore) GetScoped(ctx context.Context, scope domain.HotelStatisticsScope) ([]*domain.Hotel, error) {
	ctx, span := store.tracer.Start(ctx, "HotelStore.GetScoped")
	defer span.End()

	filter := bson.M{}
	if scope.CountryCode != "" {
		filter["countryCode"] = bson.M{"$regex": "^" + regexp.QuoteMeta(scope.CountryCode) + "$", "$options": "i"}
	}
	if scope.CityCode != "" {
		filter["cityCode"] = bson.M{"$regex": "^" + regexp.QuoteMeta(scope.CityCode) + "$", "$options": "i"}
	}
	return store.filter(ctx, filter)
}

func (store *HotelMongoDBStore) Insert(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	ctx, span := store.tracer.Start(ctx, "HotelStore.Insert")
	defer span.End()

	hotel.ID = primitive.NewObjectID()
	hotel.CreatedAt = time.Now()
	hotel.UpdatedAt = hotel.CreatedAt
	result, err := store.hotels.InsertOne(ctx, hotel)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	hotel.ID = result.InsertedID.(primitive.ObjectID)
	return hotel, nil
}

func (store *HotelMongoDBStore) Update(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	ctx, span := store.tracer.Start(ctx, "HotelStore.Update")
	defer span.End()

	hotel.UpdatedAt = time.Now()
	result, err := store.hotels.UpdateOne(ctx,
		bson.M{"_id": hotel.ID},
		bson.M{"$set": hotel})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return hotel, nil
}

func (store *HotelMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "HotelStore.Delete")
	defer span.End()

	result, err := store.hotels.DeleteOne(ctx, bson.M{"_id": id})
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

func (store *HotelMongoDBStore) ExistsWithCity(ctx context.Context, cityID primitive.ObjectID) (bool, error) {
	ctx, span := store.tracer.Start(ctx, "HotelStore.ExistsWithCity")
	defer span.End()

	count, err := store.hotels.CountDocuments(ctx, bson.M{"city": cityID}, options.Count().SetLimit(1))
	if err != nil {
		store.logger.Errorln(err)
		return false, err
	}
	return count > 0, nil
}

func (store *HotelMongoDBStore) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Hotel, error) {
	cursor, err := store.hotels.Aggregate(ctx, pipeline)
	if err != nil {
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodeHotels(ctx, cursor)
}

func (store *HotelMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Hotel, error) {
	cursor, err := store.hotels.Find(ctx, filter)
	if err != nil {
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodeHotels(ctx, cursor)
}

func (store *HotelMongoDBStore) filterOne(ctx context.Context, filter interface{}) (hotel *domain.Hotel, err error) {
	result := store.hotels.FindOne(ctx, filter)
	err = result.Decode(&hotel)
	return
}

func decodeHotels(ctx context.Context, cursor *mongo.Cursor) (hotels []*domain.Hotel, err error) {
	for cursor.Next(ctx) {
		var hotel domain.Hotel
		err = cursor.Decode(&hotel)
		if err != nil {
			return
		}
		hotels = append(hotels, &hotel)
	}
	err = cursor.Err()
	return
}
