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

const CLASSTYPES_COLLECTION = "FLIGHTCLASSTYPES"

type ClassTypeMongoDBStore struct {
	classTypes *mongo.Collection
	tracer     trace.Tracer
	logger     *logrus.Logger
}

func NewClassTypeMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.ClassTypeStore {
	classTypes := client.Database(DATABASE).Collection(CLASSTYPES_COLLECTION)
	return &ClassTypeMongoDBStore{
		classTypes: classTypes,
		tracer:     tracer,
		logger:     logger,
	}
}

func (store *ClassTypeMongoDBStore) GetAll(ctx context.Context) ([]*domain.ClassType, error) {
	ctx, span := store.tracer.Start(ctx, "ClassTypeStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.M{})
}

func (store *ClassTypeMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.ClassType, error) {
	ctx, span := store.tracer.Start(ctx, "ClassTypeStore.Get")
	defer span.End()

	return store.filterOne(ctx, bson.M{"_id": id})
}

func (store *ClassTypeMongoDBStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.ClassType, error) {
	ctx, span := store.tracer.Start(ctx, "ClassTypeStore.GetByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*domain.ClassType{}, nil
	}
	return store.filter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// FindByLabel matches the fare class label exactly.
func (store *ClassTypeMongoDBStore) FindByLabel(ctx context.Context, label string) (*domain.ClassType, error) {
	ctx, span := store.tracer.Start(ctx, "ClassTypeStore.FindByLabel")
	defer span.End()

	return store.filterOne(ctx, bson.M{"type": label})
}

func (store *ClassTypeMongoDBStore) Insert(ctx context.Context, classType *domain.ClassType) (*domain.ClassType, error) {
	ctx, span := store.tracer.Start(ctx, "ClassTypeStore.Insert")
	defer span.End()

	classType.ID = primitive.NewObjectID()
	classType.CreatedAt = time.Now()
	classType.UpdatedAt = classType.CreatedAt
	result, err := store.classTypes.InsertOne(ctx, classType)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	classType.ID = result.InsertedID.(primitive.ObjectID)
	return classType, nil
}

func (store *ClassTypeMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "ClassTypeStore.Delete")
	defer span.End()

	result, err := store.classTypes.DeleteOne(ctx, bson.M{"_id": id})
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

// EnsureDefaults seeds the fare class labels once, an already populated
// collection is left untouched.
func (store *ClassTypeMongoDBStore) EnsureDefaults(ctx context.Context, labels []string) error {
	ctx, span := store.tracer.Start(ctx, "ClassTypeStore.EnsureDefaults")
	defer span.End()

	count, err := store.classTypes.CountDocuments(ctx, bson.M{})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(labels))
	now := time.Now()
	for _, label := range labels {
		docs = append(docs, &domain.ClassType{
			ID:        primitive.NewObjectID(),
			Type:      label,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	_, err = store.classTypes.InsertMany(ctx, docs)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
	}
	return err
}

func (store *ClassTypeMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.ClassType, error) {
	cursor, err := store.classTypes.Find(ctx, filter)
	if err != nil {
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var classTypes []*domain.ClassType
	for cursor.Next(ctx) {
		var classType domain.ClassType
		if err := cursor.Decode(&classType); err != nil {
			return nil, err
		}
		classTypes = append(classTypes, &classType)
	}
	return classTypes, cursor.Err()
}

func (store *ClassTypeMongoDBStore) filterOne(ctx context.Context, filter interface{}) (classType *domain.ClassType, err error) {
	result := store.classTypes.FindOne(ctx, filter)
	err = result.Decode(&classType)
	return
}
