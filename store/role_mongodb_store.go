package store

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

const ROLES_COLLECTION = "ROLES"

type RoleMongoDBStore struct {
	roles  *mongo.Collection
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewRoleMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.RoleStore {
	roles := client.Database(DATABASE).Collection(ROLES_COLLECTION)
	return &RoleMongoDBStore{
		roles:  roles,
		tracer: tracer,
		logger: logger,
	}
}

func (store *RoleMongoDBStore) GetAll(ctx context.Context) ([]*domain.Role, error) {
	ctx, span := store.tracer.Start(ctx, "RoleStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.M{})
}

func (store *RoleMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Role, error) {
	ctx, span := store.tracer.Start(ctx, "RoleStore.Get")
	defer span.End()

	return store.filterOne(ctx, bson.M{"_id": id})
}

func (store *RoleMongoDBStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	ctx, span := store.tracer.Start(ctx, "RoleStore.GetByName")
	defer span.End()

	return store.filterOne(ctx, bson.M{"name": name})
}

func (store *RoleMongoDBStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Role, error) {
	ctx, span := store.tracer.Start(ctx, "RoleStore.GetByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*domain.Role{}, nil
	}
	return store.filter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (store *RoleMongoDBStore) Insert(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	ctx, span := store.tracer.Start(ctx, "RoleStore.Insert")
	defer span.End()

	role.ID = primitive.NewObjectID()
	result, err := store.roles.InsertOne(ctx, role)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	role.ID = result.InsertedID.(primitive.ObjectID)
	return role, nil
}

func (store *RoleMongoDBStore) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	ctx, span := store.tracer.Start(ctx, "RoleStore.Update")
	defer span.End()

	result, err := store.roles.UpdateOne(ctx,
		bson.M{"_id": role.ID},
		bson.M{"$set": role})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		store.logger.Errorln(err)
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return role, nil
}

func (store *RoleMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "RoleStore.Delete")
	defer span.End()

	result, err := store.roles.DeleteOne(ctx, bson.M{"_id": id})
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

// EnsureDefaults inserts any missing default role by name, roles already
// present keep their ids so existing user references stay valid.
func (store *RoleMongoDBStore) EnsureDefaults(ctx context.Context, names []string) error {
	ctx, span := store.tracer.Start(ctx, "RoleStore.EnsureDefaults")
	defer span.End()

	for _, name := range names {
		count, err := store.roles.CountDocuments(ctx, bson.M{"name": name})
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		if count > 0 {
			continue
		}
		_, err = store.roles.InsertOne(ctx, &domain.Role{
			ID:   primitive.NewObjectID(),
			Name: name,
		})
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			store.logger.Errorln(err)
			return err
		}
	}
	return nil
}

func (store *RoleMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Role, error) {
	cursor, err := store.roles.Find(ctx, filter)
	if err != nil {
		store.logger.Errorln(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var roles []*domain.Role
	for cursor.Next(ctx) {
		var role domain.Role
		if err := cursor.Decode(&role); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, cursor.Err()
}

func (store *RoleMongoDBStore) filterOne(ctx context.Context, filter interface{}) (role *domain.Role, err error) {
	result := store.roles.FindOne(ctx, filter)
	err = result.Decode(&role)
	return
}
