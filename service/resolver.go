package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

// ReferenceResolver turns the human-readable search inputs (city codes,
// airline names, fare class labels) into the object ids the predicates
// filter on. Resolving to nothing is a valid outcome, never an error, the
// caller turns an empty set into a match-nothing predicate.
type ReferenceResolver struct {
	cities     domain.CityStore
	airlines   domain.AirlineStore
	classTypes domain.ClassTypeStore
	tracer     trace.Tracer
}

func NewReferenceResolver(cities domain.CityStore, airlines domain.AirlineStore, classTypes domain.ClassTypeStore, tracer trace.Tracer) *ReferenceResolver {
	return &ReferenceResolver{
		cities:     cities,
		airlines:   airlines,
		classTypes: classTypes,
		tracer:     tracer,
	}
}

// ResolveCities returns the ids of every city matching the given codes
// case-insensitively. The result is always non-nil so the caller can tell
// "resolved to nothing" apart from "not requested".
func (r *ReferenceResolver) ResolveCities(ctx context.Context, countryCode, cityCode string) ([]primitive.ObjectID, error) {
	ctx, span := r.tracer.Start(ctx, "ReferenceResolver.ResolveCities")
	defer span.End()

	cities, err := r.cities.FindByCodes(ctx, countryCode, cityCode)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(cities))
	for _, city := range cities {
		ids = append(ids, city.ID)
	}
	return ids, nil
}

func (r *ReferenceResolver) ResolveAirlines(ctx context.Context, names []string) ([]primitive.ObjectID, error) {
	ctx, span := r.tracer.Start(ctx, "ReferenceResolver.ResolveAirlines")
	defer span.End()

	airlines, err := r.airlines.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(airlines))
	for _, airline := range airlines {
		ids = append(ids, airline.ID)
	}
	return ids, nil
}

// ResolveClassType matches the label exactly. A label no class type carries
// resolves to nil without error.
func (r *ReferenceResolver) ResolveClassType(ctx context.Context, label string) (*domain.ClassType, error) {
	ctx, span := r.tracer.Start(ctx, "ReferenceResolver.ResolveClassType")
	defer span.End()

	classType, err := r.classTypes.FindByLabel(ctx, label)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return classType, nil
}
