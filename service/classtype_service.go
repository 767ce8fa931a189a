package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

type ClassTypeService struct {
	classTypes domain.ClassTypeStore
	flights    domain.FlightStore
	tracer     trace.Tracer
	logger     *logrus.Logger
}

func NewClassTypeService(classTypes domain.ClassTypeStore, flights domain.FlightStore, tracer trace.Tracer, logger *logrus.Logger) *ClassTypeService {
	return &ClassTypeService{
		classTypes: classTypes,
		flights:    flights,
		tracer:     tracer,
		logger:     logger,
	}
}

func (service *ClassTypeService) GetAll(ctx context.Context) ([]*domain.ClassType, error) {
	return service.classTypes.GetAll(ctx)
}

func (service *ClassTypeService) Get(ctx context.Context, id primitive.ObjectID) (*domain.ClassType, error) {
	return service.classTypes.Get(ctx, id)
}

func (service *ClassTypeService) Create(ctx context.Context, classType *domain.ClassType) (*domain.ClassType, error) {
	if err := classType.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return service.classTypes.Insert(ctx, classType)
}

// Delete refuses while any flight still sells the class.
func (service *ClassTypeService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := service.tracer.Start(ctx, "ClassTypeService.Delete")
	defer span.End()

	inUse, err := service.flights.ExistsWithClassType(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrInUse
	}
	return service.classTypes.Delete(ctx, id)
}

// EnsureDefaultClassTypes seeds the fare class labels at startup. A failure
// is reported to the caller, it never aborts the process.
func (service *ClassTypeService) EnsureDefaultClassTypes(ctx context.Context) error {
	err := service.classTypes.EnsureDefaults(ctx, domain.DefaultClassTypes)
	if err != nil {
		service.logger.Errorf("seeding class types failed: %s", err)
	}
	return err
}
