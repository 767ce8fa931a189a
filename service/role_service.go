package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

type RoleService struct {
	roles  domain.RoleStore
	users  domain.UserStore
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewRoleService(roles domain.RoleStore, users domain.UserStore, tracer trace.Tracer, logger *logrus.Logger) *RoleService {
	return &RoleService{
		roles:  roles,
		users:  users,
		tracer: tracer,
		logger: logger,
	}
}

func (service *RoleService) GetAll(ctx context.Context) ([]*domain.Role, error) {
	return service.roles.GetAll(ctx)
}

func (service *RoleService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Role, error) {
	return service.roles.Get(ctx, id)
}

func (service *RoleService) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	if role.Name == "" {
		return nil, &ValidationError{Message: "role name can not be empty"}
	}
	return service.roles.Insert(ctx, role)
}

func (service *RoleService) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	if role.Name == "" {
		return nil, &ValidationError{Message: "role name can not be empty"}
	}
	return service.roles.Update(ctx, role)
}

// Delete refuses while any user still holds the role.
func (service *RoleService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := service.tracer.Start(ctx, "RoleService.Delete")
	defer span.End()

	inUse, err := service.users.ExistsWithRole(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrInUse
	}
	return service.roles.Delete(ctx, id)
}

// EnsureDefaultRoles seeds the built-in roles at startup. A failure is
// reported to the caller, it never aborts the process.
func (service *RoleService) EnsureDefaultRoles(ctx context.Context) error {
	err := service.roles.EnsureDefaults(ctx, domain.DefaultRoles)
	if err != nil {
		service.logger.Errorf("seeding roles failed: %s", err)
	}
	return err
}
