package handlers

import (
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"

	application "github.com/Warsame-Adam/skystream-api/service"
)

func registeredMethods(t *testing.T, router *mux.Router) map[string][]string {
	t.Helper()
	routes := make(map[string][]string)
	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		template, err := route.GetPathTemplate()
		if err != nil {
			return err
		}
		methods, err := route.GetMethods()
		if err != nil {
			return err
		}
		routes[template] = append(routes[template], methods...)
		return nil
	})
	assert.NoError(t, err)
	return routes
}

func TestRoleRoutesCoverFullCRUD(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("")
	logger := logrus.New()
	router := mux.NewRouter()

	NewRoleHandler(application.NewRoleService(nil, nil, tracer, logger), tracer, logger).Init(router)

	routes := registeredMethods(t, router)
	assert.ElementsMatch(t, []string{"GET", "POST"}, routes["/api/roles"])
	assert.ElementsMatch(t, []string{"GET", "PATCH", "DELETE"}, routes["/api/roles/{id}"])
}

func TestUserRoutesIncludeListing(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("")
	logger := logrus.New()
	router := mux.NewRouter()

	service := application.NewUserService(nil, nil, tracer, logger)
	auth := application.NewAuthService(nil, nil, nil, tracer, logger)
	NewUserHandler(service, auth, tracer, logger).Init(router)

	routes := registeredMethods(t, router)
	assert.Contains(t, routes["/api/users"], "GET")
	assert.Contains(t, routes["/api/users/profile"], "GET")
	assert.Contains(t, routes["/api/users/{id}"], "GET")
}
