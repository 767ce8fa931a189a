package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
	"github.com/Warsame-Adam/skystream-api/errors"
	application "github.com/Warsame-Adam/skystream-api/service"
)

type UserHandler struct {
	service *application.UserService
	auth    *application.AuthService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewUserHandler(service *application.UserService, auth *application.AuthService, tracer trace.Tracer, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		auth:    auth,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *UserHandler) Init(router *mux.Router) {
	router.HandleFunc("/api/users", handler.GetAll).Methods("GET")
	router.HandleFunc("/api/users/profile", handler.Profile).Methods("GET")
	router.HandleFunc("/api/users/favorites/{flightId}", handler.ToggleFavorite).Methods("POST")
	router.HandleFunc("/api/users/{id}", handler.Get).Methods("GET")
}

func (handler *UserHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GetAll")
	defer span.End()

	users, err := handler.service.GetAll(ctx)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	jsonResponse(users, writer)
}

func (handler *UserHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	user, err := handler.service.Get(ctx, id)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(user, writer)
}

// Profile answers with the authenticated user, the id comes from the token,
// never from the request.
func (handler *UserHandler) Profile(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.Profile")
	defer span.End()

	claims, err := bearerClaims(ctx, req, handler.auth)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidTokenError, http.StatusUnauthorized)
		return
	}

	user, err := handler.service.Get(ctx, claims.UserID)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(user, writer)
}

func (handler *UserHandler) ToggleFavorite(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.ToggleFavorite")
	defer span.End()

	claims, err := bearerClaims(ctx, req, handler.auth)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidTokenError, http.StatusUnauthorized)
		return
	}

	flightID, err := primitive.ObjectIDFromHex(mux.Vars(req)["flightId"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}

	favorites, err := handler.service.ToggleFavorite(ctx, claims.UserID, flightID)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(favorites, writer)
}
