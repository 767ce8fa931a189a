package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
	"github.com/Warsame-Adam/skystream-api/errors"
	application "github.com/Warsame-Adam/skystream-api/service"
)

type AuthHandler struct {
	service *application.AuthService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewAuthHandler(service *application.AuthService, tracer trace.Tracer, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *AuthHandler) Init(router *mux.Router) {
	router.HandleFunc("/api/signup", handler.Signup).Methods("POST")
	router.HandleFunc("/api/signin", handler.Signin).Methods("POST")
	router.HandleFunc("/api/signout", handler.Signout).Methods("POST")
}

type sessionResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (handler *AuthHandler) Signup(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.Signup")
	defer span.End()

	var user domain.User
	if err := json.NewDecoder(req.Body).Decode(&user); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	created, token, err := handler.service.Register(ctx, &user)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	writer.WriteHeader(http.StatusCreated)
	jsonResponse(sessionResponse{User: created, Token: token}, writer)
}

func (handler *AuthHandler) Signin(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.Signin")
	defer span.End()

	var credentials domain.Credentials
	if err := json.NewDecoder(req.Body).Decode(&credentials); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	user, token, err := handler.service.Login(ctx, &credentials)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(sessionResponse{User: user, Token: token}, writer)
}

func (handler *AuthHandler) Signout(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.Signout")
	defer span.End()

	claims, err := bearerClaims(ctx, req, handler.service)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidTokenError, http.StatusUnauthorized)
		return
	}

	if err := handler.service.Logout(ctx, claims.TokenID); err != nil {
		handleServiceError(writer, span, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

// bearerClaims extracts and validates the session claims from the
// Authorization header.
func bearerClaims(ctx context.Context, req *http.Request, service *application.AuthService) (*domain.Claims, error) {
	tokenString, err := bearerToken(req)
	if err != nil {
		return nil, err
	}
	return service.ValidateToken(ctx, tokenString)
}

func bearerToken(req *http.Request) (string, error) {
	bearer := req.Header.Get("Authorization")
	if bearer == "" {
		return "", fmt.Errorf(errors.InvalidTokenError)
	}
	parts := strings.Split(bearer, "Bearer ")
	if len(parts) != 2 {
		return "", fmt.Errorf(errors.InvalidTokenError)
	}
	return parts[1], nil
}
