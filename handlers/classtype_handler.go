package handlers

import (
	"encoding/json"
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

type ClassTypeHandler struct {
	service *application.ClassTypeService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewClassTypeHandler(service *application.ClassTypeService, tracer trace.Tracer, logger *logrus.Logger) *ClassTypeHandler {
	return &ClassTypeHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *ClassTypeHandler) Init(router *mux.Router) {
	router.HandleFunc("/api/classTypes", handler.GetAll).Methods("GET")
	router.HandleFunc("/api/classTypes", handler.Create).Methods("POST")
	router.HandleFunc("/api/classTypes/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/api/classTypes/{id}", handler.Delete).Methods("DELETE")
}

func (handler *ClassTypeHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "ClassTypeHandler.GetAll")
	defer span.End()

	classTypes, err := handler.service.GetAll(ctx)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	if classTypes == nil {
		classTypes = []*domain.ClassType{}
	}
	jsonResponse(classTypes, writer)
}

func (handler *ClassTypeHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "ClassTypeHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	classType, err := handler.service.Get(ctx, id)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(classType, writer)
}

func (handler *ClassTypeHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "ClassTypeHandler.Create")
	defer span.End()

	var classType domain.ClassType
	if err := json.NewDecoder(req.Body).Decode(&classType); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}
	saved, err := handler.service.Create(ctx, &classType)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	writer.WriteHeader(http.StatusCreated)
	jsonResponse(saved, writer)
}

func (handler *ClassTypeHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "ClassTypeHandler.Delete")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	if err := handler.service.Delete(ctx, id); err != nil {
		handleServiceError(writer, span, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}
