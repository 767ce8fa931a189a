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

type AirlineHandler struct {
	service *application.AirlineService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewAirlineHandler(service *application.AirlineService, tracer trace.Tracer, logger *logrus.Logger) *AirlineHandler {
	return &AirlineHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *AirlineHandler) Init(router *mux.Router) {
	router.HandleFunc("/api/airlines", handler.GetAll).Methods("GET")
	router.HandleFunc("/api/airlines", handler.Create).Methods("POST")
	router.HandleFunc("/api/airlines/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/api/airlines/{id}", handler.Update).Methods("PATCH")
	router.HandleFunc("/api/airlines/{id}", handler.Delete).Methods("DELETE")
}

func (handler *AirlineHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirlineHandler.GetAll")
	defer span.End()

	airlines, err := handler.service.GetAll(ctx)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	if airlines == nil {
		airlines = []*domain.Airline{}
	}
	jsonResponse(airlines, writer)
}

func (handler *AirlineHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirlineHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	airline, err := handler.service.Get(ctx, id)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(airline, writer)
}

func (handler *AirlineHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirlineHandler.Create")
	defer span.End()

	var airline domain.Airline
	if err := json.NewDecoder(req.Body).Decode(&airline); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}
	saved, err := handler.service.Create(ctx, &airline)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	writer.WriteHeader(http.StatusCreated)
	jsonResponse(saved, writer)
}

func (handler *AirlineHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirlineHandler.Update")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	existing, err := handler.service.Get(ctx, id)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}

	var patch map[string]interface{}
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}
	delete(patch, "id")
	delete(patch, "_id")

	if err := decodePatch(patch, existing); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	updated, err := handler.service.Update(ctx, existing)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(updated, writer)
}

func (handler *AirlineHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirlineHandler.Delete")
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
