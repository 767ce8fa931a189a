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

type AirportHandler struct {
	service *application.AirportService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewAirportHandler(service *application.AirportService, tracer trace.Tracer, logger *logrus.Logger) *AirportHandler {
	return &AirportHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *AirportHandler) Init(router *mux.Router) {
	router.HandleFunc("/api/airports", handler.GetAll).Methods("GET")
	router.HandleFunc("/api/airports", handler.Create).Methods("POST")
	router.HandleFunc("/api/airports/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/api/airports/{id}", handler.Update).Methods("PATCH")
	router.HandleFunc("/api/airports/{id}", handler.Delete).Methods("DELETE")
}

func (handler *AirportHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirportHandler.GetAll")
	defer span.End()

	airports, err := handler.service.GetAll(ctx)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	if airports == nil {
		airports = []*domain.Airport{}
	}
	jsonResponse(airports, writer)
}

func (handler *AirportHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirportHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	airport, err := handler.service.Get(ctx, id)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(airport, writer)
}

func (handler *AirportHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirportHandler.Create")
	defer span.End()

	var airport domain.Airport
	if err := json.NewDecoder(req.Body).Decode(&airport); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}
	saved, err := handler.service.Create(ctx, &airport)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	writer.WriteHeader(http.StatusCreated)
	jsonResponse(saved, writer)
}

func (handler *AirportHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirportHandler.Update")
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

func (handler *AirportHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AirportHandler.Delete")
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
