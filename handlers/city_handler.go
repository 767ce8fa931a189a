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

type CityHandler struct {
	service *application.CityService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewCityHandler(service *application.CityService, tracer trace.Tracer, logger *logrus.Logger) *CityHandler {
	return &CityHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *CityHandler) Init(router *mux.Router) {
	router.HandleFunc("/api/cities/featured", handler.GetFeatured).Methods("GET")
	router.HandleFunc("/api/cities", handler.GetAll).Methods("GET")
	router.HandleFunc("/api/cities", handler.Create).Methods("POST")
	router.HandleFunc("/api/cities/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/api/cities/{id}", handler.Update).Methods("PATCH")
	router.HandleFunc("/api/cities/{id}", handler.Delete).Methods("DELETE")
}

func (handler *CityHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CityHandler.GetAll")
	defer span.End()

	cities, err := handler.service.GetAll(ctx)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	if cities == nil {
		cities = []*domain.City{}
	}
	jsonResponse(cities, writer)
}

func (handler *CityHandler) GetFeatured(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CityHandler.GetFeatured")
	defer span.End()

	cities, err := handler.service.GetFeatured(ctx)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	if cities == nil {
		cities = []*domain.City{}
	}
	jsonResponse(cities, writer)
}

func (handler *CityHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CityHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	city, err := handler.service.Get(ctx, id)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(city, writer)
}

func (handler *CityHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CityHandler.Create")
	defer span.End()

	var city domain.City
	if err := json.NewDecoder(req.Body).Decode(&city); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}
	saved, err := handler.service.Create(ctx, &city)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	writer.WriteHeader(http.StatusCreated)
	jsonResponse(saved, writer)
}

func (handler *CityHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CityHandler.Update")
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

func (handler *CityHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CityHandler.Delete")
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
