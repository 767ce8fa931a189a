package handlers

import (
	"encoding/json"
	"fmt"
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

type HotelHandler struct {
	service *application.HotelService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewHotelHandler(service *application.HotelService, tracer trace.Tracer, logger *logrus.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *HotelHandler) Init(router *mux.Router) {
	router.HandleFunc("/api/hotels/search", handler.Search).Methods("GET")
	router.HandleFunc("/api/hotels/featured", handler.Featured).Methods("GET")
	router.HandleFunc("/api/hotels/statistics", handler.Statistics).Methods("GET")
	router.HandleFunc("/api/hotels", handler.GetAll).Methods("GET")
	router.HandleFunc("/api/hotels", handler.Create).Methods("POST")
	router.HandleFunc("/api/hotels/{id}/related", handler.Related).Methods("GET")
	router.HandleFunc("/api/hotels/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/api/hotels/{id}", handler.Update).Methods("PATCH")
	router.HandleFunc("/api/hotels/{id}", handler.Delete).Methods("DELETE")
}

func (handler *HotelHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "HotelHandler.GetAll")
	defer span.End()

	hotels, err := handler.service.GetAll(ctx)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	if hotels == nil {
		hotels = []*domain.Hotel{}
	}
	jsonResponse(hotels, writer)
}

func (handler *HotelHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "HotelHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(hotel, writer)
}

func (handler *HotelHandler) Search(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "HotelHandler.Search")
	defer span.End()

	criteria, err := parseHotelCriteria(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	hotels, err := handler.service.Search(ctx, *criteria)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(hotels, writer)
}

func parseHotelCriteria(req *http.Request) (*domain.HotelSearchCriteria, error) {
	query := req.URL.Query()
	criteria := &domain.HotelSearchCriteria{
		Name:        query.Get("name"),
		CountryCode: query.Get("countryCode"),
		CityCode:    query.Get("cityCode"),
	}

	var err error
	if criteria.Latitude, err = parseFloatParam("latitude", query.Get("latitude")); err != nil {
		return nil, err
	}
	if criteria.Longitude, err = parseFloatParam("longitude", query.Get("longitude")); err != nil {
		return nil, err
	}
	if (criteria.Latitude == nil) != (criteria.Longitude == nil) {
		return nil, fmt.Errorf("latitude and longitude must be supplied together")
	}
	radius, err := parseFloatParam("radius", query.Get("radius"))
	if err != nil {
		return nil, err
	}
	if radius != nil {
		criteria.RadiusMeters = *radius
	}

	for _, key := range domain.AmenityKeys {
		flag, err := parseBoolParam(key, query.Get(key))
		if err != nil {
			return nil, err
		}
		if flag != nil && *flag {
			criteria.Amenities = append(criteria.Amenities, key)
		}
	}

	if criteria.NoOfRooms, err = parseIntParam("noOfRooms", query.Get("noOfRooms")); err != nil {
		return nil, err
	}
	if criteria.NoOfPersons, err = parseIntParam("noOfPersons", query.Get("noOfPersons")); err != nil {
		return nil, err
	}
	if criteria.FreeCancellation, err = parseBoolParam("freeCancellation", query.Get("freeCancellation")); err != nil {
		return nil, err
	}
	if criteria.BreakfastIncluded, err = parseBoolParam("breakfastIncluded", query.Get("breakfastIncluded")); err != nil {
		return nil, err
	}
	if criteria.AvailableFrom, err = parseDateParam("availableFrom", query.Get("availableFrom")); err != nil {
		return nil, err
	}
	if criteria.AvailableTo, err = parseDateParam("availableTo", query.Get("availableTo")); err != nil {
		return nil, err
	}
	if criteria.MinRating, err = parseFloatParam("minRating", query.Get("minRating")); err != nil {
		return nil, err
	}
	if criteria.Stars, err = parseIntParam("stars", query.Get("stars")); err != nil {
		return nil, err
	}
	return criteria, nil
}

func (handler *HotelHandler) Featured(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "HotelHandler.Featured")
	defer span.End()

	featured, err := handler.service.Featured(ctx)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(featured, writer)
}

func (handler *HotelHandler) Statistics(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "HotelHandler.Statistics")
	defer span.End()

	query := req.URL.Query()
	scope := domain.HotelStatisticsScope{
		CountryCode: query.Get("countryCode"),
		CityCode:    query.Get("cityCode"),
	}
	stats, err := handler.service.Statistics(ctx, scope)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(stats, writer)
}

func (handler *HotelHandler) Related(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "HotelHandler.Related")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	related, err := handler.service.Related(ctx, id)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(related, writer)
}

func (handler *HotelHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "HotelHandler.Create")
	defer span.End()

	var hotel domain.Hotel
	if err := hotel.FromJSON(req.Body); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	saved, err := handler.service.Create(ctx, &hotel)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	writer.WriteHeader(http.StatusCreated)
	jsonResponse(saved, writer)
}

func (handler *HotelHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "HotelHandler.Update")
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

func (handler *HotelHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "HotelHandler.Delete")
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
