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

type FlightHandler struct {
	service *application.FlightService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewFlightHandler(service *application.FlightService, tracer trace.Tracer, logger *logrus.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *FlightHandler) Init(router *mux.Router) {
	router.HandleFunc("/api/flights/search", handler.Search).Methods("GET")
	router.HandleFunc("/api/flights/cheapest", handler.Cheapest).Methods("GET")
	router.HandleFunc("/api/flights", handler.GetAll).Methods("GET")
	router.HandleFunc("/api/flights", handler.Create).Methods("POST")
	router.HandleFunc("/api/flights/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/api/flights/{id}", handler.Update).Methods("PATCH")
	router.HandleFunc("/api/flights/{id}", handler.Delete).Methods("DELETE")
}

func (handler *FlightHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "FlightHandler.GetAll")
	defer span.End()

	flights, err := handler.service.GetAll(ctx)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	if flights == nil {
		flights = []*domain.Flight{}
	}
	jsonResponse(flights, writer)
}

func (handler *FlightHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "FlightHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidIDError, http.StatusBadRequest)
		return
	}
	flight, err := handler.service.Get(ctx, id)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(flight, writer)
}

// Search parses every optional query parameter strictly before anything
// resolves, a malformed value answers 400 without touching the stores.
func (handler *FlightHandler) Search(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "FlightHandler.Search")
	defer span.End()

	criteria, err := parseFlightCriteria(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	flights, err := handler.service.Search(ctx, *criteria)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(flights, writer)
}

func parseFlightCriteria(req *http.Request) (*domain.FlightSearchCriteria, error) {
	query := req.URL.Query()
	criteria := &domain.FlightSearchCriteria{
		FromCountry:    query.Get("fromCountry"),
		FromCity:       query.Get("fromCity"),
		ToCountry:      query.Get("toCountry"),
		ToCity:         query.Get("toCity"),
		FlightNumber:   query.Get("flightNumber"),
		CabinClass:     query.Get("cabinClass"),
		Airlines:       parseListParam(query.Get("airlines")),
		ReturnAirlines: parseListParam(query.Get("returnAirlines")),
		Frequency:      parseListParam(query.Get("frequency")),
	}

	var err error
	if criteria.OneWay, err = parseBoolParam("oneway", query.Get("oneway")); err != nil {
		return nil, err
	}
	if criteria.Direct, err = parseBoolParam("direct", query.Get("direct")); err != nil {
		return nil, err
	}
	if criteria.DepartureDate, err = parseDateParam("departureDate", query.Get("departureDate")); err != nil {
		return nil, err
	}
	if criteria.ReturnDate, err = parseDateParam("returnDate", query.Get("returnDate")); err != nil {
		return nil, err
	}

	adults, err := parseIntParam("adults", query.Get("adults"))
	if err != nil {
		return nil, err
	}
	if adults != nil {
		criteria.Adults = *adults
	}
	children, err := parseIntParam("children", query.Get("children"))
	if err != nil {
		return nil, err
	}
	if children != nil {
		criteria.Children = *children
	}
	return criteria, nil
}

func (handler *FlightHandler) Cheapest(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "FlightHandler.Cheapest")
	defer span.End()

	query := req.URL.Query()
	notBefore, err := parseDateParam("departureDate", query.Get("departureDate"))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	destinations, err := handler.service.CheapestPerDestination(ctx, query.Get("fromCountry"), query.Get("fromCity"), notBefore)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	jsonResponse(destinations, writer)
}

func (handler *FlightHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "FlightHandler.Create")
	defer span.End()

	var flight domain.Flight
	if err := flight.FromJSON(req.Body); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	saved, err := handler.service.Create(ctx, &flight)
	if err != nil {
		handleServiceError(writer, span, err)
		return
	}
	writer.WriteHeader(http.StatusCreated)
	jsonResponse(saved, writer)
}

func (handler *FlightHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "FlightHandler.Update")
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

func (handler *FlightHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "FlightHandler.Delete")
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
