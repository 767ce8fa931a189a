package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
	"github.com/Warsame-Adam/skystream-api/errors"
)

// ChildFareFactor discounts a child seat against the adult fare.
const ChildFareFactor = 0.75

type FlightService struct {
	flights  domain.FlightStore
	airports domain.AirportStore
	resolver *ReferenceResolver
	assets   *AssetChecker
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewFlightService(flights domain.FlightStore, airports domain.AirportStore, resolver *ReferenceResolver, assets *AssetChecker, tracer trace.Tracer, logger *logrus.Logger) *FlightService {
	return &FlightService{
		flights:  flights,
		airports: airports,
		resolver: resolver,
		assets:   assets,
		tracer:   tracer,
		logger:   logger,
	}
}

func (service *FlightService) GetAll(ctx context.Context) ([]*domain.Flight, error) {
	return service.flights.GetAll(ctx)
}

func (service *FlightService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error) {
	return service.flights.Get(ctx, id)
}

func (service *FlightService) Create(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	ctx, span := service.tracer.Start(ctx, "FlightService.Create")
	defer span.End()

	if err := flight.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if err := validateReturnFields(flight); err != nil {
		return nil, err
	}

	taken, err := service.flights.ExistsWithFlightNumber(ctx, flight.FlightNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ValidationError{Message: errors.DuplicateFlightNumber}
	}

	if service.assets != nil && flight.Image != "" {
		if err := service.assets.CheckURL(ctx, flight.Image); err != nil {
			return nil, err
		}
	}

	return service.flights.Insert(ctx, flight)
}

func (service *FlightService) Update(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	ctx, span := service.tracer.Start(ctx, "FlightService.Update")
	defer span.End()

	if err := flight.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if err := validateReturnFields(flight); err != nil {
		return nil, err
	}
	return service.flights.Update(ctx, flight)
}

func (service *FlightService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return service.flights.Delete(ctx, id)
}

// validateReturnFields keeps the round-trip flag and the return leg fields
// consistent: a round trip carries a full return leg, a one-way flight
// carries none of it.
func validateReturnFields(flight *domain.Flight) error {
	if flight.TwoWay {
		if flight.Schedule.ReturnDepartureTime == nil || flight.Schedule.ReturnArrivalTime == nil {
			return &ValidationError{Message: "round trip requires a return schedule"}
		}
		if flight.Location.ReturnDirect == nil {
			return &ValidationError{Message: "round trip requires returnDirect"}
		}
		if !*flight.Location.ReturnDirect && len(flight.Location.ReturnStops) == 0 {
			return &ValidationError{Message: "non-direct return leg requires return stops"}
		}
		return nil
	}

	if flight.Schedule.ReturnDepartureTime != nil || flight.Schedule.ReturnArrivalTime != nil ||
		flight.Location.ReturnDirect != nil || len(flight.Location.ReturnStops) > 0 ||
		flight.ReturnAirline != nil {
		return &ValidationError{Message: "one way flight can not carry return fields"}
	}
	return nil
}

// Search resolves the human-readable criteria to ids, runs the compound
// predicate and returns the matches with every reference populated. When a
// cabin class and passenger counts are given each result additionally
// carries a total price, flights not selling that class are dropped.
func (service *FlightService) Search(ctx context.Context, criteria domain.FlightSearchCriteria) ([]*domain.FlightDetail, error) {
	ctx, span := service.tracer.Start(ctx, "FlightService.Search")
	defer span.End()

	filter := domain.FlightFilter{}

	if criteria.OneWay != nil {
		twoWay := !*criteria.OneWay
		filter.TwoWay = &twoWay
	}

	if criteria.FromCountry != "" || criteria.FromCity != "" {
		ids, err := service.resolver.ResolveCities(ctx, criteria.FromCountry, criteria.FromCity)
		if err != nil {
			return nil, err
		}
		filter.DepartureCities = ids
	}
	if criteria.ToCountry != "" || criteria.ToCity != "" {
		ids, err := service.resolver.ResolveCities(ctx, criteria.ToCountry, criteria.ToCity)
		if err != nil {
			return nil, err
		}
		filter.ArrivalCities = ids
	}

	if len(criteria.Airlines) > 0 {
		ids, err := service.resolver.ResolveAirlines(ctx, criteria.Airlines)
		if err != nil {
			return nil, err
		}
		filter.OutboundAirlines = ids
	}
	if len(criteria.ReturnAirlines) > 0 {
		ids, err := service.resolver.ResolveAirlines(ctx, criteria.ReturnAirlines)
		if err != nil {
			return nil, err
		}
		filter.ReturnAirlines = ids
		// asking for a return airline implies a round trip
		twoWay := true
		filter.TwoWay = &twoWay
	}

	if criteria.Direct != nil {
		filter.OutboundDirect = criteria.Direct
		if filter.TwoWay != nil && *filter.TwoWay {
			filter.ReturnDirect = criteria.Direct
		}
	}

	filter.FlightNumber = criteria.FlightNumber
	filter.Frequency = criteria.Frequency

	if criteria.DepartureDate != nil {
		from, to := dayWindow(*criteria.DepartureDate)
		filter.DepartureFrom = &from
		filter.DepartureTo = &to
	}
	if criteria.ReturnDate != nil {
		from, to := dayWindow(*criteria.ReturnDate)
		filter.ReturnFrom = &from
		filter.ReturnTo = &to
	}

	var classType *domain.ClassType
	if criteria.CabinClass != "" {
		var err error
		classType, err = service.resolver.ResolveClassType(ctx, criteria.CabinClass)
		if err != nil {
			return nil, err
		}
		if classType == nil {
			// unknown class label can not match any flight
			return []*domain.FlightDetail{}, nil
		}
		filter.ClassType = &classType.ID
		filter.MinVacancy = criteria.Adults + criteria.Children
	}

	flights, err := service.flights.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	details, err := service.populate(ctx, flights)
	if err != nil {
		return nil, err
	}

	if classType != nil && criteria.Adults+criteria.Children > 0 {
		details = priceFlights(details, flights, classType.ID, criteria.Adults, criteria.Children)
	}
	return details, nil
}

// dayWindow expands a calendar date to its full day, midnight to the last
// millisecond before the next one.
func dayWindow(date time.Time) (time.Time, time.Time) {
	year, month, day := date.Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	to := time.Date(year, month, day, 23, 59, 59, 999000000, date.Location())
	return from, to
}

// TotalPrice projects a booking price onto a fare, children travel at a
// reduced rate.
func TotalPrice(fare float64, adults, children int) float64 {
	return float64(adults)*fare + ChildFareFactor*float64(children)*fare
}

// priceFlights attaches the total price for the requested class to each
// populated flight. Flights without a fare line for the class are dropped,
// they can not be priced.
func priceFlights(details []*domain.FlightDetail, flights []*domain.Flight, classTypeID primitive.ObjectID, adults, children int) []*domain.FlightDetail {
	priced := make([]*domain.FlightDetail, 0, len(details))
	for i, detail := range details {
		fare, ok := fareFor(flights[i], classTypeID)
		if !ok {
			continue
		}
		total := TotalPrice(fare, adults, children)
		detail.TotalPrice = &total
		priced = append(priced, detail)
	}
	return priced
}

func fareFor(flight *domain.Flight, classTypeID primitive.ObjectID) (float64, bool) {
	for _, class := range flight.Classes {
		if class.ClassType == classTypeID {
			return class.Price, true
		}
	}
	return 0, false
}

// CheapestPerDestination finds, for flights leaving the given origin, the
// single cheapest fare line for every distinct destination city. The lowest
// price wins, a tie keeps the flight encountered first.
func (service *FlightService) CheapestPerDestination(ctx context.Context, countryCode, cityCode string, notBefore *time.Time) ([]*domain.CheapestDestination, error) {
	ctx, span := service.tracer.Start(ctx, "FlightService.CheapestPerDestination")
	defer span.End()

	filter := domain.FlightFilter{}
	if countryCode != "" || cityCode != "" {
		ids, err := service.resolver.ResolveCities(ctx, countryCode, cityCode)
		if err != nil {
			return nil, err
		}
		filter.DepartureCities = ids
	}
	filter.DepartureFrom = notBefore

	flights, err := service.flights.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	cheapest := CheapestByDestination(flights)

	cityIDs := make([]primitive.ObjectID, 0, len(cheapest))
	for _, entry := range cheapest {
		cityIDs = append(cityIDs, entry.Flight.Location.ArrivalCity)
	}
	cities, err := service.resolver.cities.GetByIDs(ctx, cityIDs)
	if err != nil {
		return nil, err
	}
	cityByID := make(map[primitive.ObjectID]*domain.City, len(cities))
	for _, city := range cities {
		cityByID[city.ID] = city
	}
	for _, entry := range cheapest {
		entry.Destination = cityByID[entry.Flight.Location.ArrivalCity]
	}
	return cheapest, nil
}

// CheapestByDestination keeps one flight per arrival city, the one carrying
// the lowest fare line across all of its classes. Flights without any fare
// line are skipped. Iteration order of the input decides ties, the result
// preserves first-encounter order of the destinations.
func CheapestByDestination(flights []*domain.Flight) []*domain.CheapestDestination {
	byCity := make(map[primitive.ObjectID]*domain.CheapestDestination)
	order := make([]primitive.ObjectID, 0)

	for _, flight := range flights {
		lowest, ok := lowestFare(flight)
		if !ok {
			continue
		}
		city := flight.Location.ArrivalCity
		current, seen := byCity[city]
		if !seen {
			byCity[city] = &domain.CheapestDestination{Flight: flight, LowestPrice: lowest}
			order = append(order, city)
			continue
		}
		if lowest < current.LowestPrice {
			current.Flight = flight
			current.LowestPrice = lowest
		}
	}

	result := make([]*domain.CheapestDestination, 0, len(order))
	for _, city := range order {
		result = append(result, byCity[city])
	}
	return result
}

func lowestFare(flight *domain.Flight) (float64, bool) {
	found := false
	lowest := 0.0
	for _, class := range flight.Classes {
		if !found || class.Price < lowest {
			lowest = class.Price
			found = true
		}
	}
	return lowest, found
}

// populate expands every referenced id of the given flights into its
// sub-document with one batched lookup per collection.
func (service *FlightService) populate(ctx context.Context, flights []*domain.Flight) ([]*domain.FlightDetail, error) {
	ctx, span := service.tracer.Start(ctx, "FlightService.Populate")
	defer span.End()

	citySet := make(map[primitive.ObjectID]struct{})
	airportSet := make(map[primitive.ObjectID]struct{})
	airlineSet := make(map[primitive.ObjectID]struct{})
	classSet := make(map[primitive.ObjectID]struct{})

	for _, flight := range flights {
		citySet[flight.Location.DepartureCity] = struct{}{}
		citySet[flight.Location.ArrivalCity] = struct{}{}
		airportSet[flight.Location.DepartureAirport] = struct{}{}
		airportSet[flight.Location.ArrivalAirport] = struct{}{}
		for _, stop := range flight.Location.OutboundStops {
			citySet[stop.StopAtCity] = struct{}{}
			airportSet[stop.StopAtAirport] = struct{}{}
		}
		for _, stop := range flight.Location.ReturnStops {
			citySet[stop.StopAtCity] = struct{}{}
			airportSet[stop.StopAtAirport] = struct{}{}
		}
		airlineSet[flight.OutboundAirline] = struct{}{}
		if flight.ReturnAirline != nil {
			airlineSet[*flight.ReturnAirline] = struct{}{}
		}
		for _, class := range flight.Classes {
			classSet[class.ClassType] = struct{}{}
		}
	}

	cities, err := service.resolver.cities.GetByIDs(ctx, keys(citySet))
	if err != nil {
		return nil, err
	}
	airports, err := service.airports.GetByIDs(ctx, keys(airportSet))
	if err != nil {
		return nil, err
	}
	airlines, err := service.resolver.airlines.GetByIDs(ctx, keys(airlineSet))
	if err != nil {
		return nil, err
	}
	classTypes, err := service.resolver.classTypes.GetByIDs(ctx, keys(classSet))
	if err != nil {
		return nil, err
	}

	cityByID := make(map[primitive.ObjectID]*domain.City, len(cities))
	for _, city := range cities {
		cityByID[city.ID] = city
	}
	airportByID := make(map[primitive.ObjectID]*domain.Airport, len(airports))
	for _, airport := range airports {
		airportByID[airport.ID] = airport
	}
	airlineByID := make(map[primitive.ObjectID]*domain.Airline, len(airlines))
	for _, airline := range airlines {
		airlineByID[airline.ID] = airline
	}
	classByID := make(map[primitive.ObjectID]*domain.ClassType, len(classTypes))
	for _, classType := range classTypes {
		classByID[classType.ID] = classType
	}

	details := make([]*domain.FlightDetail, 0, len(flights))
	for _, flight := range flights {
		detail := &domain.FlightDetail{
			ID:              flight.ID,
			Image:           flight.Image,
			FlightNumber:    flight.FlightNumber,
			OutboundAirline: airlineByID[flight.OutboundAirline],
			TwoWay:          flight.TwoWay,
			Schedule:        flight.Schedule,
			Frequency:       flight.Frequency,
			SelfTransfer:    flight.SelfTransfer,
			ExternalURL:     flight.ExternalURL,
			AdditionalInfo:  flight.AdditionalInfo,
		}
		if flight.ReturnAirline != nil {
			detail.ReturnAirline = airlineByID[*flight.ReturnAirline]
		}
		detail.Location = domain.FlightLocationDetail{
			OutboundDirect:   flight.Location.OutboundDirect,
			ReturnDirect:     flight.Location.ReturnDirect,
			DepartureCity:    cityByID[flight.Location.DepartureCity],
			DepartureAirport: airportByID[flight.Location.DepartureAirport],
			ArrivalCity:      cityByID[flight.Location.ArrivalCity],
			ArrivalAirport:   airportByID[flight.Location.ArrivalAirport],
		}
		for _, stop := range flight.Location.OutboundStops {
			detail.Location.OutboundStops = append(detail.Location.OutboundStops, domain.StopDetail{
				City:    cityByID[stop.StopAtCity],
				Airport: airportByID[stop.StopAtAirport],
			})
		}
		for _, stop := range flight.Location.ReturnStops {
			detail.Location.ReturnStops = append(detail.Location.ReturnStops, domain.StopDetail{
				City:    cityByID[stop.StopAtCity],
				Airport: airportByID[stop.StopAtAirport],
			})
		}
		for _, class := range flight.Classes {
			detail.Classes = append(detail.Classes, domain.FareClassDetail{
				ClassType: classByID[class.ClassType],
				Price:     class.Price,
				Vacancy:   class.Vacancy,
			})
		}
		details = append(details, detail)
	}
	return details, nil
}

func keys(set map[primitive.ObjectID]struct{}) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
