package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlightSearchCriteria carries the raw, already type-checked query parameters
// of a flight search. Location, airline and class inputs are still
// human-readable here, the service resolves them to ids before the store
// builds a predicate.
type FlightSearchCriteria struct {
	OneWay         *bool
	FromCountry    string
	FromCity       string
	ToCountry      string
	ToCity         string
	Direct         *bool
	Airlines       []string
	ReturnAirlines []string
	FlightNumber   string
	Frequency      []string
	DepartureDate  *time.Time
	ReturnDate     *time.Time
	CabinClass     string
	Adults         int
	Children       int
}

// FlightFilter is the resolved form handed to the flight store. For the id
// slices a nil value means the filter was not requested, while a non-nil
// empty slice means it was requested but resolved to nothing, so the
// predicate must match no documents.
type FlightFilter struct {
	TwoWay           *bool
	DepartureCities  []primitive.ObjectID
	ArrivalCities    []primitive.ObjectID
	OutboundDirect   *bool
	ReturnDirect     *bool
	OutboundAirlines []primitive.ObjectID
	ReturnAirlines   []primitive.ObjectID
	FlightNumber     string
	Frequency        []string
	DepartureFrom    *time.Time
	DepartureTo      *time.Time
	ReturnFrom       *time.Time
	ReturnTo         *time.Time
	ClassType        *primitive.ObjectID
	MinVacancy       int
}

type HotelSearchCriteria struct {
	Name              string
	CountryCode       string
	CityCode          string
	Latitude          *float64
	Longitude         *float64
	RadiusMeters      float64
	Amenities         []string
	NoOfRooms         *int
	NoOfPersons       *int
	FreeCancellation  *bool
	BreakfastIncluded *bool
	AvailableFrom     *time.Time
	AvailableTo       *time.Time
	MinRating         *float64
	Stars             *int
}

// HotelStatisticsScope narrows a statistics rollup to a country or city,
// both zero values mean the whole collection.
type HotelStatisticsScope struct {
	CountryCode string
	CityCode    string
}

type HotelStatistics struct {
	HighestRated     *RatedHotel `json:"highestRated,omitempty"`
	CheapestMonth    string      `json:"cheapestMonth,omitempty"`
	Average4StarPrice float64    `json:"average4StarPrice"`
	Average5StarPrice float64    `json:"average5StarPrice"`
}

// RatedHotel is a hotel plus its computed average review rating. The rating
// is request-scoped, it is never written back to the store.
type RatedHotel struct {
	*Hotel
	AverageRating float64 `json:"averageRating"`
}

type RelatedHotels struct {
	Similar     []*RatedHotel `json:"similar"`
	Recommended []*RatedHotel `json:"recommended"`
}

// FeaturedCityHotel pairs a featured city with its cheapest hotel by
// nightly room price. Cities whose hotels carry no priced rooms are left out.
type FeaturedCityHotel struct {
	City        *City   `json:"city"`
	Hotel       *Hotel  `json:"hotel"`
	LowestPrice float64 `json:"lowestPrice"`
}

// CheapestDestination is one representative flight per destination city,
// carrying the lowest fare found for that destination.
type CheapestDestination struct {
	Destination *City   `json:"destination"`
	Flight      *Flight `json:"flight"`
	LowestPrice float64 `json:"lowestPrice"`
}

// Populated flight response types, references expanded into sub-documents.

type StopDetail struct {
	City    *City    `json:"city"`
	Airport *Airport `json:"airport"`
}

type FlightLocationDetail struct {
	OutboundDirect   bool         `json:"outboundDirect"`
	OutboundStops    []StopDetail `json:"outboundStops,omitempty"`
	ReturnDirect     *bool        `json:"returnDirect,omitempty"`
	ReturnStops      []StopDetail `json:"returnStops,omitempty"`
	DepartureCity    *City        `json:"departureCity"`
	DepartureAirport *Airport     `json:"departureAirport"`
	ArrivalCity      *City        `json:"arrivalCity"`
	ArrivalAirport   *Airport     `json:"arrivalAirport"`
}

type FareClassDetail struct {
	ClassType *ClassType `json:"classType"`
	Price     float64    `json:"price"`
	Vacancy   int        `json:"vacancy"`
}

type FlightDetail struct {
	ID              primitive.ObjectID   `json:"id"`
	Image           string               `json:"image,omitempty"`
	FlightNumber    string               `json:"flightNumber"`
	OutboundAirline *Airline             `json:"outboundAirline"`
	TwoWay          bool                 `json:"twoWay"`
	ReturnAirline   *Airline             `json:"returnAirline,omitempty"`
	Location        FlightLocationDetail `json:"location"`
	Schedule        FlightSchedule       `json:"schedule"`
	Frequency       []string             `json:"frequency"`
	Classes         []FareClassDetail    `json:"classes"`
	SelfTransfer    bool                 `json:"selfTransfer"`
	ExternalURL     string               `json:"externalURL"`
	AdditionalInfo  string               `json:"additionalInfo,omitempty"`
	TotalPrice      *float64             `json:"totalPrice,omitempty"`
}
