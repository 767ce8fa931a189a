package domain

import (
	"encoding/json"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point, coordinates are [longitude, latitude]
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

type City struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CityName    string             `bson:"cityName" json:"cityName" validate:"required"`
	CityCode    string             `bson:"cityCode" json:"cityCode" validate:"required,uppercase"`
	CountryName string             `bson:"countryName" json:"countryName" validate:"required"`
	CountryCode string             `bson:"countryCode" json:"countryCode" validate:"required,uppercase"`
	IsFeatured  bool               `bson:"isFeatured" json:"isFeatured"`
	Cover       string             `bson:"cover,omitempty" json:"cover,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Airport struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Logo      string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Location  GeoPoint           `bson:"location" json:"location"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Airline struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Logo      string             `bson:"logo" json:"logo" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type ClassType struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      string             `bson:"type" json:"type" validate:"required,oneof=Economy Premium Business First"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Default fare class labels, seeded at startup
var DefaultClassTypes = []string{"Economy", "Premium", "Business", "First"}

type FlightStop struct {
	StopAtCity    primitive.ObjectID `bson:"stopAtCity" json:"stopAtCity"`
	StopAtAirport primitive.ObjectID `bson:"stopAtAirport" json:"stopAtAirport"`
}

type FlightLocation struct {
	OutboundDirect   bool                `bson:"outboundDirect" json:"outboundDirect"`
	OutboundStops    []FlightStop        `bson:"outboundStops,omitempty" json:"outboundStops,omitempty"`
	ReturnDirect     *bool               `bson:"returnDirect,omitempty" json:"returnDirect,omitempty"`
	ReturnStops      []FlightStop        `bson:"returnStops,omitempty" json:"returnStops,omitempty"`
	DepartureCity    primitive.ObjectID  `bson:"departureCity" json:"departureCity"`
	DepartureAirport primitive.ObjectID  `bson:"departureAirport" json:"departureAirport"`
	ArrivalCity      primitive.ObjectID  `bson:"arrivalCity" json:"arrivalCity"`
	ArrivalAirport   primitive.ObjectID  `bson:"arrivalAirport" json:"arrivalAirport"`
}

type FlightSchedule struct {
	DepartureTime       time.Time  `bson:"departureTime" json:"departureTime"`
	ArrivalTime         time.Time  `bson:"arrivalTime" json:"arrivalTime"`
	ReturnDepartureTime *time.Time `bson:"returnDepartureTime,omitempty" json:"returnDepartureTime,omitempty"`
	ReturnArrivalTime   *time.Time `bson:"returnArrivalTime,omitempty" json:"returnArrivalTime,omitempty"`
}

type FareClass struct {
	ClassType primitive.ObjectID `bson:"classType" json:"classType"`
	Price     float64            `bson:"price" json:"price" validate:"gte=0"`
	Vacancy   int                `bson:"vacancy" json:"vacancy" validate:"gte=0"`
}

type Flight struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Image           string              `bson:"image,omitempty" json:"image,omitempty"`
	FlightNumber    string              `bson:"flightNumber" json:"flightNumber" validate:"required"`
	OutboundAirline primitive.ObjectID  `bson:"outboundAirline" json:"outboundAirline"`
	TwoWay          bool                `bson:"twoWay" json:"twoWay"`
	ReturnAirline   *primitive.ObjectID `bson:"returnAirline,omitempty" json:"returnAirline,omitempty"`
	Location        FlightLocation      `bson:"location" json:"location"`
	Schedule        FlightSchedule      `bson:"schedule" json:"schedule"`
	Frequency       []string            `bson:"frequency" json:"frequency" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Classes         []FareClass         `bson:"classes" json:"classes" validate:"required,min=1,dive"`
	SelfTransfer    bool                `bson:"selfTransfer" json:"selfTransfer"`
	ExternalURL     string              `bson:"externalURL" json:"externalURL" validate:"required,url"`
	AdditionalInfo  string              `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Amenities struct {
	Wifi          bool `bson:"wifi" json:"wifi"`
	AirCondition  bool `bson:"airCondition" json:"airCondition"`
	FitnessCenter bool `bson:"fitnessCenter" json:"fitnessCenter"`
	DeskSupport   bool `bson:"deskSupport" json:"deskSupport"`
	Restaurant    bool `bson:"restaurant" json:"restaurant"`
	NonSmoking    bool `bson:"nonSmoking" json:"nonSmoking"`
	SwimmingPool  bool `bson:"swimmingPool" json:"swimmingPool"`
}

// AmenityKeys are the query-parameter names accepted by the hotel search,
// each maps to the amenities.<key> boolean field of the same name.
var AmenityKeys = []string{"wifi", "airCondition", "fitnessCenter", "deskSupport", "restaurant", "nonSmoking", "swimmingPool"}

type HotelContact struct {
	Phone string `bson:"phone" json:"phone" validate:"required"`
	Email string `bson:"email" json:"email" validate:"required,email"`
}

type HotelPolicies struct {
	CheckIn            string `bson:"checkIn" json:"checkIn" validate:"required"`
	CheckOut           string `bson:"checkOut" json:"checkOut" validate:"required"`
	BreakfastAvailable bool   `bson:"breakfastAvailable" json:"breakfastAvailable"`
	PetsAllowed        bool   `bson:"petsAllowed" json:"petsAllowed"`
	KidsAllowed        bool   `bson:"kidsAllowed" json:"kidsAllowed"`
}

type Review struct {
	Rating      float64   `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	Comment     string    `bson:"comment" json:"comment" validate:"required"`
	SubmittedBy string    `bson:"submittedBy" json:"submittedBy" validate:"required"`
	CreatedOn   time.Time `bson:"createdOn" json:"createdOn"`
}

type Room struct {
	Type              string    `bson:"type" json:"type" validate:"required"`
	PricePerNight     float64   `bson:"pricePerNight" json:"pricePerNight" validate:"gte=0"`
	NoOfRooms         int       `bson:"noOfRooms" json:"noOfRooms" validate:"gte=0"`
	MaxPersonAllowed  int       `bson:"maxPersonAllowed" json:"maxPersonAllowed" validate:"gte=1"`
	FreeCancellation  bool      `bson:"freeCancellation" json:"freeCancellation"`
	BreakfastIncluded bool      `bson:"breakfastIncluded" json:"breakfastIncluded"`
	AvailableFrom     time.Time `bson:"availableFrom" json:"availableFrom"`
	AvailableTo       time.Time `bson:"availableTo" json:"availableTo"`
	ExternalURL       string    `bson:"externalURL,omitempty" json:"externalURL,omitempty"`
}

type Deal struct {
	Site     string `bson:"site" json:"site" validate:"required"`
	SiteLogo string `bson:"siteLogo" json:"siteLogo" validate:"required"`
	Rooms    []Room `bson:"rooms" json:"rooms" validate:"dive"`
}

type Hotel struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name" validate:"required"`
	Stars               int                `bson:"stars" json:"stars" validate:"gte=1,lte=5"`
	Cover               string             `bson:"cover" json:"cover" validate:"required"`
	Images              []string           `bson:"images" json:"images"`
	Description         string             `bson:"description" json:"description" validate:"required"`
	City                primitive.ObjectID `bson:"city" json:"city"`
	Address             string             `bson:"address" json:"address" validate:"required"`
	Location            GeoPoint           `bson:"location" json:"location"`
	CityCode            string             `bson:"cityCode" json:"cityCode"`
	CountryCode         string             `bson:"countryCode" json:"countryCode"`
	Amenities           Amenities          `bson:"amenities" json:"amenities"`
	Contact             HotelContact       `bson:"contact" json:"contact"`
	Policies            HotelPolicies      `bson:"policies" json:"policies"`
	OtherImportantNotes string             `bson:"otherImportantNotes,omitempty" json:"otherImportantNotes,omitempty"`
	Reviews             []Review           `bson:"reviews" json:"reviews"`
	Deals               []Deal             `bson:"deals" json:"deals"`
	CreatedAt           time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt           time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type User struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name            string               `bson:"name" json:"name" validate:"required"`
	Email           string               `bson:"email" json:"email" validate:"required,email"`
	Password        string               `bson:"password" json:"-" validate:"required,min=6"`
	Roles           []primitive.ObjectID `bson:"roles" json:"roles"`
	FavoriteFlights []primitive.ObjectID `bson:"favoriteFlights,omitempty" json:"favoriteFlights,omitempty"`
	CreatedAt       time.Time            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time            `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Role struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name" validate:"required"`
}

// Default role names, seeded once at startup
var DefaultRoles = []string{"admin", "user"}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Claims struct {
	UserID    primitive.ObjectID `json:"user_id"`
	Email     string             `json:"email"`
	Roles     []string           `json:"roles"`
	TokenID   string             `json:"token_id"`
	ExpiresAt time.Time          `json:"expires_at"`
}

var validate = validator.New()

func (city *City) Validate() error {
	return validate.Struct(city)
}

func (airport *Airport) Validate() error {
	return validate.Struct(airport)
}

func (airline *Airline) Validate() error {
	return validate.Struct(airline)
}

func (classType *ClassType) Validate() error {
	return validate.Struct(classType)
}

func (flight *Flight) Validate() error {
	return validate.Struct(flight)
}

func (hotel *Hotel) Validate() error {
	return validate.Struct(hotel)
}

func (user *User) Validate() error {
	return validate.Struct(user)
}

func (flight *Flight) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(flight)
}

func (hotel *Hotel) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(hotel)
}
