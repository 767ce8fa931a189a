package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Warsame-Adam/skystream-api/domain"
)

func TestBuildFlightFilterDefaultsToUpcomingFlights(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	filter := BuildFlightFilter(domain.FlightFilter{}, now)

	assert.Equal(t, bson.M{"$gte": now}, filter["schedule.departureTime"])
	assert.Len(t, filter, 1)
}

func TestBuildFlightFilterDepartureWindowReplacesDefault(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 23, 59, 59, 999000000, time.UTC)

	filter := BuildFlightFilter(domain.FlightFilter{
		DepartureFrom: &from,
		DepartureTo:   &to,
	}, now)

	assert.Equal(t, bson.M{"$gte": from, "$lte": to}, filter["schedule.departureTime"])
}

func TestBuildFlightFilterPastDepartureWindowIsKept(t *testing.T) {
	// an explicit date wins over the no-past-flights default
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	filter := BuildFlightFilter(domain.FlightFilter{DepartureFrom: &from}, now)

	assert.Equal(t, bson.M{"$gte": from}, filter["schedule.departureTime"])
}

func TestBuildFlightFilterCitySlices(t *testing.T) {
	departure := []primitive.ObjectID{primitive.NewObjectID()}

	filter := BuildFlightFilter(domain.FlightFilter{DepartureCities: departure}, time.Now())

	assert.Equal(t, bson.M{"$in": departure}, filter["location.departureCity"])
	assert.NotContains(t, filter, "location.arrivalCity")
}

func TestBuildFlightFilterEmptyResolutionMatchesNothing(t *testing.T) {
	// a requested filter that resolved to nothing must still be emitted,
	// $in over the empty set matches no documents
	filter := BuildFlightFilter(domain.FlightFilter{
		ArrivalCities: []primitive.ObjectID{},
	}, time.Now())

	assert.Equal(t, bson.M{"$in": []primitive.ObjectID{}}, filter["location.arrivalCity"])
}

func TestBuildFlightFilterNilSliceIsNotEmitted(t *testing.T) {
	filter := BuildFlightFilter(domain.FlightFilter{}, time.Now())

	assert.NotContains(t, filter, "location.departureCity")
	assert.NotContains(t, filter, "location.arrivalCity")
	assert.NotContains(t, filter, "outboundAirline")
	assert.NotContains(t, filter, "returnAirline")
}

func TestBuildFlightFilterReturnAirlinesForceRoundTrip(t *testing.T) {
	airlines := []primitive.ObjectID{primitive.NewObjectID()}
	oneWay := false

	filter := BuildFlightFilter(domain.FlightFilter{
		TwoWay:         &oneWay,
		ReturnAirlines: airlines,
	}, time.Now())

	assert.Equal(t, true, filter["twoWay"])
	assert.Equal(t, bson.M{"$in": airlines}, filter["returnAirline"])
}

func TestBuildFlightFilterDirectFlags(t *testing.T) {
	direct := true

	filter := BuildFlightFilter(domain.FlightFilter{
		OutboundDirect: &direct,
		ReturnDirect:   &direct,
	}, time.Now())

	assert.Equal(t, true, filter["location.outboundDirect"])
	assert.Equal(t, true, filter["location.returnDirect"])
}

func TestBuildFlightFilterFlightNumberAndFrequency(t *testing.T) {
	filter := BuildFlightFilter(domain.FlightFilter{
		FlightNumber: "ba2",
		Frequency:    []string{"Monday", "Friday"},
	}, time.Now())

	assert.Equal(t, bson.M{"$regex": "ba2", "$options": "i"}, filter["flightNumber"])
	assert.Equal(t, bson.M{"$in": []string{"Monday", "Friday"}}, filter["frequency"])
}

func TestBuildFlightFilterClassVacancy(t *testing.T) {
	classID := primitive.NewObjectID()

	filter := BuildFlightFilter(domain.FlightFilter{
		ClassType:  &classID,
		MinVacancy: 3,
	}, time.Now())

	assert.Equal(t, bson.M{"$elemMatch": bson.M{
		"classType": classID,
		"vacancy":   bson.M{"$gte": 3},
	}}, filter["classes"])
}

func TestBuildFlightFilterReturnWindow(t *testing.T) {
	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 10, 23, 59, 59, 999000000, time.UTC)

	filter := BuildFlightFilter(domain.FlightFilter{ReturnFrom: &from, ReturnTo: &to}, time.Now())

	assert.Equal(t, bson.M{"$gte": from, "$lte": to}, filter["schedule.returnDepartureTime"])
}

func TestBuildFlightFilterIsDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	direct := true
	input := domain.FlightFilter{
		OutboundDirect:   &direct,
		DepartureCities:  []primitive.ObjectID{primitive.NewObjectID()},
		OutboundAirlines: []primitive.ObjectID{primitive.NewObjectID()},
		Frequency:        []string{"Sunday"},
	}

	assert.Equal(t, BuildFlightFilter(input, now), BuildFlightFilter(input, now))
}
