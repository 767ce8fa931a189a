package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Warsame-Adam/skystream-api/domain"
)

func TestBuildHotelMatchCodesAreExactAndCaseInsensitive(t *testing.T) {
	filter := BuildHotelMatch(domain.HotelSearchCriteria{
		CountryCode: "uk",
		CityCode:    "lon",
	})

	assert.Equal(t, bson.M{"$regex": "^uk$", "$options": "i"}, filter["countryCode"])
	assert.Equal(t, bson.M{"$regex": "^lon$", "$options": "i"}, filter["cityCode"])
}

func TestBuildHotelMatchNameIsSubstring(t *testing.T) {
	filter := BuildHotelMatch(domain.HotelSearchCriteria{Name: "plaza"})

	assert.Equal(t, bson.M{"$regex": "plaza", "$options": "i"}, filter["name"])
}

func TestBuildHotelMatchAmenitiesAreIndependentEqualities(t *testing.T) {
	filter := BuildHotelMatch(domain.HotelSearchCriteria{
		Amenities: []string{"wifi", "parking"},
	})

	assert.Equal(t, true, filter["amenities.wifi"])
	assert.Equal(t, true, filter["amenities.parking"])
	assert.Len(t, filter, 2)
}

func TestBuildHotelMatchRoomConditionsShareOneElemMatch(t *testing.T) {
	rooms := 2
	persons := 4
	cancel := true

	filter := BuildHotelMatch(domain.HotelSearchCriteria{
		NoOfRooms:        &rooms,
		NoOfPersons:      &persons,
		FreeCancellation: &cancel,
	})

	assert.Equal(t, bson.M{"$elemMatch": bson.M{
		"noOfRooms":        bson.M{"$gte": 2},
		"maxPersonAllowed": bson.M{"$gte": 4},
		"freeCancellation": true,
	}}, filter["deals.rooms"])
}

func TestBuildHotelMatchAvailabilityContainment(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	filter := BuildHotelMatch(domain.HotelSearchCriteria{
		AvailableFrom: &from,
		AvailableTo:   &to,
	})

	assert.Equal(t, bson.M{"$elemMatch": bson.M{
		"availableFrom": bson.M{"$gte": from},
		"availableTo":   bson.M{"$lte": to},
	}}, filter["deals.rooms"])
}

func TestBuildHotelMatchHalfOpenAvailability(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	filter := BuildHotelMatch(domain.HotelSearchCriteria{AvailableFrom: &from})

	assert.Equal(t, bson.M{"$elemMatch": bson.M{
		"availableTo": bson.M{"$gte": from},
	}}, filter["deals.rooms"])
}

func TestBuildHotelMatchEmptyCriteria(t *testing.T) {
	assert.Empty(t, BuildHotelMatch(domain.HotelSearchCriteria{}))
}

func TestBuildHotelFilterGeoDefaultsRadius(t *testing.T) {
	lat, lng := 51.5, -0.1

	filter := BuildHotelFilter(domain.HotelSearchCriteria{
		Latitude:  &lat,
		Longitude: &lng,
	})

	assert.Equal(t, bson.M{"$near": bson.M{
		"$geometry": bson.M{
			"type":        "Point",
			"coordinates": []float64{-0.1, 51.5},
		},
		"$maxDistance": float64(DefaultSearchRadiusMeters),
	}}, filter["location"])
}

func TestBuildHotelFilterNoGeoWithoutBothCoordinates(t *testing.T) {
	lat := 51.5

	filter := BuildHotelFilter(domain.HotelSearchCriteria{Latitude: &lat})

	assert.NotContains(t, filter, "location")
}

func TestBuildHotelRatingPipelineGeoLeadsThePipeline(t *testing.T) {
	lat, lng := 51.5, -0.1
	minRating := 4.0

	pipeline := BuildHotelRatingPipeline(domain.HotelSearchCriteria{
		Latitude:  &lat,
		Longitude: &lng,
		CityCode:  "LON",
		MinRating: &minRating,
	}, 200)

	assert.Equal(t, "$geoNear", pipeline[0][0].Key)
	assert.Equal(t, "$match", pipeline[1][0].Key)
	assert.Equal(t, "$addFields", pipeline[2][0].Key)
	assert.Equal(t, "$match", pipeline[3][0].Key)
	assert.Equal(t, "$limit", pipeline[4][0].Key)
}

func TestBuildHotelRatingPipelineMinRating(t *testing.T) {
	minRating := 3.5

	pipeline := BuildHotelRatingPipeline(domain.HotelSearchCriteria{MinRating: &minRating}, 200)

	// no match criteria, so addFields opens the pipeline
	assert.Equal(t, "$addFields", pipeline[0][0].Key)
	assert.Equal(t, bson.M{"avgRating": bson.M{"$gte": 3.5}}, pipeline[1][0].Value)
	assert.Equal(t, "$limit", pipeline[2][0].Key)
	assert.Equal(t, int64(200), pipeline[2][0].Value)
}

func TestBuildHotelRatingPipelineStarsFloorsTheAverage(t *testing.T) {
	stars := 4

	pipeline := BuildHotelRatingPipeline(domain.HotelSearchCriteria{Stars: &stars}, 200)

	assert.Equal(t, bson.M{
		"$expr": bson.M{"$eq": bson.A{bson.M{"$floor": "$avgRating"}, 4}},
	}, pipeline[1][0].Value)
}
