package application

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Warsame-Adam/skystream-api/domain"
	"github.com/Warsame-Adam/skystream-api/errors"
)

func hotelWithPrices(city primitive.ObjectID, stars int, prices ...float64) *domain.Hotel {
	hotel := &domain.Hotel{
		ID:    primitive.NewObjectID(),
		Stars: stars,
		City:  city,
	}
	deal := domain.Deal{Site: "booking"}
	for _, price := range prices {
		deal.Rooms = append(deal.Rooms, domain.Room{PricePerNight: price})
	}
	hotel.Deals = []domain.Deal{deal}
	return hotel
}

func withReviews(hotel *domain.Hotel, ratings ...float64) *domain.Hotel {
	for _, rating := range ratings {
		hotel.Reviews = append(hotel.Reviews, domain.Review{Rating: rating})
	}
	return hotel
}

func TestAverageRating(t *testing.T) {
	hotel := withReviews(&domain.Hotel{}, 4, 5, 3)

	assert.Equal(t, 4.0, AverageRating(hotel))
}

func TestAverageRatingWithoutReviewsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(&domain.Hotel{}))
}

func TestSearchRejectsConflictingRatingFilters(t *testing.T) {
	minRating := 4.0
	stars := 4
	service := NewHotelService(new(mockHotelStore), new(mockCityStore), nil, noopTracer(), logrus.New())

	_, err := service.Search(context.Background(), domain.HotelSearchCriteria{
		MinRating: &minRating,
		Stars:     &stars,
	})

	assert.Error(t, err)
	assert.Equal(t, errors.ConflictingRatingFilters, err.Error())
}

func TestCheapestHotelPerCityPicksLowestPrice(t *testing.T) {
	cityID := primitive.NewObjectID()
	city := &domain.City{ID: cityID, CityName: "London"}
	pricey := hotelWithPrices(cityID, 5, 400, 350)
	budget := hotelWithPrices(cityID, 3, 90, 120)

	result := CheapestHotelPerCity([]*domain.City{city}, []*domain.Hotel{pricey, budget})

	assert.Len(t, result, 1)
	assert.Equal(t, city, result[0].City)
	assert.Equal(t, budget, result[0].Hotel)
	assert.Equal(t, 90.0, result[0].LowestPrice)
}

func TestCheapestHotelPerCitySkipsUnpricedHotels(t *testing.T) {
	cityID := primitive.NewObjectID()
	city := &domain.City{ID: cityID}
	unpriced := hotelWithPrices(cityID, 4)

	result := CheapestHotelPerCity([]*domain.City{city}, []*domain.Hotel{unpriced})

	assert.Empty(t, result)
}

func TestCheapestHotelPerCityPreservesCityOrder(t *testing.T) {
	first := &domain.City{ID: primitive.NewObjectID()}
	second := &domain.City{ID: primitive.NewObjectID()}
	hotels := []*domain.Hotel{
		hotelWithPrices(second.ID, 4, 200),
		hotelWithPrices(first.ID, 4, 100),
	}

	result := CheapestHotelPerCity([]*domain.City{first, second}, hotels)

	assert.Len(t, result, 2)
	assert.Equal(t, first, result[0].City)
	assert.Equal(t, second, result[1].City)
}

func TestRollupStatisticsStarAverages(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	city := primitive.NewObjectID()
	fourStar := hotelWithPrices(city, 4, 80, 120)
	fiveStar := hotelWithPrices(city, 5, 300)

	stats := RollupStatistics([]*domain.Hotel{fourStar, fiveStar}, now)

	assert.Equal(t, 100.0, stats.Average4StarPrice)
	assert.Equal(t, 300.0, stats.Average5StarPrice)
}

func TestRollupStatisticsHighestRated(t *testing.T) {
	city := primitive.NewObjectID()
	good := withReviews(hotelWithPrices(city, 4, 100), 5, 4)
	bad := withReviews(hotelWithPrices(city, 4, 100), 2)

	stats := RollupStatistics([]*domain.Hotel{bad, good}, time.Now())

	assert.Equal(t, good, stats.HighestRated.Hotel)
	assert.Equal(t, 4.5, stats.HighestRated.AverageRating)
}

func TestRollupStatisticsCheapestMonth(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	city := primitive.NewObjectID()
	hotel := hotelWithPrices(city, 3)
	hotel.Deals = []domain.Deal{{Rooms: []domain.Room{
		{PricePerNight: 150, AvailableFrom: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{PricePerNight: 60, AvailableFrom: time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)},
		// out of the trailing year, must not count
		{PricePerNight: 10, AvailableFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}}

	stats := RollupStatistics([]*domain.Hotel{hotel}, now)

	assert.Equal(t, "June", stats.CheapestMonth)
}

func TestRollupStatisticsEmptyInput(t *testing.T) {
	stats := RollupStatistics(nil, time.Now())

	assert.Nil(t, stats.HighestRated)
	assert.Empty(t, stats.CheapestMonth)
	assert.Equal(t, 0.0, stats.Average4StarPrice)
	assert.Equal(t, 0.0, stats.Average5StarPrice)
}

func TestRelateHotelsSimilarIgnoresStars(t *testing.T) {
	// any other hotel in the city qualifies, star count plays no part
	city := primitive.NewObjectID()
	subject := hotelWithPrices(city, 3, 100)
	neighbours := []*domain.Hotel{
		subject,
		hotelWithPrices(city, 4, 500),
		hotelWithPrices(city, 5, 900),
		hotelWithPrices(city, 2, 50),
	}

	related := RelateHotels(subject, neighbours)

	assert.Len(t, related.Similar, 3)
	for _, entry := range related.Similar {
		assert.NotEqual(t, subject.ID, entry.Hotel.ID)
	}
}

func TestRelateHotelsRecommendedStaysInPriceBand(t *testing.T) {
	city := primitive.NewObjectID()
	subject := hotelWithPrices(city, 4, 100)
	inBand := hotelWithPrices(city, 2, 110)
	outOfBand := hotelWithPrices(city, 2, 200)
	unpriced := hotelWithPrices(city, 2)

	neighbours := []*domain.Hotel{
		hotelWithPrices(city, 5, 999),
		hotelWithPrices(city, 5, 999),
		hotelWithPrices(city, 5, 999),
		inBand,
		outOfBand,
		unpriced,
	}

	related := RelateHotels(subject, neighbours)

	assert.Len(t, related.Similar, 3)
	assert.Len(t, related.Recommended, 1)
	assert.Equal(t, inBand, related.Recommended[0].Hotel)
}

func TestRelateHotelsNoHotelInBothGroups(t *testing.T) {
	city := primitive.NewObjectID()
	subject := hotelWithPrices(city, 4, 100)
	// inside the price band, but already placed in the similar group
	both := hotelWithPrices(city, 4, 105)

	related := RelateHotels(subject, []*domain.Hotel{both})

	assert.Len(t, related.Similar, 1)
	assert.Empty(t, related.Recommended)
}

func TestRelateHotelsCapsBothGroups(t *testing.T) {
	city := primitive.NewObjectID()
	subject := hotelWithPrices(city, 4, 100)

	neighbours := make([]*domain.Hotel, 0, 10)
	for i := 0; i < 5; i++ {
		neighbours = append(neighbours, hotelWithPrices(city, 4, 500))
	}
	for i := 0; i < 5; i++ {
		neighbours = append(neighbours, hotelWithPrices(city, 2, 100))
	}

	related := RelateHotels(subject, neighbours)

	assert.Len(t, related.Similar, RelatedLimit)
	assert.Len(t, related.Recommended, RelatedLimit)
}

func TestRelateHotelsUnpricedSubjectHasNoRecommendations(t *testing.T) {
	city := primitive.NewObjectID()
	subject := hotelWithPrices(city, 4)
	neighbour := hotelWithPrices(city, 2, 100)

	related := RelateHotels(subject, []*domain.Hotel{neighbour})

	assert.Empty(t, related.Recommended)
	assert.NotNil(t, related.Recommended)
}
