package application

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
	"github.com/Warsame-Adam/skystream-api/errors"
)

// RelatedLimit caps each of the two related-hotel groups.
const RelatedLimit = 3

// RecommendedPriceBand is the allowed deviation of a recommended hotel's
// average nightly price from the subject's.
const RecommendedPriceBand = 0.15

type HotelService struct {
	hotels domain.HotelStore
	cities domain.CityStore
	assets *AssetChecker
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewHotelService(hotels domain.HotelStore, cities domain.CityStore, assets *AssetChecker, tracer trace.Tracer, logger *logrus.Logger) *HotelService {
	return &HotelService{
		hotels: hotels,
		cities: cities,
		assets: assets,
		tracer: tracer,
		logger: logger,
	}
}

func (service *HotelService) GetAll(ctx context.Context) ([]*domain.Hotel, error) {
	return service.hotels.GetAll(ctx)
}

func (service *HotelService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Hotel, error) {
	return service.hotels.Get(ctx, id)
}

func (service *HotelService) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	ctx, span := service.tracer.Start(ctx, "HotelService.Create")
	defer span.End()

	if err := hotel.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if _, err := service.cities.Get(ctx, hotel.City); err != nil {
		return nil, &ValidationError{Message: "referenced city does not exist"}
	}
	if service.assets != nil && hotel.Cover != "" {
		if err := service.assets.CheckURL(ctx, hotel.Cover); err != nil {
			return nil, err
		}
	}
	return service.hotels.Insert(ctx, hotel)
}

func (service *HotelService) Update(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	ctx, span := service.tracer.Start(ctx, "HotelService.Update")
	defer span.End()

	if err := hotel.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return service.hotels.Update(ctx, hotel)
}

func (service *HotelService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return service.hotels.Delete(ctx, id)
}

// Search runs the compound hotel predicate and attaches the average review
// rating to every match. The two rating filters answer different questions
// about the same value, a request may only carry one of them.
func (service *HotelService) Search(ctx context.Context, criteria domain.HotelSearchCriteria) ([]*domain.RatedHotel, error) {
	ctx, span := service.tracer.Start(ctx, "HotelService.Search")
	defer span.End()

	if criteria.MinRating != nil && criteria.Stars != nil {
		return nil, &ValidationError{Message: errors.ConflictingRatingFilters}
	}

	hotels, err := service.hotels.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return rateHotels(hotels), nil
}

// Featured picks, per featured city, the hotel with the lowest nightly room
// price. Hotels with no priced rooms never qualify.
func (service *HotelService) Featured(ctx context.Context) ([]*domain.FeaturedCityHotel, error) {
	ctx, span := service.tracer.Start(ctx, "HotelService.Featured")
	defer span.End()

	cities, err := service.cities.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}
	cityIDs := make([]primitive.ObjectID, 0, len(cities))
	for _, city := range cities {
		cityIDs = append(cityIDs, city.ID)
	}
	hotels, err := service.hotels.GetByCities(ctx, cityIDs)
	if err != nil {
		return nil, err
	}

	return CheapestHotelPerCity(cities, hotels), nil
}

// CheapestHotelPerCity pairs each city with its cheapest priced hotel,
// preserving the order of the given cities. Cities without a priced hotel
// are dropped.
func CheapestHotelPerCity(cities []*domain.City, hotels []*domain.Hotel) []*domain.FeaturedCityHotel {
	byCity := make(map[primitive.ObjectID]*domain.FeaturedCityHotel)
	for _, hotel := range hotels {
		price, ok := lowestNightlyPrice(hotel)
		if !ok {
			continue
		}
		current, seen := byCity[hotel.City]
		if !seen || price < current.LowestPrice {
			byCity[hotel.City] = &domain.FeaturedCityHotel{Hotel: hotel, LowestPrice: price}
		}
	}

	result := make([]*domain.FeaturedCityHotel, 0, len(cities))
	for _, city := range cities {
		entry, ok := byCity[city.ID]
		if !ok {
			continue
		}
		entry.City = city
		result = append(result, entry)
	}
	return result
}

// Statistics rolls the scoped hotels up into the dashboard numbers.
func (service *HotelService) Statistics(ctx context.Context, scope domain.HotelStatisticsScope) (*domain.HotelStatistics, error) {
	ctx, span := service.tracer.Start(ctx, "HotelService.Statistics")
	defer span.End()

	hotels, err := service.hotels.GetScoped(ctx, scope)
	if err != nil {
		return nil, err
	}
	stats := RollupStatistics(hotels, time.Now())
	return stats, nil
}

// RollupStatistics computes the hotel dashboard numbers over one pass of
// the given hotels. The cheapest month only considers rooms becoming
// available in the trailing year before now.
func RollupStatistics(hotels []*domain.Hotel, now time.Time) *domain.HotelStatistics {
	stats := &domain.HotelStatistics{}

	var highest *domain.RatedHotel
	yearAgo := now.AddDate(-1, 0, 0)
	monthLow := make(map[time.Month]float64)

	var sum4, sum5 float64
	var count4, count5 int

	for _, hotel := range hotels {
		rating := AverageRating(hotel)
		if highest == nil || rating > highest.AverageRating {
			highest = &domain.RatedHotel{Hotel: hotel, AverageRating: rating}
		}

		for _, deal := range hotel.Deals {
			for _, room := range deal.Rooms {
				if hotel.Stars == 4 {
					sum4 += room.PricePerNight
					count4++
				}
				if hotel.Stars == 5 {
					sum5 += room.PricePerNight
					count5++
				}
				if room.AvailableFrom.Before(yearAgo) || room.AvailableFrom.After(now) {
					continue
				}
				month := room.AvailableFrom.Month()
				low, seen := monthLow[month]
				if !seen || room.PricePerNight < low {
					monthLow[month] = room.PricePerNight
				}
			}
		}
	}

	stats.HighestRated = highest
	if count4 > 0 {
		stats.Average4StarPrice = sum4 / float64(count4)
	}
	if count5 > 0 {
		stats.Average5StarPrice = sum5 / float64(count5)
	}

	cheapest := math.MaxFloat64
	for month := time.January; month <= time.December; month++ {
		low, seen := monthLow[month]
		if seen && low < cheapest {
			cheapest = low
			stats.CheapestMonth = month.String()
		}
	}
	return stats
}

// Related returns up to three same-city hotels plus up to three more whose
// average nightly price sits within the band around the subject's.
func (service *HotelService) Related(ctx context.Context, id primitive.ObjectID) (*domain.RelatedHotels, error) {
	ctx, span := service.tracer.Start(ctx, "HotelService.Related")
	defer span.End()

	subject, err := service.hotels.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	neighbours, err := service.hotels.GetByCity(ctx, subject.City)
	if err != nil {
		return nil, err
	}
	return RelateHotels(subject, neighbours), nil
}

// RelateHotels splits the subject's city neighbours into a similar group
// and a price-band recommendation group, the subject itself never appears
// and no hotel shows up in both groups. Sharing the city is the only
// similarity condition.
func RelateHotels(subject *domain.Hotel, neighbours []*domain.Hotel) *domain.RelatedHotels {
	related := &domain.RelatedHotels{
		Similar:     []*domain.RatedHotel{},
		Recommended: []*domain.RatedHotel{},
	}

	taken := map[primitive.ObjectID]bool{subject.ID: true}
	for _, hotel := range neighbours {
		if len(related.Similar) == RelatedLimit {
			break
		}
		if taken[hotel.ID] {
			continue
		}
		taken[hotel.ID] = true
		related.Similar = append(related.Similar, &domain.RatedHotel{Hotel: hotel, AverageRating: AverageRating(hotel)})
	}

	subjectPrice, ok := averageNightlyPrice(subject)
	if !ok {
		return related
	}
	lower := subjectPrice * (1 - RecommendedPriceBand)
	upper := subjectPrice * (1 + RecommendedPriceBand)

	for _, hotel := range neighbours {
		if len(related.Recommended) == RelatedLimit {
			break
		}
		if taken[hotel.ID] {
			continue
		}
		price, ok := averageNightlyPrice(hotel)
		if !ok || price < lower || price > upper {
			continue
		}
		taken[hotel.ID] = true
		related.Recommended = append(related.Recommended, &domain.RatedHotel{Hotel: hotel, AverageRating: AverageRating(hotel)})
	}
	return related
}

// AverageRating is the mean of the embedded review ratings, zero without
// reviews.
func AverageRating(hotel *domain.Hotel) float64 {
	if len(hotel.Reviews) == 0 {
		return 0
	}
	sum := 0.0
	for _, review := range hotel.Reviews {
		sum += review.Rating
	}
	return sum / float64(len(hotel.Reviews))
}

func rateHotels(hotels []*domain.Hotel) []*domain.RatedHotel {
	rated := make([]*domain.RatedHotel, 0, len(hotels))
	for _, hotel := range hotels {
		rated = append(rated, &domain.RatedHotel{Hotel: hotel, AverageRating: AverageRating(hotel)})
	}
	return rated
}

func lowestNightlyPrice(hotel *domain.Hotel) (float64, bool) {
	found := false
	lowest := 0.0
	for _, deal := range hotel.Deals {
		for _, room := range deal.Rooms {
			if !found || room.PricePerNight < lowest {
				lowest = room.PricePerNight
				found = true
			}
		}
	}
	return lowest, found
}

func averageNightlyPrice(hotel *domain.Hotel) (float64, bool) {
	sum := 0.0
	count := 0
	for _, deal := range hotel.Deals {
		for _, room := range deal.Rooms {
			sum += room.PricePerNight
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
