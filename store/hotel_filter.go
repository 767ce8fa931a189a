package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Warsame-Adam/skystream-api/domain"
)

// DefaultSearchRadiusMeters bounds the geo proximity search when the caller
// gives coordinates without a radius.
const DefaultSearchRadiusMeters = 5000

// BuildHotelMatch assembles every hotel predicate except the geo one, which
// needs a different operator depending on whether it runs in a Find or as a
// $geoNear pipeline stage.
func BuildHotelMatch(c domain.HotelSearchCriteria) bson.M {
	filter := bson.M{}

	if c.Name != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(c.Name), "$options": "i"}
	}
	if c.CountryCode != "" {
		filter["countryCode"] = bson.M{"$regex": "^" + regexp.QuoteMeta(c.CountryCode) + "$", "$options": "i"}
	}
	if c.CityCode != "" {
		filter["cityCode"] = bson.M{"$regex": "^" + regexp.QuoteMeta(c.CityCode) + "$", "$options": "i"}
	}

	// one independent boolean equality per requested amenity key
	for _, amenity := range c.Amenities {
		filter["amenities."+amenity] = true
	}

	room := bson.M{}
	if c.NoOfRooms != nil {
		room["noOfRooms"] = bson.M{"$gte": *c.NoOfRooms}
	}
	if c.NoOfPersons != nil {
		room["maxPersonAllowed"] = bson.M{"$gte": *c.NoOfPersons}
	}
	if c.FreeCancellation != nil {
		room["freeCancellation"] = *c.FreeCancellation
	}
	if c.BreakfastIncluded != nil {
		room["breakfastIncluded"] = *c.BreakfastIncluded
	}
	switch {
	case c.AvailableFrom != nil && c.AvailableTo != nil:
		// room window fully contained in the requested window
		room["availableFrom"] = bson.M{"$gte": *c.AvailableFrom}
		room["availableTo"] = bson.M{"$lte": *c.AvailableTo}
	case c.AvailableFrom != nil:
		room["availableTo"] = bson.M{"$gte": *c.AvailableFrom}
	case c.AvailableTo != nil:
		room["availableFrom"] = bson.M{"$lte": *c.AvailableTo}
	}
	if len(room) > 0 {
		// all room conditions must hold on one and the same room entry
		filter["deals.rooms"] = bson.M{"$elemMatch": room}
	}

	return filter
}

// BuildHotelFilter is the Find-path predicate, geo proximity included.
func BuildHotelFilter(c domain.HotelSearchCriteria) bson.M {
	filter := BuildHotelMatch(c)

	if c.Latitude != nil && c.Longitude != nil {
		radius := c.RadiusMeters
		if radius <= 0 {
			radius = DefaultSearchRadiusMeters
		}
		filter["location"] = bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{*c.Longitude, *c.Latitude},
				},
				"$maxDistance": radius,
			},
		}
	}

	return filter
}

// BuildHotelRatingPipeline builds the aggregation used when a review-rating
// filter is requested. $near is not allowed inside $match, so a proximity
// search becomes a leading $geoNear stage.
func BuildHotelRatingPipeline(c domain.HotelSearchCriteria, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{}

	if c.Latitude != nil && c.Longitude != nil {
		radius := c.RadiusMeters
		if radius <= 0 {
			radius = DefaultSearchRadiusMeters
		}
		pipeline = append(pipeline, bson.D{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": []float64{*c.Longitude, *c.Latitude},
			},
			"distanceField": "distance",
			"maxDistance":   radius,
		}}})
	}

	if match := BuildHotelMatch(c); len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	// hotels without reviews count as rating zero
	pipeline = append(pipeline, bson.D{{Key: "$addFields", Value: bson.M{
		"avgRating": bson.M{"$ifNull": bson.A{bson.M{"$avg": "$reviews.rating"}, 0}},
	}}})

	if c.MinRating != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"avgRating": bson.M{"$gte": *c.MinRating},
		}}})
	}
	if c.Stars != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"$expr": bson.M{"$eq": bson.A{bson.M{"$floor": "$avgRating"}, *c.Stars}},
		}}})
	}

	pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	return pipeline
}
