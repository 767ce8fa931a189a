package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Warsame-Adam/skystream-api/domain"
)

// BuildFlightFilter assembles the compound flight search predicate. Filters
// combine with logical AND, every rule is applied independently of the
// others so the assembly order can not change the result.
//
// For the id slices the convention of domain.FlightFilter holds: nil means
// the rule is off, a non-nil empty slice yields an $in over an empty set,
// which matches no documents at all.
func BuildFlightFilter(f domain.FlightFilter, now time.Time) bson.M {
	filter := bson.M{}

	if f.TwoWay != nil {
		filter["twoWay"] = *f.TwoWay
	}

	if f.DepartureCities != nil {
		filter["location.departureCity"] = bson.M{"$in": f.DepartureCities}
	}
	if f.ArrivalCities != nil {
		filter["location.arrivalCity"] = bson.M{"$in": f.ArrivalCities}
	}

	if f.OutboundDirect != nil {
		filter["location.outboundDirect"] = *f.OutboundDirect
	}
	if f.ReturnDirect != nil {
		filter["location.returnDirect"] = *f.ReturnDirect
	}

	if f.OutboundAirlines != nil {
		filter["outboundAirline"] = bson.M{"$in": f.OutboundAirlines}
	}
	if f.ReturnAirlines != nil {
		// a return-airline filter only makes sense on round trips
		filter["returnAirline"] = bson.M{"$in": f.ReturnAirlines}
		filter["twoWay"] = true
	}

	if f.FlightNumber != "" {
		filter["flightNumber"] = bson.M{"$regex": f.FlightNumber, "$options": "i"}
	}

	if len(f.Frequency) > 0 {
		filter["frequency"] = bson.M{"$in": f.Frequency}
	}

	if f.DepartureFrom != nil || f.DepartureTo != nil {
		window := bson.M{}
		if f.DepartureFrom != nil {
			window["$gte"] = *f.DepartureFrom
		}
		if f.DepartureTo != nil {
			window["$lte"] = *f.DepartureTo
		}
		filter["schedule.departureTime"] = window
	} else {
		// no past flights unless a departure date was asked for
		filter["schedule.departureTime"] = bson.M{"$gte": now}
	}

	if f.ReturnFrom != nil || f.ReturnTo != nil {
		window := bson.M{}
		if f.ReturnFrom != nil {
			window["$gte"] = *f.ReturnFrom
		}
		if f.ReturnTo != nil {
			window["$lte"] = *f.ReturnTo
		}
		filter["schedule.returnDepartureTime"] = window
	}

	if f.ClassType != nil {
		filter["classes"] = bson.M{"$elemMatch": bson.M{
			"classType": *f.ClassType,
			"vacancy":   bson.M{"$gte": f.MinVacancy},
		}}
	}

	return filter
}
