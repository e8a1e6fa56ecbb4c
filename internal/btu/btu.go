// Package btu sizes cooling capacity for a room. The trade convention is
// 600 kcal/h per ping of floor area, adjusted upward by 20% for each
// unfavorable condition, then converted to kW for matching against catalog
// equipment ratings.
package btu

import "math"

// Input describes the room being sized. Area is in ping (3.306 m²).
type Input struct {
	AreaPing   float64 `json:"area_ping"`
	TopFloor   bool    `json:"top_floor"`
	WestFacing bool    `json:"west_facing"`
	HeatSource bool    `json:"heat_source"`
}

// Result carries the sizing recommendation.
type Result struct {
	KcalPerHour float64 `json:"kcal_per_hour"`
	Kilowatts   float64 `json:"kilowatts"`
}

const (
	kcalPerPing   = 600.0
	adjustFactor  = 1.2
	kcalPerHourKW = 860.0
)

// Estimate computes the recommended capacity. Each flagged condition
// compounds a 20% uplift on the base load; kW is rounded to one decimal,
// the granularity catalog ratings are quoted in.
func Estimate(in Input) Result {
	if in.AreaPing <= 0 {
		return Result{}
	}
	kcal := in.AreaPing * kcalPerPing
	if in.TopFloor {
		kcal *= adjustFactor
	}
	if in.WestFacing {
		kcal *= adjustFactor
	}
	if in.HeatSource {
		kcal *= adjustFactor
	}
	kcal = math.Round(kcal)
	kw := math.Round(kcal/kcalPerHourKW*10) / 10
	return Result{KcalPerHour: kcal, Kilowatts: kw}
}
