package services

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// CenterOf returns the coordinate mean of the given points.
func CenterOf(points []kernel.GeoPoint) (kernel.GeoPoint, error) {
	if len(points) == 0 {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("points")
	}

	var latSum, lngSum float64
	for _, p := range points {
		latSum += p.Lat()
		lngSum += p.Lng()
	}
	n := float64(len(points))
	return kernel.NewGeoPoint(latSum/n, lngSum/n)
}

// EstimateRouteKm approximates the length of a delivery run as a greedy
// nearest-neighbor walk starting at the route center. It is an estimate for
// planning and display, not a routed distance.
func EstimateRouteKm(start kernel.GeoPoint, stops []kernel.GeoPoint) float64 {
	remaining := make([]kernel.GeoPoint, len(stops))
	copy(remaining, stops)

	total := 0.0
	current := start
	for len(remaining) > 0 {
		nearest := 0
		nearestDist := current.DistanceKm(remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := current.DistanceKm(remaining[i]); d < nearestDist {
				nearest, nearestDist = i, d
			}
		}

		total += nearestDist
		current = remaining[nearest]
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}
	return total
}
