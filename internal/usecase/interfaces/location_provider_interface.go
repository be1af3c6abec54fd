package interfaces

import "context"

// ILocationProvider resolves coordinates to a street address.
type ILocationProvider interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}
