package domain

import "context"

// ReverseGeocoder converts coordinates to address components.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (Address, error)
}

// IPLocator geolocates the caller's network address to coarse address
// components.
type IPLocator interface {
	Locate(ctx context.Context) (Address, error)
}
