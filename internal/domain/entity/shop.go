package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Shop is a canonical store location. Shops are created only by approving a ShopProposal.
type Shop struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the shop.
	Name      string    // Display name.
	Address   string    // Full, human-readable street address.
	Latitude  float64   // The geographic latitude.
	Longitude float64   // The geographic longitude.
	CreatedAt time.Time // Timestamp of when the shop became canonical.
}

// Point returns the shop location in orb's (lon, lat) order.
func (s *Shop) Point() orb.Point {
	return orb.Point{s.Longitude, s.Latitude}
}

// NearbyShop is a shop annotated with its distance from a query point.
type NearbyShop struct {
	*Shop
	DistanceKm float64
}
