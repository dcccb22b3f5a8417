package domain

import "context"

// Repository ports. Shared contract for every collection:
//   - List returns the entity's defined order and an empty slice for an
//     empty collection, never an error for emptiness.
//   - Get on an absent id returns ErrNotFound.
//   - Create assigns identity and both timestamps; the returned entity
//     is exactly what was persisted.
//   - Update merges only the patch's non-nil fields and refreshes
//     updatedAt; id and createdAt are untouchable.
//   - Delete is idempotent: deleting an absent id succeeds.

type HotelRepository interface {
	ListHotels(ctx context.Context, f HotelFilter) ([]Hotel, error)
	GetHotel(ctx context.Context, id string) (Hotel, error)
	CreateHotel(ctx context.Context, h Hotel) (Hotel, error)
	UpdateHotel(ctx context.Context, id string, p HotelPatch) error
	DeleteHotel(ctx context.Context, id string) error
}

type DestinationRepository interface {
	ListDestinations(ctx context.Context, f DestinationFilter) ([]Destination, error)
	GetDestination(ctx context.Context, id string) (Destination, error)
	CreateDestination(ctx context.Context, d Destination) (Destination, error)
	UpdateDestination(ctx context.Context, id string, p DestinationPatch) error
	DeleteDestination(ctx context.Context, id string) error
	// ReorderDestinations applies every sort-key write or none of them.
	ReorderDestinations(ctx context.Context, updates []SortUpdate) error
}

type PlaceRepository interface {
	ListPlaces(ctx context.Context, f PlaceFilter) ([]RecommendedPlace, error)
	GetPlace(ctx context.Context, id string) (RecommendedPlace, error)
	CreatePlace(ctx context.Context, p RecommendedPlace) (RecommendedPlace, error)
	UpdatePlace(ctx context.Context, id string, p PlacePatch) error
	DeletePlace(ctx context.Context, id string) error
	ReorderPlaces(ctx context.Context, updates []SortUpdate) error
}

type TripRepository interface {
	ListTrips(ctx context.Context) ([]Trip, error)
	GetTrip(ctx context.Context, id string) (Trip, error)
	CreateTrip(ctx context.Context, t Trip) (Trip, error)
	UpdateTrip(ctx context.Context, id string, p TripPatch) error
	DeleteTrip(ctx context.Context, id string) error
}

type QuoteRepository interface {
	ListQuotes(ctx context.Context, f QuoteFilter) ([]QuoteRequest, error)
	GetQuote(ctx context.Context, id string) (QuoteRequest, error)
	CreateQuote(ctx context.Context, q QuoteRequest) (QuoteRequest, error)
	// SetQuoted flips the worked flag; quotedAt is stamped when quoted
	// and cleared when un-quoted, atomically with the flag.
	SetQuoted(ctx context.Context, id string, quoted bool) error
	DeleteQuote(ctx context.Context, id string) error
}

type CountryRepository interface {
	ListCountries(ctx context.Context) ([]Country, error)
	CreateCountry(ctx context.Context, c Country) (Country, error)
}

// Repositories is the full store handle the app layer is wired with.
// Both the mongo and the memory implementations satisfy it.
type Repositories interface {
	HotelRepository
	DestinationRepository
	PlaceRepository
	TripRepository
	QuoteRepository
	CountryRepository
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
	// DelPrefix drops every key under the prefix; used after admin writes.
	DelPrefix(ctx context.Context, prefix string) error
}

// ImageStore abstracts the two image backends (inline data URLs and the
// remote blob store) behind one pair of operations so callers never
// branch on the variant.
type ImageStore interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
	Delete(ctx context.Context, ref string) error
}
