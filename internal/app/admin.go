package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"atlas_travel/internal/domain"
)

type MoveDir string

const (
	MoveUp   MoveDir = "up"
	MoveDown MoveDir = "down"
)

// ImageSet assigns each entity its image backend. Hotels, trips and
// destinations keep images inline in the document; recommended places
// go to the blob store.
type ImageSet struct {
	Hotels       domain.ImageStore
	Trips        domain.ImageStore
	Destinations domain.ImageStore
	Places       domain.ImageStore
}

// Admin owns every write path of the console. Inputs are validated
// before they reach the store; successful writes drop the catalog cache.
type Admin struct {
	repo     domain.Repositories
	images   ImageSet
	cache    domain.Cache
	validate *validator.Validate
}

func NewAdmin(repo domain.Repositories, images ImageSet, cache domain.Cache) *Admin {
	return &Admin{
		repo:     repo,
		images:   images,
		cache:    cache,
		validate: validator.New(),
	}
}

// invalidate is best-effort: a stale cache entry expires on its own,
// failing the admin write over it would be worse.
func (a *Admin) invalidate(ctx context.Context) {
	if a.cache == nil {
		return
	}
	if err := a.cache.DelPrefix(ctx, "catalog:"); err != nil {
		log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

// deleteImage is the one deliberate swallow in the error policy: a
// failed image cleanup is logged and never blocks the entity delete.
func deleteImage(ctx context.Context, store domain.ImageStore, ref string) {
	if store == nil || ref == "" {
		return
	}
	if err := store.Delete(ctx, ref); err != nil {
		log.Warn().Err(err).Str("ref", ref).Msg("image cleanup failed; continuing")
	}
}

// ---- countries ----

func (a *Admin) Countries(ctx context.Context) ([]domain.Country, error) {
	return a.repo.ListCountries(ctx)
}

// ---- hotels ----

func (a *Admin) Hotels(ctx context.Context) ([]domain.Hotel, error) {
	return a.repo.ListHotels(ctx, domain.HotelFilter{})
}

func (a *Admin) Hotel(ctx context.Context, id string) (domain.Hotel, error) {
	return a.repo.GetHotel(ctx, id)
}

func (a *Admin) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	if err := a.validate.Struct(h); err != nil {
		return domain.Hotel{}, err
	}
	created, err := a.repo.CreateHotel(ctx, h)
	if err != nil {
		return domain.Hotel{}, err
	}
	a.invalidate(ctx)
	return created, nil
}

func (a *Admin) UpdateHotel(ctx context.Context, id string, p domain.HotelPatch) error {
	if err := a.validate.Struct(p); err != nil {
		return err
	}
	if err := a.repo.UpdateHotel(ctx, id, p); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

func (a *Admin) DeleteHotel(ctx context.Context, id string) error {
	h, err := a.repo.GetHotel(ctx, id)
	if err == nil {
		deleteImage(ctx, a.images.Hotels, h.PhotoURL)
	}
	if err := a.repo.DeleteHotel(ctx, id); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

// ---- trips ----

func (a *Admin) Trips(ctx context.Context) ([]domain.Trip, error) {
	return a.repo.ListTrips(ctx)
}

func (a *Admin) Trip(ctx context.Context, id string) (domain.Trip, error) {
	return a.repo.GetTrip(ctx, id)
}

func (a *Admin) CreateTrip(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	if t.Status == "" {
		t.Status = domain.TripDraft
	}
	if err := a.validate.Struct(t); err != nil {
		return domain.Trip{}, err
	}
	created, err := a.repo.CreateTrip(ctx, t)
	if err != nil {
		return domain.Trip{}, err
	}
	a.invalidate(ctx)
	return created, nil
}

func (a *Admin) UpdateTrip(ctx context.Context, id string, p domain.TripPatch) error {
	if err := a.validate.Struct(p); err != nil {
		return err
	}
	if err := a.repo.UpdateTrip(ctx, id, p); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

func (a *Admin) DeleteTrip(ctx context.Context, id string) error {
	t, err := a.repo.GetTrip(ctx, id)
	if err == nil {
		deleteImage(ctx, a.images.Trips, t.PhotoURL)
	}
	if err := a.repo.DeleteTrip(ctx, id); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

// ---- destinations ----

func (a *Admin) Destinations(ctx context.Context) ([]domain.Destination, error) {
	return a.repo.ListDestinations(ctx, domain.DestinationFilter{})
}

func (a *Admin) Destination(ctx context.Context, id string) (domain.Destination, error) {
	return a.repo.GetDestination(ctx, id)
}

func (a *Admin) CreateDestination(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	if err := a.validate.Struct(d); err != nil {
		return domain.Destination{}, err
	}
	created, err := a.repo.CreateDestination(ctx, d)
	if err != nil {
		return domain.Destination{}, err
	}
	a.invalidate(ctx)
	return created, nil
}

func (a *Admin) UpdateDestination(ctx context.Context, id string, p domain.DestinationPatch) error {
	if err := a.validate.Struct(p); err != nil {
		return err
	}
	if err := a.repo.UpdateDestination(ctx, id, p); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

func (a *Admin) DeleteDestination(ctx context.Context, id string) error {
	d, err := a.repo.GetDestination(ctx, id)
	if err == nil {
		deleteImage(ctx, a.images.Destinations, d.PhotoURL)
	}
	if err := a.repo.DeleteDestination(ctx, id); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

// MoveDestination swaps the sort key of the destination with its
// neighbor in the given direction. Moving past either end is a no-op.
func (a *Admin) MoveDestination(ctx context.Context, id string, dir MoveDir) error {
	ds, err := a.repo.ListDestinations(ctx, domain.DestinationFilter{})
	if err != nil {
		return err
	}
	updates, err := swapWith(ds, id, dir, func(d domain.Destination) (string, int) {
		return d.ID, d.SortOrder
	})
	if err != nil || updates == nil {
		return err
	}
	if err := a.repo.ReorderDestinations(ctx, updates); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

// ---- recommended places ----

func (a *Admin) Places(ctx context.Context) ([]domain.RecommendedPlace, error) {
	return a.repo.ListPlaces(ctx, domain.PlaceFilter{})
}

func (a *Admin) Place(ctx context.Context, id string) (domain.RecommendedPlace, error) {
	return a.repo.GetPlace(ctx, id)
}

func (a *Admin) CreatePlace(ctx context.Context, p domain.RecommendedPlace) (domain.RecommendedPlace, error) {
	if err := a.validate.Struct(p); err != nil {
		return domain.RecommendedPlace{}, err
	}
	created, err := a.repo.CreatePlace(ctx, p)
	if err != nil {
		return domain.RecommendedPlace{}, err
	}
	a.invalidate(ctx)
	return created, nil
}

func (a *Admin) UpdatePlace(ctx context.Context, id string, p domain.PlacePatch) error {
	if err := a.validate.Struct(p); err != nil {
		return err
	}
	if err := a.repo.UpdatePlace(ctx, id, p); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

func (a *Admin) DeletePlace(ctx context.Context, id string) error {
	p, err := a.repo.GetPlace(ctx, id)
	if err == nil {
		deleteImage(ctx, a.images.Places, p.PhotoURL)
	}
	if err := a.repo.DeletePlace(ctx, id); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

// MovePlace reorders among siblings of the same destination only.
func (a *Admin) MovePlace(ctx context.Context, id string, dir MoveDir) error {
	p, err := a.repo.GetPlace(ctx, id)
	if err != nil {
		return err
	}
	ps, err := a.repo.ListPlaces(ctx, domain.PlaceFilter{DestinationID: &p.DestinationID})
	if err != nil {
		return err
	}
	updates, err := swapWith(ps, id, dir, func(p domain.RecommendedPlace) (string, int) {
		return p.ID, p.SortOrder
	})
	if err != nil || updates == nil {
		return err
	}
	if err := a.repo.ReorderPlaces(ctx, updates); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

// swapWith computes the two-element transposition for a move. Returns a
// nil slice when the element is already at the edge.
func swapWith[T any](siblings []T, id string, dir MoveDir, key func(T) (string, int)) ([]domain.SortUpdate, error) {
	idx := -1
	for i, s := range siblings {
		if sid, _ := key(s); sid == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	other := idx - 1
	if dir == MoveDown {
		other = idx + 1
	}
	if other < 0 || other >= len(siblings) {
		return nil, nil
	}
	curID, curKey := key(siblings[idx])
	nbID, nbKey := key(siblings[other])
	return []domain.SortUpdate{
		{ID: curID, SortOrder: nbKey},
		{ID: nbID, SortOrder: curKey},
	}, nil
}

// ---- quote requests ----

func (a *Admin) Quotes(ctx context.Context, f domain.QuoteFilter) ([]domain.QuoteRequest, error) {
	return a.repo.ListQuotes(ctx, f)
}

func (a *Admin) Quote(ctx context.Context, id string) (domain.QuoteRequest, error) {
	return a.repo.GetQuote(ctx, id)
}

// SubmitQuote is shared with the public site; isQuoted and the
// timestamps are store-assigned regardless of the input.
func (a *Admin) SubmitQuote(ctx context.Context, q domain.QuoteRequest) (domain.QuoteRequest, error) {
	if err := a.validate.Struct(q); err != nil {
		return domain.QuoteRequest{}, err
	}
	return a.repo.CreateQuote(ctx, q)
}

func (a *Admin) SetQuoted(ctx context.Context, id string, quoted bool) error {
	return a.repo.SetQuoted(ctx, id, quoted)
}

func (a *Admin) DeleteQuote(ctx context.Context, id string) error {
	return a.repo.DeleteQuote(ctx, id)
}

// ---- images ----

// UploadImage routes the bytes to the entity's configured backend and
// returns the reference to store on the document.
func (a *Admin) UploadImage(ctx context.Context, entity, filename string, data []byte) (string, error) {
	var store domain.ImageStore
	switch entity {
	case "hotels":
		store = a.images.Hotels
	case "trips":
		store = a.images.Trips
	case "destinations":
		store = a.images.Destinations
	case "places":
		store = a.images.Places
	default:
		return "", domain.NewError(domain.KindNotFound, fmt.Sprintf("unknown image entity %q", entity), nil)
	}
	return store.Upload(ctx, filename, data)
}
