package app

import (
	"context"
	"fmt"
	"time"

	"atlas_travel/internal/domain"
)

// Catalog serves the public marketing site: cached, read-only views of
// the active content. Admin writes invalidate the whole catalog: prefix.
type Catalog struct {
	repo     domain.Repositories
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalog(repo domain.Repositories, cache domain.Cache, ttl time.Duration) *Catalog {
	return &Catalog{repo: repo, cache: cache, cacheTTL: ttl}
}

func (s *Catalog) ttlSec() int { return int(s.cacheTTL.Seconds()) }

func ptrBool(b bool) *bool { return &b }

func (s *Catalog) ActiveDestinations(ctx context.Context) ([]domain.Destination, error) {
	const key = "catalog:destinations"
	var out []domain.Destination
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	ds, err := s.repo.ListDestinations(ctx, domain.DestinationFilter{Active: ptrBool(true)})
	if err != nil {
		return nil, err
	}
	cp := append([]domain.Destination{}, ds...)
	_ = s.cache.Set(ctx, key, cp, s.ttlSec())
	return cp, nil
}

func (s *Catalog) Destination(ctx context.Context, id string) (domain.Destination, error) {
	key := fmt.Sprintf("catalog:destination:%s", id)
	var d domain.Destination
	if ok, _ := s.cache.Get(ctx, key, &d); ok {
		return d, nil
	}
	d, err := s.repo.GetDestination(ctx, id)
	if err != nil {
		return domain.Destination{}, err
	}
	_ = s.cache.Set(ctx, key, d, s.ttlSec())
	return d, nil
}

func (s *Catalog) PlacesFor(ctx context.Context, destinationID string) ([]domain.RecommendedPlace, error) {
	key := fmt.Sprintf("catalog:places:%s", destinationID)
	var out []domain.RecommendedPlace
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	ps, err := s.repo.ListPlaces(ctx, domain.PlaceFilter{
		DestinationID: &destinationID,
		Active:        ptrBool(true),
	})
	if err != nil {
		return nil, err
	}
	cp := append([]domain.RecommendedPlace{}, ps...)
	_ = s.cache.Set(ctx, key, cp, s.ttlSec())
	return cp, nil
}

func (s *Catalog) FeaturedHotels(ctx context.Context) ([]domain.Hotel, error) {
	const key = "catalog:hotels:featured"
	var out []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	hs, err := s.repo.ListHotels(ctx, domain.HotelFilter{
		Active:   ptrBool(true),
		Featured: ptrBool(true),
	})
	if err != nil {
		return nil, err
	}
	cp := append([]domain.Hotel{}, hs...)
	_ = s.cache.Set(ctx, key, cp, s.ttlSec())
	return cp, nil
}

func (s *Catalog) Hotel(ctx context.Context, id string) (domain.Hotel, error) {
	key := fmt.Sprintf("catalog:hotel:%s", id)
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, s.ttlSec())
	return h, nil
}
