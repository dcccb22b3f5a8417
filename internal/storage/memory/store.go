// Package memory is a mutex-guarded, map-backed implementation of the
// repository ports. It backs unit tests and APP_ENV=dev runs that have
// no MongoDB at hand; semantics mirror the mongo package exactly.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"atlas_travel/internal/domain"
)

type Store struct {
	mu           sync.Mutex
	countries    map[string]domain.Country
	destinations map[string]domain.Destination
	places       map[string]domain.RecommendedPlace
	hotels       map[string]domain.Hotel
	trips        map[string]domain.Trip
	quotes       map[string]domain.QuoteRequest
	lastTS       time.Time
}

func New() *Store {
	return &Store{
		countries:    map[string]domain.Country{},
		destinations: map[string]domain.Destination{},
		places:       map[string]domain.RecommendedPlace{},
		hotels:       map[string]domain.Hotel{},
		trips:        map[string]domain.Trip{},
		quotes:       map[string]domain.QuoteRequest{},
	}
}

// now is monotonic per store so updatedAt strictly increases even when
// two writes land within the clock's resolution. Callers hold mu.
func (s *Store) now() time.Time {
	ts := time.Now().UTC()
	if !ts.After(s.lastTS) {
		ts = s.lastTS.Add(time.Millisecond)
	}
	s.lastTS = ts
	return ts
}

func newID() string { return uuid.NewString() }

func tsPtr(t time.Time) *time.Time { return &t }

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func copyHotel(h domain.Hotel) domain.Hotel {
	h.Amenities = copyStrings(h.Amenities)
	if h.Rooms != nil {
		h.Rooms = append([]domain.Room(nil), h.Rooms...)
	}
	return h
}

func copyDestination(d domain.Destination) domain.Destination {
	d.Hotels = copyStrings(d.Hotels)
	return d
}

func copyTrip(t domain.Trip) domain.Trip {
	if t.Legs != nil {
		t.Legs = append([]domain.TripLeg(nil), t.Legs...)
	}
	return t
}

// ---- hotels ----

func (s *Store) ListHotels(_ context.Context, f domain.HotelFilter) ([]domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Hotel{}
	for _, h := range s.hotels {
		if f.Active != nil && h.IsActive != *f.Active {
			continue
		}
		if f.Featured != nil && h.IsFeatured != *f.Featured {
			continue
		}
		out = append(out, copyHotel(h))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetHotel(_ context.Context, id string) (domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return copyHotel(h), nil
}

func (s *Store) CreateHotel(_ context.Context, h domain.Hotel) (domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := s.now()
	h.ID = newID()
	h.CreatedAt, h.UpdatedAt = tsPtr(ts), tsPtr(ts)
	s.hotels[h.ID] = copyHotel(h)
	return h, nil
}

func (s *Store) UpdateHotel(_ context.Context, id string, p domain.HotelPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hotels[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Country != nil {
		h.Country = *p.Country
	}
	if p.City != nil {
		h.City = *p.City
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.PhotoURL != nil {
		h.PhotoURL = *p.PhotoURL
	}
	if p.IsActive != nil {
		h.IsActive = *p.IsActive
	}
	if p.IsFeatured != nil {
		h.IsFeatured = *p.IsFeatured
	}
	if p.Stars != nil {
		h.Stars = *p.Stars
	}
	if p.Price != nil {
		h.Price = *p.Price
	}
	if p.Amenities != nil {
		h.Amenities = copyStrings(*p.Amenities)
	}
	if p.Location != nil {
		h.Location = *p.Location
	}
	if p.Rooms != nil {
		h.Rooms = append([]domain.Room(nil), *p.Rooms...)
	}
	h.UpdatedAt = tsPtr(s.now())
	s.hotels[id] = h
	return nil
}

func (s *Store) DeleteHotel(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hotels, id)
	return nil
}

// ---- destinations ----

func (s *Store) ListDestinations(_ context.Context, f domain.DestinationFilter) ([]domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Destination{}
	for _, d := range s.destinations {
		if f.CountryID != nil && d.CountryID != *f.CountryID {
			continue
		}
		if f.Active != nil && d.IsActive != *f.Active {
			continue
		}
		out = append(out, copyDestination(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (s *Store) GetDestination(_ context.Context, id string) (domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.destinations[id]
	if !ok {
		return domain.Destination{}, domain.ErrNotFound
	}
	return copyDestination(d), nil
}

func (s *Store) CreateDestination(_ context.Context, d domain.Destination) (domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := s.now()
	d.ID = newID()
	d.CreatedAt, d.UpdatedAt = tsPtr(ts), tsPtr(ts)
	s.destinations[d.ID] = copyDestination(d)
	return d, nil
}

func (s *Store) UpdateDestination(_ context.Context, id string, p domain.DestinationPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.destinations[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.CountryID != nil {
		d.CountryID = *p.CountryID
	}
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.PhotoURL != nil {
		d.PhotoURL = *p.PhotoURL
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
	if p.SortOrder != nil {
		d.SortOrder = *p.SortOrder
	}
	if p.Hotels != nil {
		d.Hotels = copyStrings(*p.Hotels)
	}
	d.UpdatedAt = tsPtr(s.now())
	s.destinations[id] = d
	return nil
}

func (s *Store) DeleteDestination(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.destinations, id)
	return nil
}

func (s *Store) ReorderDestinations(_ context.Context, updates []domain.SortUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// validate the whole batch before touching anything
	for _, u := range updates {
		if _, ok := s.destinations[u.ID]; !ok {
			return domain.ErrNotFound
		}
	}
	ts := s.now()
	for _, u := range updates {
		d := s.destinations[u.ID]
		d.SortOrder = u.SortOrder
		d.UpdatedAt = tsPtr(ts)
		s.destinations[u.ID] = d
	}
	return nil
}

// ---- recommended places ----

func (s *Store) ListPlaces(_ context.Context, f domain.PlaceFilter) ([]domain.RecommendedPlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.RecommendedPlace{}
	for _, p := range s.places {
		if f.DestinationID != nil && p.DestinationID != *f.DestinationID {
			continue
		}
		if f.Active != nil && p.IsActive != *f.Active {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (s *Store) GetPlace(_ context.Context, id string) (domain.RecommendedPlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.places[id]
	if !ok {
		return domain.RecommendedPlace{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *Store) CreatePlace(_ context.Context, p domain.RecommendedPlace) (domain.RecommendedPlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := s.now()
	p.ID = newID()
	p.CreatedAt, p.UpdatedAt = tsPtr(ts), tsPtr(ts)
	s.places[p.ID] = p
	return p, nil
}

func (s *Store) UpdatePlace(_ context.Context, id string, patch domain.PlacePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.places[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.DestinationID != nil {
		p.DestinationID = *patch.DestinationID
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.PhotoURL != nil {
		p.PhotoURL = *patch.PhotoURL
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.SortOrder != nil {
		p.SortOrder = *patch.SortOrder
	}
	if patch.DestinationName != nil {
		p.DestinationName = *patch.DestinationName
	}
	p.UpdatedAt = tsPtr(s.now())
	s.places[id] = p
	return nil
}

func (s *Store) DeletePlace(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.places, id)
	return nil
}

func (s *Store) ReorderPlaces(_ context.Context, updates []domain.SortUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range updates {
		if _, ok := s.places[u.ID]; !ok {
			return domain.ErrNotFound
		}
	}
	ts := s.now()
	for _, u := range updates {
		p := s.places[u.ID]
		p.SortOrder = u.SortOrder
		p.UpdatedAt = tsPtr(ts)
		s.places[u.ID] = p
	}
	return nil
}

// ---- trips ----

func (s *Store) ListTrips(_ context.Context) ([]domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Trip{}
	for _, t := range s.trips {
		out = append(out, copyTrip(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetTrip(_ context.Context, id string) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	return copyTrip(t), nil
}

func (s *Store) CreateTrip(_ context.Context, t domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := s.now()
	t.ID = newID()
	t.CreatedAt, t.UpdatedAt = tsPtr(ts), tsPtr(ts)
	s.trips[t.ID] = copyTrip(t)
	return t, nil
}

func (s *Store) UpdateTrip(_ context.Context, id string, p domain.TripPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.PhotoURL != nil {
		t.PhotoURL = *p.PhotoURL
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.Legs != nil {
		t.Legs = append([]domain.TripLeg(nil), *p.Legs...)
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.ClientName != nil {
		t.ClientName = *p.ClientName
	}
	if p.ClientEmail != nil {
		t.ClientEmail = *p.ClientEmail
	}
	t.UpdatedAt = tsPtr(s.now())
	s.trips[id] = t
	return nil
}

func (s *Store) DeleteTrip(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.trips, id)
	return nil
}

// ---- quote requests ----

func (s *Store) ListQuotes(_ context.Context, f domain.QuoteFilter) ([]domain.QuoteRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.QuoteRequest{}
	for _, q := range s.quotes {
		if f.Quoted != nil && q.IsQuoted != *f.Quoted {
			continue
		}
		out = append(out, q)
	}
	// newest first; a missing requestedAt sorts last
	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].RequestedAt, out[j].RequestedAt
		if ri == nil || rj == nil {
			return rj == nil && ri != nil
		}
		return ri.After(*rj)
	})
	return out, nil
}

func (s *Store) GetQuote(_ context.Context, id string) (domain.QuoteRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[id]
	if !ok {
		return domain.QuoteRequest{}, domain.ErrNotFound
	}
	return q, nil
}

func (s *Store) CreateQuote(_ context.Context, q domain.QuoteRequest) (domain.QuoteRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := s.now()
	q.ID = newID()
	q.IsQuoted = false
	q.QuotedAt = nil
	q.RequestedAt = tsPtr(ts)
	q.CreatedAt, q.UpdatedAt = tsPtr(ts), tsPtr(ts)
	s.quotes[q.ID] = q
	return q, nil
}

func (s *Store) SetQuoted(_ context.Context, id string, quoted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	ts := s.now()
	q.IsQuoted = quoted
	if quoted {
		q.QuotedAt = tsPtr(ts)
	} else {
		q.QuotedAt = nil
	}
	q.UpdatedAt = tsPtr(ts)
	s.quotes[id] = q
	return nil
}

func (s *Store) DeleteQuote(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quotes, id)
	return nil
}

// ---- countries ----

func (s *Store) ListCountries(_ context.Context) ([]domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Country{}
	for _, c := range s.countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateCountry(_ context.Context, c domain.Country) (domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = newID()
	s.countries[c.ID] = c
	return c, nil
}
