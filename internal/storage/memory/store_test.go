package memory_test

import (
	"context"
	"errors"
	"testing"

	"atlas_travel/internal/domain"
	"atlas_travel/internal/storage/memory"
)

func ptr[T any](v T) *T { return &v }

func seedHotel(t *testing.T, s *memory.Store) domain.Hotel {
	t.Helper()
	h, err := s.CreateHotel(context.Background(), domain.Hotel{
		Name:    "Mövenpick Petra",
		Country: "Jordan",
		City:    "Wadi Musa",
		Stars:   5,
		Price:   180,
	})
	if err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	return h
}

func TestHotel_CreateThenGetRoundtrip(t *testing.T) {
	s := memory.New()
	created := seedHotel(t, s)

	if created.ID == "" {
		t.Fatal("create must assign an id")
	}
	if created.CreatedAt == nil || created.UpdatedAt == nil {
		t.Fatal("create must stamp createdAt and updatedAt")
	}

	got, err := s.GetHotel(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != created.Name || got.City != created.City || got.Stars != created.Stars {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", got, created)
	}
}

func TestHotel_GetAbsentIsNotFound(t *testing.T) {
	s := memory.New()
	_, err := s.GetHotel(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestHotel_PartialUpdatesAreDisjoint(t *testing.T) {
	s := memory.New()
	h := seedHotel(t, s)

	if err := s.UpdateHotel(context.Background(), h.ID, domain.HotelPatch{Price: ptr(220.0)}); err != nil {
		t.Fatalf("update price: %v", err)
	}
	if err := s.UpdateHotel(context.Background(), h.ID, domain.HotelPatch{City: ptr("Petra")}); err != nil {
		t.Fatalf("update city: %v", err)
	}

	got, err := s.GetHotel(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Price != 220 {
		t.Fatalf("price = %v, second patch must not revert the first", got.Price)
	}
	if got.City != "Petra" {
		t.Fatalf("city = %q", got.City)
	}
	if got.Name != h.Name {
		t.Fatalf("untouched field changed: %q", got.Name)
	}
}

func TestHotel_UpdatedAtStrictlyIncreases(t *testing.T) {
	s := memory.New()
	h := seedHotel(t, s)

	prev := *h.UpdatedAt
	for i := 0; i < 3; i++ {
		if err := s.UpdateHotel(context.Background(), h.ID, domain.HotelPatch{Price: ptr(float64(200 + i))}); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := s.GetHotel(context.Background(), h.ID)
		if !got.UpdatedAt.After(prev) {
			t.Fatalf("updatedAt %v not after %v", got.UpdatedAt, prev)
		}
		prev = *got.UpdatedAt
	}
}

func TestHotel_UpdateAbsentIsNotFound(t *testing.T) {
	s := memory.New()
	err := s.UpdateHotel(context.Background(), "missing", domain.HotelPatch{Price: ptr(1.0)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestHotel_DeleteIsIdempotent(t *testing.T) {
	s := memory.New()
	h := seedHotel(t, s)

	if err := s.DeleteHotel(context.Background(), h.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.DeleteHotel(context.Background(), h.ID); err != nil {
		t.Fatalf("repeat delete must be a no-op, got %v", err)
	}
	if _, err := s.GetHotel(context.Background(), h.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestHotel_EmptyListIsEmptySlice(t *testing.T) {
	s := memory.New()
	out, err := s.ListHotels(context.Background(), domain.HotelFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestHotel_ListFilters(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	mk := func(name string, active, featured bool) {
		_, err := s.CreateHotel(ctx, domain.Hotel{Name: name, Stars: 3, IsActive: active, IsFeatured: featured})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	mk("A", true, true)
	mk("B", true, false)
	mk("C", false, true)

	out, err := s.ListHotels(ctx, domain.HotelFilter{Active: ptr(true), Featured: ptr(true)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].Name != "A" {
		t.Fatalf("unexpected filter result: %+v", out)
	}
}

func seedDestinations(t *testing.T, s *memory.Store) []domain.Destination {
	t.Helper()
	ctx := context.Background()
	var out []domain.Destination
	for i, name := range []string{"Petra", "Wadi Rum", "Aqaba"} {
		d, err := s.CreateDestination(ctx, domain.Destination{
			CountryID: "jo", Name: name, IsActive: true, SortOrder: i,
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		out = append(out, d)
	}
	return out
}

func TestReorder_SwapLeavesThirdSiblingAlone(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	ds := seedDestinations(t, s)

	err := s.ReorderDestinations(ctx, []domain.SortUpdate{
		{ID: ds[0].ID, SortOrder: 1},
		{ID: ds[1].ID, SortOrder: 0},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}

	got, err := s.ListDestinations(ctx, domain.DestinationFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 destinations, got %d", len(got))
	}
	// sorted by sortOrder: Wadi Rum, Petra, Aqaba
	if got[0].Name != "Wadi Rum" || got[1].Name != "Petra" || got[2].Name != "Aqaba" {
		t.Fatalf("order after swap: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
	if got[2].SortOrder != 2 {
		t.Fatalf("third sibling sortOrder changed to %d", got[2].SortOrder)
	}
}

func TestReorder_UnknownIDFailsWholeBatch(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	ds := seedDestinations(t, s)

	err := s.ReorderDestinations(ctx, []domain.SortUpdate{
		{ID: ds[0].ID, SortOrder: 9},
		{ID: "missing", SortOrder: 0},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}

	got, _ := s.GetDestination(ctx, ds[0].ID)
	if got.SortOrder != 0 {
		t.Fatalf("failed batch must not apply partially, sortOrder = %d", got.SortOrder)
	}
}

func TestQuote_CreateIgnoresClientQuotedFields(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	q, err := s.CreateQuote(ctx, domain.QuoteRequest{
		FullName:       "Lina Haddad",
		Email:          "lina@example.com",
		PhoneNumber:    "+962790000000",
		Destination:    "Petra",
		TripType:       domain.TripTypeTour,
		NumberOfAdults: 2,
		IsQuoted:       true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.IsQuoted || q.QuotedAt != nil {
		t.Fatalf("new quote must start unquoted: %+v", q)
	}
	if q.RequestedAt == nil {
		t.Fatal("requestedAt must be stamped on create")
	}
}

func TestQuote_SetQuotedTogglesQuotedAt(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	q, err := s.CreateQuote(ctx, domain.QuoteRequest{
		FullName: "Lina Haddad", Email: "lina@example.com", PhoneNumber: "+962790000000",
		Destination: "Petra", TripType: domain.TripTypeTour, NumberOfAdults: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.SetQuoted(ctx, q.ID, true); err != nil {
		t.Fatalf("set quoted: %v", err)
	}
	got, _ := s.GetQuote(ctx, q.ID)
	if !got.IsQuoted || got.QuotedAt == nil {
		t.Fatalf("expected quoted with timestamp: %+v", got)
	}

	if err := s.SetQuoted(ctx, q.ID, false); err != nil {
		t.Fatalf("unset quoted: %v", err)
	}
	got, _ = s.GetQuote(ctx, q.ID)
	if got.IsQuoted || got.QuotedAt != nil {
		t.Fatalf("expected quotedAt cleared: %+v", got)
	}
}

func TestQuote_ListNewestFirstAndFiltered(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	mk := func(name string) domain.QuoteRequest {
		q, err := s.CreateQuote(ctx, domain.QuoteRequest{
			FullName: name, Email: "x@example.com", PhoneNumber: "1",
			Destination: "Petra", TripType: domain.TripTypeCustom, NumberOfAdults: 1,
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		return q
	}
	first := mk("first")
	_ = mk("second")
	third := mk("third")

	all, err := s.ListQuotes(ctx, domain.QuoteFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].FullName != "third" || all[2].FullName != "first" {
		t.Fatalf("expected newest first, got %+v", all)
	}

	if err := s.SetQuoted(ctx, first.ID, true); err != nil {
		t.Fatalf("set quoted: %v", err)
	}
	pending, err := s.ListQuotes(ctx, domain.QuoteFilter{Quoted: ptr(false)})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	_ = third
}

func TestDestination_ListByCountryAndActive(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	_, _ = s.CreateDestination(ctx, domain.Destination{CountryID: "jo", Name: "Petra", IsActive: true})
	_, _ = s.CreateDestination(ctx, domain.Destination{CountryID: "jo", Name: "Hidden", IsActive: false})
	_, _ = s.CreateDestination(ctx, domain.Destination{CountryID: "tr", Name: "Istanbul", IsActive: true})

	out, err := s.ListDestinations(ctx, domain.DestinationFilter{CountryID: ptr("jo"), Active: ptr(true)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Petra" {
		t.Fatalf("unexpected: %+v", out)
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	h, err := s.CreateHotel(ctx, domain.Hotel{Name: "Alpha", Stars: 3, Amenities: []string{"wifi"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, _ := s.GetHotel(ctx, h.ID)
	got.Amenities[0] = "mutated"

	again, _ := s.GetHotel(ctx, h.ID)
	if again.Amenities[0] != "wifi" {
		t.Fatal("store must not share slice backing arrays with callers")
	}
}
