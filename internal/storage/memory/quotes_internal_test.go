package memory

import (
	"context"
	"testing"

	"atlas_travel/internal/domain"
)

func TestListQuotes_ToleratesMissingRequestedAt(t *testing.T) {
	s := New()
	ctx := context.Background()

	stamped, err := s.CreateQuote(ctx, domain.QuoteRequest{
		FullName: "Lina Haddad", Email: "lina@example.com", PhoneNumber: "1",
		Destination: "Petra", TripType: domain.TripTypeTour, NumberOfAdults: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// imported records may predate the requestedAt stamp
	s.mu.Lock()
	s.quotes["legacy"] = domain.QuoteRequest{ID: "legacy", FullName: "Old Import"}
	s.mu.Unlock()

	out, err := s.ListQuotes(ctx, domain.QuoteFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(out))
	}
	if out[0].ID != stamped.ID || out[1].ID != "legacy" {
		t.Fatalf("unstamped record must sort last: %+v", out)
	}
}
