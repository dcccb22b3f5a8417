package mongo

import (
	"errors"
	"fmt"
	"testing"

	driver "go.mongodb.org/mongo-driver/mongo"

	"atlas_travel/internal/domain"
)

func TestNormalizeErr_Nil(t *testing.T) {
	if got := normalizeErr(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestNormalizeErr_NoDocuments(t *testing.T) {
	got := normalizeErr(fmt.Errorf("decode: %w", driver.ErrNoDocuments))
	if !errors.Is(got, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", got)
	}
}

func TestNormalizeErr_DuplicateKey(t *testing.T) {
	err := driver.WriteException{WriteErrors: driver.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	got := normalizeErr(err)
	if domain.Kind(got) != domain.KindAlreadyExists {
		t.Fatalf("kind = %s, want already-exists", domain.Kind(got))
	}
}

func TestNormalizeErr_UnauthorizedCommand(t *testing.T) {
	err := driver.CommandError{Code: codeUnauthorized, Message: "not authorized on db"}
	got := normalizeErr(err)
	if domain.Kind(got) != domain.KindPermissionDenied {
		t.Fatalf("kind = %s, want permission-denied", domain.Kind(got))
	}
}

func TestNormalizeErr_UnauthorizedWrite(t *testing.T) {
	err := driver.WriteException{WriteErrors: driver.WriteErrors{{Code: codeUnauthorized, Message: "not authorized"}}}
	got := normalizeErr(err)
	if domain.Kind(got) != domain.KindPermissionDenied {
		t.Fatalf("kind = %s, want permission-denied", domain.Kind(got))
	}
}

func TestNormalizeErr_AlreadyNormalizedPassesThrough(t *testing.T) {
	orig := domain.NewError(domain.KindNotFound, "gone", nil)
	if got := normalizeErr(orig); got != error(orig) {
		t.Fatalf("expected pass-through, got %v", got)
	}
}

func TestNormalizeErr_UnknownKeepsMessage(t *testing.T) {
	got := normalizeErr(errors.New("connection reset"))
	if domain.Kind(got) != domain.KindUnknown || got.Error() != "connection reset" {
		t.Fatalf("got %v (kind %s)", got, domain.Kind(got))
	}
}
