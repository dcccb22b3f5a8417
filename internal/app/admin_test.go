package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"

	"atlas_travel/internal/app"
	"atlas_travel/internal/domain"
	"atlas_travel/internal/storage/memory"
)

// ---- fake image store ----

type fakeImages struct {
	uploads  int
	deleted  []string
	failDel  bool
	uploadTo string
}

func (f *fakeImages) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	f.uploads++
	return f.uploadTo + filename, nil
}

func (f *fakeImages) Delete(ctx context.Context, ref string) error {
	if f.failDel {
		return errors.New("storage unreachable")
	}
	f.deleted = append(f.deleted, ref)
	return nil
}

func newAdmin(repo domain.Repositories, img *fakeImages) (*app.Admin, *fakeCache) {
	cache := &fakeCache{store: map[string]any{}}
	images := app.ImageSet{Hotels: img, Trips: img, Destinations: img, Places: img}
	return app.NewAdmin(repo, images, cache), cache
}

func validQuote() domain.QuoteRequest {
	return domain.QuoteRequest{
		FullName:       "Lina Haddad",
		Email:          "lina@example.com",
		PhoneNumber:    "+962790000000",
		Destination:    "Petra",
		TravelDate:     "2026-10-01",
		Duration:       5,
		NumberOfAdults: 2,
		TripType:       domain.TripTypeTour,
	}
}

func TestCreateHotel_RejectsInvalidStars(t *testing.T) {
	admin, _ := newAdmin(memory.New(), &fakeImages{})

	_, err := admin.CreateHotel(context.Background(), domain.Hotel{
		Name: "Bad", Country: "Jordan", Stars: 0,
	})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateHotel_InvalidatesCatalogCache(t *testing.T) {
	admin, cache := newAdmin(memory.New(), &fakeImages{})
	cache.store["catalog:hotels:featured"] = []domain.Hotel{{Name: "stale"}}

	_, err := admin.CreateHotel(context.Background(), domain.Hotel{
		Name: "Taybet Zaman", Country: "Jordan", Stars: 4,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := cache.store["catalog:hotels:featured"]; ok {
		t.Fatal("catalog cache entry should have been dropped")
	}
}

func TestDeleteHotel_SurvivesImageStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	img := &fakeImages{failDel: true}
	admin, _ := newAdmin(repo, img)

	h, err := admin.CreateHotel(ctx, domain.Hotel{
		Name: "Taybet Zaman", Country: "Jordan", Stars: 4, PhotoURL: "data:image/png;base64,xyz",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := admin.DeleteHotel(ctx, h.ID); err != nil {
		t.Fatalf("delete must swallow image failures, got %v", err)
	}
	if _, err := repo.GetHotel(ctx, h.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("hotel should be gone, got %v", err)
	}
}

func TestDeletePlace_RemovesBlobImage(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	img := &fakeImages{}
	admin, _ := newAdmin(repo, img)

	p, err := admin.CreatePlace(ctx, domain.RecommendedPlace{
		DestinationID: "d1", Name: "Treasury", PhotoURL: "https://blobs.example.com/images/places/abc.jpg",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := admin.DeletePlace(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(img.deleted) != 1 || img.deleted[0] != p.PhotoURL {
		t.Fatalf("expected image delete for %s, got %v", p.PhotoURL, img.deleted)
	}
}

func seedOrdered(t *testing.T, repo domain.Repositories) []domain.Destination {
	t.Helper()
	ctx := context.Background()
	var out []domain.Destination
	for i, name := range []string{"Petra", "Wadi Rum", "Aqaba"} {
		d, err := repo.CreateDestination(ctx, domain.Destination{
			CountryID: "jo", Name: name, IsActive: true, SortOrder: i,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
		out = append(out, d)
	}
	return out
}

func TestMoveDestination_SwapsWithNeighbor(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	admin, _ := newAdmin(repo, &fakeImages{})
	ds := seedOrdered(t, repo)

	if err := admin.MoveDestination(ctx, ds[1].ID, app.MoveUp); err != nil {
		t.Fatalf("move: %v", err)
	}

	a, _ := repo.GetDestination(ctx, ds[0].ID)
	b, _ := repo.GetDestination(ctx, ds[1].ID)
	c, _ := repo.GetDestination(ctx, ds[2].ID)
	if b.SortOrder != 0 || a.SortOrder != 1 {
		t.Fatalf("expected swap, got %d and %d", b.SortOrder, a.SortOrder)
	}
	if c.SortOrder != 2 {
		t.Fatalf("third sibling must be untouched, got %d", c.SortOrder)
	}
}

func TestMoveDestination_TopEdgeIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	admin, _ := newAdmin(repo, &fakeImages{})
	ds := seedOrdered(t, repo)

	if err := admin.MoveDestination(ctx, ds[0].ID, app.MoveUp); err != nil {
		t.Fatalf("edge move must be a no-op, got %v", err)
	}
	got, _ := repo.GetDestination(ctx, ds[0].ID)
	if got.SortOrder != 0 {
		t.Fatalf("sortOrder changed at edge: %d", got.SortOrder)
	}
}

func TestMoveDestination_UnknownID(t *testing.T) {
	repo := memory.New()
	admin, _ := newAdmin(repo, &fakeImages{})
	seedOrdered(t, repo)

	err := admin.MoveDestination(context.Background(), "missing", app.MoveDown)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestMovePlace_ScopedToOwnDestination(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	admin, _ := newAdmin(repo, &fakeImages{})

	p1, _ := repo.CreatePlace(ctx, domain.RecommendedPlace{DestinationID: "d1", Name: "A", SortOrder: 0})
	p2, _ := repo.CreatePlace(ctx, domain.RecommendedPlace{DestinationID: "d1", Name: "B", SortOrder: 1})
	other, _ := repo.CreatePlace(ctx, domain.RecommendedPlace{DestinationID: "d2", Name: "X", SortOrder: 0})

	if err := admin.MovePlace(ctx, p2.ID, app.MoveUp); err != nil {
		t.Fatalf("move: %v", err)
	}

	a, _ := repo.GetPlace(ctx, p1.ID)
	b, _ := repo.GetPlace(ctx, p2.ID)
	o, _ := repo.GetPlace(ctx, other.ID)
	if b.SortOrder != 0 || a.SortOrder != 1 {
		t.Fatalf("expected swap, got %d and %d", b.SortOrder, a.SortOrder)
	}
	if o.SortOrder != 0 {
		t.Fatalf("sibling of another destination moved: %d", o.SortOrder)
	}
}

func TestSubmitQuote_ValidatesInput(t *testing.T) {
	admin, _ := newAdmin(memory.New(), &fakeImages{})

	q := validQuote()
	q.Email = "not-an-email"
	_, err := admin.SubmitQuote(context.Background(), q)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitQuote_StartsUnquoted(t *testing.T) {
	admin, _ := newAdmin(memory.New(), &fakeImages{})

	q := validQuote()
	q.IsQuoted = true
	created, err := admin.SubmitQuote(context.Background(), q)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.IsQuoted || created.QuotedAt != nil {
		t.Fatalf("submitted quote must start unquoted: %+v", created)
	}
}

func TestUploadImage_RoutesByEntity(t *testing.T) {
	hotels := &fakeImages{uploadTo: "data:"}
	places := &fakeImages{uploadTo: "https://blobs.example.com/"}
	cache := &fakeCache{}
	admin := app.NewAdmin(memory.New(), app.ImageSet{
		Hotels: hotels, Trips: hotels, Destinations: hotels, Places: places,
	}, cache)

	url, err := admin.UploadImage(context.Background(), "places", "pic.jpg", []byte{0xFF, 0xD8})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://blobs.example.com/pic.jpg" {
		t.Fatalf("url = %s", url)
	}
	if places.uploads != 1 || hotels.uploads != 0 {
		t.Fatalf("wrong backend used: places=%d hotels=%d", places.uploads, hotels.uploads)
	}

	if _, err := admin.UploadImage(context.Background(), "countries", "x", nil); domain.Kind(err) != domain.KindNotFound {
		t.Fatalf("unknown entity should be not-found, got %v", err)
	}
}
