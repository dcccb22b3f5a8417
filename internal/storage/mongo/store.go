// Package mongo implements the collection repositories on top of a
// MongoDB database handle. One Repo serves every collection; all error
// paths leave through normalizeErr so callers only ever see the
// normalized taxonomy.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"atlas_travel/internal/adapters/observability"
	"atlas_travel/internal/domain"
)

const (
	collCountries    = "countries"
	collDestinations = "destinations"
	collPlaces       = "recommendedPlaces"
	collHotels       = "hotels"
	collTrips        = "trips"
	collQuotes       = "quoteRequests"
)

type Repo struct {
	db *driver.Database
	// direct skips the multi-document transaction in reorders so a
	// single standalone mongod (no replica set) can be used in dev.
	direct bool
}

func New(db *driver.Database, directWrites bool) *Repo {
	return &Repo{db: db, direct: directWrites}
}

func (r *Repo) coll(name string) *driver.Collection { return r.db.Collection(name) }

// newID returns the store-assigned identity for a fresh document.
func newID() string { return primitive.NewObjectID().Hex() }

func now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// applySortUpdates writes every sibling's sort key in one transaction
// (or sequentially in direct mode). updatedAt is refreshed alongside
// each key, matching the normal update path.
func (r *Repo) applySortUpdates(ctx context.Context, coll string, updates []domain.SortUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	apply := func(sc context.Context) error {
		ts := now()
		for _, u := range updates {
			res, err := r.coll(coll).UpdateOne(sc,
				bson.M{"_id": u.ID},
				bson.M{"$set": bson.M{"sortOrder": u.SortOrder, "updatedAt": ts}},
			)
			if err != nil {
				return err
			}
			if res.MatchedCount == 0 {
				return driver.ErrNoDocuments
			}
		}
		return nil
	}

	var err error
	if r.direct {
		err = apply(ctx)
	} else {
		var sess driver.Session
		sess, err = r.db.Client().StartSession()
		if err == nil {
			defer sess.EndSession(ctx)
			_, err = sess.WithTransaction(ctx, func(sc driver.SessionContext) (any, error) {
				return nil, apply(sc)
			})
		}
	}
	observability.ObserveStore(coll, "reorder", outcome(err))
	return normalizeErr(err)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
