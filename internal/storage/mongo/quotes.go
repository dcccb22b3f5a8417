package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atlas_travel/internal/adapters/observability"
	"atlas_travel/internal/domain"
)

func (r *Repo) ListQuotes(ctx context.Context, f domain.QuoteFilter) ([]domain.QuoteRequest, error) {
	filter := bson.M{}
	if f.Quoted != nil {
		filter["isQuoted"] = *f.Quoted
	}
	cur, err := r.coll(collQuotes).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}}))
	if err != nil {
		observability.ObserveStore(collQuotes, "list", "error")
		return nil, normalizeErr(err)
	}
	out := []domain.QuoteRequest{}
	err = cur.All(ctx, &out)
	observability.ObserveStore(collQuotes, "list", outcome(err))
	if err != nil {
		return nil, normalizeErr(err)
	}
	return out, nil
}

func (r *Repo) GetQuote(ctx context.Context, id string) (domain.QuoteRequest, error) {
	var q domain.QuoteRequest
	err := r.coll(collQuotes).FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	observability.ObserveStore(collQuotes, "get", outcome(err))
	if err != nil {
		return domain.QuoteRequest{}, normalizeErr(err)
	}
	q.ID = id
	return q, nil
}

func (r *Repo) CreateQuote(ctx context.Context, q domain.QuoteRequest) (domain.QuoteRequest, error) {
	ts := now()
	q.ID = newID()
	q.IsQuoted = false
	q.QuotedAt = nil
	q.RequestedAt = &ts
	q.CreatedAt, q.UpdatedAt = &ts, &ts
	_, err := r.coll(collQuotes).InsertOne(ctx, q)
	observability.ObserveStore(collQuotes, "create", outcome(err))
	if err != nil {
		return domain.QuoteRequest{}, normalizeErr(err)
	}
	return q, nil
}

// SetQuoted keeps the flag and the quotedAt stamp in one write so the
// two can never disagree.
func (r *Repo) SetQuoted(ctx context.Context, id string, quoted bool) error {
	ts := now()
	update := bson.M{}
	if quoted {
		update["$set"] = bson.M{"isQuoted": true, "quotedAt": ts, "updatedAt": ts}
	} else {
		update["$set"] = bson.M{"isQuoted": false, "updatedAt": ts}
		update["$unset"] = bson.M{"quotedAt": ""}
	}
	res, err := r.coll(collQuotes).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err == nil && res.MatchedCount == 0 {
		err = driver.ErrNoDocuments
	}
	observability.ObserveStore(collQuotes, "update", outcome(err))
	return normalizeErr(err)
}

func (r *Repo) DeleteQuote(ctx context.Context, id string) error {
	_, err := r.coll(collQuotes).DeleteOne(ctx, bson.M{"_id": id})
	observability.ObserveStore(collQuotes, "delete", outcome(err))
	return normalizeErr(err)
}
