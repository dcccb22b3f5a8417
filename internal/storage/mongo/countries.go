package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atlas_travel/internal/adapters/observability"
	"atlas_travel/internal/domain"
)

func (r *Repo) ListCountries(ctx context.Context) ([]domain.Country, error) {
	cur, err := r.coll(collCountries).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		observability.ObserveStore(collCountries, "list", "error")
		return nil, normalizeErr(err)
	}
	out := []domain.Country{}
	err = cur.All(ctx, &out)
	observability.ObserveStore(collCountries, "list", outcome(err))
	if err != nil {
		return nil, normalizeErr(err)
	}
	return out, nil
}

func (r *Repo) CreateCountry(ctx context.Context, c domain.Country) (domain.Country, error) {
	c.ID = newID()
	_, err := r.coll(collCountries).InsertOne(ctx, c)
	observability.ObserveStore(collCountries, "create", outcome(err))
	if err != nil {
		return domain.Country{}, normalizeErr(err)
	}
	return c, nil
}
