package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atlas_travel/internal/adapters/observability"
	"atlas_travel/internal/domain"
)

func (r *Repo) ListDestinations(ctx context.Context, f domain.DestinationFilter) ([]domain.Destination, error) {
	filter := bson.M{}
	if f.CountryID != nil {
		filter["countryId"] = *f.CountryID
	}
	if f.Active != nil {
		filter["isActive"] = *f.Active
	}
	cur, err := r.coll(collDestinations).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}}))
	if err != nil {
		observability.ObserveStore(collDestinations, "list", "error")
		return nil, normalizeErr(err)
	}
	out := []domain.Destination{}
	err = cur.All(ctx, &out)
	observability.ObserveStore(collDestinations, "list", outcome(err))
	if err != nil {
		return nil, normalizeErr(err)
	}
	return out, nil
}

func (r *Repo) GetDestination(ctx context.Context, id string) (domain.Destination, error) {
	var d domain.Destination
	err := r.coll(collDestinations).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	observability.ObserveStore(collDestinations, "get", outcome(err))
	if err != nil {
		return domain.Destination{}, normalizeErr(err)
	}
	d.ID = id
	return d, nil
}

func (r *Repo) CreateDestination(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	ts := now()
	d.ID = newID()
	d.CreatedAt, d.UpdatedAt = &ts, &ts
	_, err := r.coll(collDestinations).InsertOne(ctx, d)
	observability.ObserveStore(collDestinations, "create", outcome(err))
	if err != nil {
		return domain.Destination{}, normalizeErr(err)
	}
	return d, nil
}

func (r *Repo) UpdateDestination(ctx context.Context, id string, p domain.DestinationPatch) error {
	set := bson.M{"updatedAt": now()}
	if p.CountryID != nil {
		set["countryId"] = *p.CountryID
	}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.PhotoURL != nil {
		set["photoUrl"] = *p.PhotoURL
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	if p.SortOrder != nil {
		set["sortOrder"] = *p.SortOrder
	}
	if p.Hotels != nil {
		set["hotels"] = *p.Hotels
	}
	res, err := r.coll(collDestinations).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err == nil && res.MatchedCount == 0 {
		err = driver.ErrNoDocuments
	}
	observability.ObserveStore(collDestinations, "update", outcome(err))
	return normalizeErr(err)
}

func (r *Repo) DeleteDestination(ctx context.Context, id string) error {
	_, err := r.coll(collDestinations).DeleteOne(ctx, bson.M{"_id": id})
	observability.ObserveStore(collDestinations, "delete", outcome(err))
	return normalizeErr(err)
}

func (r *Repo) ReorderDestinations(ctx context.Context, updates []domain.SortUpdate) error {
	return r.applySortUpdates(ctx, collDestinations, updates)
}
