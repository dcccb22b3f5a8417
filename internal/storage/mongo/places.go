package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atlas_travel/internal/adapters/observability"
	"atlas_travel/internal/domain"
)

func (r *Repo) ListPlaces(ctx context.Context, f domain.PlaceFilter) ([]domain.RecommendedPlace, error) {
	filter := bson.M{}
	if f.DestinationID != nil {
		filter["destinationId"] = *f.DestinationID
	}
	if f.Active != nil {
		filter["isActive"] = *f.Active
	}
	cur, err := r.coll(collPlaces).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}}))
	if err != nil {
		observability.ObserveStore(collPlaces, "list", "error")
		return nil, normalizeErr(err)
	}
	out := []domain.RecommendedPlace{}
	err = cur.All(ctx, &out)
	observability.ObserveStore(collPlaces, "list", outcome(err))
	if err != nil {
		return nil, normalizeErr(err)
	}
	return out, nil
}

func (r *Repo) GetPlace(ctx context.Context, id string) (domain.RecommendedPlace, error) {
	var p domain.RecommendedPlace
	err := r.coll(collPlaces).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	observability.ObserveStore(collPlaces, "get", outcome(err))
	if err != nil {
		return domain.RecommendedPlace{}, normalizeErr(err)
	}
	p.ID = id
	return p, nil
}

func (r *Repo) CreatePlace(ctx context.Context, p domain.RecommendedPlace) (domain.RecommendedPlace, error) {
	ts := now()
	p.ID = newID()
	p.CreatedAt, p.UpdatedAt = &ts, &ts
	_, err := r.coll(collPlaces).InsertOne(ctx, p)
	observability.ObserveStore(collPlaces, "create", outcome(err))
	if err != nil {
		return domain.RecommendedPlace{}, normalizeErr(err)
	}
	return p, nil
}

func (r *Repo) UpdatePlace(ctx context.Context, id string, p domain.PlacePatch) error {
	set := bson.M{"updatedAt": now()}
	if p.DestinationID != nil {
		set["destinationId"] = *p.DestinationID
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
	if p.DestinationName != nil {
		set["destination_name"] = *p.DestinationName
	}
	res, err := r.coll(collPlaces).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err == nil && res.MatchedCount == 0 {
		err = driver.ErrNoDocuments
	}
	observability.ObserveStore(collPlaces, "update", outcome(err))
	return normalizeErr(err)
}

func (r *Repo) DeletePlace(ctx context.Context, id string) error {
	_, err := r.coll(collPlaces).DeleteOne(ctx, bson.M{"_id": id})
	observability.ObserveStore(collPlaces, "delete", outcome(err))
	return normalizeErr(err)
}

func (r *Repo) ReorderPlaces(ctx context.Context, updates []domain.SortUpdate) error {
	return r.applySortUpdates(ctx, collPlaces, updates)
}
