package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atlas_travel/internal/adapters/observability"
	"atlas_travel/internal/domain"
)

func (r *Repo) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	cur, err := r.coll(collTrips).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		observability.ObserveStore(collTrips, "list", "error")
		return nil, normalizeErr(err)
	}
	out := []domain.Trip{}
	err = cur.All(ctx, &out)
	observability.ObserveStore(collTrips, "list", outcome(err))
	if err != nil {
		return nil, normalizeErr(err)
	}
	return out, nil
}

func (r *Repo) GetTrip(ctx context.Context, id string) (domain.Trip, error) {
	var t domain.Trip
	err := r.coll(collTrips).FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	observability.ObserveStore(collTrips, "get", outcome(err))
	if err != nil {
		return domain.Trip{}, normalizeErr(err)
	}
	t.ID = id
	return t, nil
}

func (r *Repo) CreateTrip(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	ts := now()
	t.ID = newID()
	t.CreatedAt, t.UpdatedAt = &ts, &ts
	_, err := r.coll(collTrips).InsertOne(ctx, t)
	observability.ObserveStore(collTrips, "create", outcome(err))
	if err != nil {
		return domain.Trip{}, normalizeErr(err)
	}
	return t, nil
}

func (r *Repo) UpdateTrip(ctx context.Context, id string, p domain.TripPatch) error {
	set := bson.M{"updatedAt": now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.PhotoURL != nil {
		set["photoUrl"] = *p.PhotoURL
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.StartDate != nil {
		set["startDate"] = *p.StartDate
	}
	if p.EndDate != nil {
		set["endDate"] = *p.EndDate
	}
	if p.Legs != nil {
		set["destinations"] = *p.Legs
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.ClientName != nil {
		set["clientName"] = *p.ClientName
	}
	if p.ClientEmail != nil {
		set["clientEmail"] = *p.ClientEmail
	}
	res, err := r.coll(collTrips).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err == nil && res.MatchedCount == 0 {
		err = driver.ErrNoDocuments
	}
	observability.ObserveStore(collTrips, "update", outcome(err))
	return normalizeErr(err)
}

func (r *Repo) DeleteTrip(ctx context.Context, id string) error {
	_, err := r.coll(collTrips).DeleteOne(ctx, bson.M{"_id": id})
	observability.ObserveStore(collTrips, "delete", outcome(err))
	return normalizeErr(err)
}
