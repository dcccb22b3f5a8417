package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atlas_travel/internal/adapters/observability"
	"atlas_travel/internal/domain"
)

func (r *Repo) ListHotels(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, error) {
	filter := bson.M{}
	if f.Active != nil {
		filter["isActive"] = *f.Active
	}
	if f.Featured != nil {
		filter["isFeatured"] = *f.Featured
	}
	cur, err := r.coll(collHotels).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		observability.ObserveStore(collHotels, "list", "error")
		return nil, normalizeErr(err)
	}
	out := []domain.Hotel{}
	err = cur.All(ctx, &out)
	observability.ObserveStore(collHotels, "list", outcome(err))
	if err != nil {
		return nil, normalizeErr(err)
	}
	return out, nil
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	var h domain.Hotel
	err := r.coll(collHotels).FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	observability.ObserveStore(collHotels, "get", outcome(err))
	if err != nil {
		return domain.Hotel{}, normalizeErr(err)
	}
	h.ID = id
	return h, nil
}

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	ts := now()
	h.ID = newID()
	h.CreatedAt, h.UpdatedAt = &ts, &ts
	_, err := r.coll(collHotels).InsertOne(ctx, h)
	observability.ObserveStore(collHotels, "create", outcome(err))
	if err != nil {
		return domain.Hotel{}, normalizeErr(err)
	}
	return h, nil
}

func (r *Repo) UpdateHotel(ctx context.Context, id string, p domain.HotelPatch) error {
	set := bson.M{"updatedAt": now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Country != nil {
		set["country"] = *p.Country
	}
	if p.City != nil {
		set["city"] = *p.City
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
	if p.IsFeatured != nil {
		set["isFeatured"] = *p.IsFeatured
	}
	if p.Stars != nil {
		set["stars"] = *p.Stars
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Amenities != nil {
		set["amenities"] = *p.Amenities
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Rooms != nil {
		set["rooms"] = *p.Rooms
	}
	res, err := r.coll(collHotels).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err == nil && res.MatchedCount == 0 {
		err = driver.ErrNoDocuments
	}
	observability.ObserveStore(collHotels, "update", outcome(err))
	return normalizeErr(err)
}

func (r *Repo) DeleteHotel(ctx context.Context, id string) error {
	_, err := r.coll(collHotels).DeleteOne(ctx, bson.M{"_id": id})
	observability.ObserveStore(collHotels, "delete", outcome(err))
	return normalizeErr(err)
}
