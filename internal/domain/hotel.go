package domain

import "time"

type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Room is a sub-record embedded in its hotel document; the PDF reference
// points at an uploaded fact sheet and may be empty.
type Room struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name" validate:"required"`
	PDFURL string `bson:"pdfUrl,omitempty" json:"pdfUrl,omitempty"`
}

type Hotel struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Name        string     `bson:"name" json:"name" validate:"required"`
	Country     string     `bson:"country" json:"country" validate:"required"`
	City        string     `bson:"city" json:"city"`
	Description string     `bson:"description" json:"description"`
	PhotoURL    string     `bson:"photoUrl" json:"photoUrl"`
	IsActive    bool       `bson:"isActive" json:"isActive"`
	IsFeatured  bool       `bson:"isFeatured" json:"isFeatured"`
	Stars       int        `bson:"stars" json:"stars" validate:"min=1,max=5"`
	Price       float64    `bson:"price" json:"price" validate:"gte=0"`
	Amenities   []string   `bson:"amenities" json:"amenities"`
	Location    GeoPoint   `bson:"location" json:"location"`
	Rooms       []Room     `bson:"rooms,omitempty" json:"rooms,omitempty" validate:"omitempty,dive"`
	CreatedAt   *time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// HotelPatch carries a partial update: nil fields are left untouched.
// Identity and createdAt are not representable here on purpose.
type HotelPatch struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Country     *string   `json:"country,omitempty" validate:"omitempty,min=1"`
	City        *string   `json:"city,omitempty"`
	Description *string   `json:"description,omitempty"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
	IsFeatured  *bool     `json:"isFeatured,omitempty"`
	Stars       *int      `json:"stars,omitempty" validate:"omitempty,min=1,max=5"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Amenities   *[]string `json:"amenities,omitempty"`
	Location    *GeoPoint `json:"location,omitempty"`
	Rooms       *[]Room   `json:"rooms,omitempty" validate:"omitempty,dive"`
}

// HotelFilter narrows ListHotels; nil fields match every document.
type HotelFilter struct {
	Active   *bool
	Featured *bool
}
