package domain

import "time"

type Country struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name" validate:"required"`
	IsActive bool   `bson:"isActive" json:"isActive"`
}

// Destination is a city-level travel target. SortOrder is the manual
// display order among siblings; the store never invents values for it.
type Destination struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	CountryID   string     `bson:"countryId" json:"countryId" validate:"required"`
	Name        string     `bson:"name" json:"name" validate:"required"`
	Description string     `bson:"description" json:"description"`
	PhotoURL    string     `bson:"photoUrl" json:"photoUrl"`
	IsActive    bool       `bson:"isActive" json:"isActive"`
	SortOrder   int        `bson:"sortOrder" json:"sortOrder"`
	Hotels      []string   `bson:"hotels,omitempty" json:"hotels,omitempty"`
	CreatedAt   *time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type DestinationPatch struct {
	CountryID   *string   `json:"countryId,omitempty" validate:"omitempty,min=1"`
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string   `json:"description,omitempty"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
	SortOrder   *int      `json:"sortOrder,omitempty"`
	Hotels      *[]string `json:"hotels,omitempty"`
}

type DestinationFilter struct {
	CountryID *string
	Active    *bool
}

// RecommendedPlace is a point of interest under a destination. The
// DestinationName duplicate is denormalized for list rendering and is
// the caller's responsibility to keep fresh.
type RecommendedPlace struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	DestinationID   string     `bson:"destinationId" json:"destinationId" validate:"required"`
	Name            string     `bson:"name" json:"name" validate:"required"`
	Description     string     `bson:"description" json:"description"`
	PhotoURL        string     `bson:"photoUrl" json:"photoUrl"`
	IsActive        bool       `bson:"isActive" json:"isActive"`
	SortOrder       int        `bson:"sortOrder" json:"sortOrder"`
	DestinationName string     `bson:"destination_name,omitempty" json:"destination_name,omitempty"`
	CreatedAt       *time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type PlacePatch struct {
	DestinationID   *string `json:"destinationId,omitempty" validate:"omitempty,min=1"`
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description     *string `json:"description,omitempty"`
	PhotoURL        *string `json:"photoUrl,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
	SortOrder       *int    `json:"sortOrder,omitempty"`
	DestinationName *string `json:"destination_name,omitempty"`
}

type PlaceFilter struct {
	DestinationID *string
	Active        *bool
}

// SortUpdate is one element of a batch reorder. The batch is applied
// all-or-nothing; partial application is never observable.
type SortUpdate struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sortOrder"`
}
