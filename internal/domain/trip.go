package domain

import "time"

type TripStatus string

const (
	TripDraft     TripStatus = "draft"
	TripPending   TripStatus = "pending"
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

// TripLeg references a destination and the hotel booked there. Both ids
// are plain references: deleting the target does not unlink the leg.
type TripLeg struct {
	DestinationID string `bson:"destinationId" json:"destinationId" validate:"required"`
	HotelID       string `bson:"hotelId" json:"hotelId" validate:"required"`
	Nights        int    `bson:"nights" json:"nights" validate:"min=1"`
}

type Trip struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Name        string     `bson:"name" json:"name" validate:"required"`
	Description string     `bson:"description" json:"description"`
	PhotoURL    string     `bson:"photoUrl" json:"photoUrl"`
	Price       float64    `bson:"price" json:"price" validate:"gte=0"`
	StartDate   string     `bson:"startDate" json:"startDate"`
	EndDate     string     `bson:"endDate" json:"endDate"`
	Legs        []TripLeg  `bson:"destinations" json:"destinations" validate:"omitempty,dive"`
	IsActive    bool       `bson:"isActive" json:"isActive"`
	Status      TripStatus `bson:"status" json:"status" validate:"required,oneof=draft pending active completed cancelled"`
	ClientName  string     `bson:"clientName,omitempty" json:"clientName,omitempty"`
	ClientEmail string     `bson:"clientEmail,omitempty" json:"clientEmail,omitempty" validate:"omitempty,email"`
	CreatedAt   *time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Any status may follow any other; the data layer enforces membership in
// the vocabulary but no transition rules.
type TripPatch struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string     `json:"description,omitempty"`
	PhotoURL    *string     `json:"photoUrl,omitempty"`
	Price       *float64    `json:"price,omitempty" validate:"omitempty,gte=0"`
	StartDate   *string     `json:"startDate,omitempty"`
	EndDate     *string     `json:"endDate,omitempty"`
	Legs        *[]TripLeg  `json:"destinations,omitempty" validate:"omitempty,dive"`
	IsActive    *bool       `json:"isActive,omitempty"`
	Status      *TripStatus `json:"status,omitempty" validate:"omitempty,oneof=draft pending active completed cancelled"`
	ClientName  *string     `json:"clientName,omitempty"`
	ClientEmail *string     `json:"clientEmail,omitempty" validate:"omitempty,email"`
}
