package domain

import "time"

type TripType string

const (
	TripTypeTour     TripType = "Tour Package"
	TripTypeCustom   TripType = "Custom Trip"
	TripTypeBusiness TripType = "Business Travel"
)

// QuoteRequest is submitted from the public site and worked by admins.
// QuotedAt is present exactly when IsQuoted is true.
type QuoteRequest struct {
	ID               string     `bson:"_id,omitempty" json:"id"`
	FullName         string     `bson:"fullName" json:"fullName" validate:"required"`
	Email            string     `bson:"email" json:"email" validate:"required,email"`
	PhoneNumber      string     `bson:"phoneNumber" json:"phoneNumber" validate:"required"`
	Destination      string     `bson:"destination" json:"destination" validate:"required"`
	TravelDate       string     `bson:"travelDate" json:"travelDate" validate:"required"`
	Duration         int        `bson:"duration" json:"duration" validate:"min=1"`
	NumberOfAdults   int        `bson:"numberOfAdults" json:"numberOfAdults" validate:"min=1"`
	NumberOfChildren int        `bson:"numberOfChildren" json:"numberOfChildren" validate:"min=0"`
	TripType         TripType   `bson:"tripType" json:"tripType" validate:"required,oneof='Tour Package' 'Custom Trip' 'Business Travel'"`
	SpecialRequests  string     `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	IsQuoted         bool       `bson:"isQuoted" json:"isQuoted"`
	QuotedAt         *time.Time `bson:"quotedAt,omitempty" json:"quotedAt,omitempty"`
	RequestedAt      *time.Time `bson:"requestedAt,omitempty" json:"requestedAt,omitempty"`
	CreatedAt        *time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type QuoteFilter struct {
	Quoted *bool
}
