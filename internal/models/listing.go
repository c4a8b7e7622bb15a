package models

import (
	"time"
)

type PropertyTypeKind string

const (
	PropertyTypeHouse      PropertyTypeKind = "house"
	PropertyTypeApartment  PropertyTypeKind = "apartment"
	PropertyTypeCommercial PropertyTypeKind = "commercial"
	PropertyTypeLand       PropertyTypeKind = "land"
)

type ListingCategory string

const (
	CategorySale ListingCategory = "sale"
	CategoryRent ListingCategory = "rent"
)

type ListingStatus string

const (
	StatusPending  ListingStatus = "pending"
	StatusApproved ListingStatus = "approved"
	StatusRejected ListingStatus = "rejected"
)

// Listing is a property record subject to filtering and status moderation.
// IDs are dense integers assigned by the store (max existing id + 1).
type Listing struct {
	ID           int              `json:"id"`
	OwnerID      int              `json:"owner_id"`
	Broker       string           `json:"broker"`
	Title        string           `json:"title"`
	Location     string           `json:"location"`
	PropertyType PropertyTypeKind `json:"property_type"`
	Category     ListingCategory  `json:"category"`
	PostType     string           `json:"post_type"`
	Price        float64          `json:"price"`
	Status       ListingStatus    `json:"status"`
	Image        string           `json:"image"`
	Description  string           `json:"description,omitempty"`
	Beds         int              `json:"beds,omitempty"`
	Baths        int              `json:"baths,omitempty"`
	Sqft         int              `json:"sqft,omitempty"`
	Views        int              `json:"views"`
	Inquiries    int              `json:"inquiries"`
	CreatedAt    time.Time        `json:"created_at"`
}

// CanTransitionTo reports whether a moderation status change is allowed.
// Only pending listings can move, and only to approved or rejected.
func (l *Listing) CanTransitionTo(next ListingStatus) bool {
	if l.Status != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusRejected
}
