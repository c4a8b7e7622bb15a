package dtos

import (
	"github.com/propertyfinder/listings-service/internal/models"
)

/*
ListingFilterQuery carries the search criteria for GET /api/v1/listings.
Every field is optional; an absent or empty field matches all listings.
*/
type ListingFilterQuery struct {
	Location     string
	Category     string
	PostType     string
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
}

/*
ListingDTO is the wire form of a listing in both public and broker
responses.
*/
type ListingDTO struct {
	ID           int     `json:"id"`
	OwnerID      int     `json:"owner_id,omitempty"`
	Broker       string  `json:"broker,omitempty"`
	Title        string  `json:"title"`
	Location     string  `json:"location"`
	PropertyType string  `json:"property_type"`
	Category     string  `json:"category"`
	PostType     string  `json:"post_type"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	Image        string  `json:"image,omitempty"`
	Description  string  `json:"description,omitempty"`
	Beds         int     `json:"beds"`
	Baths        int     `json:"baths"`
	Sqft         int     `json:"sqft"`
	Views        int     `json:"views"`
	Inquiries    int     `json:"inquiries"`
	CreatedAt    string  `json:"created_at"`
}

/*
ListListingsResponse is the response for GET /api/v1/listings and
GET /api/v1/my/listings.
*/
type ListListingsResponse struct {
	Results []ListingDTO `json:"results"`
	Total   int          `json:"total"`
}

// FilterOptionsResponse backs the search form on the browse page:
// every distinct value currently present in the approved catalog,
// plus the price range the sliders should span.
type FilterOptionsResponse struct {
	Locations     []string `json:"locations"`
	Categories    []string `json:"categories"`
	PostTypes     []string `json:"post_types"`
	PropertyTypes []string `json:"property_types"`
	MinPrice      float64  `json:"min_price"`
	MaxPrice      float64  `json:"max_price"`
}

// CreateListingRequest is the payload for POST /api/v1/my/listings.
type CreateListingRequest struct {
	Title        string  `json:"title" validate:"required,min=1"`
	Location     string  `json:"location" validate:"required,min=1"`
	PropertyType string  `json:"property_type" validate:"required,oneof=house apartment commercial land"`
	Category     string  `json:"category" validate:"required,oneof=sale rent"`
	PostType     string  `json:"post_type,omitempty"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Image        string  `json:"image,omitempty" validate:"omitempty,url"`
	Description  string  `json:"description,omitempty"`
	Beds         int     `json:"beds" validate:"gte=0"`
	Baths        int     `json:"baths" validate:"gte=0"`
	Sqft         int     `json:"sqft" validate:"gte=0"`
}

// UpdateListingRequest is the payload for PUT /api/v1/my/listings/{id}.
// Nil fields are left unchanged.
type UpdateListingRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,min=1"`
	PropertyType *string  `json:"property_type,omitempty" validate:"omitempty,oneof=house apartment commercial land"`
	Category     *string  `json:"category,omitempty" validate:"omitempty,oneof=sale rent"`
	PostType     *string  `json:"post_type,omitempty"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Image        *string  `json:"image,omitempty" validate:"omitempty,url"`
	Description  *string  `json:"description,omitempty"`
	Beds         *int     `json:"beds,omitempty" validate:"omitempty,gte=0"`
	Baths        *int     `json:"baths,omitempty" validate:"omitempty,gte=0"`
	Sqft         *int     `json:"sqft,omitempty" validate:"omitempty,gte=0"`
}

// MonthlyStat is one point of the dashboard performance chart.
type MonthlyStat struct {
	Month     string `json:"month"`
	Views     int    `json:"views"`
	Inquiries int    `json:"inquiries"`
}

// BrokerStatsResponse backs GET /api/v1/my/stats. MonthlySeries
// buckets the broker's listings by creation month, oldest first;
// TypeDistribution counts listings per property type.
type BrokerStatsResponse struct {
	ActiveListings   int            `json:"active_listings"`
	PendingListings  int            `json:"pending_listings"`
	TotalViews       int            `json:"total_views"`
	TotalInquiries   int            `json:"total_inquiries"`
	UnreadMessages   int            `json:"unread_messages"`
	MonthlySeries    []MonthlyStat  `json:"monthly_series"`
	TypeDistribution map[string]int `json:"type_distribution"`
}

// ListingFromModel maps a model onto the wire DTO.
func ListingFromModel(l *models.Listing) ListingDTO {
	return ListingDTO{
		ID:           l.ID,
		OwnerID:      l.OwnerID,
		Broker:       l.Broker,
		Title:        l.Title,
		Location:     l.Location,
		PropertyType: string(l.PropertyType),
		Category:     string(l.Category),
		PostType:     l.PostType,
		Price:        l.Price,
		Status:       string(l.Status),
		Image:        l.Image,
		Description:  l.Description,
		Beds:         l.Beds,
		Baths:        l.Baths,
		Sqft:         l.Sqft,
		Views:        l.Views,
		Inquiries:    l.Inquiries,
		CreatedAt:    l.CreatedAt.Format("2006-01-02"),
	}
}

// ListingsFromModels maps a slice of models onto wire DTOs.
func ListingsFromModels(listings []*models.Listing) []ListingDTO {
	out := make([]ListingDTO, 0, len(listings))
	for _, l := range listings {
		out = append(out, ListingFromModel(l))
	}
	return out
}
