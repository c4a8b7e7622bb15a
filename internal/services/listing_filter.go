package services

import (
	"strings"

	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/models"
)

/*
FilterListings applies search criteria to a set of listings and returns
the matching subset in the original order. Every criterion is optional:
an empty string or nil bound matches all listings, so empty criteria
return the input unchanged.

Matching rules per field:
  - Location: case-insensitive substring match.
  - Category, PostType, PropertyType: exact match.
  - MinPrice, MaxPrice: inclusive bounds.
*/
func FilterListings(listings []*models.Listing, q dtos.ListingFilterQuery) []*models.Listing {
	out := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		if matchesCriteria(l, q) {
			out = append(out, l)
		}
	}
	return out
}

func matchesCriteria(l *models.Listing, q dtos.ListingFilterQuery) bool {
	if q.Location != "" &&
		!strings.Contains(strings.ToLower(l.Location), strings.ToLower(q.Location)) {
		return false
	}
	if q.Category != "" && string(l.Category) != q.Category {
		return false
	}
	if q.PostType != "" && l.PostType != q.PostType {
		return false
	}
	if q.PropertyType != "" && string(l.PropertyType) != q.PropertyType {
		return false
	}
	if q.MinPrice != nil && l.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && l.Price > *q.MaxPrice {
		return false
	}
	return true
}
