package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/models"
)

func f64(v float64) *float64 { return &v }

func sampleListings() []*models.Listing {
	return []*models.Listing{
		{ID: 1, Title: "Modern Apartment in Downtown", Location: "Downtown, City", PropertyType: models.PropertyTypeApartment, Category: models.CategorySale, PostType: "sell", Price: 250000},
		{ID: 2, Title: "Spacious Family Home", Location: "Suburbs, City", PropertyType: models.PropertyTypeHouse, Category: models.CategoryRent, PostType: "rent", Price: 2500},
		{ID: 3, Title: "Commercial Office Space", Location: "Business District, City", PropertyType: models.PropertyTypeCommercial, Category: models.CategorySale, PostType: "sell", Price: 750000},
		{ID: 4, Title: "Cozy Studio Apartment", Location: "City Center", PropertyType: models.PropertyTypeApartment, Category: models.CategoryRent, PostType: "rent", Price: 1200},
	}
}

func TestFilterListingsEmptyCriteriaReturnsAll(t *testing.T) {
	in := sampleListings()
	out := FilterListings(in, dtos.ListingFilterQuery{})
	require.Len(t, out, len(in))
	for i := range in {
		require.Equal(t, in[i].ID, out[i].ID)
	}
}

func TestFilterListingsLocationSubstringCaseInsensitive(t *testing.T) {
	out := FilterListings(sampleListings(), dtos.ListingFilterQuery{Location: "downtown"})
	require.Len(t, out, 1)
	require.Equal(t, 1, out[0].ID)

	// "city" appears in every location string
	out = FilterListings(sampleListings(), dtos.ListingFilterQuery{Location: "CITY"})
	require.Len(t, out, 4)
}

func TestFilterListingsExactMatchFields(t *testing.T) {
	out := FilterListings(sampleListings(), dtos.ListingFilterQuery{Category: "rent"})
	require.Len(t, out, 2)

	out = FilterListings(sampleListings(), dtos.ListingFilterQuery{PropertyType: "apartment"})
	require.Len(t, out, 2)

	// No partial matching on exact fields
	out = FilterListings(sampleListings(), dtos.ListingFilterQuery{PropertyType: "apart"})
	require.Empty(t, out)
}

func TestFilterListingsPriceBoundsInclusive(t *testing.T) {
	out := FilterListings(sampleListings(), dtos.ListingFilterQuery{MinPrice: f64(250000)})
	require.Len(t, out, 2) // 250000 itself stays in

	out = FilterListings(sampleListings(), dtos.ListingFilterQuery{MaxPrice: f64(2500)})
	require.Len(t, out, 2) // 2500 itself stays in

	out = FilterListings(sampleListings(), dtos.ListingFilterQuery{MinPrice: f64(2500), MaxPrice: f64(250000)})
	require.Len(t, out, 2)
}

func TestFilterListingsCombinedCriteria(t *testing.T) {
	out := FilterListings(sampleListings(), dtos.ListingFilterQuery{
		Location:     "city",
		Category:     "rent",
		PropertyType: "apartment",
	})
	require.Len(t, out, 1)
	require.Equal(t, 4, out[0].ID)
}

func TestFilterListingsIdempotent(t *testing.T) {
	q := dtos.ListingFilterQuery{Category: "sale", MinPrice: f64(100000)}
	first := FilterListings(sampleListings(), q)
	second := FilterListings(first, q)
	require.Equal(t, first, second)
}

func TestFilterListingsPreservesOrder(t *testing.T) {
	out := FilterListings(sampleListings(), dtos.ListingFilterQuery{Category: "sale"})
	require.Len(t, out, 2)
	require.Equal(t, 1, out[0].ID)
	require.Equal(t, 3, out[1].ID)
}

func TestFilterListingsEmptyInput(t *testing.T) {
	out := FilterListings(nil, dtos.ListingFilterQuery{Location: "x"})
	require.Empty(t, out)
}
