package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/propertyfinder/listings-service/internal/constants"
	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/services"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type ListingsController struct {
	listingService *services.ListingService
	validate       *validator.Validate
}

func NewListingsController(ls *services.ListingService) *ListingsController {
	return &ListingsController{
		listingService: ls,
		validate:       validator.New(),
	}
}

// parseFilterQuery reads the search criteria from the URL query. A
// value that fails to parse is treated as absent rather than failing
// the whole request.
func parseFilterQuery(r *http.Request) dtos.ListingFilterQuery {
	q := r.URL.Query()
	out := dtos.ListingFilterQuery{
		Location:     q.Get("location"),
		Category:     q.Get("category"),
		PostType:     q.Get("post_type"),
		PropertyType: q.Get("property_type"),
	}
	if raw := q.Get("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			out.MinPrice = &v
		}
	}
	if raw := q.Get("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			out.MaxPrice = &v
		}
	}
	return out
}

// parsePagination reads limit/offset from the URL query. The limit
// defaults to, and is capped at, one page.
func parsePagination(r *http.Request) (limit, offset int) {
	limit = constants.DefaultPageSize
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= constants.DefaultPageSize {
			limit = v
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}
	return limit, offset
}

// ----------------------------------------------------------------
// GET /api/v1/listings
// ----------------------------------------------------------------
func (c *ListingsController) SearchListingsHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := c.listingService.BrowseListings(r.Context(), parseFilterQuery(r))
	if err != nil {
		respondServiceError(w, err, "Failed to search listings")
		return
	}

	// Total counts every match; Results holds the requested page.
	total := len(listings)
	limit, offset := parsePagination(r)
	if offset > total {
		offset = total
	}
	listings = listings[offset:]
	if len(listings) > limit {
		listings = listings[:limit]
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ListListingsResponse{
		Results: dtos.ListingsFromModels(listings),
		Total:   total,
	})
}

// ----------------------------------------------------------------
// GET /api/v1/listings/filters
// ----------------------------------------------------------------
func (c *ListingsController) FilterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := c.listingService.FilterOptions(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to load filter options")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, opts)
}

// ----------------------------------------------------------------
// GET /api/v1/listings/featured
// ----------------------------------------------------------------
func (c *ListingsController) FeaturedListingsHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := c.listingService.FeaturedListings(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to load featured listings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListListingsResponse{
		Results: dtos.ListingsFromModels(listings),
		Total:   len(listings),
	})
}

// ----------------------------------------------------------------
// GET /api/v1/listings/{id}
// ----------------------------------------------------------------
func (c *ListingsController) GetListingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	l, err := c.listingService.GetListing(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to load listing")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListingFromModel(l))
}

// ----------------------------------------------------------------
// POST /api/v1/listings/{id}/inquire
// ----------------------------------------------------------------
func (c *ListingsController) InquireHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := c.listingService.Inquire(r.Context(), id, req); err != nil {
		respondServiceError(w, err, "Failed to send inquiry")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Inquiry sent"})
}

// ----------------------------------------------------------------
// GET /api/v1/my/listings
// ----------------------------------------------------------------
func (c *ListingsController) ListMyListingsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	listings, err := c.listingService.ListByOwner(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Failed to list your listings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListListingsResponse{
		Results: dtos.ListingsFromModels(listings),
		Total:   len(listings),
	})
}

// ----------------------------------------------------------------
// POST /api/v1/my/listings
// ----------------------------------------------------------------
func (c *ListingsController) CreateListingHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	l, err := c.listingService.CreateListing(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, err, "Failed to create listing")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.ListingFromModel(l))
}

// ----------------------------------------------------------------
// PUT /api/v1/my/listings/{id}
// ----------------------------------------------------------------
func (c *ListingsController) UpdateListingHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	l, err := c.listingService.UpdateListing(r.Context(), userID, id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update listing")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListingFromModel(l))
}

// ----------------------------------------------------------------
// DELETE /api/v1/my/listings/{id}
// ----------------------------------------------------------------
func (c *ListingsController) DeleteListingHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	if err := c.listingService.DeleteListing(r.Context(), userID, id); err != nil {
		respondServiceError(w, err, "Failed to delete listing")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Listing deleted"})
}

// ----------------------------------------------------------------
// GET /api/v1/my/stats
// ----------------------------------------------------------------
func (c *ListingsController) BrokerStatsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	stats, err := c.listingService.BrokerStats(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Failed to load stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
