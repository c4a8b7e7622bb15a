package routes

const (
	// Health
	Health = "/health"

	// Public endpoints
	Listings         = "/api/v1/listings"
	ListingsFeatured = "/api/v1/listings/featured"
	ListingsFilters  = "/api/v1/listings/filters"
	ListingByID      = "/api/v1/listings/{id}"
	ListingInquire   = "/api/v1/listings/{id}/inquire"

	AuthLogin  = "/api/v1/auth/login"
	AuthSignup = "/api/v1/auth/signup"

	// Broker endpoints (auth required)
	MyListings    = "/api/v1/my/listings"
	MyListingByID = "/api/v1/my/listings/{id}"
	MyStats       = "/api/v1/my/stats"

	MyEvents    = "/api/v1/my/events"
	MyEventByID = "/api/v1/my/events/{id}"

	MyMessages          = "/api/v1/my/messages"
	MyMessageRead       = "/api/v1/my/messages/{id}/read"
	MyMessageReply      = "/api/v1/my/messages/{id}/reply"
	MyMessagesReadAll   = "/api/v1/my/messages/read-all"
	MyNotifications     = "/api/v1/my/notifications"
	MyNotificationRead  = "/api/v1/my/notifications/{id}/read"
	MyNotificationsRead = "/api/v1/my/notifications/read-all"
	MyNotificationsClr  = "/api/v1/my/notifications/clear"

	MyProfile = "/api/v1/my/profile"

	// Admin endpoints (admin role required)
	AdminProperties   = "/api/v1/admin/properties"
	AdminPropertyByID = "/api/v1/admin/properties/{id}"
	AdminApproveByID  = "/api/v1/admin/properties/{id}/approve"
	AdminRejectByID   = "/api/v1/admin/properties/{id}/reject"
	AdminChangeBroker = "/api/v1/admin/properties/{id}/broker"
	AdminUsers        = "/api/v1/admin/users"
	AdminUserByID     = "/api/v1/admin/users/{id}"
	AdminStats        = "/api/v1/admin/stats"
	AdminAutoApproval = "/api/v1/admin/settings/auto-approval"
)
