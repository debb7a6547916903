package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderXRequestID = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUser      = "user"
	ContextKeySession   = "session"
	ContextKeyRequestID = "request_id"

	// Form intents
	IntentCreate = "create"
	IntentUpdate = "update"
	IntentDelete = "delete"

	// Route sentinels selecting creation instead of update
	NewTicketSentinel = "new-ticket"

	// Landing pages
	PathLogin         = "/login"
	PathAdminBoard    = "/board/admin"
	PathEmployeeBoard = "/board/employee"

	// Database table names
	TableUsers    = "users"
	TableTickets  = "tickets"
	TableNotes    = "notes"
	TableProducts = "products"
	TableStatuses = "statuses"
	TableServices = "services"
	TableRoles    = "roles"
)
