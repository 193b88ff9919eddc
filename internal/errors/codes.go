package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL. Pages use the message; the code also
// lands in the request log so failures can be grepped by kind.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"       // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong username/password
	AuthUsernameExists     = "AUTH_USERNAME_EXISTS"     // duplicate username
	AuthEmailExists        = "AUTH_EMAIL_EXISTS"        // duplicate email

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed input
	ValidationRequired     = "VALIDATION_REQUIRED"      // missing required field
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // unparseable id

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // missing product/address/order
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // unique constraint hit
	ResourceConflict      = "RESOURCE_CONFLICT"       // conflicting state

	// ==================== Checkout (CHECKOUT_) ====================
	CheckoutInvalidAddress = "CHECKOUT_INVALID_ADDRESS" // address not owned / missing

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // unexpected failure
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // store failure
)
