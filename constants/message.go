package constants

const (
	ORDER_PLACED               = "Order placed successfully! Your order will be prepared shortly."
	ORDER_DUPLICATE            = "An order with this order number has already been placed. Please refresh and try again."
	ORDER_PLACE_FAILED         = "Failed to place order. Please try again."
	ORDER_NOT_FOUND            = "Order not found"
	VALIDATION_FAILED          = "Validation failed"
	TABLE_NUMBER_REQUIRED      = "Table number is required"
	TABLE_NUMBER_VALID         = "Valid table number"
	TABLE_NUMBER_INVALID       = "Invalid table number"
	QR_GENERATE_FAILED         = "Failed to generate table QR code"
	MENU_CATEGORY_NOT_FOUND    = "Menu category not found"
	MENU_ITEM_NOT_FOUND        = "Menu item not found"
	MENU_LOAD_FAILED           = "Failed to load menu"
	DATA_INPUT_IS_NOT_NUMBER   = "Input must be a number"
	LOGIN_FAILED               = "Invalid email or password"
	LOGIN_SUCCESS              = "Login successful"
	MISSING_TOKEN              = "Missing token"
	INVALID_TOKEN              = "Invalid token"
	NOTIFICATION_LOAD_FAILED   = "Failed to load notifications"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read request input"
	ERROR_INPUT                = "Invalid query parameters"
)
