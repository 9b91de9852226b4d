package constants

// Submission sources.
const (
	SOURCE_CUSTOMER_WEB_ORDER = "customer_web_order"
	SOURCE_ADMIN_MANUAL       = "admin_manual"
)

// Order statuses. Only PENDING is written by order placement, the rest
// belong to the fulfillment workflow.
const (
	ORDER_STATUS_PENDING   = "pending"
	ORDER_STATUS_PREPARING = "preparing"
	ORDER_STATUS_READY     = "ready"
	ORDER_STATUS_SERVED    = "served"
	ORDER_STATUS_CANCELLED = "cancelled"
)

const (
	MAPPING_STATUS_ACTIVE  = "active"
	MAPPING_STATUS_CLEARED = "cleared"
)

const (
	AREA_PATIO  = "patio"
	AREA_BAR    = "bar"
	AREA_DINING = "dining"
)

const WALK_IN_CUSTOMER = "Walk-in Customer"

// Staff directory.
const (
	ROLE_ADMIN   = "admin"
	ROLE_MANAGER = "manager"
	ROLE_EXPO    = "expo"
	ROLE_SERVER  = "server"

	ADMIN_STATUS_ACTIVE   = "active"
	ADMIN_STATUS_INACTIVE = "inactive"
)

var ROLE = []string{ROLE_ADMIN, ROLE_MANAGER, ROLE_EXPO, ROLE_SERVER}

// Notifications.
const (
	NOTIFICATION_TYPE_NEW_ORDER     = "new_order"
	NOTIFICATION_TYPE_ORDER_UPDATED = "order_updated"

	PRIORITY_LOW    = "low"
	PRIORITY_NORMAL = "normal"
	PRIORITY_HIGH   = "high"

	RECIPIENT_ADMIN = "admin"
)

const (
	TABLE_IDENTIFIER_MAX_HINT  = 10
	NOTIFICATION_SUMMARY_ITEMS = 3
)
