package constants

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipping   = "shipping"
	OrderStatusDelivered  = "delivered"
	OrderStatusReturning  = "returning"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Hotpot unit status constants
const (
	UnitStatusAvailable   = "available"
	UnitStatusInUse       = "in_use"
	UnitStatusMaintenance = "maintenance"
)

// Payment type constants
const (
	PaymentTypeCash   = "cash"
	PaymentTypeOnline = "online"
)

// Payment status constants
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"
)

// Replacement request status constants
const (
	ReplacementStatusPending    = "pending"
	ReplacementStatusApproved   = "approved"
	ReplacementStatusRejected   = "rejected"
	ReplacementStatusInProgress = "in_progress"
	ReplacementStatusCompleted  = "completed"
	ReplacementStatusCancelled  = "cancelled"
)

// Maintenance log status constants
const (
	MaintenanceLogStatusPending   = "pending"
	MaintenanceLogStatusCompleted = "completed"
)

// User role constants
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleManager  = "manager"
)

// Notification type constants
const (
	NotificationTypeOrderStatus       = "order_status"
	NotificationTypeReplacementStatus = "replacement_status"
	NotificationTypeRentalOverdue     = "rental_overdue"
)

// Queue constants
const (
	QueueDefault             = "default"
	TaskNotificationDispatch = "notification:dispatch"
	TaskRentalOverdueRemind  = "rental:overdue_remind"
)

// Cache constants
const (
	RedisPrefixDefault = "hp"
)

// Rental business defaults (overridable via config)
const (
	DefaultDepositPercent = 70
	DefaultLateFeePercent = 10
)
