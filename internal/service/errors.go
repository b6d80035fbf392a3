package service

import "errors"

// Order errors
var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderItemsEmpty         = errors.New("order must contain at least one line item")
	ErrOrderItemKindInvalid    = errors.New("exactly one item type")
	ErrOrderQuantityInvalid    = errors.New("invalid quantity")
	ErrOrderNotPending         = errors.New("order can only be modified while pending")
	ErrStatusTransitionInvalid = errors.New("invalid status transition")
	ErrUnitsInsufficient       = errors.New("insufficient available units")
	ErrStockInsufficient       = errors.New("insufficient stock")
	ErrItemNotFound            = errors.New("catalog item not found")
	ErrItemInactive            = errors.New("catalog item not for sale")
	ErrCustomizationNotOwned   = errors.New("customization does not belong to customer")
	ErrRentalDatesRequired     = errors.New("rental requires an expected return date after now")
)

// Discount errors
var (
	ErrDiscountNotFound       = errors.New("discount not found")
	ErrDiscountExpired        = errors.New("discount not currently valid")
	ErrDiscountInUse          = errors.New("discount attached to an order")
	ErrDiscountPercentInvalid = errors.New("discount percentage must be between 0 and 100")
	ErrDiscountDatesInvalid   = errors.New("discount end date must be after start date")
)

// Rental errors
var (
	ErrRentalNotFound        = errors.New("rental detail not found")
	ErrRentalAlreadyReturned = errors.New("already returned")
	ErrRentalDateInvalid     = errors.New("invalid rental date")
)

// Payment errors
var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentTypeInvalid = errors.New("invalid payment type")
	ErrPaymentNotPending  = errors.New("payment is not pending")
)

// Replacement errors
var (
	ErrReplacementNotFound      = errors.New("replacement request not found")
	ErrReplacementDuplicate     = errors.New("an active replacement request already exists for this unit")
	ErrReplacementStatusInvalid = errors.New("invalid replacement status transition")
	ErrReplacementNotAssignee   = errors.New("only the assigned staff member may perform this action")
	ErrReplacementNotRequester  = errors.New("only the requesting customer may cancel")
	ErrStaffInvalid             = errors.New("assignee is not an active staff member")
)

// Inventory/user errors
var (
	ErrUnitNotFound         = errors.New("inventory unit not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
