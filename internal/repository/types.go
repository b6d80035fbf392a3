package repository

import "time"

// OrderListFilter filter for listing orders
type OrderListFilter struct {
	Page        int
	PageSize    int
	CustomerID  uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// NormalizeDates swaps an inverted created-at range instead of returning nothing.
func (f *OrderListFilter) NormalizeDates() {
	if f.CreatedFrom != nil && f.CreatedTo != nil && f.CreatedFrom.After(*f.CreatedTo) {
		f.CreatedFrom, f.CreatedTo = f.CreatedTo, f.CreatedFrom
	}
}

// UnitListFilter filter for listing hotpot units
type UnitListFilter struct {
	Page         int
	PageSize     int
	HotpotTypeID uint
	Status       string
	Search       string
}

// ReplacementListFilter filter for listing replacement requests
type ReplacementListFilter struct {
	Page            int
	PageSize        int
	CustomerID      uint
	AssignedStaffID uint
	HotpotUnitID    uint
	Status          string
}

// DiscountListFilter filter for listing discounts
type DiscountListFilter struct {
	Page       int
	PageSize   int
	OnlyActive bool
	At         *time.Time
}

// NotificationListFilter filter for listing notifications
type NotificationListFilter struct {
	Page       int
	PageSize   int
	UserID     uint
	Role       string
	Type       string
	OnlyUnread bool
}

// RentalListFilter filter for listing rental details
type RentalListFilter struct {
	Page        int
	PageSize    int
	OrderID     uint
	OnlyOverdue bool
	AsOf        *time.Time
}
