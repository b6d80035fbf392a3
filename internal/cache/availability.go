package cache

import (
	"context"
	"fmt"
	"time"
)

const availabilityCacheTTL = 30 * time.Second

// availabilitySnapshot cached available-unit count for a hotpot type
type availabilitySnapshot struct {
	HotpotTypeID uint  `json:"hotpot_type_id"`
	Available    int64 `json:"available"`
	UpdatedAt    int64 `json:"updated_at"`
}

func availabilityKey(hotpotTypeID uint) string {
	return fmt.Sprintf("inventory:availability:%d", hotpotTypeID)
}

// GetAvailability reads the cached available-unit count
func GetAvailability(ctx context.Context, hotpotTypeID uint) (int64, bool, error) {
	if hotpotTypeID == 0 {
		return 0, false, nil
	}
	var snap availabilitySnapshot
	hit, err := GetJSON(ctx, availabilityKey(hotpotTypeID), &snap)
	if err != nil || !hit {
		return 0, hit, err
	}
	return snap.Available, true, nil
}

// SetAvailability caches the available-unit count
func SetAvailability(ctx context.Context, hotpotTypeID uint, available int64) error {
	if hotpotTypeID == 0 {
		return nil
	}
	snap := availabilitySnapshot{
		HotpotTypeID: hotpotTypeID,
		Available:    available,
		UpdatedAt:    time.Now().Unix(),
	}
	return SetJSON(ctx, availabilityKey(hotpotTypeID), snap, availabilityCacheTTL)
}

// DelAvailability drops the cached count after any unit status change
func DelAvailability(ctx context.Context, hotpotTypeID uint) error {
	if hotpotTypeID == 0 {
		return nil
	}
	return Del(ctx, availabilityKey(hotpotTypeID))
}
