// Package tier holds the membership level ladder and the eligibility rules
// derived from it: action gating, level progression thresholds and the
// per-level price ceiling applied by the product editors.
package tier

import (
	"fmt"

	"github.com/racines-club/points-engine/internal/common"
)

// Level is a ranked membership class.
type Level string

const (
	LevelExplorateur Level = "explorateur"
	LevelProtecteur  Level = "protecteur"
	LevelAmbassadeur Level = "ambassadeur"
)

// Rank returns the ordinal position of the level, 1 to 3. Unknown levels
// rank 0 and never pass an eligibility check.
func (l Level) Rank() int {
	switch l {
	case LevelExplorateur:
		return 1
	case LevelProtecteur:
		return 2
	case LevelAmbassadeur:
		return 3
	}
	return 0
}

// Valid reports whether the level is a known member of the ladder.
func (l Level) Valid() bool {
	return l.Rank() != 0
}

// Label returns the display name of the level.
func (l Level) Label() string {
	switch l {
	case LevelExplorateur:
		return "Explorateur"
	case LevelProtecteur:
		return "Protecteur"
	case LevelAmbassadeur:
		return "Ambassadeur"
	}
	return string(l)
}

// MaxPricePoints returns the highest product price, in points, a member of
// this level may purchase.
func (l Level) MaxPricePoints() int64 {
	switch l {
	case LevelExplorateur:
		return 500
	case LevelProtecteur:
		return 2000
	case LevelAmbassadeur:
		return 10000
	}
	return 0
}

// Next returns the level directly above, or false at the top of the ladder.
func (l Level) Next() (Level, bool) {
	switch l {
	case LevelExplorateur:
		return LevelProtecteur, true
	case LevelProtecteur:
		return LevelAmbassadeur, true
	}
	return "", false
}

// Threshold returns the lifetime points total required to hold the level.
func Threshold(l Level) int64 {
	switch l {
	case LevelProtecteur:
		return 1000
	case LevelAmbassadeur:
		return 5000
	}
	return 0
}

// CanPerformAction reports whether a member of userLevel may perform an
// action gated at requiredLevel.
func CanPerformAction(userLevel, requiredLevel Level) bool {
	return userLevel.Rank() >= requiredLevel.Rank()
}

// PointsToNextLevel returns how many points separate the member from the
// next level, floored at zero once the threshold is already met. The second
// return value is false at the top level, where no next step exists.
func PointsToNextLevel(current Level, totalPoints int64) (int64, bool) {
	next, ok := current.Next()
	if !ok {
		return 0, false
	}
	remaining := Threshold(next) - totalPoints
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// CheckPriceCeiling validates a product price against the ceiling of its
// minimum tier. A nil return means the price is purchasable by that tier.
func CheckPriceCeiling(pricePoints int64, minTier Level) error {
	if !minTier.Valid() {
		return common.NewValidationError("min_tier", fmt.Sprintf("unknown tier %q", string(minTier)))
	}
	ceiling := minTier.MaxPricePoints()
	if pricePoints > ceiling {
		return common.NewValidationError("price_points",
			fmt.Sprintf("price of %d points exceeds the %s ceiling of %d", pricePoints, string(minTier), ceiling))
	}
	return nil
}
