package tier

import (
	"testing"

	"github.com/racines-club/points-engine/internal/common"
)

func TestCanPerformAction(t *testing.T) {
	tests := []struct {
		user     Level
		required Level
		want     bool
	}{
		{LevelAmbassadeur, LevelExplorateur, true},
		{LevelExplorateur, LevelAmbassadeur, false},
		{LevelProtecteur, LevelProtecteur, true},
		{LevelExplorateur, LevelExplorateur, true},
		{Level("unknown"), LevelExplorateur, false},
	}
	for _, tt := range tests {
		if got := CanPerformAction(tt.user, tt.required); got != tt.want {
			t.Fatalf("CanPerformAction(%s, %s) = %v, want %v", tt.user, tt.required, got, tt.want)
		}
	}
}

func TestPointsToNextLevel(t *testing.T) {
	if _, ok := PointsToNextLevel(LevelAmbassadeur, 999999); ok {
		t.Fatal("ambassadeur has no next level")
	}

	remaining, ok := PointsToNextLevel(LevelExplorateur, 400)
	if !ok || remaining != 600 {
		t.Fatalf("explorateur at 400 points: got (%d, %v), want (600, true)", remaining, ok)
	}

	// Already past the protecteur threshold: capped at zero, never negative.
	remaining, ok = PointsToNextLevel(LevelExplorateur, 1500)
	if !ok || remaining != 0 {
		t.Fatalf("explorateur at 1500 points: got (%d, %v), want (0, true)", remaining, ok)
	}

	remaining, ok = PointsToNextLevel(LevelProtecteur, 1200)
	if !ok || remaining != 3800 {
		t.Fatalf("protecteur at 1200 points: got (%d, %v), want (3800, true)", remaining, ok)
	}
}

func TestCheckPriceCeiling(t *testing.T) {
	if err := CheckPriceCeiling(500, LevelExplorateur); err != nil {
		t.Fatalf("price at the ceiling should pass, got %v", err)
	}
	if err := CheckPriceCeiling(501, LevelExplorateur); err == nil {
		t.Fatal("price above the explorateur ceiling should fail")
	} else if !common.IsValidationError(err) {
		t.Fatalf("want ValidationError, got %T", err)
	}
	if err := CheckPriceCeiling(10000, LevelAmbassadeur); err != nil {
		t.Fatalf("ambassadeur ceiling should allow 10000, got %v", err)
	}
	if err := CheckPriceCeiling(100, Level("vip")); err == nil {
		t.Fatal("unknown tier should fail")
	}
}

func TestLevelLabelsAndRanks(t *testing.T) {
	levels := []struct {
		level Level
		rank  int
		label string
		max   int64
	}{
		{LevelExplorateur, 1, "Explorateur", 500},
		{LevelProtecteur, 2, "Protecteur", 2000},
		{LevelAmbassadeur, 3, "Ambassadeur", 10000},
	}
	for _, tt := range levels {
		if tt.level.Rank() != tt.rank {
			t.Fatalf("%s rank = %d, want %d", tt.level, tt.level.Rank(), tt.rank)
		}
		if tt.level.Label() != tt.label {
			t.Fatalf("%s label = %q, want %q", tt.level, tt.level.Label(), tt.label)
		}
		if tt.level.MaxPricePoints() != tt.max {
			t.Fatalf("%s ceiling = %d, want %d", tt.level, tt.level.MaxPricePoints(), tt.max)
		}
	}
}

func TestStatusEnums(t *testing.T) {
	for _, s := range []KycStatus{KycStatusPending, KycStatusLight, KycStatusComplete, KycStatusRejected} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
		if s.Label() == string(s) {
			t.Fatalf("%s should carry a display label", s)
		}
	}
	if KycStatus("verified").Valid() {
		t.Fatal("unknown KYC status should be invalid")
	}
	for _, r := range []RiskLevel{RiskLow, RiskMedium, RiskHigh} {
		if !r.Valid() || r.Label() == string(r) {
			t.Fatalf("%s should be valid and labeled", r)
		}
	}
}
