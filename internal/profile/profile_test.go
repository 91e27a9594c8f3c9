package profile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/racines-club/points-engine/internal/common"
	"github.com/racines-club/points-engine/internal/profile"
	"github.com/racines-club/points-engine/internal/tier"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func validProfile() profile.Profile {
	return profile.Profile{
		Email:         "claire@racines.fr",
		Phone:         "06 12 34 56 78",
		IBAN:          "FR1420041010050500013M02606",
		PostalCode:    "75001",
		DateOfBirth:   time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC),
		Level:         tier.LevelProtecteur,
		KycStatus:     tier.KycStatusLight,
		PointsBalance: 1200,
	}
}

func TestValidProfilePasses(t *testing.T) {
	v := profile.NewValidator(func() time.Time { return testNow })
	require.NoError(t, profile.Validate(v, validProfile()))
}

func TestAmbassadeurRequiresCompleteKyc(t *testing.T) {
	v := profile.NewValidator(func() time.Time { return testNow })

	p := validProfile()
	p.Level = tier.LevelAmbassadeur
	p.KycStatus = tier.KycStatusLight
	err := profile.Validate(v, p)
	require.Error(t, err)
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "kyc_status", verr.Field)

	p.KycStatus = tier.KycStatusComplete
	require.NoError(t, profile.Validate(v, p))
}

func TestFieldFormatFailures(t *testing.T) {
	v := profile.NewValidator(func() time.Time { return testNow })

	tests := []struct {
		name   string
		mutate func(*profile.Profile)
		field  string
	}{
		{
			name:   "bad email",
			mutate: func(p *profile.Profile) { p.Email = "not-an-email" },
			field:  "email",
		},
		{
			name:   "foreign phone",
			mutate: func(p *profile.Profile) { p.Phone = "+4915123456789" },
			field:  "phone",
		},
		{
			name:   "malformed iban",
			mutate: func(p *profile.Profile) { p.IBAN = "FR12" },
			field:  "iban",
		},
		{
			name:   "short postal code",
			mutate: func(p *profile.Profile) { p.PostalCode = "7500" },
			field:  "postal_code",
		},
		{
			name:   "minor",
			mutate: func(p *profile.Profile) { p.DateOfBirth = time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC) },
			field:  "date_of_birth",
		},
		{
			name:   "unknown level",
			mutate: func(p *profile.Profile) { p.Level = "vip" },
			field:  "level",
		},
		{
			name:   "unknown kyc status",
			mutate: func(p *profile.Profile) { p.KycStatus = "verified" },
			field:  "kyc_status",
		},
		{
			name:   "negative balance",
			mutate: func(p *profile.Profile) { p.PointsBalance = -1 },
			field:  "points_balance",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := profile.Validate(v, p)
			require.Error(t, err)
			var verr *common.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestEmptyIBANIsAccepted(t *testing.T) {
	v := profile.NewValidator(func() time.Time { return testNow })
	p := validProfile()
	p.IBAN = ""
	require.NoError(t, profile.Validate(v, p))
}
