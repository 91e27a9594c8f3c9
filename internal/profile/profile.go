// Package profile validates member profiles at the data-validation
// boundary. Field formats delegate to the validation primitives; the
// cross-field KYC rule for the top tier lives here, not inside the points
// calculators.
package profile

import (
	"errors"
	"reflect"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/racines-club/points-engine/internal/common"
	"github.com/racines-club/points-engine/internal/tier"
	"github.com/racines-club/points-engine/internal/validation"
)

// Profile is a member profile as submitted by account forms.
type Profile struct {
	Email         string         `json:"email" validate:"required,member_email"`
	Phone         string         `json:"phone" validate:"required,fr_phone"`
	IBAN          string         `json:"iban" validate:"omitempty,iban_shape"`
	PostalCode    string         `json:"postal_code" validate:"required,fr_postal"`
	DateOfBirth   time.Time      `json:"date_of_birth" validate:"adult"`
	Level         tier.Level     `json:"level" validate:"user_level"`
	KycStatus     tier.KycStatus `json:"kyc_status" validate:"kyc_status"`
	PointsBalance int64          `json:"points_balance" validate:"min=0"`
}

// NewValidator builds a validator with the engine's custom tags registered.
// The clock is injected so age checks stay deterministic in tests; nil
// falls back to time.Now.
func NewValidator(now func() time.Time) *validator.Validate {
	if now == nil {
		now = time.Now
	}
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	mustRegister(v, "member_email", func(fl validator.FieldLevel) bool {
		return validation.IsValidEmail(fl.Field().String())
	})
	mustRegister(v, "fr_phone", func(fl validator.FieldLevel) bool {
		return validation.IsValidFrenchPhone(fl.Field().String())
	})
	mustRegister(v, "iban_shape", func(fl validator.FieldLevel) bool {
		return validation.IsValidIBAN(fl.Field().String())
	})
	mustRegister(v, "fr_postal", func(fl validator.FieldLevel) bool {
		return validation.IsValidFrenchPostalCode(fl.Field().String())
	})
	mustRegister(v, "adult", func(fl validator.FieldLevel) bool {
		dob, ok := fl.Field().Interface().(time.Time)
		if !ok || dob.IsZero() {
			return false
		}
		return validation.IsAdult(dob, now())
	})
	mustRegister(v, "user_level", func(fl validator.FieldLevel) bool {
		return tier.Level(fl.Field().String()).Valid()
	})
	mustRegister(v, "kyc_status", func(fl validator.FieldLevel) bool {
		return tier.KycStatus(fl.Field().String()).Valid()
	})

	v.RegisterStructValidation(ambassadeurKycRule, Profile{})
	return v
}

// Validate runs the profile through the validator and converts the first
// failure into a ValidationError naming the offending field.
func Validate(v *validator.Validate, p Profile) error {
	err := v.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return common.NewValidationError(fe.Field(), messageFor(fe))
}

// An ambassadeur must carry a complete KYC verification; every other
// combination at that level is rejected.
func ambassadeurKycRule(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(Profile)
	if !ok {
		return
	}
	if p.Level == tier.LevelAmbassadeur && p.KycStatus != tier.KycStatusComplete {
		sl.ReportError(p.KycStatus, "kyc_status", "KycStatus", "ambassadeur_kyc", "")
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "member_email":
		return "must be a valid email address"
	case "fr_phone":
		return "must be a valid French phone number"
	case "iban_shape":
		return "must be a structurally valid IBAN"
	case "fr_postal":
		return "must be a five digit postal code"
	case "adult":
		return "member must be at least 18 years old"
	case "user_level":
		return "unknown user level"
	case "kyc_status":
		return "unknown KYC status"
	case "ambassadeur_kyc":
		return "ambassadeur level requires a complete KYC verification"
	case "min":
		return "must not be negative"
	}
	return "is invalid"
}
