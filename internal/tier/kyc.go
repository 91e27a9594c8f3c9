package tier

// KycStatus represents the identity-verification state of a member profile.
type KycStatus string

const (
	KycStatusPending  KycStatus = "pending"
	KycStatusLight    KycStatus = "light"
	KycStatusComplete KycStatus = "complete"
	KycStatusRejected KycStatus = "rejected"
)

// Valid reports whether the status is a known member of the enum.
func (s KycStatus) Valid() bool {
	switch s {
	case KycStatusPending, KycStatusLight, KycStatusComplete, KycStatusRejected:
		return true
	}
	return false
}

// Label returns the display name of the KYC status.
func (s KycStatus) Label() string {
	switch s {
	case KycStatusPending:
		return "Vérification en attente"
	case KycStatusLight:
		return "Vérification simplifiée"
	case KycStatusComplete:
		return "Vérification complète"
	case KycStatusRejected:
		return "Vérification refusée"
	}
	return string(s)
}
