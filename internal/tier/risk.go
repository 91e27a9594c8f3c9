package tier

// RiskLevel classifies a member profile for the compliance dashboard.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether the risk level is a known member of the enum.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Label returns the display name of the risk level.
func (r RiskLevel) Label() string {
	switch r {
	case RiskLow:
		return "Risque faible"
	case RiskMedium:
		return "Risque modéré"
	case RiskHigh:
		return "Risque élevé"
	}
	return string(r)
}
