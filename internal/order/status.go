package order

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusProcessing Status = "processing"
	StatusInTransit  Status = "in_transit"
	StatusCompleted  Status = "completed"
	StatusClosed     Status = "closed"
)

// Valid reports whether the status is a known member of the enum.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusProcessing, StatusInTransit, StatusCompleted, StatusClosed:
		return true
	}
	return false
}

// Label returns the display name of the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "En attente"
	case StatusPaid:
		return "Payée"
	case StatusProcessing:
		return "En préparation"
	case StatusInTransit:
		return "En transit"
	case StatusCompleted:
		return "Livrée"
	case StatusClosed:
		return "Clôturée"
	}
	return string(s)
}

// CanCancel reports whether an order in this status may still be canceled.
// Membership check only, this does not model the full state machine.
func CanCancel(s Status) bool {
	return s == StatusPending || s == StatusPaid
}

// CanRefund reports whether an order in this status may be refunded. Not
// the complement of CanCancel.
func CanRefund(s Status) bool {
	return s == StatusCompleted || s == StatusInTransit
}
