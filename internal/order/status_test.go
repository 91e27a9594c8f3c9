package order

import "testing"

func TestCanCancel(t *testing.T) {
	cancelable := map[Status]bool{
		StatusPending:    true,
		StatusPaid:       true,
		StatusProcessing: false,
		StatusInTransit:  false,
		StatusCompleted:  false,
		StatusClosed:     false,
	}
	for status, want := range cancelable {
		if got := CanCancel(status); got != want {
			t.Fatalf("CanCancel(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestCanRefund(t *testing.T) {
	refundable := map[Status]bool{
		StatusPending:    false,
		StatusPaid:       false,
		StatusProcessing: false,
		StatusInTransit:  true,
		StatusCompleted:  true,
		StatusClosed:     false,
	}
	for status, want := range refundable {
		if got := CanRefund(status); got != want {
			t.Fatalf("CanRefund(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	statuses := []Status{StatusPending, StatusPaid, StatusProcessing, StatusInTransit, StatusCompleted, StatusClosed}
	for _, s := range statuses {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
		if s.Label() == string(s) {
			t.Fatalf("%s should carry a display label", s)
		}
	}
	if Status("shipped").Valid() {
		t.Fatal("unknown status should be invalid")
	}
}
