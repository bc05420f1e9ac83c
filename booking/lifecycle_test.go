package booking

import (
	"testing"

	"voyago/models"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to models.BookingStatus }{
		{models.StatusCreated, models.StatusAccepted},
		{models.StatusCreated, models.StatusRejected},
		{models.StatusAccepted, models.StatusInReview},
		{models.StatusInReview, models.StatusCompleted},
		{models.StatusInReview, models.StatusCancelled},
	}
	for _, tc := range allowed {
		if !canTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to models.BookingStatus }{
		{models.StatusCreated, models.StatusInReview},
		{models.StatusCreated, models.StatusCompleted},
		{models.StatusAccepted, models.StatusRejected},
		{models.StatusRejected, models.StatusAccepted},
		{models.StatusRejected, models.StatusInReview},
		{models.StatusInReview, models.StatusAccepted},
		{models.StatusCompleted, models.StatusCancelled},
		{models.StatusCancelled, models.StatusCreated},
	}
	for _, tc := range forbidden {
		if canTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be forbidden", tc.from, tc.to)
		}
	}
}

func TestCanDecide(t *testing.T) {
	assigned := models.Booking{ID: "b1", GuideEmail: "guide@example.com", Status: models.StatusCreated}

	if !canDecide(assigned, "guide@example.com") {
		t.Error("expected the assigned guide to be allowed to decide")
	}
	if canDecide(assigned, "other@example.com") {
		t.Error("expected a mismatched actor to be refused")
	}
	if canDecide(assigned, "") {
		t.Error("expected an empty actor to be refused")
	}

	// unassigned bookings cannot be decided by anyone, even an empty actor
	unassigned := models.Booking{ID: "b2", Status: models.StatusCreated}
	if canDecide(unassigned, "guide@example.com") || canDecide(unassigned, "") {
		t.Error("expected a booking without a guide to refuse every actor")
	}
}

func TestDecisionStatus(t *testing.T) {
	if s, ok := decisionStatus("accept"); !ok || s != models.StatusAccepted {
		t.Errorf("accept: got %q, ok=%v", s, ok)
	}
	if s, ok := decisionStatus("reject"); !ok || s != models.StatusRejected {
		t.Errorf("reject: got %q, ok=%v", s, ok)
	}

	// anything else must be rejected outright, never a silent null status
	for _, bad := range []string{"", "Accept", "approve", "cancel", "accepted"} {
		if _, ok := decisionStatus(bad); ok {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}
