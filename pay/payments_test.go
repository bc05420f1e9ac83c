package pay

import (
	"net/http"
	"testing"

	"voyago/models"
)

func TestPaymentPolicy(t *testing.T) {
	accepted := models.Booking{ID: "b1", Status: models.StatusAccepted}

	if code, _ := paymentPolicy(nil, accepted); code != 0 {
		t.Fatalf("expected an accepted booking with no prior payment to pass, got %d", code)
	}

	// a second payment for the same booking is rejected, not absorbed
	prior := &models.Payment{ID: "p1", BookingID: "b1"}
	if code, _ := paymentPolicy(prior, accepted); code != http.StatusConflict {
		t.Errorf("expected 409 for a repeated payment, got %d", code)
	}

	notPayable := []models.BookingStatus{
		models.StatusCreated,
		models.StatusRejected,
		models.StatusInReview,
		models.StatusCompleted,
		models.StatusCancelled,
		"",
	}
	for _, status := range notPayable {
		b := models.Booking{ID: "b1", Status: status}
		if code, _ := paymentPolicy(nil, b); code != http.StatusBadRequest {
			t.Errorf("status %q: expected 400, got %d", status, code)
		}
	}

	// the replay check wins even when the booking drifted out of Accepted
	inReview := models.Booking{ID: "b1", Status: models.StatusInReview}
	if code, _ := paymentPolicy(prior, inReview); code != http.StatusConflict {
		t.Errorf("expected 409 to take precedence, got %d", code)
	}
}
