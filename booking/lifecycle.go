package booking

import "voyago/models"

// transitions holds the allowed status progression. Rejected, Completed
// and Cancelled are terminal.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusCreated:  {models.StatusAccepted, models.StatusRejected},
	models.StatusAccepted: {models.StatusInReview},
	models.StatusInReview: {models.StatusCompleted, models.StatusCancelled},
}

func canTransition(from, to models.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// canDecide reports whether actor is the assigned guide for b. A booking
// without an assigned guide cannot be decided by anyone.
func canDecide(b models.Booking, actor string) bool {
	return b.GuideEmail != "" && b.GuideEmail == actor
}

// decisionStatus maps a guide's decision action onto the target status.
// Anything outside accept/reject is a validation error, never a silent
// null status.
func decisionStatus(action string) (models.BookingStatus, bool) {
	switch action {
	case "accept":
		return models.StatusAccepted, true
	case "reject":
		return models.StatusRejected, true
	}
	return "", false
}
