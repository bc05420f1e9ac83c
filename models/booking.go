package models

type BookingStatus string

const (
	StatusCreated   BookingStatus = "Created"
	StatusAccepted  BookingStatus = "Accepted"
	StatusRejected  BookingStatus = "Rejected"
	StatusInReview  BookingStatus = "InReview"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID           string        `json:"id" bson:"id"`
	TouristEmail string        `json:"touristEmail" bson:"touristEmail"`
	GuideEmail   string        `json:"guideEmail,omitempty" bson:"guideEmail,omitempty"`
	PackageID    string        `json:"packageId,omitempty" bson:"packageId,omitempty"`
	TripTitle    string        `json:"tripTitle,omitempty" bson:"tripTitle,omitempty"`
	TouristName  string        `json:"touristName,omitempty" bson:"touristName,omitempty"`
	TourDate     string        `json:"tourDate" bson:"tourDate"`
	Price        any           `json:"price" bson:"price"`
	Status       BookingStatus `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt    int64         `json:"createdAt" bson:"createdAt"`
}

// Payment records one successful charge for a booking. Immutable once
// written. Price is kept loosely typed: legacy documents store it as a
// string, newer ones as a number.
type Payment struct {
	ID            string `json:"id" bson:"id"`
	BookingID     string `json:"bookingId" bson:"bookingId"`
	Email         string `json:"email" bson:"email"`
	Price         any    `json:"price" bson:"price"`
	Date          string `json:"date" bson:"date"`
	TransactionID string `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
}
