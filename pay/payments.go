package pay

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"voyago/booking"
	"voyago/db"
	"voyago/middleware"
	"voyago/models"
	"voyago/rdx"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// lockTTL defines the duration to hold the Redis lock per booking
const lockTTL = 5 * time.Second

// paymentPolicy decides whether a new payment may be recorded. A booking
// takes at most one payment, and only while it awaits one; replays are
// rejected outright, never absorbed as a silent success. Returns a zero
// status when the payment may proceed.
func paymentPolicy(existing *models.Payment, b models.Booking) (int, string) {
	if existing != nil {
		return http.StatusConflict, "payment already recorded for this booking"
	}
	if b.Status != models.StatusAccepted {
		return http.StatusBadRequest, "booking is not awaiting payment"
	}
	return 0, ""
}

// RecordPayment writes a Payment and advances the referenced booking to
// InReview. The two writes are not a store-level transaction: the payment
// goes in first, and if the booking update fails the payment is removed
// again. A booking takes at most one payment; replays get 409.
func RecordPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())

	var body struct {
		BookingID     string `json:"bookingId"`
		Price         any    `json:"price"`
		Date          string `json:"date"`
		TransactionID string `json:"transactionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if body.BookingID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "bookingId is required")
		return
	}
	if utils.CoercePrice(body.Price) <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "price must be a positive number")
		return
	}

	// Serialize attempts per booking within this deployment
	acquired, err := rdx.RdxSetNX("payment_lock:"+body.BookingID, "1", lockTTL)
	if err != nil || !acquired {
		utils.RespondWithError(w, http.StatusTooManyRequests, "payment in progress, please retry")
		return
	}
	defer func() { _ = rdx.RdxDel("payment_lock:" + body.BookingID) }()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var existing *models.Payment
	var prior models.Payment
	err = db.PaymentsCollection.FindOne(ctx, bson.M{"bookingId": body.BookingID}).Decode(&prior)
	if err == nil {
		existing = &prior
	} else if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	var b models.Booking
	err = db.BookingsCollection.FindOne(ctx, bson.M{"id": body.BookingID}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	if code, msg := paymentPolicy(existing, b); code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}

	date := body.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	payment := models.Payment{
		ID:            utils.GetUUID(),
		BookingID:     body.BookingID,
		Email:         claims.Email,
		Price:         body.Price,
		Date:          date,
		TransactionID: body.TransactionID,
	}

	if _, err := db.PaymentsCollection.InsertOne(ctx, payment); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "payment failed")
		return
	}

	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": body.BookingID},
		bson.M{"$set": bson.M{"status": models.StatusInReview}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		// compensate: the payment must not outlive a failed status change
		if _, delErr := db.PaymentsCollection.DeleteOne(ctx, bson.M{"id": payment.ID}); delErr != nil {
			log.Printf("compensation failed for payment %s: %v", payment.ID, delErr)
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "payment failed")
		return
	}

	booking.NotifyStatus(updated)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"payment": payment, "booking": updated})
}
