package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"voyago/db"
	"voyago/middleware"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBooking files a trip request for the authenticated tourist. The
// guide may be assigned up front; payment comes later in the lifecycle.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())

	var b models.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if b.TourDate == "" || b.TripTitle == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	b.ID = utils.GetUUID()
	b.TouristEmail = claims.Email
	if b.TouristName == "" {
		b.TouristName = claims.Name
	}
	b.Status = models.StatusCreated
	b.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.BookingsCollection.InsertOne(ctx, b); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	NotifyStatus(b)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booking": b})
}

// ListBookings returns a tourist's own bookings. Admins may list anyone's.
func ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	if claims.Email != email && !isAdmin(r.Context(), claims.Email) {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}

	listByFilter(w, r, bson.M{"touristEmail": email})
}

// ListAssigned returns the bookings assigned to a guide. Role gating is
// done by the route; here we only pin the filter to the caller.
func ListAssigned(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	if claims.Email != email {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}

	listByFilter(w, r, bson.M{"guideEmail": email})
}

func listByFilter(w http.ResponseWriter, r *http.Request, filter bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	bookings := []models.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"bookings": bookings})
}

// DecideBooking records a guide's accept/reject decision. Only the guide
// the booking is assigned to may decide, and only from Created. Routed as
// PATCH /bookings/:key/:id with key pinned to "assigned", since httprouter
// cannot mix that static segment with the redact route's :key wildcard.
func DecideBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("key") != "assigned" {
		utils.RespondWithError(w, http.StatusNotFound, "not found")
		return
	}
	id := ps.ByName("id")
	claims := middleware.ClaimsFromContext(r.Context())

	var body struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	target, ok := decisionStatus(body.Action)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "action must be accept or reject")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	if !canDecide(b, claims.Email) {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}
	if !canTransition(b.Status, target) {
		utils.RespondWithError(w, http.StatusConflict, "booking is not awaiting a decision")
		return
	}

	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": target}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	NotifyStatus(updated)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booking": updated})
}

// RedactBooking strips the denormalized display fields from a booking
// without deleting it. Idempotent: unsetting absent fields is a no-op.
func RedactBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("key")
	claims := middleware.ClaimsFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if b.TouristEmail != claims.Email && !isAdmin(r.Context(), claims.Email) {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}

	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$unset": bson.M{"tripTitle": "", "touristName": ""}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booking": updated})
}

// CancelBooking removes a booking entirely. Only the owning tourist or an
// admin may cancel.
func CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	claims := middleware.ClaimsFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if b.TouristEmail != claims.Email && !isAdmin(r.Context(), claims.Email) {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}

	res, err := db.BookingsCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deletedCount": res.DeletedCount})
}

func isAdmin(ctx context.Context, email string) bool {
	role, err := middleware.LookupRole(ctx, email)
	return err == nil && role == models.RoleAdmin
}
