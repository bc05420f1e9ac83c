package stats

import (
	"context"
	"net/http"
	"time"

	"voyago/db"
	"voyago/middleware"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminStats reports collection cardinalities, total revenue, and the
// month-by-month revenue trend.
func AdminStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	counts := map[string]*mongo.Collection{
		"usersCount":        db.UserCollection,
		"packagesCount":     db.PackagesCollection,
		"guidesCount":       db.GuidesCollection,
		"bookingsCount":     db.BookingsCollection,
		"storiesCount":      db.StoriesCollection,
		"applicationsCount": db.ApplicationsCollection,
	}

	result := utils.M{}
	for name, coll := range counts {
		n, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "aggregation failed")
			return
		}
		result[name] = n
	}

	payments, err := allPayments(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "aggregation failed")
		return
	}

	result["totalRevenue"] = TotalRevenue(payments)
	result["revenueTrend"] = MonthlyRevenue(payments)
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// UserStatistics reports one user's trip, spend, and story figures. A user
// may only view their own; admins may view anyone's.
func UserStatistics(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")
	claims := middleware.ClaimsFromContext(r.Context())
	if claims.Email != email {
		role, err := middleware.LookupRole(r.Context(), claims.Email)
		if err != nil || role != models.RoleAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx, bson.M{"touristEmail": email})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "aggregation failed")
		return
	}
	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "aggregation failed")
		return
	}

	payments, err := allPayments(ctx, bson.M{"email": email})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "aggregation failed")
		return
	}

	storiesCount, err := db.StoriesCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "aggregation failed")
		return
	}

	var latest any
	if lb := LatestBooking(bookings); lb != nil {
		latest = lb
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"totalTrips":          len(bookings),
		"totalSpent":          TotalRevenue(payments),
		"totalStories":        storiesCount,
		"bookingStatusCounts": StatusCounts(bookings),
		"latestBooking":       latest,
		"spendingTrends":      MonthlyRevenue(payments),
	})
}

func allPayments(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	cur, err := db.PaymentsCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
