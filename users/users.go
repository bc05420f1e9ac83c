package users

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

// CreateUser inserts a user record keyed by email if absent. Re-sending the
// same user is a no-op: the existing record is left untouched.
func CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if user.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}
	if user.Role == "" {
		user.Role = models.RoleTourist
	} else if _, ok := models.ParseRole(string(user.Role)); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "unknown role")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existing)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "user already exist", "insertedId": nil})
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	user.ID = utils.GetUUID()
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"insertedId": user.ID})
}

func GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("key")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// RoleFlag answers "is this email an admin/guide" for the caller's own
// email only. Dispatched on the first path segment because httprouter
// cannot mix a static segment with the :key wildcard of GET /users/:key.
func RoleFlag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	switch ps.ByName("key") {
	case "admin":
		respondRoleFlag(w, r, ps.ByName("value"), "admin", models.RoleAdmin)
	case "guide":
		respondRoleFlag(w, r, ps.ByName("value"), "guide", models.RoleGuide)
	default:
		utils.RespondWithError(w, http.StatusNotFound, "not found")
	}
}

func respondRoleFlag(w http.ResponseWriter, r *http.Request, email, key string, want models.Role) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil || claims.Email != email {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}

	role, err := middleware.LookupRole(r.Context(), email)
	if err != nil {
		// absent record still answers false for self lookups
		utils.RespondWithJSON(w, http.StatusOK, utils.M{key: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{key: role == want})
}

// ListUsers returns a paginated, filterable user listing for the admin UI.
func ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	page, size := ParsePage(q.Get("page"), q.Get("size"))
	filter, err := BuildFilter(q.Get("search"), q.Get("role"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	total, err := db.UserCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	opts := options.Find().
		SetSkip(int64(page-1) * int64(size)).
		SetLimit(int64(size)).
		SetSort(bson.M{"email": 1})
	cur, err := db.UserCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"totalUsers":  total,
		"totalPages":  TotalPages(total, size),
		"currentPage": page,
		"users":       users,
	})
}

// Promote raises a user's role by record id: PATCH /users/admin/:id and
// PATCH /users/guide/:id share one route for the same wildcard reason as
// RoleFlag. Promotions are one-directional; there is no downgrade path.
func Promote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	switch ps.ByName("key") {
	case "admin":
		setRole(w, r, ps.ByName("value"), models.RoleAdmin)
	case "guide":
		setRole(w, r, ps.ByName("value"), models.RoleGuide)
	default:
		utils.RespondWithError(w, http.StatusNotFound, "not found")
	}
}

func setRole(w http.ResponseWriter, r *http.Request, id string, role models.Role) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"modifiedCount": res.ModifiedCount})
}

// UpdateProfile lets a user change their own name and photo.
func UpdateProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("key")
	claims := middleware.ClaimsFromContext(r.Context())

	var body struct {
		Name  string `json:"name"`
		Photo string `json:"photo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if claims == nil || user.Email != claims.Email {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}

	update := bson.M{}
	if body.Name != "" {
		update["name"] = body.Name
	}
	if body.Photo != "" {
		update["photo"] = body.Photo
	}
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"modifiedCount": res.ModifiedCount})
}

func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("key")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.UserCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deletedCount": res.DeletedCount})
}
