package applications

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
)

// Apply files a guide application for the authenticated tourist. One open
// application per email.
func Apply(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())

	var app models.GuideApplication
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	app.Email = claims.Email
	if app.Name == "" {
		app.Name = claims.Name
	}

	var existing models.GuideApplication
	err := db.ApplicationsCollection.FindOne(ctx, bson.M{"email": app.Email}).Decode(&existing)
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "application already pending")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	app.ID = utils.GetUUID()
	app.AppliedAt = time.Now().Unix()
	if _, err := db.ApplicationsCollection.InsertOne(ctx, app); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"application": app})
}

func ListApplications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.ApplicationsCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	apps := []models.GuideApplication{}
	if err := cur.All(ctx, &apps); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"applications": apps})
}

// DeleteApplication removes an application. There is no rejected state:
// turning someone down is this removal.
func DeleteApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ApplicationsCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "application not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deletedCount": res.DeletedCount})
}

// Approve moves an application into the guides collection and promotes the
// user's role. Insert guide, promote, then delete the application, so a
// failure part-way leaves the application visible for retry.
func Approve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var app models.GuideApplication
	err := db.ApplicationsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&app)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "application not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	guide := models.Guide{
		ID:    utils.GetUUID(),
		Email: app.Email,
		Name:  app.Name,
		Photo: app.Photo,
		Title: app.Title,
	}
	if _, err := db.GuidesCollection.InsertOne(ctx, guide); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	if _, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"email": app.Email},
		bson.M{"$set": bson.M{"role": models.RoleGuide}},
	); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	if _, err := db.ApplicationsCollection.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"guide": guide})
}
