package stories

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

const storyPicDir = "./static/storypic"

func CreateStory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())

	var s models.Story
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if s.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title is required")
		return
	}

	s.ID = utils.GetUUID()
	s.Email = claims.Email
	if s.Author == "" {
		s.Author = claims.Name
	}
	s.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.StoriesCollection.InsertOne(ctx, s); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"story": s})
}

// ListStories is a public read; pass ?email= to scope to one author.
func ListStories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if email := r.URL.Query().Get("email"); email != "" {
		filter["email"] = email
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.StoriesCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	stories := []models.Story{}
	if err := cur.All(ctx, &stories); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"stories": stories})
}

func GetStory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var s models.Story
	err := db.StoriesCollection.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "story not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s)
}

// UpdateStory edits text fields and adds/removes image URLs via set-style
// updates, so concurrent image edits don't clobber each other.
func UpdateStory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	claims := middleware.ClaimsFromContext(r.Context())

	var body struct {
		Title       string `json:"title"`
		Text        string `json:"text"`
		AddImage    string `json:"addImage"`
		RemoveImage string `json:"removeImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var s models.Story
	err := db.StoriesCollection.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "story not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if s.Email != claims.Email {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}

	update := bson.M{}
	set := bson.M{}
	if body.Title != "" {
		set["title"] = body.Title
	}
	if body.Text != "" {
		set["text"] = body.Text
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	if body.AddImage != "" {
		update["$addToSet"] = bson.M{"images": body.AddImage}
	}
	if body.RemoveImage != "" {
		update["$pull"] = bson.M{"images": body.RemoveImage}
	}
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	res := db.StoriesCollection.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Story
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"story": updated})
}

func DeleteStory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	claims := middleware.ClaimsFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var s models.Story
	err := db.StoriesCollection.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "story not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if s.Email != claims.Email {
		role, roleErr := middleware.LookupRole(r.Context(), claims.Email)
		if roleErr != nil || role != models.RoleAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
			return
		}
	}

	res, err := db.StoriesCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deletedCount": res.DeletedCount})
}

// UploadPhoto stores a story image and returns its URL.
func UploadPhoto(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "photo file missing")
		return
	}
	defer file.Close()

	filename, err := utils.SaveImage(file, header, storyPicDir, 300)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"photoUrl": "/static/storypic/" + filename})
}
