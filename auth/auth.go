package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"voyago/globals"
	"voyago/middleware"
	"voyago/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const tokenTTL = time.Hour

// IssueToken signs a session credential over the presented identity claims.
// This is the login step: no authorization precondition, the claims only
// become meaningful once verification succeeds on later calls.
func IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Photo string `json:"photo"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if body.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	now := time.Now()
	claims := &middleware.Claims{
		Email: body.Email,
		Name:  body.Name,
		Photo: body.Photo,
		Role:  body.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": signed})
}
