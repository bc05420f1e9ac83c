package middleware

import (
	"context"
	"fmt"
	"net/http"

	"voyago/db"
	"voyago/globals"
	"voyago/models"
	"voyago/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// JWT claims
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Authenticate verifies the bearer credential and stores the decoded claims
// in the request context. Missing, malformed, or expired tokens get 401.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if websocket.IsWebSocketUpgrade(r) {
			// Websocket clients pass the token as a query parameter
			claims, err := ValidateJWT("Bearer " + r.URL.Query().Get("token"))
			if err != nil {
				http.Error(w, "unauthorized access", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), globals.ClaimsKey, claims)
			next(w, r.WithContext(ctx), ps)
			return
		}

		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, err := ValidateJWT(tokenString)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		ctx := context.WithValue(r.Context(), globals.ClaimsKey, claims)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireRole gates a handler on the caller's stored role, not the role
// claimed inside the token. Must wrap a handler already behind Authenticate
// so the identity it reads from context is verified.
func RequireRole(next httprouter.Handle, allowed ...models.Role) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		role, err := LookupRole(r.Context(), claims.Email)
		if err != nil {
			utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
			return
		}
		for _, a := range allowed {
			if role == a {
				next(w, r, ps)
				return
			}
		}
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
	}
}

// LookupRole fetches the stored role for an email from the users collection.
func LookupRole(ctx context.Context, email string) (models.Role, error) {
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return "", fmt.Errorf("no user record for %s: %w", email, err)
	}
	return user.Role, nil
}

func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(globals.ClaimsKey).(*Claims)
	return claims
}

func ValidateJWT(tokenString string) (*Claims, error) {
	if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
