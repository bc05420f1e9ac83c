package pay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"voyago/globals"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

// CreatePaymentIntent asks the payment processor to authorize a charge and
// returns the client-usable secret. The processor is an external boundary;
// this implementation issues a locally signed stand-in token.
func CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Price any `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	amount := utils.CoercePrice(body.Price)
	if amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "price must be a positive number")
		return
	}

	secret, err := clientSecret(utils.GetUUID(), amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "payment processor unavailable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"clientSecret": secret})
}

// clientSecret builds an intent token in the processor's pi_<id>_secret_<sig>
// shape, signed over the id and amount.
func clientSecret(intentID string, amount float64) (string, error) {
	h := hmac.New(sha256.New, globals.PaymentSecret)
	if _, err := fmt.Fprintf(h, "%s:%.2f", intentID, amount); err != nil {
		return "", err
	}
	sig := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("pi_%s_secret_%s", intentID, sig[:24]), nil
}
