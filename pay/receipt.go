package pay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"voyago/db"
	"voyago/globals"
	"voyago/middleware"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// voucherPayload returns a signed payload string: bookingID|paymentID|signature
func voucherPayload(bookingID, paymentID string) string {
	data := fmt.Sprintf("%s|%s", bookingID, paymentID)
	h := hmac.New(sha256.New, globals.PaymentSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintReceipt renders a PDF receipt for a recorded payment with a QR
// voucher the guide can scan on tour day. Only the payer or an admin may
// fetch it.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	paymentID := ps.ByName("id")
	claims := middleware.ClaimsFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var payment models.Payment
	err := db.PaymentsCollection.FindOne(ctx, bson.M{"id": paymentID}).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "payment not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	if payment.Email != claims.Email {
		role, roleErr := middleware.LookupRole(ctx, claims.Email)
		if roleErr != nil || role != models.RoleAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
			return
		}
	}

	var b models.Booking
	_ = db.BookingsCollection.FindOne(ctx, bson.M{"id": payment.BookingID}).Decode(&b)

	qrPNG, err := qrcode.Encode(voucherPayload(payment.BookingID, payment.ID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Payment Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Payment ID: %s", payment.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", payment.BookingID))
	pdf.Ln(8)
	if b.TripTitle != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Trip: %s", b.TripTitle))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Paid by: %s", payment.Email))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Amount: %.2f", utils.CoercePrice(payment.Price)))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", payment.Date))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+payment.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
