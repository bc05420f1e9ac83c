package stats

import (
	"sort"
	"time"

	"voyago/models"
	"voyago/utils"
)

// MonthRevenue is one (year, month) bucket of summed payment prices.
type MonthRevenue struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// TotalRevenue sums coerced prices across all payments, regardless of
// whether their dates parse. Unparseable prices contribute 0.
func TotalRevenue(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += utils.CoercePrice(p.Price)
	}
	return total
}

// MonthlyRevenue groups payments into (year, month) buckets sorted
// ascending. Payments whose dates cannot be parsed are excluded here;
// TotalRevenue still counts them, as the two are separate passes.
func MonthlyRevenue(payments []models.Payment) []MonthRevenue {
	type key struct{ year, month int }
	buckets := map[key]float64{}
	for _, p := range payments {
		t, ok := parseDate(p.Date)
		if !ok {
			continue
		}
		buckets[key{t.Year(), int(t.Month())}] += utils.CoercePrice(p.Price)
	}

	out := make([]MonthRevenue, 0, len(buckets))
	for k, sum := range buckets {
		out = append(out, MonthRevenue{Year: k.year, Month: k.month, TotalRevenue: sum})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// StatusCounts maps booking status to count. Bookings without a status
// (legacy documents written before decisions were validated) land in the
// "" bucket rather than being dropped.
func StatusCounts(bookings []models.Booking) map[string]int {
	counts := map[string]int{}
	for _, b := range bookings {
		counts[string(b.Status)]++
	}
	return counts
}

// LatestBooking picks the booking with the maximum tourDate, nil when
// there are none. Dates are ISO strings, so ordering is lexicographic.
func LatestBooking(bookings []models.Booking) *models.Booking {
	var latest *models.Booking
	for i := range bookings {
		if latest == nil || bookings[i].TourDate > latest.TourDate {
			latest = &bookings[i]
		}
	}
	return latest
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
