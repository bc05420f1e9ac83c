package stats

import (
	"testing"

	"voyago/models"
)

func TestTotalRevenueCoercesMixedPrices(t *testing.T) {
	payments := []models.Payment{
		{Price: "100"},
		{Price: 50},
		{Price: "bad"},
		{Price: nil},
	}
	if got := TotalRevenue(payments); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
}

func TestMonthlyRevenue(t *testing.T) {
	payments := []models.Payment{
		{Price: 100, Date: "2024-01-05"},
		{Price: 50, Date: "2024-01-20"},
		{Price: 10, Date: "2024-02-01"},
	}
	trend := MonthlyRevenue(payments)
	if len(trend) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(trend))
	}
	if trend[0].Year != 2024 || trend[0].Month != 1 || trend[0].TotalRevenue != 150 {
		t.Errorf("bucket 0: got %+v", trend[0])
	}
	if trend[1].Year != 2024 || trend[1].Month != 2 || trend[1].TotalRevenue != 10 {
		t.Errorf("bucket 1: got %+v", trend[1])
	}
}

func TestMonthlyRevenueSortsAcrossYears(t *testing.T) {
	payments := []models.Payment{
		{Price: 5, Date: "2025-01-01"},
		{Price: 7, Date: "2024-12-31"},
	}
	trend := MonthlyRevenue(payments)
	if len(trend) != 2 || trend[0].Year != 2024 || trend[1].Year != 2025 {
		t.Fatalf("expected 2024-12 before 2025-01, got %+v", trend)
	}
}

// A payment with an unparseable date stays out of the trend but still
// counts toward total revenue. Two separate passes.
func TestUnparseableDateExcludedFromTrendOnly(t *testing.T) {
	payments := []models.Payment{
		{Price: 100, Date: "2024-01-05"},
		{Price: 40, Date: "not-a-date"},
	}
	if got := TotalRevenue(payments); got != 140 {
		t.Errorf("expected total 140, got %v", got)
	}
	trend := MonthlyRevenue(payments)
	if len(trend) != 1 || trend[0].TotalRevenue != 100 {
		t.Errorf("expected single 100 bucket, got %+v", trend)
	}
}

func TestStatusCounts(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.StatusCreated},
		{Status: models.StatusCreated},
		{Status: models.StatusInReview},
		{}, // legacy document without a status
	}
	counts := StatusCounts(bookings)
	if counts["Created"] != 2 || counts["InReview"] != 1 || counts[""] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestLatestBooking(t *testing.T) {
	if LatestBooking(nil) != nil {
		t.Fatal("expected nil for no bookings")
	}

	bookings := []models.Booking{
		{ID: "a", TourDate: "2024-01-10"},
		{ID: "b", TourDate: "2024-03-01"},
		{ID: "c", TourDate: "2024-02-15"},
	}
	latest := LatestBooking(bookings)
	if latest == nil || latest.ID != "b" {
		t.Fatalf("expected booking b, got %+v", latest)
	}
}
