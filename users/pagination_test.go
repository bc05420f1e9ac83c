package users

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int64
	}{
		{25, 10, 3},
		{30, 10, 3},
		{31, 10, 4},
		{0, 10, 0},
		{1, 10, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestParsePage(t *testing.T) {
	if p, s := ParsePage("", ""); p != 1 || s != defaultPageSize {
		t.Errorf("defaults: got page=%d size=%d", p, s)
	}
	if p, s := ParsePage("4", "25"); p != 4 || s != 25 {
		t.Errorf("explicit: got page=%d size=%d", p, s)
	}
	if p, _ := ParsePage("-2", "10"); p != 1 {
		t.Errorf("negative page should clamp to 1, got %d", p)
	}
}

func TestBuildFilter(t *testing.T) {
	filter, err := BuildFilter("", "")
	if err != nil || len(filter) != 0 {
		t.Errorf("empty inputs should build an empty filter, got %v (%v)", filter, err)
	}

	filter, err = BuildFilter("ali", "guide")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := filter["$or"]; !ok {
		t.Error("expected $or clause for search term")
	}
	if filter["role"] == nil {
		t.Error("expected role clause")
	}

	if _, err := BuildFilter("", "superuser"); err == nil {
		t.Error("expected error for unknown role")
	}
}
