package catalog

import "testing"

func TestAll_OrderAndCount(t *testing.T) {
	all := All()
	if len(all) != Count() {
		t.Fatalf("All() returned %d, Count() = %d", len(all), Count())
	}
	if Count() != 8 {
		t.Errorf("expected 8 categories, got %d", Count())
	}
	if all[0] != CoreEmployability {
		t.Errorf("first category = %s, want %s", all[0], CoreEmployability)
	}
	if all[len(all)-1] != ProjectManagement {
		t.Errorf("last category = %s, want %s", all[len(all)-1], ProjectManagement)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0] = Category("Tampered")
	if All()[0] != CoreEmployability {
		t.Error("All() exposed the internal order slice")
	}
}

func TestGet_KnownCategory(t *testing.T) {
	d, err := Get(AILiteracy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Description == "" {
		t.Error("missing description")
	}
	if len(d.FocusAreas) != 4 {
		t.Errorf("expected 4 focus areas, got %d", len(d.FocusAreas))
	}
}

func TestGet_UnknownCategory(t *testing.T) {
	if _, err := Get(Category("Quantum Baking")); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestGrade_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{79.9, "Good"},
		{70, "Good"},
		{69.9, "Average"},
		{60, "Average"},
		{59.9, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
