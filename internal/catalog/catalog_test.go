package catalog

import "testing"

func TestCatalogSizes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"core habits", len(CoreHabits()), 5},
		{"words", len(Words()), 12},
		{"verses", len(Verses()), 12},
		{"reminders", len(Reminders()), 15},
		{"slides", len(Slides()), 4},
		{"tutorial steps", len(TutorialSteps()), 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if len(AllHabits()) <= len(CoreHabits()) {
		t.Error("AllHabits should extend the core habits")
	}
}

func TestHabitIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, h := range AllHabits() {
		if h.ID == "" || h.Name == "" {
			t.Errorf("habit missing id or name: %+v", h)
		}
		if seen[h.ID] {
			t.Errorf("duplicate habit id %q", h.ID)
		}
		seen[h.ID] = true
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	h := CoreHabits()
	h[0].Name = "changed"
	if CoreHabits()[0].Name == "changed" {
		t.Error("CoreHabits exposes the package slice")
	}
}

func TestLookupHabit(t *testing.T) {
	if h, ok := LookupHabit("biking"); !ok || h.Points != 15 {
		t.Errorf("LookupHabit(biking) = (%+v, %v)", h, ok)
	}
	if _, ok := LookupHabit("nope"); ok {
		t.Error("LookupHabit found an unknown id")
	}
}

func TestArticles(t *testing.T) {
	tests := []struct {
		category string
		want     int
	}{
		{"", 5},
		{"all", 5},
		{"Climate", 2},
		{"water", 1},
		{"WASTE", 1},
		{"Energy", 1},
		{"Oceans", 0},
	}
	for _, tt := range tests {
		if got := len(Articles(tt.category)); got != tt.want {
			t.Errorf("Articles(%q) returned %d articles, want %d", tt.category, got, tt.want)
		}
	}

	known := map[string]bool{}
	for _, c := range ArticleCategories() {
		known[c] = true
	}
	seen := map[string]bool{}
	for _, a := range Articles("") {
		if a.ID == "" || a.Title == "" || len(a.Body) == 0 || a.ReadMinutes <= 0 {
			t.Errorf("incomplete article: %+v", a)
		}
		if !known[a.Category] {
			t.Errorf("article %q has unknown category %q", a.ID, a.Category)
		}
		if seen[a.ID] {
			t.Errorf("duplicate article id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestLookupArticleReturnsCopy(t *testing.T) {
	a, ok := LookupArticle("water-at-home")
	if !ok {
		t.Fatal("water-at-home not found")
	}
	a.Body[0] = "changed"

	again, _ := LookupArticle("water-at-home")
	if again.Body[0] == "changed" {
		t.Error("LookupArticle exposed the catalog's backing array")
	}

	if _, ok := LookupArticle("missing"); ok {
		t.Error("LookupArticle found an unknown id")
	}
}
