package models

// Word is the word-of-the-day payload.
type Word struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Verse is the verse-of-the-day payload.
type Verse struct {
	Verse string `json:"verse"`
	Text  string `json:"text"`
}

// Trend is a metric's change against the previous period, in percent.
type Trend struct {
	Value    int  `json:"value"`
	Positive bool `json:"positive"`
}

// Metric is one dashboard figure.
type Metric struct {
	Title  string  `json:"title"`
	Value  float64 `json:"value"`
	Suffix string  `json:"suffix"`
	Trend  Trend   `json:"trend"`
}

// DashboardMetrics is the dashboard payload.
type DashboardMetrics struct {
	EcoScore int      `json:"ecoScore"`
	Metrics  []Metric `json:"metrics"`
}

// Slide is one onboarding page.
type Slide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TutorialStep is one step of the guided tour. Target names the screen the
// step points at; "" means it is not anchored to one.
type TutorialStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target,omitempty"`
}

// Article is one entry of the static learning library. ReadMinutes is an
// estimate shown next to the title; Body holds the paragraphs in order.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Category    string   `json:"category"`
	ReadMinutes int      `json:"readMinutes"`
	ImageURL    string   `json:"imageUrl"`
	Body        []string `json:"body"`
}
