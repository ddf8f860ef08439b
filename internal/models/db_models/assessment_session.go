package db_models

import "time"

const (
	GenderMale         = "male"
	GenderFemale       = "female"
	GenderOther        = "other"
	GenderPreferNotSay = "prefer_not_say"
)

// Demographics is collected once at the start of an assessment and never
// mutated afterwards.
type Demographics struct {
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Profession string `json:"profession"`
}

// EmotionShare is one entry of the descending-sorted emotion summary shown
// on the result page.
type EmotionShare struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// AssessmentSession is the full state of one assessment, carried across the
// start → respond → result round trips. The services stay stateless; the
// session object is loaded, transformed and saved by the caller.
type AssessmentSession struct {
	ID           string       `json:"id"`
	Demographics Demographics `json:"demographics"`
	Scenario     string       `json:"scenario"`
	Questions    []string     `json:"questions"`

	Completed        bool               `json:"completed"`
	CategoryScores   map[string]float64 `json:"category_scores,omitempty"`
	OverallScore     float64            `json:"overall_score,omitempty"`
	EQLevel          string             `json:"eq_level,omitempty"`
	SentimentPercent map[string]float64 `json:"sentiment_percent,omitempty"`
	EmotionPercent   []EmotionShare     `json:"emotion_percent,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AssessmentSessionRecord is the Postgres row backing a session when the
// database store is selected. The state column holds the JSON-encoded
// AssessmentSession; expired rows are reaped, never kept as history.
type AssessmentSessionRecord struct {
	ID        string    `gorm:"primaryKey;size:36"`
	State     []byte    `gorm:"type:jsonb"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AssessmentSessionRecord) TableName() string {
	return "assessment_sessions"
}
