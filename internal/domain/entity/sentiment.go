package entity

import (
	"math"
	"strings"
)

// Label represents a sentiment label
type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

// NeutralThreshold is the score below which a raw label is downgraded to NEUTRAL
const NeutralThreshold = 0.6

// ScorePrecision is the number of decimal places kept in reported scores
const ScorePrecision = 4

// ParseRawLabel normalizes a classifier label. Only POSITIVE and NEGATIVE are
// valid raw labels.
func ParseRawLabel(s string) (Label, bool) {
	switch l := Label(strings.ToUpper(strings.TrimSpace(s))); l {
	case LabelPositive, LabelNegative:
		return l, true
	default:
		return "", false
	}
}

// RawPrediction is the best label and its score as returned by the classifier
type RawPrediction struct {
	Label Label
	Score float64
}

// ScoreDetail is a single raw label/score pair reported alongside a result
type ScoreDetail struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Decision is the outcome of the neutral threshold policy
type Decision struct {
	Label      Label
	Confidence float64
}

// Decide applies the neutral threshold to a raw prediction.
// A score of exactly NeutralThreshold keeps the raw label.
func Decide(p RawPrediction) Decision {
	label := p.Label
	if p.Score < NeutralThreshold {
		label = LabelNeutral
	}
	return Decision{
		Label:      label,
		Confidence: RoundScore(p.Score),
	}
}

// RoundScore rounds a score to ScorePrecision decimal places
func RoundScore(score float64) float64 {
	pow := math.Pow10(ScorePrecision)
	return math.Round(score*pow) / pow
}

// SentimentResult represents the analysis of a single text
type SentimentResult struct {
	Text       string
	Label      Label
	Confidence float64
	Details    []ScoreDetail
}

// NewSentimentResult builds a result for text from its raw prediction
func NewSentimentResult(text string, p RawPrediction) *SentimentResult {
	d := Decide(p)
	return &SentimentResult{
		Text:       text,
		Label:      d.Label,
		Confidence: d.Confidence,
		Details: []ScoreDetail{{
			Label: p.Label,
			Score: RoundScore(p.Score),
		}},
	}
}

// BatchItemResult is the compact per-item result of a batch analysis
type BatchItemResult struct {
	Text       string
	Label      Label
	Confidence float64
}
