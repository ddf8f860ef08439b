package classifier

import (
	"encoding/json"
	"strings"
)

// The inference backends do not agree on a payload shape: depending on the
// model and API version a sentiment call may return a single record, a list
// with one record, or a list nested inside another list; an emotion call may
// additionally return (label, score) pairs or a label-keyed map. Everything
// here folds those variants into the canonical types. Unrecognized input
// degrades to defaults instead of erroring.

// NormalizeSentimentLabel folds label synonyms into the canonical set.
// Anything that is not positive or negative becomes NEUTRAL.
func NormalizeSentimentLabel(label string) string {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "POSITIVE", "POS":
		return SentimentPositive
	case "NEGATIVE", "NEG":
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// NormalizeSentiment extracts one {label, score} pair from a raw classifier
// payload. Defaults to {NEUTRAL, 0.5} when no record can be found.
func NormalizeSentiment(raw json.RawMessage) SentimentResult {
	fallback := SentimentResult{Label: SentimentNeutral, Score: 0.5}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}

	record, ok := firstRecord(value)
	if !ok {
		return fallback
	}

	label, _ := record["label"].(string)
	score, ok := record["score"].(float64)
	if !ok {
		score = 0.5
	}
	return SentimentResult{Label: NormalizeSentimentLabel(label), Score: score}
}

// firstRecord digs the first labeled record out of a value, unwrapping up to
// two levels of list nesting ([[{...}]] is the usual batch shape).
func firstRecord(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		if _, ok := v["label"]; ok {
			return v, true
		}
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		return firstRecord(v[0])
	}
	return nil, false
}

// NormalizeEmotions flattens a raw multi-label classifier payload into a
// lower-cased label → score map. Handles lists of records, nested lists,
// (label, score) pairs, a single record, and label-keyed maps. Malformed
// input yields an empty map.
func NormalizeEmotions(raw json.RawMessage) map[string]float64 {
	scores := make(map[string]float64)

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return scores
	}
	collectEmotions(value, scores)
	return scores
}

func collectEmotions(value any, out map[string]float64) {
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			switch entry := item.(type) {
			case map[string]any:
				addEmotionRecord(entry, out)
			case []any:
				if label, score, ok := pairEntry(entry); ok {
					out[label] = score
				} else {
					// Nested batch list, one level down.
					collectEmotions(entry, out)
				}
			}
		}
	case map[string]any:
		if _, ok := v["label"]; ok {
			addEmotionRecord(v, out)
			return
		}
		// Label-keyed map: {"joy": 0.9} or {"joy": {"score": 0.9}}.
		for key, val := range v {
			label := strings.ToLower(strings.TrimSpace(key))
			if label == "" {
				continue
			}
			switch s := val.(type) {
			case float64:
				out[label] = s
			case map[string]any:
				if score, ok := s["score"].(float64); ok {
					out[label] = score
				}
			}
		}
	}
}

func addEmotionRecord(record map[string]any, out map[string]float64) {
	label, _ := record["label"].(string)
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return
	}
	score, _ := record["score"].(float64)
	out[label] = score
}

// pairEntry recognizes the (label, score) tuple shape. The score slot may
// itself be a {"score": x} record.
func pairEntry(entry []any) (string, float64, bool) {
	if len(entry) < 2 {
		return "", 0, false
	}
	label, ok := entry[0].(string)
	if !ok || strings.TrimSpace(label) == "" {
		return "", 0, false
	}
	label = strings.ToLower(strings.TrimSpace(label))
	switch s := entry[1].(type) {
	case float64:
		return label, s, true
	case map[string]any:
		if score, ok := s["score"].(float64); ok {
			return label, score, true
		}
	}
	return label, 0, true
}
