package services

import (
	"fmt"
	"strings"

	"eqsense/pkg/utils"
)

// DefaultMinWordsPerResponse is the minimum word count an answer must reach
// before it enters analysis.
const DefaultMinWordsPerResponse = 10

// ValidateResponses walks the answers in order and rejects the whole batch
// at the first failure. Messages use 1-based answer indexes. A nil return
// means every answer passed.
func ValidateResponses(responses []string, minWords int) error {
	if minWords <= 0 {
		minWords = DefaultMinWordsPerResponse
	}

	for i, response := range responses {
		if strings.TrimSpace(response) == "" {
			return &utils.ValidationError{
				Message: fmt.Sprintf("Answer %d cannot be empty. Please provide a thoughtful response.", i+1),
			}
		}

		words := strings.Fields(response)
		if len(words) < minWords {
			return &utils.ValidationError{
				Message: fmt.Sprintf(
					"Answer %d is too short. Please provide at least %d words (currently %d words). Your response should be detailed and reflective.",
					i+1, minWords, len(words)),
			}
		}
	}

	return nil
}
