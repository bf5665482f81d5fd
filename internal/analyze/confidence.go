package analyze

import "strings"

// Confidence score bounds and formula weights. The score is a heuristic
// signal for human review, not a probability.
const (
	confidenceFloor   = 30
	confidenceBase    = 70
	confidenceCeiling = 95

	densityBonus  = 10
	specificBonus = 5

	// densityThreshold is the detections-per-page ratio above which the
	// structure is considered densely marked.
	densityThreshold = 0.1
)

// specificTokens are the pattern fragments whose presence in any detection
// indicates a known exam-paper format rather than a generic chapter hit.
var specificTokens = []string{"SAP", "SQP", "PP", "PRACTICE", "QUESTION"}

// Score computes the whole-document confidence score from the detection list.
// No detections yields the floor; otherwise the base is adjusted for
// detection density and pattern specificity, clamped to [30, 95].
func Score(detections []Detection, totalPages int) int {
	if len(detections) == 0 {
		return confidenceFloor
	}

	score := confidenceBase

	if totalPages > 0 && float64(len(detections))/float64(totalPages) > densityThreshold {
		score += densityBonus
	}

	for _, det := range detections {
		name := strings.ToUpper(det.Name)
		found := false
		for _, token := range specificTokens {
			if strings.Contains(name, token) {
				found = true
				break
			}
		}
		if found {
			score += specificBonus
			break
		}
	}

	if score > confidenceCeiling {
		score = confidenceCeiling
	}
	if score < confidenceFloor {
		score = confidenceFloor
	}
	return score
}
