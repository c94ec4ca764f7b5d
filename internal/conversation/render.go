package conversation

import (
	"fmt"
	"sort"
	"strings"

	"medscan/internal/domain"
)

// renderResult formats a prediction as two messages: the predicted class and
// the per-class probability table. Rows follow the model's canonical label
// order; any unexpected labels are appended sorted.
func renderResult(model domain.ModelID, result *domain.PredictionResult) []string {
	lines := make([]string, 0, len(result.Probabilities))
	seen := make(map[string]bool, len(result.Probabilities))

	for _, label := range model.Labels() {
		if v, ok := result.Probabilities[label]; ok {
			lines = append(lines, fmt.Sprintf("%s: %.2f", label, v))
			seen[label] = true
		}
	}

	var extras []string
	for label := range result.Probabilities {
		if !seen[label] {
			extras = append(extras, label)
		}
	}
	sort.Strings(extras)
	for _, label := range extras {
		lines = append(lines, fmt.Sprintf("%s: %.2f", label, result.Probabilities[label]))
	}

	return []string{
		fmt.Sprintf(msgPredictedClass, result.PredictedClass),
		msgProbabilitiesTitle + strings.Join(lines, "\n"),
	}
}
