package e2e

import (
	"sort"
	"strings"

	"intentd/pkg/types"
)

// scoreByKeywords gives each label a share proportional to one plus the
// number of its words found in text, sorted by descending score with ties
// in label order.
func scoreByKeywords(text string, labels []string) []types.Prediction {
	words := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = true
	}
	raw := make([]float64, len(labels))
	var total float64
	for i, l := range labels {
		raw[i] = 1
		for _, w := range strings.Fields(l) {
			if words[w] {
				raw[i]++
			}
		}
		total += raw[i]
	}
	out := make([]types.Prediction, len(labels))
	for i, l := range labels {
		out[i] = types.Prediction{Label: l, Score: raw[i] / total}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
