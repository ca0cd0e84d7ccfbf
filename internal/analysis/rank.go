package analysis

import "sort"

type RankedSummary struct {
	Name string
	ConsumptionSummary
}

// RankByMeanConsumption sorts named variation summaries descending by mean
// simulated consumption, ties broken by name for a stable ordering.
func RankByMeanConsumption(byName map[string]ConsumptionSummary) []RankedSummary {
	out := make([]RankedSummary, 0, len(byName))
	for name, s := range byName {
		out = append(out, RankedSummary{Name: name, ConsumptionSummary: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanC != out[j].MeanC {
			return out[i].MeanC > out[j].MeanC
		}
		return out[i].Name < out[j].Name
	})
	return out
}
