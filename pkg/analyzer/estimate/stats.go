package estimate

import (
	"sort"

	"github.com/augurtools/augur/pkg/models"
	"gonum.org/v1/gonum/stat"
)

// summarize computes aggregate statistics over per-file results.
func summarize(results []models.FileResult) models.Summary {
	s := models.Summary{TotalFiles: len(results), WorstTime: "O(1)"}

	scores := make([]float64, 0, len(results))
	for _, fr := range results {
		s.TotalLines += len(fr.Result.Lines)
		s.TotalSuggestions += len(fr.Result.Suggestions)
		scores = append(scores, float64(fr.Result.Overall.Score))
		s.WorstTime = models.WorseTime(s.WorstTime, fr.Result.Overall.Time)
	}

	if len(scores) == 0 {
		return s
	}

	sort.Float64s(scores)
	s.AvgScore = stat.Mean(scores, nil)
	s.MinScore = int(scores[0])
	s.MaxScore = int(scores[len(scores)-1])
	s.P50Score = int(stat.Quantile(0.5, stat.Empirical, scores, nil))
	s.P90Score = int(stat.Quantile(0.9, stat.Empirical, scores, nil))
	return s
}
