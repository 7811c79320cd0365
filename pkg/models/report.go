package models

// FileResult holds the analysis result for a single file.
type FileResult struct {
	Path     string         `json:"path"`
	Language string         `json:"language"`
	Result   AnalysisResult `json:"result"`
}

// Analysis is the aggregate result of a batch analysis run.
type Analysis struct {
	Files   []FileResult `json:"files"`
	Summary Summary      `json:"summary"`
}

// Summary provides aggregate statistics over a batch run.
type Summary struct {
	TotalFiles       int     `json:"total_files"`
	TotalLines       int     `json:"total_lines"`
	TotalSuggestions int     `json:"total_suggestions"`
	AvgScore         float64 `json:"avg_score"`
	MinScore         int     `json:"min_score"`
	MaxScore         int     `json:"max_score"`
	P50Score         int     `json:"p50_score"`
	P90Score         int     `json:"p90_score"`
	WorstTime        string  `json:"worst_time"`
}

// growthRank orders Big-O labels by asymptotic growth. Unknown labels rank
// below O(1) so they never win the worst-case comparison.
func growthRank(label string) int {
	switch label {
	case "O(1)":
		return 1
	case "O(log n)":
		return 2
	case "O(n)":
		return 3
	case "O(n log n)":
		return 4
	case "O(n^2)":
		return 5
	case "O(n^3)":
		return 6
	case "O(2^n)":
		return 8
	default:
		if len(label) > 4 && label[:4] == "O(n^" {
			return 7
		}
		return 0
	}
}

// WorseTime returns the label with the higher asymptotic growth.
func WorseTime(a, b string) string {
	if growthRank(b) > growthRank(a) {
		return b
	}
	return a
}
