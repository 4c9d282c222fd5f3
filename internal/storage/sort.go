package storage

import (
	"sort"

	"github.com/mcoot/wordtiles/internal/model"
)

// SortSummaries orders summaries most recently updated first, then by ID
func SortSummaries(summaries []model.GameSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].UpdatedAt.Equal(summaries[j].UpdatedAt) {
			return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
		}
		return summaries[i].ID < summaries[j].ID
	})
}
