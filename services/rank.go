package services

import (
	"sort"

	"swipess_server/models"
)

// ApplyRanking orders base by each listing's position in rankedIDs
// (highest relevance first). Listings absent from rankedIDs sort after
// every ranked one, keeping their original relative order. The sort is
// stable, so applying the same ranking twice yields the same sequence.
func ApplyRanking(base []models.Listing, rankedIDs []string) []models.Listing {
	if len(rankedIDs) == 0 {
		return base
	}

	pos := make(map[string]int, len(rankedIDs))
	for i, id := range rankedIDs {
		if _, seen := pos[id]; !seen {
			pos[id] = i
		}
	}

	out := make([]models.Listing, len(base))
	copy(out, base)
	sort.SliceStable(out, func(i, j int) bool {
		pi, iRanked := pos[out[i].ID]
		pj, jRanked := pos[out[j].ID]
		switch {
		case iRanked && jRanked:
			return pi < pj
		case iRanked:
			return true
		default:
			return false
		}
	})
	return out
}
