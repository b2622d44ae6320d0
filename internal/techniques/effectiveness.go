// Package techniques derives practice effectiveness statistics.
package techniques

import (
	"sort"

	"github.com/oneirolab/oneiro/pkg/models"
)

// Effectiveness folds practice records into per-technique statistics,
// ordered by success rate descending, ties by technique key. Unattempted
// sessions count as attempts that did not succeed.
func Effectiveness(history []models.PracticeRecord) []models.TechniqueStats {
	byKey := make(map[string]*models.TechniqueStats)
	for _, p := range history {
		s, ok := byKey[p.Technique]
		if !ok {
			s = &models.TechniqueStats{Technique: p.Technique}
			byKey[p.Technique] = s
		}
		s.Attempts++
		if p.Outcome.Success() {
			s.Successes++
		}
		if p.Date > s.LastPracticed {
			s.LastPracticed = p.Date
		}
	}

	out := make([]models.TechniqueStats, 0, len(byKey))
	for _, s := range byKey {
		if s.Attempts > 0 {
			s.SuccessRate = float64(s.Successes) / float64(s.Attempts) * 100.0
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SuccessRate != out[j].SuccessRate {
			return out[i].SuccessRate > out[j].SuccessRate
		}
		return out[i].Technique < out[j].Technique
	})
	return out
}

// Recommendation maps a success rate to practice advice, mirroring the
// thresholds shown in the effectiveness report.
func Recommendation(successRate float64) string {
	switch {
	case successRate > 70.0:
		return "Continue using as primary technique"
	case successRate > 40.0:
		return "Combine with another technique"
	default:
		return "Try modifying approach or switch techniques"
	}
}
