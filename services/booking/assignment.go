package booking

import (
	"fmt"
	"sort"
	"strings"

	"onboardify/models"
)

// AssignTrainer picks exactly one trainer from a non-empty candidate pool.
// Callers must already have filtered the pool to trainers that are free and
// calendar-authorized for the requested window.
//
// When requiredLanguages is non-empty the pool narrows to trainers covering
// at least one requested language; if none match, the full pool is kept so a
// booking never fails solely on language. The pick itself is the first
// candidate in canonical order (name, then ID), which keeps assignment
// deterministic and reproducible under test.
func AssignTrainer(candidates []models.Trainer, requiredLanguages []string) (models.AssignmentResult, error) {
	if len(candidates) == 0 {
		return models.AssignmentResult{}, fmt.Errorf("assignment requires a non-empty candidate pool")
	}

	pool := candidates
	var reason string
	if len(requiredLanguages) > 0 {
		var matched []models.Trainer
		for _, t := range candidates {
			if t.SpeaksAny(requiredLanguages) {
				matched = append(matched, t)
			}
		}
		if len(matched) > 0 {
			pool = matched
			reason = fmt.Sprintf("language match (%s)", strings.Join(requiredLanguages, ", "))
		} else {
			reason = "no language match, assigning any available trainer"
		}
	} else if len(candidates) == 1 {
		reason = "sole candidate"
	} else {
		reason = "first available trainer in alphabetical order"
	}

	chosen := pool[0]
	for _, t := range pool[1:] {
		if canonicalLess(t, chosen) {
			chosen = t
		}
	}

	return models.AssignmentResult{
		TrainerID:  chosen.ID,
		Reason:     reason,
		Candidates: candidateIDs(candidates),
	}, nil
}

func canonicalLess(a, b models.Trainer) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}

func candidateIDs(candidates []models.Trainer) []string {
	ids := make([]string, 0, len(candidates))
	for _, t := range candidates {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return ids
}
