package booking

import (
	"strings"
	"testing"

	"onboardify/models"
)

func trainer(id, name string, languages ...string) models.Trainer {
	return models.Trainer{ID: id, Name: name, Languages: languages, Active: true}
}

func TestAssignTrainerPrefersLanguageMatch(t *testing.T) {
	candidates := []models.Trainer{
		trainer("t1", "Aisha", "English"),
		trainer("t2", "Mei Lin", "Mandarin"),
		trainer("t3", "Siti", "Malay"),
	}

	got, err := AssignTrainer(candidates, []string{"Mandarin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TrainerID != "t2" {
		t.Fatalf("expected Mandarin speaker t2, got %s", got.TrainerID)
	}
	if !strings.HasPrefix(got.Reason, "language match") {
		t.Fatalf("unexpected reason %q", got.Reason)
	}
}

func TestAssignTrainerFallsBackWhenNoLanguageMatch(t *testing.T) {
	candidates := []models.Trainer{
		trainer("t2", "Mei Lin", "Mandarin"),
		trainer("t1", "Aisha", "English"),
	}

	got, err := AssignTrainer(candidates, []string{"Tamil"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Nobody speaks Tamil, so the full pool stays eligible and the
	// canonical-order pick applies.
	if got.TrainerID != "t1" {
		t.Fatalf("expected fallback pick t1, got %s", got.TrainerID)
	}
	if got.Reason != "no language match, assigning any available trainer" {
		t.Fatalf("unexpected reason %q", got.Reason)
	}
}

func TestAssignTrainerDeterministicAcrossInputOrder(t *testing.T) {
	a := []models.Trainer{
		trainer("t3", "Siti", "Malay"),
		trainer("t1", "Aisha", "English"),
		trainer("t2", "Mei Lin", "Mandarin"),
	}
	b := []models.Trainer{a[2], a[0], a[1]}

	first, err := AssignTrainer(a, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := AssignTrainer(b, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TrainerID != second.TrainerID {
		t.Fatalf("assignment depends on input order: %s vs %s", first.TrainerID, second.TrainerID)
	}
	if first.TrainerID != "t1" {
		t.Fatalf("expected alphabetical pick t1, got %s", first.TrainerID)
	}
}

func TestAssignTrainerChoosesFromCandidatePool(t *testing.T) {
	candidates := []models.Trainer{
		trainer("t5", "Ravi", "Tamil"),
		trainer("t4", "Nurul", "Malay", "English"),
	}

	got, err := AssignTrainer(candidates, []string{"English"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, c := range candidates {
		if c.ID == got.TrainerID {
			found = true
		}
	}
	if !found {
		t.Fatalf("assigned trainer %s is not in the candidate pool", got.TrainerID)
	}
	if len(got.Candidates) != 2 {
		t.Fatalf("expected the full considered pool in the result, got %v", got.Candidates)
	}
}

func TestAssignTrainerSoleCandidate(t *testing.T) {
	got, err := AssignTrainer([]models.Trainer{trainer("t9", "Wei")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TrainerID != "t9" || got.Reason != "sole candidate" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestAssignTrainerEmptyPool(t *testing.T) {
	if _, err := AssignTrainer(nil, nil); err == nil {
		t.Fatalf("expected error for empty pool")
	}
}
