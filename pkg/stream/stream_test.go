package stream

import (
	"context"
	"testing"
)

func TestMemorySourceReplaysInOrder(t *testing.T) {
	b1 := Batch{Insertions: [][2]int{{0, 1}, {1, 0}}}
	b2 := Batch{Deletions: [][2]int{{2, 3}, {3, 2}}}
	src := NewMemorySource([]Batch{b1, b2})

	got1, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(got1.Insertions) != 2 {
		t.Errorf("first batch insertions = %d, want 2", len(got1.Insertions))
	}

	got2, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(got2.Deletions) != 2 {
		t.Errorf("second batch deletions = %d, want 2", len(got2.Deletions))
	}

	if _, err := src.Next(context.Background()); err == nil {
		t.Error("expected error once exhausted")
	}
}

func TestMemorySource_RespectsCanceledContext(t *testing.T) {
	src := NewMemorySource([]Batch{{Insertions: [][2]int{{0, 1}}}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Next(ctx); err == nil {
		t.Error("expected error for a canceled context")
	}
}

func TestValidateBatch_RejectsAsymmetricInsertions(t *testing.T) {
	b := Batch{
		Insertions: [][2]int{{1, 2}},
		Weights:    map[[2]int]float64{{1, 2}: 1.0},
	}
	if err := ValidateBatch(b); err == nil {
		t.Error("expected error for asymmetric insertions")
	}
}

func TestValidateBatch_AcceptsSymmetricBatch(t *testing.T) {
	b := Batch{
		Insertions: [][2]int{{1, 2}, {2, 1}},
		Weights:    map[[2]int]float64{{1, 2}: 1.0, {2, 1}: 1.0},
	}
	if err := ValidateBatch(b); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}
