package submit

import (
	"errors"
	"testing"
)

func TestSimulated_AlwaysFails(t *testing.T) {
	t.Parallel()
	s := NewSimulated(0, 0, 1.0, 42)

	for i := 0; i < 10; i++ {
		if err := s.SubmitChat("topik", "Pertanahan"); !errors.Is(err, ErrChatUnavailable) {
			t.Fatalf("expected ErrChatUnavailable, got %v", err)
		}
	}
}

func TestSimulated_NeverFails(t *testing.T) {
	t.Parallel()
	s := NewSimulated(0, 0, 0.0, 42)

	for i := 0; i < 10; i++ {
		if err := s.SubmitChat("topik", "Pertanahan"); err != nil {
			t.Fatalf("unexpected failure: %v", err)
		}
	}
}

func TestSimulated_AssistanceAlwaysSucceeds(t *testing.T) {
	t.Parallel()
	s := NewSimulated(0, 0, 1.0, 42)

	err := s.SubmitAssistance(AssistanceRequest{Kind: "bantuan", Subject: "x"})
	if err != nil {
		t.Fatalf("assistance has no failure path, got %v", err)
	}
}

func TestScripted_PlaysOutcomesInOrder(t *testing.T) {
	t.Parallel()
	s := &Scripted{ChatOutcomes: []error{ErrChatUnavailable, nil}}

	if err := s.SubmitChat("a", "b"); !errors.Is(err, ErrChatUnavailable) {
		t.Fatalf("first call should fail, got %v", err)
	}
	if err := s.SubmitChat("a", "b"); err != nil {
		t.Fatalf("second call should succeed, got %v", err)
	}
	if err := s.SubmitChat("a", "b"); err != nil {
		t.Fatalf("exhausted script should succeed, got %v", err)
	}
}
