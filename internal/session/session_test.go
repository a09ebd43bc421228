package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
)

func TestNewAssignsIdentity(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	if a.ID == "" {
		t.Fatal("New() produced an empty ID")
	}
	if a.ID == b.ID {
		t.Errorf("two sessions share ID %q", a.ID)
	}
	if a.StartedAt.IsZero() {
		t.Error("New() left StartedAt zero")
	}
}

func TestAppendAndLast(t *testing.T) {
	t.Parallel()

	s := New()

	if _, ok := s.Last(); ok {
		t.Error("Last() on empty session reported a sample")
	}

	first := telemetry.Sample{Time: 0.5, Distance: 1.4, StrokeCount: 1}
	second := telemetry.Sample{Time: 1.0, Distance: 2.9, StrokeCount: 2}
	s.Append(first)
	s.Append(second)

	if got := s.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	last, ok := s.Last()
	if !ok {
		t.Fatal("Last() reported no sample after appends")
	}
	if diff := cmp.Diff(second, last); diff != "" {
		t.Errorf("Last() mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	s := New()
	if got := s.Snapshot(); got != nil {
		t.Errorf("Snapshot() on empty session = %v, want nil", got)
	}

	s.Append(telemetry.Sample{Time: 0.5, Distance: 1.4})
	snap := s.Snapshot()

	snap[0].Distance = 999
	s.Append(telemetry.Sample{Time: 1.0, Distance: 2.9})

	if got := s.Snapshot()[0].Distance; got != 1.4 {
		t.Errorf("session sample mutated through snapshot: Distance = %v, want 1.4", got)
	}
	if len(snap) != 1 {
		t.Errorf("snapshot grew with the session: len = %d, want 1", len(snap))
	}
}
