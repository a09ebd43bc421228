package recorder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
)

func TestRecordingRoundTrip(t *testing.T) {
	t.Parallel()

	r := New(t.TempDir())

	path, err := r.Start("")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if base := filepath.Base(path); !strings.HasPrefix(base, "workout_") || !strings.HasSuffix(base, ".csv") {
		t.Errorf("recording file %q, want workout_*.csv", base)
	}

	samples := []telemetry.Sample{
		{Time: 0.5, Distance: 0, StrokeRate: 0, Pace: 0, Power: 0, Calories: 0, HeartRate: 140, StrokeCount: 0, StrokeLength: 0},
		{Time: 1.0, Distance: 1.45, StrokeRate: 34.2, Pace: 98.7, Power: 341.3, Calories: 0.2, HeartRate: 172, StrokeCount: 1, StrokeLength: 1.45},
		{Time: 1.5, Distance: 2.91, StrokeRate: 36.1, Pace: 103.4, Power: 297.8, Calories: 0.4, HeartRate: 169, StrokeCount: 2, StrokeLength: 1.46},
	}

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	for i, s := range samples {
		if err := r.Record(at.Add(time.Duration(i)*500*time.Millisecond), s); err != nil {
			t.Fatalf("Record(%d) error = %v", i, err)
		}
	}

	stoppedPath, sess, err := r.Stop()
	if err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if stoppedPath != path {
		t.Errorf("Stop() path = %q, want %q", stoppedPath, path)
	}
	if diff := cmp.Diff(samples, sess.Snapshot()); diff != "" {
		t.Errorf("session snapshot mismatch (-want +got):\n%s", diff)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(samples, loaded); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderLifecycleErrors(t *testing.T) {
	t.Parallel()

	r := New(t.TempDir())

	if err := r.Record(time.Now(), telemetry.Sample{}); !errors.Is(err, ErrNotRecording) {
		t.Errorf("Record() before Start error = %v, want ErrNotRecording", err)
	}
	if _, _, err := r.Stop(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("Stop() while idle error = %v, want ErrNotRecording", err)
	}

	if _, err := r.Start(""); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := r.Start(""); !errors.Is(err, ErrAlreadyRecording) {
		t.Errorf("second Start() error = %v, want ErrAlreadyRecording", err)
	}
	if !r.Recording() {
		t.Error("Recording() = false during recording")
	}

	if _, _, err := r.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if r.Recording() {
		t.Error("Recording() = true after Stop")
	}
	if r.Session() != nil {
		t.Error("Session() non-nil after Stop")
	}

	// A stopped recorder can start a fresh recording.
	if _, err := r.Start("intervals"); err != nil {
		t.Fatalf("Start() after Stop error = %v", err)
	}
}

func TestStartCustomName(t *testing.T) {
	t.Parallel()

	r := New(t.TempDir())
	path, err := r.Start("erg_test")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if base := filepath.Base(path); !strings.HasPrefix(base, "erg_test_") {
		t.Errorf("recording file %q, want erg_test_* prefix", base)
	}
	if _, _, err := r.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}

func TestStartDistinctFiles(t *testing.T) {
	t.Parallel()

	// Two sessions inside the same wall-clock second must not collide.
	dir := t.TempDir()
	r := New(dir)

	first, err := r.Start("")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, _, err := r.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	second, err := r.Start("")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, _, err := r.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	if first == second {
		t.Errorf("consecutive recordings share the file %q", first)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("Load() of a missing file reported no error")
	}

	badHeader := filepath.Join(dir, "bad_header.csv")
	if err := os.WriteFile(badHeader, []byte("a,b,c\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badHeader); err == nil || !strings.Contains(err.Error(), "header") {
		t.Errorf("Load() with foreign header error = %v, want header complaint", err)
	}

	badRow := filepath.Join(dir, "bad_row.csv")
	content := strings.Join(columns, ",") + "\n" +
		"2025-03-14 09:26:53.000,0.5,oops,0,0,0,0,140,0,0\n"
	if err := os.WriteFile(badRow, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badRow); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Load() with bad distance error = %v, want line 2 parse failure", err)
	}
}

func TestLoadEmptyRecording(t *testing.T) {
	t.Parallel()

	// A recording stopped before any sample arrived has a header and no
	// rows; it loads as an empty sequence, not an error.
	r := New(t.TempDir())
	path, err := r.Start("")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, _, err := r.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	samples, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("Load() = %d samples, want 0", len(samples))
	}
}
