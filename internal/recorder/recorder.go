// Package recorder persists live workout samples as CSV recordings and
// reads them back for offline analysis.
package recorder

import (
	"crypto/rand"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/JoBlockins/concept2-data-analyzer/internal/session"
	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
)

var (
	ErrAlreadyRecording = errors.New("recorder: already recording")
	ErrNotRecording     = errors.New("recorder: not recording")
)

// columns is the recording file schema. Order is load-bearing: files are
// exchanged with other tooling that reads these positions.
var columns = []string{
	"timestamp", "time", "distance", "stroke_rate", "pace",
	"power", "calories", "heart_rate", "stroke_count", "stroke_length",
}

const timestampLayout = "2006-01-02 15:04:05.000"

// Recorder writes one recording at a time into its data directory while
// buffering the same samples in a session for end-of-workout analysis.
// A Recorder is owned by a single monitoring loop; it is not safe for
// concurrent use.
type Recorder struct {
	dir string

	file *os.File
	w    *csv.Writer
	path string
	sess *session.Session
}

func New(dir string) *Recorder {
	return &Recorder{dir: dir}
}

// Start opens a fresh recording file and begins a new session. The name
// prefixes the file; empty means "workout". Returns the file path.
func (r *Recorder) Start(name string) (string, error) {
	if r.w != nil {
		return "", ErrAlreadyRecording
	}

	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	if name == "" {
		name = "workout"
	}
	path := filepath.Join(r.dir, name+"_"+fileStamp(time.Now())+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create recording: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write recording header: %w", err)
	}

	r.file = f
	r.w = w
	r.path = path
	r.sess = session.New()
	return path, nil
}

// Record appends one sample to the active recording, stamped with the
// wall-clock time the caller observed it. Each row is flushed so a crash
// loses at most the row in flight.
func (r *Recorder) Record(at time.Time, sample telemetry.Sample) error {
	if r.w == nil {
		return ErrNotRecording
	}

	row := []string{
		at.Format(timestampLayout),
		fmtFloat(sample.Time),
		fmtFloat(sample.Distance),
		fmtFloat(sample.StrokeRate),
		fmtFloat(sample.Pace),
		fmtFloat(sample.Power),
		fmtFloat(sample.Calories),
		strconv.Itoa(sample.HeartRate),
		strconv.Itoa(sample.StrokeCount),
		fmtFloat(sample.StrokeLength),
	}
	if err := r.w.Write(row); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return fmt.Errorf("failed to flush sample: %w", err)
	}

	r.sess.Append(sample)
	return nil
}

// Stop closes the active recording and hands back its file path together
// with the recorded session for analysis.
func (r *Recorder) Stop() (string, *session.Session, error) {
	if r.w == nil {
		return "", nil, ErrNotRecording
	}

	r.w.Flush()
	flushErr := r.w.Error()
	closeErr := r.file.Close()

	path, sess := r.path, r.sess
	r.file, r.w, r.path, r.sess = nil, nil, "", nil

	if flushErr != nil {
		return path, sess, fmt.Errorf("failed to flush recording: %w", flushErr)
	}
	if closeErr != nil {
		return path, sess, fmt.Errorf("failed to close recording: %w", closeErr)
	}
	return path, sess, nil
}

// Recording reports whether a recording is in progress.
func (r *Recorder) Recording() bool {
	return r.w != nil
}

// Session returns the active recording session, nil while idle.
func (r *Recorder) Session() *session.Session {
	return r.sess
}

// Load reads a recording file back into an ordered sample sequence.
func Load(path string) ([]telemetry.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read recording header: %w", err)
	}
	if !slices.Equal(header, columns) {
		return nil, fmt.Errorf("unexpected recording header %v", header)
	}

	var samples []telemetry.Sample
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read recording row: %w", err)
		}

		sample, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func parseRow(row []string) (telemetry.Sample, error) {
	// row[0] is the wall-clock timestamp; analysis runs on workout time.
	floats := make(map[string]float64, 7)
	for i, col := range columns {
		switch col {
		case "timestamp", "heart_rate", "stroke_count":
			continue
		default:
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return telemetry.Sample{}, fmt.Errorf("invalid %s %q: %w", col, row[i], err)
			}
			floats[col] = v
		}
	}

	heartRate, err := strconv.Atoi(row[7])
	if err != nil {
		return telemetry.Sample{}, fmt.Errorf("invalid heart_rate %q: %w", row[7], err)
	}
	strokeCount, err := strconv.Atoi(row[8])
	if err != nil {
		return telemetry.Sample{}, fmt.Errorf("invalid stroke_count %q: %w", row[8], err)
	}

	return telemetry.Sample{
		Time:         floats["time"],
		Distance:     floats["distance"],
		StrokeRate:   floats["stroke_rate"],
		Pace:         floats["pace"],
		Power:        floats["power"],
		Calories:     floats["calories"],
		HeartRate:    heartRate,
		StrokeCount:  strokeCount,
		StrokeLength: floats["stroke_length"],
	}, nil
}

// fileStamp names recordings with a sortable timestamp plus a short random
// suffix, so two sessions started within the same second get distinct files.
func fileStamp(now time.Time) string {
	ts := now.Format("20060102_150405")
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return ts + "_" + strconv.Itoa(now.Nanosecond())
	}
	return ts + "_" + hex.EncodeToString(b)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
