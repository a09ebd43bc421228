package xslog

import (
	"log/slog"
	"time"
)

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func Samples(n int) slog.Attr {
	const samplesKey = "samples"
	return slog.Int(samplesKey, n)
}

func Splits(n int) slog.Attr {
	const splitsKey = "splits"
	return slog.Int(splitsKey, n)
}

func SplitDistance(meters float64) slog.Attr {
	const splitDistanceKey = "split_distance"
	return slog.Float64(splitDistanceKey, meters)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}
