package analysis

import "testing"

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "zero", seconds: 0, want: "0:00.0"},
		{name: "under a minute", seconds: 42.5, want: "0:42.5"},
		{name: "exact minute", seconds: 65.0, want: "1:05.0"},
		{name: "rounds the tenth", seconds: 125.34, want: "2:05.3"},
		{name: "double digit minutes", seconds: 725.96, want: "12:06.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatElapsed(tt.seconds); got != tt.want {
				t.Errorf("FormatElapsed(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatPace(t *testing.T) {
	t.Parallel()

	if got := FormatPace(118.2); got != "1:58.2" {
		t.Errorf("FormatPace(118.2) = %q, want %q", got, "1:58.2")
	}
}
