package xslog

import (
	"log/slog"

	"github.com/JoBlockins/concept2-data-analyzer/internal/version"
)

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}
