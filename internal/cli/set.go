package cli

import (
	"log/slog"

	"github.com/EricaPomme/wowframeadj/internal/layout"
)

// execSet applies --set overrides to one frame and rewrites the file.
//
// The operation is all-or-nothing: override tokens are validated against
// the allow-list before the file is touched, and the rewrite itself goes
// through an atomic replace, so a failure at any step leaves the
// original file byte-identical. Success is silent.
func execSet(path string, tokens []string) error {
	overrides, err := layout.ParseOverrides(tokens)
	if err != nil {
		return err
	}

	file, err := layout.Load(path)
	if err != nil {
		return err
	}

	applyErr := file.Apply(overrides)
	if applyErr != nil {
		return applyErr
	}

	slog.Debug("applying overrides",
		"path", path,
		"frame", overrides.Target,
		"keys", len(overrides.Attrs),
	)

	return layout.Save(path, file)
}
