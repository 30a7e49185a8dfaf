package catalog

import (
	"errors"
	"fmt"

	"github.com/lawnchairsociety/delvegen/internal/logger"
)

// CopyResult counts what CopyTo did.
type CopyResult struct {
	Copied  int
	Skipped int
}

// CopyTo copies every run in c into dst, oldest first. Runs already present
// in dst are skipped, so an interrupted copy can be rerun. With dryRun set
// nothing is written and Copied counts what would have been.
func (c *Catalog) CopyTo(dst *Catalog, dryRun bool) (CopyResult, error) {
	var result CopyResult

	runs, err := c.ListRuns(0)
	if err != nil {
		return result, err
	}

	for i := len(runs) - 1; i >= 0; i-- {
		id := runs[i].ID
		if _, err := dst.GetRun(id); err == nil {
			result.Skipped++
			continue
		} else if !errors.Is(err, ErrRunNotFound) {
			return result, fmt.Errorf("failed to check run %s: %w", id, err)
		}

		if dryRun {
			result.Copied++
			continue
		}

		run, err := c.GetRun(id)
		if err != nil {
			return result, err
		}
		if err := dst.SaveRun(*run); err != nil {
			if errors.Is(err, ErrRunExists) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("failed to copy run %s: %w", id, err)
		}
		result.Copied++
		logger.Debug("copied run", "id", id, "seed", run.Seed, "levels", len(run.Levels))
	}
	return result, nil
}
