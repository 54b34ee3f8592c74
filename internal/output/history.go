package output

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Run describes one previous transcription run found under the output root.
type Run struct {
	Dir      string
	Started  time.Time
	Basename string
	Files    []string
}

// History lists previous runs under root, newest first. Directories whose
// names do not parse as run timestamps are skipped, as are runs that
// produced no files. A missing root yields an empty history.
func History(root string) ([]Run, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []Run
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		started, ok := parseRunTimestamp(e.Name())
		if !ok {
			continue
		}

		dir := filepath.Join(root, e.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		run := Run{Dir: dir, Started: started}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			run.Files = append(run.Files, f.Name())
			if run.Basename == "" {
				run.Basename = strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
			}
		}
		if len(run.Files) == 0 {
			continue
		}
		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Started.Equal(runs[j].Started) {
			return runs[i].Dir > runs[j].Dir
		}
		return runs[i].Started.After(runs[j].Started)
	})

	return runs, nil
}

// parseRunTimestamp reads YYYYMMDD_HHMMSS from a run directory name,
// tolerating the collision suffix appended by NewBatch.
func parseRunTimestamp(name string) (time.Time, bool) {
	stamp := name
	if parts := strings.SplitN(name, "_", 3); len(parts) == 3 {
		stamp = parts[0] + "_" + parts[1]
	}
	t, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
