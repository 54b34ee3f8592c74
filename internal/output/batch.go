package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/voice-scribe/internal/subtitle"
)

const timestampLayout = "20060102_150405"

// Batch is the destination for one transcription run: a timestamped
// directory plus one file path per requested format. A batch is computed
// once per run and never reused by a later run.
type Batch struct {
	Dir   string
	Files map[subtitle.Format]string
}

// NewBatch derives the run directory <root>/<YYYYMMDD_HHMMSS> and one
// <basename>.<ext> path per format, where basename is the audio filename
// with its extension stripped. When the directory for the timestamp already
// exists, a numeric suffix keeps runs started in the same second from
// colliding.
func NewBatch(root, audioPath string, formats []subtitle.Format, now time.Time) *Batch {
	stamp := now.Format(timestampLayout)
	dir := filepath.Join(root, stamp)
	for n := 1; pathExists(dir); n++ {
		dir = filepath.Join(root, fmt.Sprintf("%s_%d", stamp, n))
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	files := make(map[subtitle.Format]string, len(formats))
	for _, f := range formats {
		files[f] = filepath.Join(dir, base+"."+f.Extension())
	}

	return &Batch{Dir: dir, Files: files}
}

// Create makes the run directory and any missing parents. Safe to call when
// the directory already exists.
func (b *Batch) Create() error {
	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", b.Dir, err)
	}
	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
