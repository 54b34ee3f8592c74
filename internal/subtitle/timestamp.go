package subtitle

import "fmt"

// TimestampStyle selects the millisecond separator for composed timestamps.
type TimestampStyle int

const (
	StyleSRT TimestampStyle = iota // HH:MM:SS,mmm
	StyleVTT                       // HH:MM:SS.mmm
)

// Timestamp renders a second offset as a fixed-precision subtitle timestamp.
// Milliseconds are truncated, not rounded. The hour field grows beyond two
// digits for offsets past 99 hours instead of wrapping. Negative offsets are
// a defect in the caller and clamp to zero.
func Timestamp(seconds float64, style TimestampStyle) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int64(seconds * 1000)
	millis := total % 1000
	total /= 1000
	hours := total / 3600
	total %= 3600
	minutes := total / 60
	secs := total % 60

	sep := ","
	if style == StyleVTT {
		sep = "."
	}

	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, secs, sep, millis)
}
