package subtitle

import "strings"

// Segment represents one timed span of recognized speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Format identifies one supported output format.
type Format string

const (
	FormatSRT  Format = "srt"
	FormatTSV  Format = "tsv"
	FormatTXT  Format = "txt"
	FormatVTT  Format = "vtt"
	FormatJSON Format = "json"
)

// SupportedFormats lists every recognized output format.
var SupportedFormats = []Format{FormatSRT, FormatTSV, FormatTXT, FormatVTT, FormatJSON}

// Extension returns the canonical file suffix for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Recognized reports whether f is one of the supported formats.
func (f Format) Recognized() bool {
	for _, s := range SupportedFormats {
		if f == s {
			return true
		}
	}
	return false
}

// ParseFormats filters raw format identifiers down to the recognized set,
// preserving request order and dropping duplicates. Identifiers that are not
// recognized are returned separately so the caller can warn about them.
func ParseFormats(raw []string) ([]Format, []string) {
	var formats []Format
	var dropped []string
	seen := make(map[Format]bool, len(raw))

	for _, r := range raw {
		name := strings.ToLower(strings.TrimSpace(r))
		if name == "" {
			continue
		}
		f := Format(name)
		if !f.Recognized() {
			dropped = append(dropped, name)
			continue
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}

	return formats, dropped
}
