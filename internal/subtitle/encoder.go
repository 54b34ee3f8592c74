package subtitle

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Encoder renders a segment sequence into one output format. Encoders are
// pure functions: no I/O, no shared state, segment order preserved. An empty
// sequence produces a valid, empty-bodied document for the format.
type Encoder func(segments []Segment) ([]byte, error)

var encoders = map[Format]Encoder{
	FormatSRT:  EncodeSRT,
	FormatTSV:  EncodeTSV,
	FormatTXT:  EncodeTXT,
	FormatVTT:  EncodeVTT,
	FormatJSON: EncodeJSON,
}

// EncoderFor returns the encoder registered for the given format.
func EncoderFor(format Format) (Encoder, bool) {
	enc, ok := encoders[format]
	return enc, ok
}

// EncodeSRT renders SubRip cues: 1-indexed cue number, comma-millisecond
// timestamp range, trimmed text, blank separator. Cue numbers restart at 1
// per call and stay strictly sequential regardless of timing gaps.
func EncodeSRT(segments []Segment) ([]byte, error) {
	var b strings.Builder
	for i, seg := range segments {
		start := Timestamp(seg.Start, StyleSRT)
		end := Timestamp(seg.End, StyleSRT)
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, start, end, strings.TrimSpace(seg.Text))
	}
	return []byte(b.String()), nil
}

// EncodeVTT renders WebVTT: literal WEBVTT header, blank line, then cues
// without numbering and with a period before the milliseconds.
func EncodeVTT(segments []Segment) ([]byte, error) {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, seg := range segments {
		start := Timestamp(seg.Start, StyleVTT)
		end := Timestamp(seg.End, StyleVTT)
		fmt.Fprintf(&b, "%s --> %s\n%s\n\n", start, end, strings.TrimSpace(seg.Text))
	}
	return []byte(b.String()), nil
}

// EncodeTSV renders tab-separated rows of raw second offsets and trimmed
// text. The speaker column is always empty; the header row is always
// present, even for zero segments.
func EncodeTSV(segments []Segment) ([]byte, error) {
	var b strings.Builder
	b.WriteString("start\tend\tspeaker\ttext\n")
	for _, seg := range segments {
		fmt.Fprintf(&b, "%s\t%s\t\t%s\n", formatSeconds(seg.Start), formatSeconds(seg.End), strings.TrimSpace(seg.Text))
	}
	return []byte(b.String()), nil
}

// EncodeTXT renders each segment's trimmed text on its own line, no
// timestamps, no indices.
func EncodeTXT(segments []Segment) ([]byte, error) {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(strings.TrimSpace(seg.Text))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// EncodeJSON renders an indented array of segment objects in original order.
// This is the only format that keeps the full float precision of the
// offsets.
func EncodeJSON(segments []Segment) ([]byte, error) {
	trimmed := make([]Segment, len(segments))
	for i, seg := range segments {
		trimmed[i] = Segment{Start: seg.Start, End: seg.End, Text: strings.TrimSpace(seg.Text)}
	}
	data, err := json.MarshalIndent(trimmed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal segments: %w", err)
	}
	return data, nil
}

// formatSeconds prints a raw second offset in its shortest decimal form,
// always keeping a fractional part ("4" becomes "4.0").
func formatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
