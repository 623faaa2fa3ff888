package emitter

import (
	"bytes"
	"go/format"

	"github.com/tolkit/cladegen/pkg/errors"
)

// Marker comments delimiting the generated region of a hand-written file.
const (
	StartMarker = "// automated input start"
	EndMarker   = "// automated input end"
)

// Splice replaces everything between the start and end marker lines of dst
// with body and gofmt's the result. The marker lines themselves are kept.
// path is only used in error messages.
func Splice(path string, dst, body []byte) ([]byte, error) {
	lines := bytes.SplitAfter(dst, []byte("\n"))

	start, end := -1, -1
	for i, line := range lines {
		switch string(bytes.TrimSpace(line)) {
		case StartMarker:
			if start >= 0 {
				return nil, &errors.MarkerError{Path: path, Marker: StartMarker, Message: "appears more than once"}
			}
			start = i
		case EndMarker:
			if end >= 0 {
				return nil, &errors.MarkerError{Path: path, Marker: EndMarker, Message: "appears more than once"}
			}
			end = i
		}
	}

	switch {
	case start < 0:
		return nil, &errors.MarkerError{Path: path, Marker: StartMarker, Message: "not found"}
	case end < 0:
		return nil, &errors.MarkerError{Path: path, Marker: EndMarker, Message: "not found"}
	case end < start:
		return nil, &errors.MarkerError{Path: path, Marker: EndMarker, Message: "precedes " + StartMarker}
	}

	var buf bytes.Buffer
	for _, line := range lines[:start+1] {
		buf.Write(line)
	}
	buf.Write(bytes.TrimSpace(body))
	buf.WriteByte('\n')
	for _, line := range lines[end:] {
		buf.Write(line)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.NewParseError("go", path, err.Error(), err)
	}
	return out, nil
}
