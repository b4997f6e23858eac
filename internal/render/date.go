package render

import (
	"path/filepath"
	"regexp"
	"time"
)

// UnknownDate is shown when no meeting date can be derived.
const UnknownDate = "Unknown"

// Meeting recorders stamp exports like "Weekly sync GMT20240312-150000".
var reRecordingDate = regexp.MustCompile(`GMT(\d{8})`)

// DateFromFilename extracts the meeting date from a recording file name and
// formats it as "March 12, 2024".
func DateFromFilename(path string) string {
	m := reRecordingDate.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return UnknownDate
	}
	t, err := time.Parse("20060102", m[1])
	if err != nil {
		return UnknownDate
	}
	return t.Format("January 2, 2006")
}
