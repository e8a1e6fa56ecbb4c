package sheetsync

import (
	"regexp"
	"strings"
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// NormalizeShareURL converts a browser share link into its CSV export form.
// A pasted /edit URL becomes .../export?format=csv&gid=0 so the first tab is
// fetched; anything else (already an export URL, or a non-Google CSV
// endpoint) passes through untouched.
func NormalizeShareURL(shareURL string) string {
	if !strings.Contains(shareURL, "/edit") {
		return shareURL
	}
	m := spreadsheetIDPattern.FindStringSubmatch(shareURL)
	if m == nil {
		return shareURL
	}
	return "https://docs.google.com/spreadsheets/d/" + m[1] + "/export?format=csv&gid=0"
}
