package llm

import "strings"

// Markers delimiting generated post copy and hashtags.
const (
	CopyMarker     = "COPY:"
	HashtagsMarker = "HASHTAGS:"
)

// ParseCopy splits a completion into post copy and hashtags. Text before
// CopyMarker is dropped when the marker is present. Without HashtagsMarker the
// whole remainder is copy and hashtags are empty.
func ParseCopy(text string) (copyText, hashtags string) {
	rest := text
	if i := strings.Index(rest, CopyMarker); i >= 0 {
		rest = rest[i+len(CopyMarker):]
	}

	if i := strings.Index(rest, HashtagsMarker); i >= 0 {
		return strings.TrimSpace(rest[:i]), strings.TrimSpace(rest[i+len(HashtagsMarker):])
	}
	return strings.TrimSpace(rest), ""
}
