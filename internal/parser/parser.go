// package parser converts YouTube URLs and video titles into normalized forms.
//
// Everything here is a pure function so the heuristics can be tested without
// touching the store or the network.
package parser

import (
	"regexp"
	"strings"

	"github.com/dadrocktabs/api/internal/models"
)

// URL shapes the catalog accepts. The identifier runs from the marker to the
// next '&' or '?'.
var idMarkers = []string{"watch?v=", "youtu.be/", "/embed/", "/shorts/"}

// noisePattern matches the first trailing noise token in a video title; the
// token and everything after it is discarded before song/artist splitting.
var noisePattern = regexp.MustCompile(`(?i)\s*(guitar|bass|tabs?|lesson|tutorial|\+|\(|\)|\[|\]|hd|official).*`)

// byPattern splits "<song> by <artist>" titles.
var byPattern = regexp.MustCompile(`(?i)^(.+?)\s+by\s+(.+)$`)

// ExtractVideoID pulls the video identifier out of a YouTube URL.
//
// Recognized shapes: watch?v=, youtu.be/, /embed/ and /shorts/. Returns
// ok=false for anything else; malformed input never panics.
func ExtractVideoID(url string) (string, bool) {
	for _, marker := range idMarkers {
		idx := strings.Index(url, marker)
		if idx < 0 {
			continue
		}

		id := url[idx+len(marker):]
		if cut := strings.IndexAny(id, "&?"); cut >= 0 {
			id = id[:cut]
		}
		if id == "" {
			return "", false
		}
		return id, true
	}
	return "", false
}

// ThumbnailURL derives the medium-quality thumbnail URL for a video URL,
// or "" when no identifier can be extracted.
func ThumbnailURL(url string) string {
	id, ok := ExtractVideoID(url)
	if !ok {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/mqdefault.jpg"
}

// EmbedURL rewrites a YouTube URL to the embed path.
//
// URLs already targeting the embed path come back unchanged, as does any
// input no identifier can be extracted from. Idempotent.
func EmbedURL(url string) string {
	if strings.Contains(url, "youtube.com/embed/") {
		return url
	}
	id, ok := ExtractVideoID(url)
	if !ok {
		return url
	}
	return "https://www.youtube.com/embed/" + id
}

// WatchURL builds the canonical watch URL for a video identifier. Sync uses
// this form as the dedup key.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// SplitTitle heuristically splits a raw video title into (song, artist).
//
// Trailing noise ("Guitar", "TAB", bracketed content, "HD", ...) is stripped
// from the first occurrence onward, then the title is split on the first
// " - ", falling back to the "<song> by <artist>" pattern. Ambiguous titles
// degrade to the fallback artist, never an error.
func SplitTitle(title string) (song, artist string) {
	clean := strings.TrimSpace(noisePattern.ReplaceAllString(title, ""))

	if idx := strings.Index(clean, " - "); idx >= 0 {
		song = strings.TrimSpace(clean[:idx])
		artist = strings.TrimSpace(clean[idx+3:])
		if artist == "" {
			artist = models.FallbackArtist
		}
		return song, artist
	}

	if m := byPattern.FindStringSubmatch(clean); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}

	return clean, models.FallbackArtist
}
