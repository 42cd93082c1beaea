package parser

import (
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short url with params", "https://youtu.be/dQw4w9WgXcQ?si=abc123", "dQw4w9WgXcQ", true},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"shorts url", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"shorts url with params", "https://www.youtube.com/shorts/dQw4w9WgXcQ?feature=share", "dQw4w9WgXcQ", true},
		{"unrecognized shape", "https://vimeo.com/123456", "", false},
		{"empty string", "", "", false},
		{"marker with no id", "https://www.youtube.com/watch?v=", "", false},
		{"plain text", "not a url at all", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, id, tt.wantID)
			}
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	t.Run("derives medium quality thumbnail", func(t *testing.T) {
		got := ThumbnailURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		want := "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg"
		if got != want {
			t.Errorf("ThumbnailURL = %q, want %q", got, want)
		}
	})

	t.Run("empty for unrecognized url", func(t *testing.T) {
		if got := ThumbnailURL("https://example.com/clip"); got != "" {
			t.Errorf("ThumbnailURL = %q, want empty", got)
		}
	})
}

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch to embed", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"short to embed", "https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"shorts to embed", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"embed unchanged", "https://www.youtube.com/embed/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"unparseable input unchanged", "https://example.com/clip", "https://example.com/clip"},
		{"empty unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmbedURL(tt.url); got != tt.want {
				t.Errorf("EmbedURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, url := range []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://youtu.be/dQw4w9WgXcQ",
			"https://example.com/clip",
		} {
			once := EmbedURL(url)
			twice := EmbedURL(once)
			if once != twice {
				t.Errorf("EmbedURL not idempotent for %q: %q != %q", url, once, twice)
			}
		}
	})
}

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantSong   string
		wantArtist string
	}{
		{
			"dash separator with bracketed noise",
			"Stairway to Heaven - Led Zeppelin (Guitar Tutorial)",
			"Stairway to Heaven", "Led Zeppelin",
		},
		{
			"by separator",
			"Enter Sandman by Metallica",
			"Enter Sandman", "Metallica",
		},
		{
			"no separator with trailing noise",
			"Thunderstruck HD",
			"Thunderstruck", "DadRock Tabs",
		},
		{
			"noise stripped before dash split",
			"Hotel California - Eagles Guitar Lesson",
			"Hotel California", "Eagles",
		},
		{
			"case-insensitive by",
			"Back in Black BY AC/DC",
			"Back in Black", "AC/DC",
		},
		{
			"square bracket noise",
			"Sweet Child O' Mine - Guns N' Roses [TAB]",
			"Sweet Child O' Mine", "Guns N' Roses",
		},
		{
			"official suffix",
			"Wish You Were Here - Pink Floyd Official",
			"Wish You Were Here", "Pink Floyd",
		},
		{
			"bare title falls back",
			"Free Bird",
			"Free Bird", "DadRock Tabs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			song, artist := SplitTitle(tt.title)
			if song != tt.wantSong || artist != tt.wantArtist {
				t.Errorf("SplitTitle(%q) = (%q, %q), want (%q, %q)",
					tt.title, song, artist, tt.wantSong, tt.wantArtist)
			}
		})
	}
}
