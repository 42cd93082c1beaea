// package testing contains shared testing utilities
package testing

import (
	"context"
	"net/http"

	"github.com/dadrocktabs/api/internal/services"
)

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FakeLister is a test double for [services.Lister] serving canned pages.
type FakeLister struct {
	PlaylistID string
	Pages      []services.PlaylistPage
	ResolveErr error
	PageErr    error

	ResolveCalls int
	PageCalls    int
}

func (f *FakeLister) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	f.ResolveCalls++
	if f.ResolveErr != nil {
		return "", f.ResolveErr
	}
	return f.PlaylistID, nil
}

func (f *FakeLister) PlaylistPage(ctx context.Context, playlistID, pageToken string) (*services.PlaylistPage, error) {
	f.PageCalls++
	if f.PageErr != nil {
		return nil, f.PageErr
	}

	idx := 0
	if pageToken != "" {
		// Tokens are the stringified page index, handed out below.
		for i := range f.Pages {
			if pageToken == token(i) {
				idx = i
			}
		}
	}
	if idx >= len(f.Pages) {
		return &services.PlaylistPage{}, nil
	}

	page := f.Pages[idx]
	out := &services.PlaylistPage{Items: page.Items}
	if idx+1 < len(f.Pages) {
		out.NextPageToken = token(idx + 1)
	}
	return out, nil
}

func token(i int) string {
	return string(rune('A' + i))
}
