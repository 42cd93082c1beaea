package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dadrocktabs/api/internal/shared"
)

const (
	defaultYTBaseURL = "https://www.googleapis.com/youtube/v3"

	// pageSize is fixed by the API; 50 is the maximum it allows.
	pageSize = 50

	defaultTimeout = 30 * time.Second
)

// YouTubeService implements [Lister] against the YouTube Data API v3.
// Read-only key auth; only the channels and playlistItems resources are used.
type YouTubeService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewYouTubeService creates a new YouTube Data API client.
//
// baseURL is overridable for tests and defaults to the public API. A nil
// client gets a bounded timeout; external calls never block indefinitely.
func NewYouTubeService(baseURL, apiKey string, client *http.Client) *YouTubeService {
	if baseURL == "" {
		baseURL = defaultYTBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &YouTubeService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
	}
}

// apiError is the error envelope the Data API returns alongside non-2xx
// statuses.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (y *YouTubeService) doRequest(ctx context.Context, endpoint string, query url.Values, result any) error {
	query.Set("key", y.apiKey)
	apiURL := y.baseURL + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp apiError
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return fmt.Errorf("%w: %s (status %d)", shared.ErrUpstream, errResp.Error.Message, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", shared.ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrUpstream, err)
	}

	return nil
}

// UploadsPlaylistID resolves the uploads playlist identifier for a channel.
//
// Calls GET /channels?part=contentDetails&id={channelID}.
func (y *YouTubeService) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	var channels struct {
		Items []struct {
			ContentDetails struct {
				RelatedPlaylists struct {
					Uploads string `json:"uploads"`
				} `json:"relatedPlaylists"`
			} `json:"contentDetails"`
		} `json:"items"`
	}

	query := url.Values{"part": {"contentDetails"}, "id": {channelID}}
	if err := y.doRequest(ctx, "/channels", query, &channels); err != nil {
		return "", err
	}

	if len(channels.Items) == 0 {
		return "", fmt.Errorf("%w: %s", shared.ErrChannelNotFound, channelID)
	}

	uploads := channels.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", fmt.Errorf("%w: channel %s has no uploads playlist", shared.ErrUpstream, channelID)
	}

	return uploads, nil
}

// PlaylistPage fetches one page of a playlist's items.
//
// Calls GET /playlistItems?part=snippet&playlistId={id}&maxResults=50 with an
// optional continuation token. The best available thumbnail (high, then
// default) is picked per item.
func (y *YouTubeService) PlaylistPage(ctx context.Context, playlistID, pageToken string) (*PlaylistPage, error) {
	type thumbnail struct {
		URL string `json:"url"`
	}
	var playlist struct {
		Items []struct {
			Snippet struct {
				Title      string `json:"title"`
				ResourceID struct {
					VideoID string `json:"videoId"`
				} `json:"resourceId"`
				Thumbnails struct {
					High    *thumbnail `json:"high"`
					Default *thumbnail `json:"default"`
				} `json:"thumbnails"`
			} `json:"snippet"`
		} `json:"items"`
		NextPageToken string `json:"nextPageToken"`
	}

	query := url.Values{
		"part":       {"snippet"},
		"playlistId": {playlistID},
		"maxResults": {fmt.Sprint(pageSize)},
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	if err := y.doRequest(ctx, "/playlistItems", query, &playlist); err != nil {
		return nil, err
	}

	page := &PlaylistPage{NextPageToken: playlist.NextPageToken}
	for _, item := range playlist.Items {
		entry := PlaylistItem{
			VideoID: item.Snippet.ResourceID.VideoID,
			Title:   item.Snippet.Title,
		}
		if t := item.Snippet.Thumbnails.High; t != nil {
			entry.Thumbnail = t.URL
		} else if t := item.Snippet.Thumbnails.Default; t != nil {
			entry.Thumbnail = t.URL
		}
		page.Items = append(page.Items, entry)
	}

	return page, nil
}
