// package services talks to the external video host and drives catalog sync.
package services

import "context"

// Lister is the slice of the YouTube Data API the sync run needs: resolving a
// channel's upload listing and walking its pages.
type Lister interface {
	// UploadsPlaylistID resolves the uploads playlist for a channel.
	// An unknown channel yields shared.ErrChannelNotFound.
	UploadsPlaylistID(ctx context.Context, channelID string) (string, error)

	// PlaylistPage fetches one page of a playlist. An empty pageToken fetches
	// the first page; an empty NextPageToken on the result means the listing
	// is exhausted.
	PlaylistPage(ctx context.Context, playlistID, pageToken string) (*PlaylistPage, error)
}

// PlaylistPage is one page of an upload listing.
type PlaylistPage struct {
	Items         []PlaylistItem
	NextPageToken string
}

// PlaylistItem is a single upload as reported by the listing.
type PlaylistItem struct {
	VideoID   string
	Title     string
	Thumbnail string
}
