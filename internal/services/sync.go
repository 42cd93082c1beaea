package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/dadrocktabs/api/internal/models"
	"github.com/dadrocktabs/api/internal/parser"
	"github.com/dadrocktabs/api/internal/repositories"
	"github.com/dadrocktabs/api/internal/shared"
)

// SyncEngine merges a channel's upload listing into the video catalog.
//
// A run is best effort: per-item insert failures are collected into the
// result, only channel resolution and page fetches are fatal. At most one run
// is in flight per process; a second concurrent run is rejected with
// [shared.ErrSyncInProgress]. Duplicate inserts racing past the existence
// check are caught by the unique constraint on youtube_url and counted as
// skipped.
type SyncEngine struct {
	videos    *repositories.VideoRepository
	config    *shared.Config
	logger    *log.Logger
	limiter   *rate.Limiter
	newLister func(apiKey string) Lister
	running   atomic.Bool
}

// SyncOptions override the configured credentials for a single run.
type SyncOptions struct {
	APIKey    string `json:"api_key"`
	ChannelID string `json:"channel_id"`
}

// SyncResult reports the outcome of one run.
//
// Errors holds per-item failures; the run itself still counts as a success
// when any are present.
type SyncResult struct {
	Message string   `json:"message"`
	Added   int      `json:"videos_added"`
	Skipped int      `json:"videos_skipped"`
	Errors  []string `json:"errors"`
}

// NewSyncEngine creates a sync engine writing into the given repository.
//
// Page fetches are spaced out by the rate limiter to respect the upstream
// quota; the walk itself is sequential so continuation tokens stay ordered.
func NewSyncEngine(videos *repositories.VideoRepository, config *shared.Config, logger *log.Logger) *SyncEngine {
	return &SyncEngine{
		videos:  videos,
		config:  config,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(4), 1),
		newLister: func(apiKey string) Lister {
			return NewYouTubeService("", apiKey, nil)
		},
	}
}

// WithLister replaces the lister factory, used by tests and the CLI.
func (e *SyncEngine) WithLister(factory func(apiKey string) Lister) *SyncEngine {
	e.newLister = factory
	return e
}

// Run performs one complete sync pass.
//
// Resolution failures abort with zero side effects. Running twice against an
// unchanged listing adds nothing the second time and skips every item.
func (e *SyncEngine) Run(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, shared.ErrSyncInProgress
	}
	defer e.running.Store(false)

	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = e.config.YouTube.APIKey
	}
	if apiKey == "" {
		return nil, shared.ErrMissingAPIKey
	}

	channelID := opts.ChannelID
	if channelID == "" {
		channelID = e.config.YouTube.ChannelID
	}

	lister := e.newLister(apiKey)

	playlistID, err := lister.UploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	e.logger.Info("starting channel sync", "channel", channelID, "playlist", playlistID)

	result := &SyncResult{Errors: []string{}}
	pageToken := ""
	for {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
		}

		page, err := lister.PlaylistPage(ctx, playlistID, pageToken)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			e.mergeItem(item, result)
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	result.Message = fmt.Sprintf("Sync completed! %d videos added, %d already existed.", result.Added, result.Skipped)
	e.logger.Info("channel sync finished", "added", result.Added, "skipped", result.Skipped, "errors", len(result.Errors))
	return result, nil
}

// mergeItem inserts one listing item unless its watch URL is already in the
// catalog. Failures land in result.Errors and never abort the run.
func (e *SyncEngine) mergeItem(item PlaylistItem, result *SyncResult) {
	if item.VideoID == "" {
		return
	}

	watchURL := parser.WatchURL(item.VideoID)

	exists, err := e.videos.ExistsByURL(watchURL)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to check '%s': %v", item.Title, err))
		return
	}
	if exists {
		result.Skipped++
		return
	}

	song, artist := parser.SplitTitle(item.Title)
	if song == "" {
		// Titles that are pure noise tokens clean down to nothing.
		song = strings.TrimSpace(item.Title)
	}

	video := models.Video{
		Song:       song,
		Artist:     artist,
		YouTubeURL: watchURL,
		Thumbnail:  item.Thumbnail,
	}

	switch err := e.videos.Create(&video); {
	case errors.Is(err, shared.ErrDuplicate):
		result.Skipped++
	case err != nil:
		result.Errors = append(result.Errors, fmt.Sprintf("failed to add '%s': %v", item.Title, err))
	default:
		result.Added++
	}
}
