package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dadrocktabs/api/internal/models"
	"github.com/dadrocktabs/api/internal/parser"
)

// settingsType keys the singleton settings row.
const settingsType = "site"

// SettingsRepository persists the singleton [models.Settings] record.
//
// The row is created on first write; reads before that serve
// [models.DefaultSettings].
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the given database connection
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the site settings with every field populated.
//
// Fields the admin has never written (stored empty) fall back to their
// documented defaults, matching the per-field defaulting of the public API.
// AdImage is the exception: empty is a valid stored value and its default is
// empty anyway.
func (r *SettingsRepository) Get() (models.Settings, error) {
	defaults := models.DefaultSettings()

	var stored models.Settings
	err := r.db.QueryRow(`
		SELECT featured_video_url, featured_video_title, featured_video_artist,
		       ad_link, ad_image, ad_headline, ad_description, ad_button_text
		FROM settings WHERE type = ?
	`, settingsType).Scan(
		&stored.FeaturedVideoURL, &stored.FeaturedVideoTitle, &stored.FeaturedVideoArtist,
		&stored.AdLink, &stored.AdImage, &stored.AdHeadline, &stored.AdDescription, &stored.AdButtonText,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return defaults, nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	merged := defaults
	overlay := func(dst *string, stored string) {
		if stored != "" {
			*dst = stored
		}
	}
	overlay(&merged.FeaturedVideoURL, stored.FeaturedVideoURL)
	overlay(&merged.FeaturedVideoTitle, stored.FeaturedVideoTitle)
	overlay(&merged.FeaturedVideoArtist, stored.FeaturedVideoArtist)
	overlay(&merged.AdLink, stored.AdLink)
	merged.AdImage = stored.AdImage
	overlay(&merged.AdHeadline, stored.AdHeadline)
	overlay(&merged.AdDescription, stored.AdDescription)
	overlay(&merged.AdButtonText, stored.AdButtonText)

	return merged, nil
}

// Upsert writes the supplied fields of the patch, creating the singleton row
// on first write. A featured video URL is normalized to the embed form before
// storage.
func (r *SettingsRepository) Upsert(patch models.SettingsUpdate) error {
	columns := []string{"type"}
	args := []any{settingsType}
	set := func(column string, value string) {
		columns = append(columns, column)
		args = append(args, value)
	}

	if patch.FeaturedVideoURL != nil {
		set("featured_video_url", parser.EmbedURL(*patch.FeaturedVideoURL))
	}
	if patch.FeaturedVideoTitle != nil {
		set("featured_video_title", *patch.FeaturedVideoTitle)
	}
	if patch.FeaturedVideoArtist != nil {
		set("featured_video_artist", *patch.FeaturedVideoArtist)
	}
	if patch.AdLink != nil {
		set("ad_link", *patch.AdLink)
	}
	if patch.AdImage != nil {
		set("ad_image", *patch.AdImage)
	}
	if patch.AdHeadline != nil {
		set("ad_headline", *patch.AdHeadline)
	}
	if patch.AdDescription != nil {
		set("ad_description", *patch.AdDescription)
	}
	if patch.AdButtonText != nil {
		set("ad_button_text", *patch.AdButtonText)
	}

	columns = append(columns, "updated_at")
	args = append(args, time.Now().UTC())

	var updates []string
	for _, column := range columns[1:] {
		updates = append(updates, column+" = excluded."+column)
	}

	query := fmt.Sprintf(
		"INSERT INTO settings (%s) VALUES (%s) ON CONFLICT(type) DO UPDATE SET %s",
		strings.Join(columns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", "),
		strings.Join(updates, ", "),
	)

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}
