package models

import (
	"fmt"
	"time"
)

// FallbackArtist is used when a video title cannot be split into song and artist.
const FallbackArtist = "DadRock Tabs"

// Video is a single catalog entry pointing at a YouTube guitar-tab video.
//
// ID and CreatedAt are assigned at creation and never change. YouTubeURL is
// the canonical watch URL and acts as the natural dedup key during sync.
type Video struct {
	ID         string    `json:"id"`
	Song       string    `json:"song"`
	Artist     string    `json:"artist"`
	YouTubeURL string    `json:"youtube_url"`
	Thumbnail  string    `json:"thumbnail"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks that the required fields are present.
func (v *Video) Validate() error {
	if v.Song == "" {
		return fmt.Errorf("song is required")
	}
	if v.YouTubeURL == "" {
		return fmt.Errorf("youtube_url is required")
	}
	return nil
}

// VideoUpdate is a partial update to a Video. Nil fields are left unchanged.
type VideoUpdate struct {
	Song       *string `json:"song"`
	Artist     *string `json:"artist"`
	YouTubeURL *string `json:"youtube_url"`
	Thumbnail  *string `json:"thumbnail"`
}

// Empty reports whether the update carries no fields at all.
func (u *VideoUpdate) Empty() bool {
	return u.Song == nil && u.Artist == nil && u.YouTubeURL == nil && u.Thumbnail == nil
}

// Settings is the singleton site configuration record: the featured video on
// the home page and the interstitial ad unit.
type Settings struct {
	FeaturedVideoURL    string `json:"featured_video_url"`
	FeaturedVideoTitle  string `json:"featured_video_title"`
	FeaturedVideoArtist string `json:"featured_video_artist"`
	AdLink              string `json:"ad_link"`
	AdImage             string `json:"ad_image"`
	AdHeadline          string `json:"ad_headline"`
	AdDescription       string `json:"ad_description"`
	AdButtonText        string `json:"ad_button_text"`
}

// DefaultSettings returns the settings served before the admin has written any.
//
// Every field is populated; callers never see a partial record.
func DefaultSettings() Settings {
	return Settings{
		FeaturedVideoURL:    "https://www.youtube.com/embed/BT4EyYXSKA",
		FeaturedVideoTitle:  "We Will Rock You",
		FeaturedVideoArtist: "Queen",
		AdLink:              "https://my-store-b8bb42.creator-spring.com/",
		AdImage:             "",
		AdHeadline:          "Check Out Our Merchandise!",
		AdDescription:       "Support DadRock Tabs by grabbing some awesome gear",
		AdButtonText:        "Shop Now",
	}
}

// SettingsUpdate is a partial update to Settings. Nil fields are left unchanged.
type SettingsUpdate struct {
	FeaturedVideoURL    *string `json:"featured_video_url"`
	FeaturedVideoTitle  *string `json:"featured_video_title"`
	FeaturedVideoArtist *string `json:"featured_video_artist"`
	AdLink              *string `json:"ad_link"`
	AdImage             *string `json:"ad_image"`
	AdHeadline          *string `json:"ad_headline"`
	AdDescription       *string `json:"ad_description"`
	AdButtonText        *string `json:"ad_button_text"`
}

// Empty reports whether the update carries no fields at all.
func (u *SettingsUpdate) Empty() bool {
	return u.FeaturedVideoURL == nil && u.FeaturedVideoTitle == nil &&
		u.FeaturedVideoArtist == nil && u.AdLink == nil && u.AdImage == nil &&
		u.AdHeadline == nil && u.AdDescription == nil && u.AdButtonText == nil
}

// Stats are the aggregate counts shown on the admin dashboard.
type Stats struct {
	TotalVideos  int `json:"total_videos"`
	TotalArtists int `json:"total_artists"`
}
