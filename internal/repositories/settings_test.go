package repositories

import (
	"testing"

	"github.com/dadrocktabs/api/internal/models"
)

func TestSettingsRepository(t *testing.T) {
	t.Run("Get before any write serves defaults", func(t *testing.T) {
		repo := NewSettingsRepository(setupTestDB(t))

		settings, err := repo.Get()
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		if settings != models.DefaultSettings() {
			t.Errorf("expected defaults, got %+v", settings)
		}
	})

	t.Run("Upsert writes only supplied fields", func(t *testing.T) {
		repo := NewSettingsRepository(setupTestDB(t))

		err := repo.Upsert(models.SettingsUpdate{AdHeadline: strptr("New Merch Drop")})
		if err != nil {
			t.Fatalf("failed to upsert settings: %v", err)
		}

		settings, err := repo.Get()
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		if settings.AdHeadline != "New Merch Drop" {
			t.Errorf("expected updated headline, got %q", settings.AdHeadline)
		}
		if settings.FeaturedVideoTitle != models.DefaultSettings().FeaturedVideoTitle {
			t.Errorf("untouched field should keep its default, got %q", settings.FeaturedVideoTitle)
		}
	})

	t.Run("Upsert twice merges patches", func(t *testing.T) {
		repo := NewSettingsRepository(setupTestDB(t))

		if err := repo.Upsert(models.SettingsUpdate{AdHeadline: strptr("First")}); err != nil {
			t.Fatalf("failed to upsert settings: %v", err)
		}
		if err := repo.Upsert(models.SettingsUpdate{AdButtonText: strptr("Buy")}); err != nil {
			t.Fatalf("failed to upsert settings: %v", err)
		}

		settings, err := repo.Get()
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		if settings.AdHeadline != "First" || settings.AdButtonText != "Buy" {
			t.Errorf("patches should accumulate, got %+v", settings)
		}
	})

	t.Run("featured video url is normalized to embed form", func(t *testing.T) {
		repo := NewSettingsRepository(setupTestDB(t))

		err := repo.Upsert(models.SettingsUpdate{
			FeaturedVideoURL: strptr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
		})
		if err != nil {
			t.Fatalf("failed to upsert settings: %v", err)
		}

		settings, err := repo.Get()
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		if want := "https://www.youtube.com/embed/dQw4w9WgXcQ"; settings.FeaturedVideoURL != want {
			t.Errorf("expected normalized url %q, got %q", want, settings.FeaturedVideoURL)
		}
	})

	t.Run("empty stored fields fall back to defaults except ad image", func(t *testing.T) {
		repo := NewSettingsRepository(setupTestDB(t))

		// Create the row with one field; everything else is stored empty.
		if err := repo.Upsert(models.SettingsUpdate{AdLink: strptr("https://shop.example.com")}); err != nil {
			t.Fatalf("failed to upsert settings: %v", err)
		}

		settings, err := repo.Get()
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		defaults := models.DefaultSettings()
		if settings.AdLink != "https://shop.example.com" {
			t.Errorf("expected stored ad link, got %q", settings.AdLink)
		}
		if settings.FeaturedVideoURL != defaults.FeaturedVideoURL ||
			settings.AdDescription != defaults.AdDescription {
			t.Errorf("empty stored fields should fall back to defaults, got %+v", settings)
		}
		if settings.AdImage != "" {
			t.Errorf("ad image should be served verbatim, got %q", settings.AdImage)
		}
	})
}
