package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/dadrocktabs/api/internal/models"
	"github.com/dadrocktabs/api/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// One connection, or the pool would hand out fresh empty :memory: databases.
	shared.ConfigureDatabase(db, 1, 1)

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func mustCreate(t *testing.T, repo *VideoRepository, song, artist, url string) *models.Video {
	t.Helper()
	video := &models.Video{Song: song, Artist: artist, YouTubeURL: url}
	if err := repo.Create(video); err != nil {
		t.Fatalf("failed to create video: %v", err)
	}
	return video
}

func strptr(s string) *string { return &s }

func TestVideoRepository(t *testing.T) {
	t.Run("Create assigns id, timestamp and thumbnail", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		video := mustCreate(t, repo, "Paranoid", "Black Sabbath", "https://www.youtube.com/watch?v=uk_wUT1CvWM")

		if video.ID == "" {
			t.Error("video ID should be set after creation")
		}
		if video.CreatedAt.IsZero() {
			t.Error("created_at should be set after creation")
		}
		if want := "https://img.youtube.com/vi/uk_wUT1CvWM/mqdefault.jpg"; video.Thumbnail != want {
			t.Errorf("expected derived thumbnail %q, got %q", want, video.Thumbnail)
		}
	})

	t.Run("Create keeps an explicit thumbnail", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		video := &models.Video{
			Song:       "Paranoid",
			Artist:     "Black Sabbath",
			YouTubeURL: "https://www.youtube.com/watch?v=uk_wUT1CvWM",
			Thumbnail:  "https://example.com/custom.jpg",
		}
		if err := repo.Create(video); err != nil {
			t.Fatalf("failed to create video: %v", err)
		}
		if video.Thumbnail != "https://example.com/custom.jpg" {
			t.Errorf("explicit thumbnail was overwritten: %q", video.Thumbnail)
		}
	})

	t.Run("Create rejects missing required fields", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		err := repo.Create(&models.Video{Artist: "Black Sabbath", YouTubeURL: "https://youtu.be/x"})
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}

		err = repo.Create(&models.Video{Song: "Paranoid"})
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Create maps duplicate url to ErrDuplicate", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))
		url := "https://www.youtube.com/watch?v=uk_wUT1CvWM"

		mustCreate(t, repo, "Paranoid", "Black Sabbath", url)

		err := repo.Create(&models.Video{Song: "Paranoid again", Artist: "Black Sabbath", YouTubeURL: url})
		if !errors.Is(err, shared.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("Get roundtrip", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		created := mustCreate(t, repo, "Paranoid", "Black Sabbath", "https://www.youtube.com/watch?v=uk_wUT1CvWM")

		got, err := repo.Get(created.ID)
		if err != nil {
			t.Fatalf("failed to get video: %v", err)
		}
		if got.ID != created.ID || got.Song != created.Song || got.Artist != created.Artist ||
			got.YouTubeURL != created.YouTubeURL || got.Thumbnail != created.Thumbnail {
			t.Errorf("roundtrip mismatch: got %+v, want %+v", got, created)
		}
	})

	t.Run("Get unknown id yields ErrNotFound", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		if _, err := repo.Get("no-such-id"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ExistsByURL", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))
		url := "https://www.youtube.com/watch?v=uk_wUT1CvWM"

		exists, err := repo.ExistsByURL(url)
		if err != nil || exists {
			t.Fatalf("expected (false, nil), got (%v, %v)", exists, err)
		}

		mustCreate(t, repo, "Paranoid", "Black Sabbath", url)

		exists, err = repo.ExistsByURL(url)
		if err != nil || !exists {
			t.Fatalf("expected (true, nil), got (%v, %v)", exists, err)
		}
	})

	t.Run("Update applies only supplied fields", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		created := mustCreate(t, repo, "Paranoid", "Black Sabbath", "https://www.youtube.com/watch?v=uk_wUT1CvWM")

		updated, err := repo.Update(created.ID, models.VideoUpdate{Song: strptr("War Pigs")})
		if err != nil {
			t.Fatalf("failed to update video: %v", err)
		}
		if updated.Song != "War Pigs" {
			t.Errorf("expected song 'War Pigs', got %q", updated.Song)
		}
		if updated.Artist != "Black Sabbath" || updated.YouTubeURL != created.YouTubeURL {
			t.Error("unsupplied fields should be unchanged")
		}
	})

	t.Run("Update re-derives thumbnail when url changes", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		created := mustCreate(t, repo, "Paranoid", "Black Sabbath", "https://www.youtube.com/watch?v=uk_wUT1CvWM")

		updated, err := repo.Update(created.ID, models.VideoUpdate{
			YouTubeURL: strptr("https://www.youtube.com/watch?v=0qanF-91aJo"),
		})
		if err != nil {
			t.Fatalf("failed to update video: %v", err)
		}
		if want := "https://img.youtube.com/vi/0qanF-91aJo/mqdefault.jpg"; updated.Thumbnail != want {
			t.Errorf("expected re-derived thumbnail %q, got %q", want, updated.Thumbnail)
		}
	})

	t.Run("Update keeps explicit thumbnail over derivation", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		created := mustCreate(t, repo, "Paranoid", "Black Sabbath", "https://www.youtube.com/watch?v=uk_wUT1CvWM")

		updated, err := repo.Update(created.ID, models.VideoUpdate{
			YouTubeURL: strptr("https://www.youtube.com/watch?v=0qanF-91aJo"),
			Thumbnail:  strptr("https://example.com/custom.jpg"),
		})
		if err != nil {
			t.Fatalf("failed to update video: %v", err)
		}
		if updated.Thumbnail != "https://example.com/custom.jpg" {
			t.Errorf("explicit thumbnail was overwritten: %q", updated.Thumbnail)
		}
	})

	t.Run("Update unknown id yields ErrNotFound", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		_, err := repo.Update("no-such-id", models.VideoUpdate{Song: strptr("x")})
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete removes the record", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))

		created := mustCreate(t, repo, "Paranoid", "Black Sabbath", "https://www.youtube.com/watch?v=uk_wUT1CvWM")

		if err := repo.Delete(created.ID); err != nil {
			t.Fatalf("failed to delete video: %v", err)
		}
		if _, err := repo.Get(created.ID); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := repo.Delete(created.ID); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound on re-delete, got %v", err)
		}
	})
}

func TestVideoRepositoryList(t *testing.T) {
	seed := func(t *testing.T) *VideoRepository {
		t.Helper()
		repo := NewVideoRepository(setupTestDB(t))
		mustCreate(t, repo, "Stairway to Heaven", "Led Zeppelin", "https://www.youtube.com/watch?v=aaaaaaaaaa1")
		mustCreate(t, repo, "Kashmir", "Led Zeppelin", "https://www.youtube.com/watch?v=aaaaaaaaaa2")
		mustCreate(t, repo, "Hotel California", "Eagles", "https://www.youtube.com/watch?v=aaaaaaaaaa3")
		mustCreate(t, repo, "Heaven and Hell", "Black Sabbath", "https://www.youtube.com/watch?v=aaaaaaaaaa4")
		return repo
	}

	t.Run("no filter returns everything", func(t *testing.T) {
		repo := seed(t)

		videos, total, err := repo.List(Search{})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if len(videos) != 4 || total != 4 {
			t.Errorf("expected 4 videos with total 4, got %d with total %d", len(videos), total)
		}
	})

	t.Run("artist search is case-insensitive and scoped", func(t *testing.T) {
		repo := seed(t)

		videos, total, err := repo.List(Search{Query: "zeppelin", Field: SearchArtist})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if total != 2 {
			t.Errorf("expected total 2, got %d", total)
		}
		for _, v := range videos {
			if v.Artist != "Led Zeppelin" {
				t.Errorf("unexpected artist in results: %q", v.Artist)
			}
		}
	})

	t.Run("song search does not match artists", func(t *testing.T) {
		repo := seed(t)

		_, total, err := repo.List(Search{Query: "sabbath", Field: SearchSong})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if total != 0 {
			t.Errorf("expected no song matches for 'sabbath', got %d", total)
		}
	})

	t.Run("all search matches either field", func(t *testing.T) {
		repo := seed(t)

		_, total, err := repo.List(Search{Query: "heaven", Field: SearchAll})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if total != 2 {
			t.Errorf("expected 2 matches for 'heaven', got %d", total)
		}
	})

	t.Run("total reflects the filter, not the page", func(t *testing.T) {
		repo := seed(t)

		videos, total, err := repo.List(Search{Query: "zeppelin", Field: SearchArtist, Skip: 1, Limit: 1})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if len(videos) != 1 {
			t.Errorf("expected page of 1, got %d", len(videos))
		}
		if total != 2 {
			t.Errorf("expected total 2 regardless of pagination, got %d", total)
		}
	})

	t.Run("LIKE metacharacters match literally", func(t *testing.T) {
		repo := NewVideoRepository(setupTestDB(t))
		mustCreate(t, repo, "100% Pure Rock", "AC/DC", "https://www.youtube.com/watch?v=bbbbbbbbbb1")
		mustCreate(t, repo, "100 Proof", "AC/DC", "https://www.youtube.com/watch?v=bbbbbbbbbb2")
		mustCreate(t, repo, "Under_score", "AC/DC", "https://www.youtube.com/watch?v=bbbbbbbbbb3")
		mustCreate(t, repo, "Underscore", "AC/DC", "https://www.youtube.com/watch?v=bbbbbbbbbb4")

		videos, total, err := repo.List(Search{Query: "100%", Field: SearchSong})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if total != 1 || videos[0].Song != "100% Pure Rock" {
			t.Errorf("expected only the literal %%-match, got total %d: %+v", total, videos)
		}

		videos, total, err = repo.List(Search{Query: "under_", Field: SearchSong})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if total != 1 || videos[0].Song != "Under_score" {
			t.Errorf("expected only the literal _-match, got total %d: %+v", total, videos)
		}
	})

	t.Run("limit is capped", func(t *testing.T) {
		repo := seed(t)

		videos, _, err := repo.List(Search{Limit: 1 << 30})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if len(videos) != 4 {
			t.Errorf("expected capped listing to still return all 4, got %d", len(videos))
		}
	})
}

func TestVideoRepositoryStats(t *testing.T) {
	repo := NewVideoRepository(setupTestDB(t))

	stats, err := repo.Stats()
	if err != nil {
		t.Fatalf("failed to compute stats: %v", err)
	}
	if stats.TotalVideos != 0 || stats.TotalArtists != 0 {
		t.Errorf("expected zero stats on empty catalog, got %+v", stats)
	}

	mustCreate(t, repo, "Stairway to Heaven", "Led Zeppelin", "https://www.youtube.com/watch?v=aaaaaaaaaa1")
	mustCreate(t, repo, "Kashmir", "Led Zeppelin", "https://www.youtube.com/watch?v=aaaaaaaaaa2")
	mustCreate(t, repo, "Hotel California", "Eagles", "https://www.youtube.com/watch?v=aaaaaaaaaa3")

	stats, err = repo.Stats()
	if err != nil {
		t.Fatalf("failed to compute stats: %v", err)
	}
	if stats.TotalVideos != 3 {
		t.Errorf("expected 3 videos, got %d", stats.TotalVideos)
	}
	if stats.TotalArtists != 2 {
		t.Errorf("expected 2 distinct artists, got %d", stats.TotalArtists)
	}
}
