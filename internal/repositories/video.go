package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dadrocktabs/api/internal/models"
	"github.com/dadrocktabs/api/internal/parser"
	"github.com/dadrocktabs/api/internal/shared"
)

const (
	// DefaultLimit is the page size used when the caller does not supply one.
	DefaultLimit = 50
	// MaxLimit caps caller-supplied page sizes so a hostile limit cannot
	// drag the whole catalog into one response.
	MaxLimit = 200

	videoColumns = "id, song, artist, youtube_url, thumbnail, created_at"
)

// SearchField selects which record fields a catalog search matches against.
type SearchField string

const (
	SearchAll    SearchField = "all"
	SearchSong   SearchField = "song"
	SearchArtist SearchField = "artist"
)

// Search describes one catalog listing request.
type Search struct {
	Query string
	Field SearchField
	Skip  int
	Limit int
}

// VideoRepository persists [models.Video] records in the videos table.
type VideoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new VideoRepository with the given database connection
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a new video, assigning its ID and creation timestamp.
//
// A missing thumbnail is derived from the video URL. Inserting a URL that is
// already in the catalog yields [shared.ErrDuplicate].
func (r *VideoRepository) Create(video *models.Video) error {
	if err := video.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	video.ID = shared.GenerateID()
	video.CreatedAt = time.Now().UTC()
	if video.Artist == "" {
		video.Artist = models.FallbackArtist
	}
	if video.Thumbnail == "" {
		video.Thumbnail = parser.ThumbnailURL(video.YouTubeURL)
	}

	_, err := r.db.Exec(
		"INSERT INTO videos ("+videoColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		video.ID, video.Song, video.Artist, video.YouTubeURL, video.Thumbnail, video.CreatedAt,
	)
	return mapConstraint(err, "failed to insert video")
}

// Get retrieves a video by ID.
func (r *VideoRepository) Get(id string) (*models.Video, error) {
	row := r.db.QueryRow("SELECT "+videoColumns+" FROM videos WHERE id = ?", id)
	return scanVideo(row)
}

// ExistsByURL reports whether a record with the exact watch URL is already in
// the catalog. Sync uses this as a cheap skip check; the unique constraint on
// youtube_url remains the source of truth under concurrent writes.
func (r *VideoRepository) ExistsByURL(url string) (bool, error) {
	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM videos WHERE youtube_url = ?)", url).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check video existence: %w", err)
	}
	return exists, nil
}

// Update applies the non-nil fields of the patch to an existing video and
// returns the updated record.
//
// When the patch changes the URL without supplying a thumbnail, the thumbnail
// is re-derived from the new URL.
func (r *VideoRepository) Update(id string, patch models.VideoUpdate) (*models.Video, error) {
	if patch.Empty() {
		return r.Get(id)
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Song != nil {
		set("song", *patch.Song)
	}
	if patch.Artist != nil {
		set("artist", *patch.Artist)
	}
	if patch.YouTubeURL != nil {
		set("youtube_url", *patch.YouTubeURL)
		if patch.Thumbnail == nil {
			set("thumbnail", parser.ThumbnailURL(*patch.YouTubeURL))
		}
	}
	if patch.Thumbnail != nil {
		set("thumbnail", *patch.Thumbnail)
	}

	args = append(args, id)
	result, err := r.db.Exec("UPDATE videos SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, mapConstraint(err, "failed to update video")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("video %s: %w", id, shared.ErrNotFound)
	}

	return r.Get(id)
}

// Delete removes a video by ID.
func (r *VideoRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM videos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("video %s: %w", id, shared.ErrNotFound)
	}

	return nil
}

// List returns one page of the catalog plus the total number of records
// matching the filter. The total reflects the filter, not the page, so
// callers can paginate.
func (r *VideoRepository) List(search Search) ([]models.Video, int, error) {
	where, args := searchClause(search)

	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM videos"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	limit := search.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	skip := search.Skip
	if skip < 0 {
		skip = 0
	}

	query := "SELECT " + videoColumns + " FROM videos" + where +
		" ORDER BY created_at, id LIMIT ? OFFSET ?"
	rows, err := r.db.Query(query, append(args, limit, skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	videos := []models.Video{}
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Song, &v.Artist, &v.YouTubeURL, &v.Thumbnail, &v.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("row iteration error: %w", err)
	}

	return videos, total, nil
}

// Stats computes the admin dashboard counts, fresh on every call.
func (r *VideoRepository) Stats() (models.Stats, error) {
	var stats models.Stats
	err := r.db.QueryRow("SELECT COUNT(*), COUNT(DISTINCT artist) FROM videos").
		Scan(&stats.TotalVideos, &stats.TotalArtists)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}

// likeEscaper escapes LIKE metacharacters so queries match them literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchClause builds the WHERE clause for a case-insensitive substring match
// against song, artist, or both.
func searchClause(search Search) (string, []any) {
	if search.Query == "" {
		return "", nil
	}

	needle := "%" + likeEscaper.Replace(strings.ToLower(search.Query)) + "%"
	switch search.Field {
	case SearchSong:
		return ` WHERE LOWER(song) LIKE ? ESCAPE '\'`, []any{needle}
	case SearchArtist:
		return ` WHERE LOWER(artist) LIKE ? ESCAPE '\'`, []any{needle}
	default:
		return ` WHERE (LOWER(song) LIKE ? ESCAPE '\' OR LOWER(artist) LIKE ? ESCAPE '\')`, []any{needle, needle}
	}
}

// scanVideo scans a single row, mapping no-rows to [shared.ErrNotFound].
func scanVideo(row *sql.Row) (*models.Video, error) {
	var v models.Video
	err := row.Scan(&v.ID, &v.Song, &v.Artist, &v.YouTubeURL, &v.Thumbnail, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("video: %w", shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan video: %w", err)
	}
	return &v, nil
}
