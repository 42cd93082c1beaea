package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dadrocktabs/api/internal/formatter"
	"github.com/dadrocktabs/api/internal/models"
	"github.com/dadrocktabs/api/internal/repositories"
	"github.com/dadrocktabs/api/internal/shared"
)

// listResponse pairs one page of records with the total number of records
// matching the filter. Total reflects the filter, not the page.
type listResponse struct {
	Videos []models.Video `json:"videos"`
	Total  int            `json:"total"`
}

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	search := repositories.Search{
		Query: q.Get("search"),
		Field: searchField(q.Get("search_type")),
	}

	var err error
	if search.Skip, err = queryInt(q.Get("skip"), 0); err != nil {
		s.writeError(w, err)
		return
	}
	if search.Limit, err = queryInt(q.Get("limit"), repositories.DefaultLimit); err != nil {
		s.writeError(w, err)
		return
	}

	videos, total, err := s.videos.List(search)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, listResponse{Videos: videos, Total: total})
}

func (s *Server) handleGetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := s.videos.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, video)
}

func (s *Server) handleCreateVideo(w http.ResponseWriter, r *http.Request) {
	var video models.Video
	if err := decodeJSON(r, &video); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.videos.Create(&video); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, video)
}

func (s *Server) handleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	var patch models.VideoUpdate
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, err)
		return
	}

	video, err := s.videos.Update(r.PathValue("id"), patch)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, video)
}

func (s *Server) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := s.videos.Delete(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Video deleted successfully"})
}

// handleBulkImport creates catalog entries from an uploaded CSV file with
// columns song,artist,youtube_url. Row failures are collected and reported;
// the import never aborts part way.
func (s *Server) handleBulkImport(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: file field is required", shared.ErrInvalidInput))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		s.writeError(w, fmt.Errorf("%w: file must be a CSV", shared.ErrInvalidInput))
		return
	}

	rows, importErrors := formatter.ParseCatalogCSV(file)

	added := 0
	for _, row := range rows {
		video := row.Video
		if err := s.videos.Create(&video); err != nil {
			importErrors = append(importErrors, fmt.Sprintf("Row %d: %v", row.Line, err))
			continue
		}
		added++
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message":      fmt.Sprintf("Import completed. %d videos added.", added),
		"videos_added": added,
		"errors":       importErrors,
	})
}

// searchField validates the search_type parameter; anything unrecognized
// falls back to matching both fields.
func searchField(value string) repositories.SearchField {
	switch repositories.SearchField(value) {
	case repositories.SearchSong:
		return repositories.SearchSong
	case repositories.SearchArtist:
		return repositories.SearchArtist
	default:
		return repositories.SearchAll
	}
}

func queryInt(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", shared.ErrInvalidInput, value)
	}
	return n, nil
}
