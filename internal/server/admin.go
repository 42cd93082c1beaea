package server

import (
	"net/http"

	"github.com/dadrocktabs/api/internal/models"
	"github.com/dadrocktabs/api/internal/services"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "DadRock Tabs API",
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Get()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsUpdate
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.settings.Upsert(patch); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Settings updated successfully",
	})
}

// handleLogin verifies the admin password. No session is issued; clients keep
// sending the credential on every admin request.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	if !s.passwordMatches(body.Password) {
		s.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Invalid password"})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.videos.Stats()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, stats)
}

// syncResponse wraps the engine report; per-item errors ride along even on
// success since item failures are non-fatal.
type syncResponse struct {
	Success bool `json:"success"`
	*services.SyncResult
}

// handleSync triggers a sync run. The body may override the configured API
// key and channel id; an absent or malformed body means "use config".
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	var opts services.SyncOptions
	_ = decodeJSON(r, &opts)

	result, err := s.sync.Run(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, syncResponse{Success: true, SyncResult: result})
}
