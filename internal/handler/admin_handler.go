package handler

import (
	"net/http"

	"mini-erp/internal/backup"

	"github.com/rs/zerolog"
)

// AdminHandler handles operator-only endpoints.
type AdminHandler struct {
	snapshotter *backup.Snapshotter
	logger      zerolog.Logger
}

// NewAdminHandler creates a new admin handler. snapshotter may be nil
// when backups are disabled.
func NewAdminHandler(snapshotter *backup.Snapshotter, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		snapshotter: snapshotter,
		logger:      logger.With().Str("handler", "admin").Logger(),
	}
}

// Backup handles POST /api/admin/backup, dumping every collection
// through the configured snapshot writer.
func (h *AdminHandler) Backup(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		writeError(w, http.StatusServiceUnavailable, "backups are disabled", h.logger)
		return
	}

	if err := h.snapshotter.Snapshot(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "snapshot failed", h.logger)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "snapshot completed"})
}
