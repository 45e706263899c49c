package handlers

import (
	"encoding/json"
	"net/http"

	"gestor-backend/internal/services"
	"gestor-backend/pkg/utils"
)

type BackupHandler struct {
	Service *services.BackupService
}

func NewBackupHandler(s *services.BackupService) *BackupHandler {
	return &BackupHandler{Service: s}
}

// Trigger runs an immediate snapshot upload.
func (h *BackupHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	key, err := h.Service.Backup(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"snapshot": key})
}

func (h *BackupHandler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.Service.ListSnapshots(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, keys)
}

// Restore overwrites the store with a named snapshot.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Snapshot string `json:"snapshot"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Snapshot == "" {
		utils.Error(w, http.StatusBadRequest, "snapshot key is required")
		return
	}
	if err := h.Service.Restore(r.Context(), input.Snapshot); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"restored": true})
}
