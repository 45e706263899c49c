package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gestor-backend/internal/models"
	"gestor-backend/internal/services"
	"gestor-backend/pkg/utils"
)

type CommitmentHandler struct {
	Service *services.CommitmentService
}

func NewCommitmentHandler(s *services.CommitmentService) *CommitmentHandler {
	return &CommitmentHandler{Service: s}
}

// List supports an optional ?q= filter over authority, commitment number
// and process number.
func (h *CommitmentHandler) List(w http.ResponseWriter, r *http.Request) {
	commitments, err := h.Service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, commitments)
}

func (h *CommitmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	commitment, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, commitment)
}

// Save handles both creation (no id in payload) and edits.
func (h *CommitmentHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input services.SaveCommitmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if id := mux.Vars(r)["id"]; id != "" {
		input.ID = id
	}
	commitment, err := h.Service.Save(r.Context(), input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, commitment)
}

func (h *CommitmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status models.CommitmentStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	commitment, err := h.Service.UpdateStatus(r.Context(), mux.Vars(r)["id"], input.Status)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, commitment)
}

func (h *CommitmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
