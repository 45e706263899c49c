package handlers

import (
	"encoding/json"
	"net/http"

	"gestor-backend/internal/models"
	"gestor-backend/internal/services"
	"gestor-backend/pkg/utils"
)

type ProfileHandler struct {
	Service *services.ProfileService
}

func NewProfileHandler(s *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: s}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.Get(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var profile models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	saved, err := h.Service.Save(r.Context(), &profile)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, saved)
}

// UploadLogo stores the company logo used on document headers and
// watermarks.
func (h *ProfileHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	dataURI, err := readImageUpload(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	profile, err := h.Service.Get(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	profile.Logo = dataURI
	saved, err := h.Service.Save(r.Context(), profile)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, saved)
}
