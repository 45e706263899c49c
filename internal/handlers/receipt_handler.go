package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gestor-backend/internal/services"
	"gestor-backend/pkg/utils"
)

type ReceiptHandler struct {
	Service *services.ReceiptService
}

func NewReceiptHandler(s *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{Service: s}
}

func (h *ReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, receipts)
}

func (h *ReceiptHandler) Get(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, receipt)
}

func (h *ReceiptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateReceiptInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	receipt, err := h.Service.Create(r.Context(), input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, receipt)
}

func (h *ReceiptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
