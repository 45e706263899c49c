package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gestor-backend/internal/services"
	"gestor-backend/pkg/utils"
)

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(s *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: s}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	client, err := h.Service.Create(r.Context(), input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.ClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	client, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *ClientHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.Service.ListAppointments(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, appointments)
}

func (h *ClientHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var input services.AppointmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	appointment, err := h.Service.CreateAppointment(r.Context(), input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, appointment)
}

func (h *ClientHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteAppointment(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
