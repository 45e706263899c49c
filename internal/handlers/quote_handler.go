package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"gestor-backend/internal/imaging"
	"gestor-backend/internal/models"
	"gestor-backend/internal/services"
	"gestor-backend/pkg/utils"
)

type QuoteHandler struct {
	Service *services.QuoteService
}

func NewQuoteHandler(s *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{Service: s}
}

func itemIndex(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["index"])
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	quote, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateQuoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	quote, err := h.Service.Create(r.Context(), input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, quote)
}

func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status models.QuoteStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	quote, err := h.Service.UpdateStatus(r.Context(), mux.Vars(r)["id"], input.Status)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item models.QuoteItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	quote, err := h.Service.AddItem(r.Context(), mux.Vars(r)["id"], item)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := itemIndex(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid item index")
		return
	}
	quote, err := h.Service.RemoveItem(r.Context(), mux.Vars(r)["id"], index)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) SetItemQuantity(w http.ResponseWriter, r *http.Request) {
	index, err := itemIndex(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid item index")
		return
	}
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	quote, err := h.Service.SetItemQuantity(r.Context(), mux.Vars(r)["id"], index, input.Quantity)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quote)
}

// SetItemPrice pins or clears a manual unit price. A null price in the
// payload restores the catalog price.
func (h *QuoteHandler) SetItemPrice(w http.ResponseWriter, r *http.Request) {
	index, err := itemIndex(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid item index")
		return
	}
	var input struct {
		Price *decimal.Decimal `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	quote, err := h.Service.SetItemOverride(r.Context(), mux.Vars(r)["id"], index, input.Price)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Discount decimal.Decimal `json:"discount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	quote, err := h.Service.SetDiscount(r.Context(), mux.Vars(r)["id"], input.Discount)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) SetNotes(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	quote, err := h.Service.SetNotes(r.Context(), mux.Vars(r)["id"], input.Notes)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quote)
}

// AttachItemImage accepts a multipart upload and stores it on the line as
// a data URI.
func (h *QuoteHandler) AttachItemImage(w http.ResponseWriter, r *http.Request) {
	index, err := itemIndex(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid item index")
		return
	}
	dataURI, err := readImageUpload(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	quote, err := h.Service.AttachItemImage(r.Context(), mux.Vars(r)["id"], index, dataURI)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) ComposeMessage(w http.ResponseWriter, r *http.Request) {
	message, err := h.Service.ComposeMessage(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": message})
}

// readImageUpload pulls the "image" file from a multipart form and
// validates it into a data URI.
func readImageUpload(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(imaging.MaxImageBytes + 4096); err != nil {
		return "", err
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxImageBytes+1))
	if err != nil {
		return "", err
	}
	return imaging.EncodeUpload(data)
}
