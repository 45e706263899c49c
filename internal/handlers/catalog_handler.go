package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gestor-backend/internal/repositories"
	"gestor-backend/internal/services"
	"gestor-backend/pkg/utils"
)

type CatalogHandler struct {
	Service *services.CatalogService
}

func NewCatalogHandler(s *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Service.ListServices(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, services)
}

func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	service, err := h.Service.GetService(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, service)
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var input services.ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	service, err := h.Service.CreateService(r.Context(), input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, service)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var input services.ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	service, err := h.Service.UpdateService(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, service)
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteService(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *CatalogHandler) ToggleServiceFavorite(w http.ResponseWriter, r *http.Request) {
	service, err := h.Service.ToggleServiceFavorite(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, service)
}

// ImproveServiceDescription returns an AI-polished rewrite of the given
// description without touching the catalog.
func (h *CatalogHandler) ImproveServiceDescription(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	improved := h.Service.ImproveServiceDescription(r.Context(), input.Name, input.Description)
	utils.JSON(w, http.StatusOK, map[string]string{"description": improved})
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Service.ListProducts(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Service.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	product, err := h.Service.CreateProduct(r.Context(), input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	product, err := h.Service.UpdateProduct(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *CatalogHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	product, err := h.Service.AdjustStock(r.Context(), mux.Vars(r)["id"], input.Delta)
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, product)
}

func categoryKind(r *http.Request) repositories.CategoryKind {
	if mux.Vars(r)["kind"] == "products" {
		return repositories.CategoryKindProduct
	}
	return repositories.CategoryKindService
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.ListCategories(r.Context(), categoryKind(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	categories, err := h.Service.AddCategory(r.Context(), categoryKind(r), input.Name)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.RemoveCategory(r.Context(), categoryKind(r), mux.Vars(r)["name"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, categories)
}
