package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/oakmart/storefront/pkg/errors"
	"github.com/oakmart/storefront/pkg/httputil"
	"github.com/oakmart/storefront/pkg/validator"

	"github.com/oakmart/storefront/internal/catalog"
	"github.com/oakmart/storefront/internal/domain"
	"github.com/oakmart/storefront/internal/service"
)

// CatalogHandler handles HTTP requests for product listing and filtering.
type CatalogHandler struct {
	shop    *service.ShopService
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(shop *service.ShopService, cat *catalog.Catalog, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		shop:    shop,
		catalog: cat,
		logger:  logger,
	}
}

// SelectCategoryRequest is the JSON request body for selecting a category.
type SelectCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// SetSearchTermRequest is the JSON request body for setting the search term.
type SetSearchTermRequest struct {
	Term string `json:"term"`
}

// ProductDetailResponse joins a product with its reviews and their summary.
type ProductDetailResponse struct {
	Product catalog.Product      `json:"product"`
	Reviews []domain.Review      `json:"reviews"`
	Summary domain.ReviewSummary `json:"review_summary"`
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	view, err := h.shop.Products(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// GetProduct handles GET /api/v1/products/{productId}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	product, ok := h.catalog.Get(productID)
	if !ok {
		httputil.WriteError(w, r, apperrors.NotFound("product", productID), h.logger)
		return
	}

	reviews, summary := h.shop.ReviewsFor(productID)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ProductDetailResponse{
		Product: product,
		Reviews: reviews,
		Summary: summary,
	}})
}

// SelectCategory handles PUT /api/v1/products/filter/category
func (h *CatalogHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req SelectCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	view, err := h.shop.SelectCategory(r.Context(), userID, catalog.Category(req.Category))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// SetSearchTerm handles PUT /api/v1/products/filter/search
func (h *CatalogHandler) SetSearchTerm(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req SetSearchTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	view, err := h.shop.SetSearchTerm(r.Context(), userID, req.Term)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
