package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oakmart/storefront/pkg/httputil"

	"github.com/oakmart/storefront/internal/service"
)

// WishlistHandler handles HTTP requests for wishlist endpoints.
type WishlistHandler struct {
	shop   *service.ShopService
	logger *slog.Logger
}

// NewWishlistHandler creates a new wishlist HTTP handler.
func NewWishlistHandler(shop *service.ShopService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		shop:   shop,
		logger: logger,
	}
}

// ToggleResponse reports the membership state after a toggle.
type ToggleResponse struct {
	ProductID  string                `json:"product_id"`
	Wishlisted bool                  `json:"wishlisted"`
	Wishlist   *service.WishlistView `json:"wishlist"`
}

// GetWishlist handles GET /api/v1/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	view, err := h.shop.Wishlist(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// Toggle handles POST /api/v1/wishlist/{productId}/toggle
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	wishlisted, view, err := h.shop.ToggleWishlist(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ToggleResponse{
		ProductID:  productID,
		Wishlisted: wishlisted,
		Wishlist:   view,
	}})
}
