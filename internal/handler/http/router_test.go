package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmart/storefront/pkg/health"
	"github.com/oakmart/storefront/pkg/kvstore"

	"github.com/oakmart/storefront/internal/auth"
	"github.com/oakmart/storefront/internal/catalog"
	"github.com/oakmart/storefront/internal/domain"
	"github.com/oakmart/storefront/internal/event"
	"github.com/oakmart/storefront/internal/repository/kv"
	"github.com/oakmart/storefront/internal/service"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kvstore.NewMemoryStore()
	cat := catalog.New(catalog.DefaultProducts())

	shop := service.NewShopService(
		cat,
		kv.NewCartRepository(store),
		kv.NewWishlistRepository(store),
		kv.NewReviewRepository(store),
		event.NewProducer(nil, logger),
		logger,
	)
	shop.LoadReviews(context.Background())

	jwtManager := auth.NewJWTManager("test-secret", 15*time.Minute)
	accounts, err := service.NewAccountService(kv.NewProfileRepository(store), jwtManager, logger)
	require.NoError(t, err)

	return NewRouter(shop, accounts, cat, jwtManager, health.NewHandler(), logger)
}

func doJSON(t *testing.T, router http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Data
}

func TestShopRoutes_RequireUserIDHeader(t *testing.T) {
	router := setupRouter(t)

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/products"},
		{http.MethodGet, "/api/v1/cart"},
		{http.MethodGet, "/api/v1/wishlist"},
	} {
		rec := doJSON(t, router, tt.method, tt.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestListProducts(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeData[service.ProductListView](t, rec)
	assert.Len(t, view.Products, 10)
	assert.Equal(t, catalog.CategoryAll, view.Filter.Category)
}

func TestFilterRoutes(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/products/filter/category", "user-1",
		SelectCategoryRequest{Category: "Books"})
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeData[service.ProductListView](t, rec)
	require.Len(t, view.Products, 2)
	assert.Equal(t, "p105", view.Products[0].ID)

	// A search resets the category back to All.
	rec = doJSON(t, router, http.MethodPut, "/api/v1/products/filter/search", "user-1",
		SetSearchTermRequest{Term: "mug"})
	require.Equal(t, http.StatusOK, rec.Code)

	view = decodeData[service.ProductListView](t, rec)
	assert.Equal(t, catalog.CategoryAll, view.Filter.Category)
	require.Len(t, view.Products, 1)
	assert.Equal(t, "p107", view.Products[0].ID)

	// Unknown category is rejected.
	rec = doJSON(t, router, http.MethodPut, "/api/v1/products/filter/category", "user-1",
		SelectCategoryRequest{Category: "Garden"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products/p101", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	detail := decodeData[ProductDetailResponse](t, rec)
	assert.Equal(t, "Wireless Bluetooth Headphones", detail.Product.Name)
	assert.Empty(t, detail.Reviews)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products/nope", "user-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartFlow(t *testing.T) {
	router := setupRouter(t)

	// Over-order clamps to stock.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "user-1",
		AddItemRequest{ProductID: "p101", Quantity: 20})
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeData[service.CartView](t, rec)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 15, view.Lines[0].Quantity)
	assert.Equal(t, int64(149985), view.SubtotalCents)

	// Quantity update clamps at the floor.
	rec = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/p101", "user-1",
		UpdateQuantityRequest{Quantity: 0})
	require.Equal(t, http.StatusOK, rec.Code)

	view = decodeData[service.CartView](t, rec)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Quantity)

	// Remove, then the cart reads back empty.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/p101", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeData[service.CartView](t, rec)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.SubtotalCents)
}

func TestCartCheckout(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "user-1",
		AddItemRequest{ProductID: "p103", Quantity: 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/checkout", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeData[service.CartView](t, rec)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.ItemCount)
}

func TestAddItem_Validation(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "user-1",
		AddItemRequest{ProductID: "p101", Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "user-1",
		AddItemRequest{Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWishlistFlow(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/wishlist/p105/toggle", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	toggled := decodeData[ToggleResponse](t, rec)
	assert.True(t, toggled.Wishlisted)
	require.NotNil(t, toggled.Wishlist)
	assert.Equal(t, []string{"p105"}, toggled.Wishlist.ProductIDs)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/wishlist/p105/toggle", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	toggled = decodeData[ToggleResponse](t, rec)
	assert.False(t, toggled.Wishlisted)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/wishlist", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeData[service.WishlistView](t, rec)
	assert.Empty(t, view.ProductIDs)
}

func TestReviewFlow(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products/p101/reviews", "user-1",
		CreateReviewRequest{Rating: 5, Comment: "Excellent bass."})
	require.Equal(t, http.StatusCreated, rec.Code)

	review := decodeData[domain.Review](t, rec)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "p101", review.ProductID)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products/p101/reviews", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decodeData[ReviewListResponse](t, rec)
	require.Len(t, list.Reviews, 1)
	assert.Equal(t, 1, list.Summary.TotalCount)
	assert.InDelta(t, 5.0, list.Summary.AverageRating, 0.001)
}

func TestReviewFlow_Rejections(t *testing.T) {
	router := setupRouter(t)

	// Rating zero is rejected before reaching the collection.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/products/p101/reviews", "user-1",
		CreateReviewRequest{Rating: 0, Comment: "no stars selected"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/products/p101/reviews", "user-1",
		CreateReviewRequest{Rating: 4, Comment: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products/p101/reviews", "user-1", nil)
	list := decodeData[ReviewListResponse](t, rec)
	assert.Empty(t, list.Reviews)
}

func TestAuthFlow(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "",
		LoginRequest{Email: "john.doe@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, rec.Code)

	authResp := decodeData[AuthResponse](t, rec)
	require.NotEmpty(t, authResp.AccessToken)
	assert.Equal(t, "u1", authResp.User.ID)

	// Profile route accepts the bearer token.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+authResp.AccessToken)
	meRec := httptest.NewRecorder()
	router.ServeHTTP(meRec, req)
	require.Equal(t, http.StatusOK, meRec.Code)

	user := decodeData[domain.User](t, meRec)
	assert.Equal(t, "john.doe@example.com", user.Email)

	// And rejects a missing or bad one.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	noTokenRec := httptest.NewRecorder()
	router.ServeHTTP(noTokenRec, req)
	assert.Equal(t, http.StatusUnauthorized, noTokenRec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "",
		LoginRequest{Email: "john.doe@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfileRoute(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "",
		LoginRequest{Email: "john.doe@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, rec.Code)
	authResp := decodeData[AuthResponse](t, rec)

	phone := "+1 (555) 999-0000"
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(UpdateProfileRequest{PhoneNumber: &phone}))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/me", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authResp.AccessToken)
	updateRec := httptest.NewRecorder()
	router.ServeHTTP(updateRec, req)
	require.Equal(t, http.StatusOK, updateRec.Code)

	user := decodeData[domain.User](t, updateRec)
	assert.Equal(t, phone, user.PhoneNumber)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContentTypeEnforcement(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewBufferString("p101"))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
