// Package service implements the shopping state manager: cart, wishlist,
// catalog filter, and review operations with write-behind persistence.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/oakmart/storefront/pkg/errors"

	"github.com/oakmart/storefront/internal/catalog"
	"github.com/oakmart/storefront/internal/domain"
	"github.com/oakmart/storefront/internal/event"
	"github.com/oakmart/storefront/internal/repository"
)

// CartLineView is a cart line joined with its catalog product.
type CartLineView struct {
	Product        catalog.Product `json:"product"`
	Quantity       int             `json:"quantity"`
	LineTotalCents int64           `json:"line_total_cents"`
}

// CartView is the derived cart state returned to the display layer.
type CartView struct {
	Lines         []CartLineView `json:"lines"`
	ItemCount     int            `json:"item_count"`
	SubtotalCents int64          `json:"subtotal_cents"`
}

// WishlistView is the derived wishlist state returned to the display layer.
type WishlistView struct {
	ProductIDs []string          `json:"product_ids"`
	Products   []catalog.Product `json:"products"`
}

// ProductListView is the derived filtered catalog view.
type ProductListView struct {
	Products []catalog.Product  `json:"products"`
	Filter   domain.FilterState `json:"filter"`
}

// session holds one user's in-memory shopping state. State is loaded from
// the durable store when the session is first touched and written back
// best-effort after every mutation.
type session struct {
	mu       sync.Mutex
	cart     *domain.Cart
	wishlist *domain.Wishlist
	filter   domain.FilterState
}

// ShopService implements the shopping state manager over a read-only
// catalog and the durable store repositories.
type ShopService struct {
	catalog   *catalog.Catalog
	carts     repository.CartRepository
	wishlists repository.WishlistRepository
	reviews   repository.ReviewRepository
	producer  *event.Producer
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session

	reviewMu   sync.RWMutex
	reviewList []domain.Review
}

// NewShopService creates a new shopping state manager.
func NewShopService(
	cat *catalog.Catalog,
	carts repository.CartRepository,
	wishlists repository.WishlistRepository,
	reviews repository.ReviewRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *ShopService {
	return &ShopService{
		catalog:    cat,
		carts:      carts,
		wishlists:  wishlists,
		reviews:    reviews,
		producer:   producer,
		logger:     logger,
		sessions:   make(map[string]*session),
		reviewList: []domain.Review{},
	}
}

// LoadReviews restores the shared review collection from the durable store.
// Missing or malformed data falls back to an empty collection; startup
// never fails on a bad blob.
func (s *ShopService) LoadReviews(ctx context.Context) {
	reviews, err := s.reviews.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to restore reviews, starting empty",
				slog.String("error", err.Error()),
			)
		}
		reviews = []domain.Review{}
	}

	s.reviewMu.Lock()
	s.reviewList = reviews
	s.reviewMu.Unlock()

	s.logger.InfoContext(ctx, "reviews restored",
		slog.Int("count", len(reviews)),
	)
}

// --- Cart operations ---

// Cart returns the derived cart view for a user.
func (s *ShopService) Cart(ctx context.Context, userID string) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.cartView(sess.cart), nil
}

// AddToCart adds the requested quantity of a product to the user's cart.
// Repeated adds accumulate but saturate at the product's stock; there is no
// error path for over-ordering. A product id absent from the catalog is a
// no-op.
func (s *ShopService) AddToCart(ctx context.Context, userID, productID string, quantity int) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if quantity < 1 {
		return nil, apperrors.InvalidInput("quantity must be at least 1")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	product, ok := s.catalog.Get(productID)
	if !ok {
		s.logger.DebugContext(ctx, "add to cart ignored for unknown product",
			slog.String("product_id", productID),
		)
		return s.cartView(sess.cart), nil
	}

	cart := sess.cart
	if i := cart.FindLineIndex(productID); i >= 0 {
		cart.Lines[i].Quantity = clampQuantity(cart.Lines[i].Quantity+quantity, product.Stock)
	} else if q := clampQuantity(quantity, product.Stock); q >= 1 {
		cart.Lines = append(cart.Lines, domain.CartLine{ProductID: productID, Quantity: q})
	}
	cart.UpdatedAt = time.Now().UTC()

	s.persistCart(ctx, cart)
	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return s.cartView(cart), nil
}

// UpdateCartQuantity sets a cart line's quantity, clamped into [1, stock].
// An absent line or unknown product id is a no-op.
func (s *ShopService) UpdateCartQuantity(ctx context.Context, userID, productID string, quantity int) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	cart := sess.cart
	product, ok := s.catalog.Get(productID)
	if !ok {
		return s.cartView(cart), nil
	}

	i := cart.FindLineIndex(productID)
	if i < 0 {
		return s.cartView(cart), nil
	}

	clamped := quantity
	if clamped > product.Stock {
		clamped = product.Stock
	}
	if clamped < 1 {
		clamped = 1
	}

	cart.Lines[i].Quantity = clamped
	cart.UpdatedAt = time.Now().UTC()

	s.persistCart(ctx, cart)
	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart quantity updated",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("quantity", clamped),
	)

	return s.cartView(cart), nil
}

// RemoveFromCart deletes the cart line for the given product id. Removing
// an absent line is a no-op.
func (s *ShopService) RemoveFromCart(ctx context.Context, userID, productID string) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	cart := sess.cart
	if cart.RemoveLine(productID) {
		cart.UpdatedAt = time.Now().UTC()
		s.persistCart(ctx, cart)
		s.publishCartUpdated(ctx, cart)

		s.logger.InfoContext(ctx, "item removed from cart",
			slog.String("user_id", userID),
			slog.String("product_id", productID),
		)
	}

	return s.cartView(cart), nil
}

// Checkout empties the cart unconditionally. Payment and order creation are
// delegated to an external collaborator and out of scope here.
func (s *ShopService) Checkout(ctx context.Context, userID string) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.Clear()
	sess.cart.UpdatedAt = time.Now().UTC()

	if err := s.carts.Delete(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete persisted cart",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishCartCheckedOut(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.checked_out event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart checked out",
		slog.String("user_id", userID),
	)

	return s.cartView(sess.cart), nil
}

// --- Wishlist operations ---

// Wishlist returns the derived wishlist view for a user.
func (s *ShopService) Wishlist(ctx context.Context, userID string) (*WishlistView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.wishlistView(sess.wishlist), nil
}

// ToggleWishlist flips the wishlist membership of the given product id and
// reports whether the product is wishlisted afterwards. A product id absent
// from the catalog is a no-op.
func (s *ShopService) ToggleWishlist(ctx context.Context, userID, productID string) (bool, *WishlistView, error) {
	if userID == "" {
		return false, nil, apperrors.InvalidInput("user id is required")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, ok := s.catalog.Get(productID); !ok {
		s.logger.DebugContext(ctx, "wishlist toggle ignored for unknown product",
			slog.String("product_id", productID),
		)
		return false, s.wishlistView(sess.wishlist), nil
	}

	wishlisted := sess.wishlist.Toggle(productID)

	if err := s.wishlists.Save(ctx, sess.wishlist); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist wishlist",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishWishlistToggled(ctx, userID, productID, wishlisted); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish wishlist.toggled event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "wishlist toggled",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Bool("wishlisted", wishlisted),
	)

	return wishlisted, s.wishlistView(sess.wishlist), nil
}

// IsWishlisted reports whether the product is in the user's wishlist.
func (s *ShopService) IsWishlisted(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" {
		return false, apperrors.InvalidInput("user id is required")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.wishlist.Contains(productID), nil
}

// --- Filter operations ---

// Products returns the filtered catalog view under the user's current
// filter state.
func (s *ShopService) Products(ctx context.Context, userID string) (*ProductListView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.productListView(sess.filter), nil
}

// SelectCategory sets the category filter and resets the search term.
func (s *ShopService) SelectCategory(ctx context.Context, userID string, category catalog.Category) (*ProductListView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if !catalog.IsValidCategory(category) {
		return nil, apperrors.InvalidInput("unknown category: " + string(category))
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.filter.Category = category
	sess.filter.SearchTerm = ""

	s.logger.InfoContext(ctx, "category selected",
		slog.String("user_id", userID),
		slog.String("category", string(category)),
	)

	return s.productListView(sess.filter), nil
}

// SetSearchTerm sets the search filter and resets the category to All.
// A blank or whitespace-only term clears the filter.
func (s *ShopService) SetSearchTerm(ctx context.Context, userID, term string) (*ProductListView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.filter.SearchTerm = term
	sess.filter.Category = catalog.CategoryAll

	s.logger.InfoContext(ctx, "search term set",
		slog.String("user_id", userID),
		slog.String("term", term),
	)

	return s.productListView(sess.filter), nil
}

// --- Review operations ---

// ReviewsFor returns the reviews for a product and their aggregate summary.
func (s *ShopService) ReviewsFor(productID string) ([]domain.Review, domain.ReviewSummary) {
	s.reviewMu.RLock()
	defer s.reviewMu.RUnlock()

	out := make([]domain.Review, 0)
	for _, r := range s.reviewList {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, domain.Summarize(out)
}

// AddReview validates and appends a new review for a product. The rating
// must be 1 through 5 and the comment must be non-empty after trimming.
func (s *ShopService) AddReview(ctx context.Context, productID string, rating int, comment string) (*domain.Review, error) {
	if _, ok := s.catalog.Get(productID); !ok {
		return nil, apperrors.NotFound("product", productID)
	}
	if rating == 0 {
		return nil, apperrors.InvalidInput("a star rating is required")
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, apperrors.InvalidInput("a review comment is required")
	}

	review := domain.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	s.reviewMu.Lock()
	s.reviewList = append(s.reviewList, review)
	snapshot := make([]domain.Review, len(s.reviewList))
	copy(snapshot, s.reviewList)
	s.reviewMu.Unlock()

	if err := s.reviews.Save(ctx, snapshot); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist reviews",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishReviewCreated(ctx, &review); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.created event",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "review created",
		slog.String("product_id", productID),
		slog.Int("rating", rating),
	)

	return &review, nil
}

// --- Internals ---

// session returns the user's in-memory session, restoring cart and wishlist
// from the durable store on first touch. Malformed or missing blobs fall
// back to empty defaults and are never surfaced.
func (s *ShopService) session(ctx context.Context, userID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	sess := &session{
		filter: domain.NewFilterState(),
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to restore cart, starting empty",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
		cart = domain.NewCart(userID)
	}
	sess.cart = cart

	wishlist, err := s.wishlists.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to restore wishlist, starting empty",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
		wishlist = domain.NewWishlist(userID)
	}
	sess.wishlist = wishlist

	s.sessions[userID] = sess
	return sess
}

// persistCart writes the cart back to the durable store. Persistence is
// best-effort: a failure is logged and the in-memory state stands.
func (s *ShopService) persistCart(ctx context.Context, cart *domain.Cart) {
	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist cart",
			slog.String("user_id", cart.UserID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *ShopService) publishCartUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart, s.subtotalCents(cart)); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("user_id", cart.UserID),
			slog.String("error", err.Error()),
		)
	}
}

// subtotalCents computes the cart subtotal against current catalog prices.
func (s *ShopService) subtotalCents(cart *domain.Cart) int64 {
	var total int64
	for _, line := range cart.Lines {
		if product, ok := s.catalog.Get(line.ProductID); ok {
			total += product.PriceCents * int64(line.Quantity)
		}
	}
	return total
}

func (s *ShopService) cartView(cart *domain.Cart) *CartView {
	lines := make([]CartLineView, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		product, ok := s.catalog.Get(line.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, CartLineView{
			Product:        product,
			Quantity:       line.Quantity,
			LineTotalCents: product.PriceCents * int64(line.Quantity),
		})
	}
	return &CartView{
		Lines:         lines,
		ItemCount:     cart.ItemCount(),
		SubtotalCents: s.subtotalCents(cart),
	}
}

func (s *ShopService) wishlistView(wishlist *domain.Wishlist) *WishlistView {
	products := make([]catalog.Product, 0, len(wishlist.ProductIDs))
	for _, id := range wishlist.ProductIDs {
		if product, ok := s.catalog.Get(id); ok {
			products = append(products, product)
		}
	}
	ids := make([]string, len(wishlist.ProductIDs))
	copy(ids, wishlist.ProductIDs)
	return &WishlistView{
		ProductIDs: ids,
		Products:   products,
	}
}

func (s *ShopService) productListView(filter domain.FilterState) *ProductListView {
	return &ProductListView{
		Products: filter.Apply(s.catalog.List()),
		Filter:   filter,
	}
}

// clampQuantity saturates a requested quantity at the product's stock.
func clampQuantity(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}
