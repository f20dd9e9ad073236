package domain

// Wishlist is the set of product ids a user has marked for later.
// Insertion order is preserved for display stability.
type Wishlist struct {
	UserID     string   `json:"user_id"`
	ProductIDs []string `json:"product_ids"`
}

// NewWishlist creates an empty wishlist for the given user.
func NewWishlist(userID string) *Wishlist {
	return &Wishlist{
		UserID:     userID,
		ProductIDs: []string{},
	}
}

// Contains reports whether the given product id is in the wishlist.
func (w *Wishlist) Contains(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Toggle flips the membership of the given product id and reports whether
// the product is wishlisted after the call.
func (w *Wishlist) Toggle(productID string) bool {
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return false
		}
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}
