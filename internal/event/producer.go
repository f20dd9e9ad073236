package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/oakmart/storefront/pkg/kafka"

	"github.com/oakmart/storefront/internal/domain"
)

// Kafka topic constants for storefront domain events.
const (
	TopicCartUpdated      = "storefront.cart.updated"
	TopicCartCheckedOut   = "storefront.cart.checked_out"
	TopicWishlistToggled  = "storefront.wishlist.toggled"
	TopicReviewCreated    = "storefront.review.created"
)

// Aggregate type constants.
const (
	AggregateTypeCart     = "cart"
	AggregateTypeWishlist = "wishlist"
	AggregateTypeReview   = "review"
)

// Source identifier for events originating from this service.
const Source = "storefront"

// Publisher abstracts the Kafka producer so tests can substitute a fake.
// *pkgkafka.Producer satisfies it.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	UserID        string            `json:"user_id"`
	Lines         []domain.CartLine `json:"lines"`
	ItemCount     int               `json:"item_count"`
	SubtotalCents int64             `json:"subtotal_cents"`
}

// CartCheckedOutData is the payload for a cart.checked_out event.
type CartCheckedOutData struct {
	UserID string `json:"user_id"`
}

// WishlistToggledData is the payload for a wishlist.toggled event.
type WishlistToggledData struct {
	UserID     string `json:"user_id"`
	ProductID  string `json:"product_id"`
	Wishlisted bool   `json:"wishlisted"`
}

// ReviewCreatedData is the payload for a review.created event.
type ReviewCreatedData struct {
	ReviewID  string `json:"review_id"`
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
}

// Producer publishes storefront domain events.
type Producer struct {
	pub    Publisher
	logger *slog.Logger
}

// NewProducer creates a new event producer. A nil publisher disables
// publishing entirely.
func NewProducer(pub Publisher, logger *slog.Logger) *Producer {
	return &Producer{
		pub:    pub,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart, subtotalCents int64) error {
	data := CartUpdatedData{
		UserID:        cart.UserID,
		Lines:         cart.Lines,
		ItemCount:     cart.ItemCount(),
		SubtotalCents: subtotalCents,
	}
	return p.publish(ctx, TopicCartUpdated, cart.UserID, AggregateTypeCart, data)
}

// PublishCartCheckedOut publishes a cart.checked_out event.
func (p *Producer) PublishCartCheckedOut(ctx context.Context, userID string) error {
	return p.publish(ctx, TopicCartCheckedOut, userID, AggregateTypeCart, CartCheckedOutData{UserID: userID})
}

// PublishWishlistToggled publishes a wishlist.toggled event.
func (p *Producer) PublishWishlistToggled(ctx context.Context, userID, productID string, wishlisted bool) error {
	data := WishlistToggledData{
		UserID:     userID,
		ProductID:  productID,
		Wishlisted: wishlisted,
	}
	return p.publish(ctx, TopicWishlistToggled, userID, AggregateTypeWishlist, data)
}

// PublishReviewCreated publishes a review.created event.
func (p *Producer) PublishReviewCreated(ctx context.Context, review *domain.Review) error {
	data := ReviewCreatedData{
		ReviewID:  review.ID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
	}
	return p.publish(ctx, TopicReviewCreated, review.ProductID, AggregateTypeReview, data)
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	if p.pub == nil {
		return nil
	}

	event, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, Source, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	if err := p.pub.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)

	return nil
}
