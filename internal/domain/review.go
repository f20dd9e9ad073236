package domain

import "time"

// Review represents a product review. Reviews are append-only; there is no
// edit or delete path.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewSummary contains aggregate review statistics for a product.
type ReviewSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalCount    int     `json:"total_count"`
}

// Summarize computes the aggregate summary of the given reviews.
func Summarize(reviews []Review) ReviewSummary {
	if len(reviews) == 0 {
		return ReviewSummary{}
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return ReviewSummary{
		AverageRating: float64(sum) / float64(len(reviews)),
		TotalCount:    len(reviews),
	}
}
