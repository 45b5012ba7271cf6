package models

const (
	RatingsCollection = "ratings"

	RatingReviewerField = "reviewerEmail"
)
