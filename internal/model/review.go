package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is one public testimonial. Created via the site's review dialog,
// read newest-first by the carousel, never updated or deleted.
type Review struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Rating    int       `db:"rating" json:"rating"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateReviewRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text   string `json:"text" validate:"required,min=1,max=1000"`
}
