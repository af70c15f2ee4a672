package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore/models"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByBook(bookID int) ([]models.Review, error)
}

type reviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	query := `
		INSERT INTO reviews (book_id, text, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(
		context.Background(),
		query,
		review.BookID,
		review.Text,
		time.Now(),
	).Scan(&review.ID, &review.CreatedAt)
}

func (r *reviewRepository) FindByBook(bookID int) ([]models.Review, error) {
	query := `SELECT id, book_id, text, created_at FROM reviews WHERE book_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(context.Background(), query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.ID, &review.BookID, &review.Text, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
