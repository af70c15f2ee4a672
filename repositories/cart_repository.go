package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore/models"
)

type CartRepository interface {
	FindByUser(userID int) ([]models.CartEntry, error)
	FindByUserAndBook(userID, bookID int) (*models.CartItem, error)
	Insert(item *models.CartItem) error
	UpdateQuantity(userID, itemID, quantity int) error
	Delete(userID, itemID int) error
}

type cartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByUser(userID int) ([]models.CartEntry, error) {
	query := `
		SELECT
			ci.id,
			ci.book_id,
			b.title,
			b.author,
			b.isbn,
			b.price,
			ci.quantity,
			b.quantity AS available,
			COALESCE(b.image_url, '')
		FROM cart_items ci
		JOIN books b ON ci.book_id = b.id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at
	`

	rows, err := r.db.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.CartEntry{}
	for rows.Next() {
		var e models.CartEntry
		if err := rows.Scan(
			&e.ID,
			&e.BookID,
			&e.Title,
			&e.Author,
			&e.ISBN,
			&e.Price,
			&e.Quantity,
			&e.Available,
			&e.ImageURL,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *cartRepository) FindByUserAndBook(userID, bookID int) (*models.CartItem, error) {
	query := `
		SELECT id, user_id, book_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1 AND book_id = $2
	`

	item := &models.CartItem{}
	err := r.db.QueryRow(context.Background(), query, userID, bookID).Scan(
		&item.ID,
		&item.UserID,
		&item.BookID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *cartRepository) Insert(item *models.CartItem) error {
	query := `
		INSERT INTO cart_items (user_id, book_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRow(
		context.Background(),
		query,
		item.UserID,
		item.BookID,
		item.Quantity,
		now,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)

	// The unique (user_id, book_id) constraint backstops the duplicate
	// check when two adds for the same book race.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

func (r *cartRepository) UpdateQuantity(userID, itemID, quantity int) error {
	query := `UPDATE cart_items SET quantity = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`

	tag, err := r.db.Exec(context.Background(), query, quantity, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cartRepository) Delete(userID, itemID int) error {
	query := `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(context.Background(), query, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
