package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore/models"
)

type BookRepository interface {
	Create(book *models.Book) error
	FindAll() ([]models.Book, error)
	FindByID(id int) (*models.Book, error)
	Search(query string) ([]models.Book, error)
	UpdateTitleAndPrice(id int, title string, price int) error
	UpdateImageURL(id int, imageURL string) error
	Delete(id int) error
}

type bookRepository struct {
	db *pgxpool.Pool
}

func NewBookRepository(db *pgxpool.Pool) BookRepository {
	return &bookRepository{db: db}
}

const bookColumns = `id, title, author, isbn, price, quantity, COALESCE(image_url, ''), created_at, updated_at`

func scanBook(row pgx.Row, book *models.Book) error {
	return row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.Price,
		&book.Quantity,
		&book.ImageURL,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
}

func (r *bookRepository) Create(book *models.Book) error {
	query := `
		INSERT INTO books (title, author, isbn, price, quantity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(
		context.Background(),
		query,
		book.Title,
		book.Author,
		book.ISBN,
		book.Price,
		book.Quantity,
		book.ImageURL,
		now,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
}

func (r *bookRepository) FindAll() ([]models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var book models.Book
		if err := scanBook(rows, &book); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func (r *bookRepository) FindByID(id int) (*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	book := &models.Book{}
	err := scanBook(r.db.QueryRow(context.Background(), query, id), book)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (r *bookRepository) Search(query string) ([]models.Book, error) {
	sql := `SELECT ` + bookColumns + ` FROM books WHERE title ILIKE $1 OR author ILIKE $1 ORDER BY title`

	rows, err := r.db.Query(context.Background(), sql, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var book models.Book
		if err := scanBook(rows, &book); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func (r *bookRepository) UpdateTitleAndPrice(id int, title string, price int) error {
	query := `UPDATE books SET title = $1, price = $2, updated_at = NOW() WHERE id = $3`

	tag, err := r.db.Exec(context.Background(), query, title, price, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookRepository) UpdateImageURL(id int, imageURL string) error {
	query := `UPDATE books SET image_url = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(context.Background(), query, imageURL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookRepository) Delete(id int) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
