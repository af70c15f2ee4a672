package models

import "time"

// Review references a book by id only. The column is deliberately not a
// foreign key: reviews outlive catalog deletions.
type Review struct {
	ID        int       `json:"id"`
	BookID    int       `json:"book_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
