package models

import "time"

type CartItem struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	BookID    int       `json:"book_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartEntry is a cart item joined with its catalog book, the shape the
// cart listing returns.
type CartEntry struct {
	ID        int    `json:"id"`
	BookID    int    `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Available int    `json:"available"`
	ImageURL  string `json:"image_url"`
}
