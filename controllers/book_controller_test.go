package controllers

import (
	"testing"

	"bookstore/models"
	"bookstore/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookService struct {
	books     []models.Book
	createErr error
	updateErr error
	deleteErr error
	coverErr  error
}

func (s *stubBookService) List() ([]models.Book, error) {
	return s.books, nil
}

func (s *stubBookService) Search(query string) ([]models.Book, error) {
	matched := []models.Book{}
	for _, b := range s.books {
		if containsFold(b.Title, query) || containsFold(b.Author, query) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (s *stubBookService) Create(req models.AddBookRequest) (*models.Book, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Book{ID: 1, Title: req.Title, Author: req.Author, ISBN: req.ISBN, Price: req.Price, Quantity: req.Quantity}, nil
}

func (s *stubBookService) Update(id int, req models.UpdateBookRequest) (*models.Book, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &models.Book{ID: id, Title: req.Title, Price: req.Price}, nil
}

func (s *stubBookService) Delete(id int) error {
	return s.deleteErr
}

func (s *stubBookService) AttachCover(id int, imageURL string) error {
	return s.coverErr
}

func newBookRouter(svc services.BookService) *gin.Engine {
	ctrl := NewBookController(svc)
	router := gin.New()
	authed := router.Group("/", fakeAuth(1, models.RoleCustomer))
	authed.GET("/books", ctrl.GetAllBooks)
	authed.GET("/books/search", ctrl.SearchBooks)
	admin := router.Group("/admin", fakeAuth(2, models.RoleAdmin))
	admin.POST("/books", ctrl.CreateBook)
	admin.PATCH("/books/:id", ctrl.UpdateBook)
	admin.DELETE("/books/:id", ctrl.DeleteBook)
	return router
}

func TestGetAllBooks(t *testing.T) {
	router := newBookRouter(&stubBookService{books: []models.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert"},
		{ID: 2, Title: "Emma", Author: "Jane Austen"},
	}})

	w := performRequest(router, "GET", "/books", "")

	requireMessage(t, w, 200, "Books retrieved")
	body := decodeBody(t, w)
	require.Len(t, body["data"], 2)
}

func TestSearchBooksNoMatch(t *testing.T) {
	router := newBookRouter(&stubBookService{books: []models.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert"},
	}})

	w := performRequest(router, "GET", "/books/search?query=tolkien", "")

	requireMessage(t, w, 200, "Books retrieved")
	body := decodeBody(t, w)
	assert.Empty(t, body["data"])
}

func TestCreateBook(t *testing.T) {
	router := newBookRouter(&stubBookService{})

	w := performRequest(router, "POST", "/admin/books",
		`{"title":"Dune","author":"Frank Herbert","isbn":"9780441172719","price":12,"quantity":5}`)

	requireMessage(t, w, 201, "Book added successfully")
}

func TestCreateBookMissingFields(t *testing.T) {
	router := newBookRouter(&stubBookService{})

	w := performRequest(router, "POST", "/admin/books", `{"title":"Dune"}`)

	requireMessage(t, w, 400, "Invalid request")
}

func TestUpdateBookInvalidID(t *testing.T) {
	router := newBookRouter(&stubBookService{})

	w := performRequest(router, "PATCH", "/admin/books/abc", `{"title":"Dune","price":15}`)

	requireMessage(t, w, 400, "Invalid book ID")
}

func TestUpdateBookNotFoundMessage(t *testing.T) {
	router := newBookRouter(&stubBookService{updateErr: services.ErrBookNotFound})

	w := performRequest(router, "PATCH", "/admin/books/42", `{"title":"Ghost","price":1}`)

	requireMessage(t, w, 404, "Book not found")
}

func TestDeleteBookNotFoundMessage(t *testing.T) {
	router := newBookRouter(&stubBookService{deleteErr: services.ErrBookNotFound})

	w := performRequest(router, "DELETE", "/admin/books/42", "")

	requireMessage(t, w, 404, "Book not found")
}

func TestDeleteBookSuccess(t *testing.T) {
	router := newBookRouter(&stubBookService{})

	w := performRequest(router, "DELETE", "/admin/books/1", "")

	requireMessage(t, w, 200, "Book deleted successfully")
}
