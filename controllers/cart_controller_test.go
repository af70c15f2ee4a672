package controllers

import (
	"testing"

	"bookstore/models"
	"bookstore/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubCartService struct {
	entries   []models.CartEntry
	addErr    error
	updateErr error
	removeErr error
}

func (s *stubCartService) Entries(userID int) ([]models.CartEntry, error) {
	return s.entries, nil
}

func (s *stubCartService) Add(userID, bookID, quantity int) (*models.CartItem, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return &models.CartItem{ID: 1, UserID: userID, BookID: bookID, Quantity: quantity}, nil
}

func (s *stubCartService) UpdateQuantity(userID, itemID, quantity int) error {
	return s.updateErr
}

func (s *stubCartService) Remove(userID, itemID int) error {
	return s.removeErr
}

func newCartRouter(svc services.CartService) *gin.Engine {
	ctrl := NewCartController(svc)
	router := gin.New()
	authed := router.Group("/", fakeAuth(1, models.RoleCustomer))
	authed.GET("/cart", ctrl.GetCart)
	authed.POST("/cart", ctrl.AddToCart)
	authed.PATCH("/cart/:id", ctrl.UpdateCartItem)
	authed.DELETE("/cart/:id", ctrl.RemoveCartItem)
	return router
}

func TestGetCartEmpty(t *testing.T) {
	router := newCartRouter(&stubCartService{entries: []models.CartEntry{}})

	w := performRequest(router, "GET", "/cart", "")

	requireMessage(t, w, 200, "Cart retrieved")
	body := decodeBody(t, w)
	assert.Empty(t, body["data"])
}

func TestAddToCartSuccess(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	w := performRequest(router, "POST", "/cart", `{"book_id":1,"quantity":2}`)

	requireMessage(t, w, 201, "Book added to cart")
}

func TestAddToCartBookNotFoundMessage(t *testing.T) {
	router := newCartRouter(&stubCartService{addErr: services.ErrBookNotFound})

	w := performRequest(router, "POST", "/cart", `{"book_id":99,"quantity":1}`)

	requireMessage(t, w, 404, "Book not found")
}

func TestAddToCartOverQuantityMessage(t *testing.T) {
	router := newCartRouter(&stubCartService{addErr: services.ErrQuantityExceedsStock})

	w := performRequest(router, "POST", "/cart", `{"book_id":1,"quantity":100}`)

	requireMessage(t, w, 400, "Entered quantity is more than available")
}

func TestAddToCartDuplicateMessage(t *testing.T) {
	router := newCartRouter(&stubCartService{addErr: services.ErrAlreadyInCart})

	w := performRequest(router, "POST", "/cart", `{"book_id":1,"quantity":1}`)

	requireMessage(t, w, 400, "This book is already in your cart")
}

func TestAddToCartZeroQuantityRejected(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	w := performRequest(router, "POST", "/cart", `{"book_id":1,"quantity":0}`)

	requireMessage(t, w, 400, "Invalid request")
}

func TestUpdateCartItemMissingMessage(t *testing.T) {
	router := newCartRouter(&stubCartService{updateErr: services.ErrCartItemNotFound})

	w := performRequest(router, "PATCH", "/cart/42", `{"quantity":3}`)

	requireMessage(t, w, 404, "Book not found in your cart")
}

func TestUpdateCartItemBadID(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	w := performRequest(router, "PATCH", "/cart/abc", `{"quantity":3}`)

	requireMessage(t, w, 400, "Invalid book ID")
}

func TestRemoveCartItemBadID(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	w := performRequest(router, "DELETE", "/cart/abc", "")

	requireMessage(t, w, 400, "Invalid book ID")
}

func TestRemoveCartItemMissingMessage(t *testing.T) {
	router := newCartRouter(&stubCartService{removeErr: services.ErrCartItemNotFound})

	w := performRequest(router, "DELETE", "/cart/42", "")

	requireMessage(t, w, 404, "Book not found in your cart")
}

func TestRemoveCartItemSuccess(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	w := performRequest(router, "DELETE", "/cart/1", "")

	requireMessage(t, w, 200, "Book removed from cart")
}
