package services

import (
	"errors"

	"bookstore/models"
	"bookstore/repositories"
)

type CartService interface {
	Entries(userID int) ([]models.CartEntry, error)
	Add(userID, bookID, quantity int) (*models.CartItem, error)
	UpdateQuantity(userID, itemID, quantity int) error
	Remove(userID, itemID int) error
}

type cartService struct {
	cartRepo repositories.CartRepository
	bookRepo repositories.BookRepository
}

func NewCartService(cartRepo repositories.CartRepository, bookRepo repositories.BookRepository) CartService {
	return &cartService{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

func (s *cartService) Entries(userID int) ([]models.CartEntry, error) {
	return s.cartRepo.FindByUser(userID)
}

// Add validates against the catalog before touching the cart: the book
// must exist, the requested quantity must not exceed what the catalog
// holds, and the book must not already sit in this user's cart.
func (s *cartService) Add(userID, bookID, quantity int) (*models.CartItem, error) {
	book, err := s.bookRepo.FindByID(bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if quantity > book.Quantity {
		return nil, ErrQuantityExceedsStock
	}

	existing, err := s.cartRepo.FindByUserAndBook(userID, bookID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyInCart
	}

	item := &models.CartItem{
		UserID:   userID,
		BookID:   bookID,
		Quantity: quantity,
	}
	if err := s.cartRepo.Insert(item); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyInCart
		}
		return nil, err
	}
	return item, nil
}

// UpdateQuantity does not re-validate against the catalog quantity; only
// the add path checks availability.
func (s *cartService) UpdateQuantity(userID, itemID, quantity int) error {
	if err := s.cartRepo.UpdateQuantity(userID, itemID, quantity); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	return nil
}

func (s *cartService) Remove(userID, itemID int) error {
	if err := s.cartRepo.Delete(userID, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	return nil
}
