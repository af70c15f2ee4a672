package services

import (
	"errors"
	"log"
	"strings"

	"bookstore/libs"
	"bookstore/models"
	"bookstore/repositories"
	"bookstore/utils"
)

type BookService interface {
	List() ([]models.Book, error)
	Search(query string) ([]models.Book, error)
	Create(req models.AddBookRequest) (*models.Book, error)
	Update(id int, req models.UpdateBookRequest) (*models.Book, error)
	Delete(id int) error
	AttachCover(id int, imageURL string) error
}

type bookService struct {
	bookRepo repositories.BookRepository
}

func NewBookService(bookRepo repositories.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) List() ([]models.Book, error) {
	return s.bookRepo.FindAll()
}

func (s *bookService) Search(query string) ([]models.Book, error) {
	return s.bookRepo.Search(query)
}

func (s *bookService) Create(req models.AddBookRequest) (*models.Book, error) {
	book := &models.Book{
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
		Price:    req.Price,
		Quantity: req.Quantity,
		ImageURL: req.ImageURL,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) Update(id int, req models.UpdateBookRequest) (*models.Book, error) {
	if err := s.bookRepo.UpdateTitleAndPrice(id, req.Title, req.Price); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return s.bookRepo.FindByID(id)
}

func (s *bookService) Delete(id int) error {
	book, err := s.bookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	if err := s.bookRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	removeCover(book.ImageURL)
	return nil
}

// removeCover is best effort; a stale file never blocks a catalog delete.
func removeCover(imageURL string) {
	switch {
	case imageURL == "":
	case strings.HasPrefix(imageURL, "/uploads/"):
		utils.DeleteFile(strings.TrimPrefix(imageURL, "/uploads/"))
	case strings.Contains(imageURL, "cloudinary.com"):
		if publicID := libs.PublicIDFromURL(imageURL); publicID != "" {
			if err := libs.DeleteBookCover(publicID); err != nil {
				log.Printf("delete cover %s: %v", publicID, err)
			}
		}
	}
}

func (s *bookService) AttachCover(id int, imageURL string) error {
	if err := s.bookRepo.UpdateImageURL(id, imageURL); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}
