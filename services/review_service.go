package services

import (
	"strings"

	"bookstore/models"
	"bookstore/repositories"
)

type ReviewService interface {
	Add(bookID int, text string) (*models.Review, error)
	ForBook(bookID int) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) Add(bookID int, text string) (*models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReview
	}

	review := &models.Review{
		BookID: bookID,
		Text:   text,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ForBook(bookID int) ([]models.Review, error) {
	return s.reviewRepo.FindByBook(bookID)
}
