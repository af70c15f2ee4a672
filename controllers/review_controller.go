package controllers

import (
	"errors"
	"log"
	"strconv"

	"bookstore/models"
	"bookstore/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService services.ReviewService
}

func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// AddReview godoc
// @Summary Add a review
// @Description Add a review for a book
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddReviewRequest true "Add Review Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /reviews [post]
func (ctrl *ReviewController) AddReview(c *gin.Context) {
	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	review, err := ctrl.reviewService.Add(req.BookID, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyReview) {
			c.JSON(400, gin.H{"success": false, "message": "Review text cannot be empty"})
			return
		}
		log.Printf("add review failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Review added", "data": review})
}

// GetBookReviews godoc
// @Summary Get book reviews
// @Description Get all reviews for a book, newest first
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /books/{id}/reviews [get]
func (ctrl *ReviewController) GetBookReviews(c *gin.Context) {
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid book ID"})
		return
	}

	reviews, err := ctrl.reviewService.ForBook(bookID)
	if err != nil {
		log.Printf("get reviews failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Reviews retrieved", "data": reviews})
}
