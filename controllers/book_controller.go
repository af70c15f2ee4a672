package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"bookstore/config"
	"bookstore/libs"
	"bookstore/models"
	"bookstore/services"
	"bookstore/utils"

	"github.com/gin-gonic/gin"
)

type BookController struct {
	bookService services.BookService
}

func NewBookController(bookService services.BookService) *BookController {
	return &BookController{bookService: bookService}
}

const bookListCacheKey = "books_list"

func invalidateBookCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, bookListCacheKey+"*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// GetAllBooks godoc
// @Summary Get all books
// @Description Get the full book catalog
// @Tags Books
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /books [get]
func (ctrl *BookController) GetAllBooks(c *gin.Context) {
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, bookListCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	books, err := ctrl.bookService.List()
	if err != nil {
		log.Printf("list books failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	response := gin.H{"success": true, "message": "Books retrieved", "data": books}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, bookListCacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// SearchBooks godoc
// @Summary Search books
// @Description Search the catalog by title or author
// @Tags Books
// @Security BearerAuth
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} models.Response
// @Router /books/search [get]
func (ctrl *BookController) SearchBooks(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	books, err := ctrl.bookService.Search(query)
	if err != nil {
		log.Printf("search books failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Books retrieved", "data": books})
}

// CreateBook godoc
// @Summary Add a book
// @Description Add a new book to the catalog (Admin)
// @Tags Admin - Books
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddBookRequest true "Add Book Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/books [post]
func (ctrl *BookController) CreateBook(c *gin.Context) {
	var req models.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	book, err := ctrl.bookService.Create(req)
	if err != nil {
		log.Printf("create book failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	invalidateBookCache()

	c.JSON(201, gin.H{"success": true, "message": "Book added successfully", "data": book})
}

// UpdateBook godoc
// @Summary Update a book
// @Description Update a book's title and price (Admin)
// @Tags Admin - Books
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body models.UpdateBookRequest true "Update Book Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/books/{id} [patch]
func (ctrl *BookController) UpdateBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid book ID"})
		return
	}

	var req models.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	book, err := ctrl.bookService.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Book not found"})
			return
		}
		log.Printf("update book failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	invalidateBookCache()

	c.JSON(200, gin.H{"success": true, "message": "Book updated successfully", "data": book})
}

// DeleteBook godoc
// @Summary Delete a book
// @Description Remove a book from the catalog (Admin)
// @Tags Admin - Books
// @Security BearerAuth
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/books/{id} [delete]
func (ctrl *BookController) DeleteBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid book ID"})
		return
	}

	if err := ctrl.bookService.Delete(id); err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Book not found"})
			return
		}
		log.Printf("delete book failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	invalidateBookCache()

	c.JSON(200, gin.H{"success": true, "message": "Book deleted successfully"})
}

// UploadBookCover godoc
// @Summary Upload book cover
// @Description Upload a cover image for a book (Admin)
// @Tags Admin - Books
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Book ID"
// @Param cover formData file true "Cover image"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/books/{id}/cover [post]
func (ctrl *BookController) UploadBookCover(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid book ID"})
		return
	}

	file, err := c.FormFile("cover")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Cover image required"})
		return
	}

	localPath, err := utils.UploadFile(c, file, "covers")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	imageURL := "/uploads/" + filepath.ToSlash(localPath)
	fullPath := filepath.Join(config.AppConfig.UploadDir, localPath)
	if cloudURL, err := libs.UploadBookCover(fullPath); err == nil {
		imageURL = cloudURL
		utils.DeleteFile(localPath)
	}

	if err := ctrl.bookService.AttachCover(id, imageURL); err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Book not found"})
			return
		}
		log.Printf("attach cover failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	invalidateBookCache()

	c.JSON(200, gin.H{"success": true, "message": "Cover uploaded", "data": gin.H{"image_url": imageURL}})
}
