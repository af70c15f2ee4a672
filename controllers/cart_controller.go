package controllers

import (
	"errors"
	"log"
	"strconv"

	"bookstore/models"
	"bookstore/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current user's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	entries, err := ctrl.cartService.Entries(userID)
	if err != nil {
		log.Printf("get cart failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": entries})
}

// AddToCart godoc
// @Summary Add book to cart
// @Description Add a book to the current user's cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Add To Cart Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item, err := ctrl.cartService.Add(userID, req.BookID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Book not found"})
		case errors.Is(err, services.ErrQuantityExceedsStock):
			c.JSON(400, gin.H{"success": false, "message": "Entered quantity is more than available"})
		case errors.Is(err, services.ErrAlreadyInCart):
			c.JSON(400, gin.H{"success": false, "message": "This book is already in your cart"})
		default:
			log.Printf("add to cart failed: %v", err)
			c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		}
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Book added to cart", "data": item})
}

// UpdateCartItem godoc
// @Summary Update cart quantity
// @Description Change the quantity of a cart item
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body models.UpdateCartRequest true "Update Cart Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id} [patch]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid book ID"})
		return
	}

	var req models.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.cartService.UpdateQuantity(userID, itemID, req.Quantity); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Book not found in your cart"})
			return
		}
		log.Printf("update cart failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart updated"})
}

// RemoveCartItem godoc
// @Summary Remove cart item
// @Description Remove a book from the current user's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id} [delete]
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid book ID"})
		return
	}

	if err := ctrl.cartService.Remove(userID, itemID); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Book not found in your cart"})
			return
		}
		log.Printf("remove from cart failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Book removed from cart"})
}
