package controllers

import (
	"errors"
	"log"

	"bookstore/models"
	"bookstore/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.authService.Register(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailRegistered) {
			c.JSON(400, gin.H{"success": false, "message": "Error: Email ID is already registered"})
			return
		}
		log.Printf("register failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Registration successful", "data": result})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.authService.Login(req)
	if err != nil {
		ctrl.respondLoginError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Login successful", "data": result})
}

// AdminLogin godoc
// @Summary Admin login
// @Description Login with an admin account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/admin/login [post]
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.authService.AdminLogin(req)
	if err != nil {
		ctrl.respondLoginError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Login successful", "data": result})
}

func (ctrl *AuthController) respondLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(401, gin.H{"success": false, "message": "User does not exist."})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(401, gin.H{"success": false, "message": "Invalid email and password"})
	default:
		log.Printf("login failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
	}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Get current user profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := ctrl.authService.Profile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "User does not exist."})
			return
		}
		log.Printf("get profile failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved", "data": user})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update the current user's name and password
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Update Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.authService.UpdateProfile(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameAndPasswordRequired):
			c.JSON(400, gin.H{"success": false, "message": "Name and password are required"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(404, gin.H{"success": false, "message": "User does not exist."})
		default:
			log.Printf("update profile failed: %v", err)
			c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile updated", "data": user})
}

// ForgotPassword godoc
// @Summary Request password reset
// @Description Send a one-time password reset code to the given email
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} models.Response
// @Failure 503 {object} models.ErrorResponse
// @Router /auth/forgot-password [post]
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.authService.ForgotPassword(req.Email); err != nil {
		if errors.Is(err, services.ErrResetUnavailable) {
			c.JSON(503, gin.H{"success": false, "message": "Password reset is temporarily unavailable"})
			return
		}
		log.Printf("forgot password failed: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "If the email is registered, a reset code has been sent"})
}

// ResetPassword godoc
// @Summary Reset password
// @Description Reset password using the emailed one-time code
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/reset-password [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.authService.ResetPassword(req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOTP):
			c.JSON(400, gin.H{"success": false, "message": "Invalid or expired reset code"})
		case errors.Is(err, services.ErrResetUnavailable):
			c.JSON(503, gin.H{"success": false, "message": "Password reset is temporarily unavailable"})
		default:
			log.Printf("reset password failed: %v", err)
			c.JSON(500, gin.H{"success": false, "message": "Internal Server Error"})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Password has been reset"})
}
