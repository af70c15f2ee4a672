package routes

import (
	"log"

	"bookstore/config"
	"bookstore/controllers"
	"bookstore/middleware"
	"bookstore/models"
	"bookstore/repositories"
	"bookstore/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository(config.DB)
	bookRepo := repositories.NewBookRepository(config.DB)
	cartRepo := repositories.NewCartRepository(config.DB)
	reviewRepo := repositories.NewReviewRepository(config.DB)
	otpRepo := repositories.NewOTPRepository(config.RedisClient)

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Printf("SMTP not configured, password reset emails disabled: %v", err)
	}

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, otpRepo, mailer))
	bookCtrl := controllers.NewBookController(services.NewBookService(bookRepo))
	cartCtrl := controllers.NewCartController(services.NewCartService(cartRepo, bookRepo))
	reviewCtrl := controllers.NewReviewController(services.NewReviewService(reviewRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/admin/login", authCtrl.AdminLogin)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	router.POST("/auth/reset-password", authCtrl.ResetPassword)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)

		auth.GET("/books", bookCtrl.GetAllBooks)
		auth.GET("/books/search", bookCtrl.SearchBooks)
		auth.GET("/books/:id/reviews", reviewCtrl.GetBookReviews)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddToCart)
		auth.PATCH("/cart/:id", cartCtrl.UpdateCartItem)
		auth.DELETE("/cart/:id", cartCtrl.RemoveCartItem)

		auth.POST("/reviews", reviewCtrl.AddReview)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/books", bookCtrl.GetAllBooks)
		admin.POST("/books", bookCtrl.CreateBook)
		admin.PATCH("/books/:id", bookCtrl.UpdateBook)
		admin.DELETE("/books/:id", bookCtrl.DeleteBook)
		admin.POST("/books/:id/cover", bookCtrl.UploadBookCover)
	}

	router.Static("/uploads", "./uploads")
}
