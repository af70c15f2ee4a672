package models

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" form:"email" binding:"required,email"`
	OTP         string `json:"otp" form:"otp" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=6"`
}

type AddBookRequest struct {
	Title    string `json:"title" form:"title" binding:"required"`
	Author   string `json:"author" form:"author" binding:"required"`
	ISBN     string `json:"isbn" form:"isbn" binding:"required"`
	Price    int    `json:"price" form:"price" binding:"required"`
	Quantity int    `json:"quantity" form:"quantity" binding:"required"`
	ImageURL string `json:"image_url" form:"image_url"`
}

// UpdateBookRequest only carries the two fields the update endpoint
// touches; everything else on the book row stays as is.
type UpdateBookRequest struct {
	Title string `json:"title" form:"title" binding:"required"`
	Price int    `json:"price" form:"price" binding:"required"`
}

type AddToCartRequest struct {
	BookID   int `json:"book_id" form:"book_id" binding:"required"`
	Quantity int `json:"quantity" form:"quantity" binding:"required,min=1"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" form:"quantity" binding:"required,min=1"`
}

type AddReviewRequest struct {
	BookID int    `json:"book_id" form:"book_id" binding:"required"`
	Text   string `json:"text" form:"text"`
}
