package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"bookstore/models"
	"bookstore/repositories"
	"bookstore/utils"
)

const otpTTL = 10 * time.Minute

type AuthService interface {
	Register(req models.RegisterRequest) (*models.LoginResponse, error)
	Login(req models.LoginRequest) (*models.LoginResponse, error)
	AdminLogin(req models.LoginRequest) (*models.LoginResponse, error)
	Profile(userID int) (*models.User, error)
	UpdateProfile(userID int, req models.UpdateProfileRequest) (*models.User, error)
	ForgotPassword(email string) error
	ResetPassword(req models.ResetPasswordRequest) error
}

type authService struct {
	userRepo repositories.UserRepository
	otpRepo  repositories.OTPRepository
	mailer   *models.EmailService
}

func NewAuthService(userRepo repositories.UserRepository, otpRepo repositories.OTPRepository, mailer *models.EmailService) AuthService {
	return &authService{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		mailer:   mailer,
	}
}

func (s *authService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailRegistered
		}
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

// authenticate is the single password-verification path shared by regular
// and admin login.
func (s *authService) authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(user.Password, password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.authenticate(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *authService) AdminLogin(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.authenticate(req.Email, req.Password)
	if err != nil {
		// An unknown admin email reads the same as a bad password.
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *authService) Profile(userID int) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID int, req models.UpdateProfileRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	password := req.Password
	if name == "" || password == "" {
		return nil, ErrNameAndPasswordRequired
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateNameAndPassword(userID, name, hashedPassword); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.Profile(userID)
}

func (s *authService) ForgotPassword(email string) error {
	if s.mailer == nil || s.otpRepo == nil {
		return ErrResetUnavailable
	}

	if _, err := s.userRepo.FindByEmail(email); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Respond as if the mail was sent so the endpoint cannot be
			// used to probe registered addresses.
			log.Printf("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	if err := s.otpRepo.Save(email, otp, otpTTL); err != nil {
		if errors.Is(err, repositories.ErrUnavailable) {
			return ErrResetUnavailable
		}
		return err
	}

	return s.mailer.SendOTPEmail(email, otp)
}

func (s *authService) ResetPassword(req models.ResetPasswordRequest) error {
	if s.otpRepo == nil {
		return ErrResetUnavailable
	}

	valid, err := s.otpRepo.Verify(req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, repositories.ErrUnavailable) {
			return ErrResetUnavailable
		}
		return err
	}
	if !valid {
		return ErrInvalidOTP
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordByEmail(req.Email, hashedPassword); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvalidOTP
		}
		return err
	}

	if err := s.otpRepo.Delete(req.Email); err != nil {
		log.Printf("Failed to delete used OTP: %v", err)
	}
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
