package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPRepository stores short-lived password-reset codes.
type OTPRepository interface {
	Save(email, code string, ttl time.Duration) error
	Verify(email, code string) (bool, error)
	Delete(email string) error
}

type otpRepository struct {
	client *redis.Client
}

func NewOTPRepository(client *redis.Client) OTPRepository {
	return &otpRepository{client: client}
}

func otpKey(email string) string {
	return "password_reset_otp:" + email
}

func (r *otpRepository) Save(email, code string, ttl time.Duration) error {
	if r.client == nil {
		return ErrUnavailable
	}
	return r.client.Set(context.Background(), otpKey(email), code, ttl).Err()
}

func (r *otpRepository) Verify(email, code string) (bool, error) {
	if r.client == nil {
		return false, ErrUnavailable
	}
	stored, err := r.client.Get(context.Background(), otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == code, nil
}

func (r *otpRepository) Delete(email string) error {
	if r.client == nil {
		return ErrUnavailable
	}
	return r.client.Del(context.Background(), otpKey(email)).Err()
}
