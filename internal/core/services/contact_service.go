package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

const validationErrorCode = "VALIDATION_ERROR"

// ContactService fronts the contact form: per-IP rate limiting, field
// validation, then the notification email.
type ContactService struct {
	limiter  ports.RateLimiter
	mailer   ports.Mailer
	validate *validator.Validate
	logger   *zap.Logger
}

func NewContactService(limiter ports.RateLimiter, mailer ports.Mailer, logger *zap.Logger) (*ContactService, error) {
	if limiter == nil {
		return nil, fmt.Errorf("rate limiter is required")
	}
	if mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ContactService{
		limiter:  limiter,
		mailer:   mailer,
		validate: validator.New(),
		logger:   logger,
	}, nil
}

// Submit admits, validates, and forwards one submission. The rate limit is
// consumed before validation, so malformed submissions still count against
// the sender.
func (s *ContactService) Submit(ctx context.Context, clientIP string, msg domain.ContactMessage) (string, error) {
	if _, err := s.limiter.Allow(ctx, clientIP); err != nil {
		if domain.IsRateLimitedError(err) {
			s.logger.Warn("contact rate limit exceeded", zap.String("ip", clientIP))
			return "", err
		}
		s.logger.Error("rate limiter failed", zap.Error(err))
		return "", fmt.Errorf("admission check: %w", domain.ErrUpstream)
	}

	if err := s.validate.Struct(msg); err != nil {
		ve := &domain.ValidationError{
			Message: "Validation failed",
			Code:    validationErrorCode,
			Details: validationDetails(err),
		}
		return "", ve
	}

	emailID, err := s.mailer.SendContactNotification(ctx, msg)
	if err != nil {
		s.logger.Error("failed to send contact notification", zap.Error(err))
		return "", fmt.Errorf("sending notification: %w", domain.ErrUpstream)
	}

	s.logger.Info("contact form submitted",
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
		zap.String("emailId", emailID))

	return emailID, nil
}

func validationDetails(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fieldMessage(fe))
	}
	return details
}

// fieldMessage mirrors the public form's error copy.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		return "Please enter a valid email address"
	case "Phone":
		return "Phone number must be exactly 10 digits"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
