package message

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

// CreateInput holds the parameters for creating a top-level message.
type CreateInput struct {
	SpaceID uuid.UUID
	Body    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.SpaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "space_id", Message: "required"})
	}

	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(body) > MaxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateReplyInput holds the parameters for creating a reply.
type CreateReplyInput struct {
	MessageID uuid.UUID
	Body      string
}

// Validate checks all fields and collects all errors.
func (i CreateReplyInput) Validate() error {
	var errs []domain.FieldError

	if i.MessageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "message_id", Message: "required"})
	}

	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(body) > MaxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing messages in a space.
type ListInput struct {
	SpaceID uuid.UUID
	Limit   int
	Offset  int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.SpaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "space_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
