package mention

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

// ListInput holds the parameters for the flat mention view.
type ListInput struct {
	SpaceID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.SpaceID == uuid.Nil {
		return domain.NewValidationError("space_id", "required")
	}
	return nil
}

// GroupedInSpaceInput holds the parameters for the member-scoped grouped view.
type GroupedInSpaceInput struct {
	SpaceID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GroupedInSpaceInput) Validate() error {
	if i.SpaceID == uuid.Nil {
		return domain.NewValidationError("space_id", "required")
	}
	return nil
}

// DismissInput holds the parameters for bulk dismissal.
type DismissInput struct {
	MessageID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DismissInput) Validate() error {
	if i.MessageID == uuid.Nil {
		return domain.NewValidationError("message_id", "required")
	}
	return nil
}
