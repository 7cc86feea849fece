package orchestrators

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitlab/internal/adapters/backend"
	checkinStore "fitlab/internal/adapters/backend/checkin"
	"fitlab/internal/application/events"
	domain "fitlab/internal/domain/checkin"
)

// RegisterCheckInInput carries the editor fields for a check-in.
type RegisterCheckInInput struct {
	AssinaturaID int64
}

// RegisterCheckInDeps holds dependencies for RegisterCheckIn.
type RegisterCheckInDeps struct {
	CheckInStore checkinStore.Store
	Bus          *events.Bus
}

// ExecuteRegisterCheckIn validates the input, records the check-in and
// publishes the event that refreshes the dashboard.
// POST: A non-empty field map means nothing was recorded
// POST: The event is published only after the backend accepted the check-in
func ExecuteRegisterCheckIn(ctx context.Context, input RegisterCheckInInput, deps RegisterCheckInDeps) (map[string]string, error) {
	value := domain.CheckIn{AssinaturaID: input.AssinaturaID}
	if fieldErrs := value.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	if err := deps.CheckInStore.Create(ctx, input.AssinaturaID); err != nil {
		var vErr *backend.ValidationError
		if errors.As(err, &vErr) {
			return vErr.Fields, nil
		}
		// The backend reports a bad subscription choice as a plain message
		// naming the field. Surface it next to the select, not as a banner.
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && strings.Contains(apiErr.Message, "assinatura_id") {
			return map[string]string{"assinatura_id": apiErr.Message}, nil
		}
		return nil, err
	}

	if deps.Bus != nil {
		deps.Bus.Publish(events.CheckInRecorded{
			AssinaturaID: input.AssinaturaID,
			At:           time.Now(),
		})
	}
	return nil, nil
}
