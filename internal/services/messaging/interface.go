package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetDrinkDueMessage returns a message for when a scheduled drink comes due
	GetDrinkDueMessage(ctx context.Context, input *GetDrinkDueMessageInput) (*GetDrinkDueMessageOutput, error)

	// GetPlanSummaryMessage returns a message describing a freshly computed plan
	GetPlanSummaryMessage(ctx context.Context, input *GetPlanSummaryMessageInput) (*GetPlanSummaryMessageOutput, error)

	// GetStatusMessage returns a one-line comment on where the session stands
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
