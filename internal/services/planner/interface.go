package planner

import "context"

// Service defines the interface for planning a drinking session
type Service interface {
	// CreatePlan validates raw session input and computes its schedule and timeline
	CreatePlan(ctx context.Context, input *CreatePlanInput) (*CreatePlanOutput, error)

	// GetStatus reports where a plan stands at a point in time
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)
}
