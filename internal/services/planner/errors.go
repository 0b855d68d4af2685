package planner

// PlannerError is a custom error type for plan input errors
type PlannerError string

// Error implements the error interface
func (e PlannerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidWeight       PlannerError = "weight must be a positive number of pounds"
	ErrInvalidTimeOrdering PlannerError = "peak and end times cannot be before the start time"
	ErrUnparseableTime     PlannerError = "time must be formatted as HH:mm"
	ErrInvalidSex          PlannerError = "sex must be male or female"
	ErrNilInput            PlannerError = "input cannot be nil"
	ErrNilPlan             PlannerError = "plan cannot be nil"
	ErrNilConfig           PlannerError = "config cannot be nil"
	ErrNilModel            PlannerError = "model cannot be nil"
	ErrNilClock            PlannerError = "clock cannot be nil"
	ErrNilUUIDGenerator    PlannerError = "UUID generator cannot be nil"
)
