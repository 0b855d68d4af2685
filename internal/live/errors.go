package live

// DriverError is a live driver error
type DriverError string

func (e DriverError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     = DriverError("config cannot be nil")
	ErrNilClock      = DriverError("clock cannot be nil")
	ErrNilPlan       = DriverError("plan cannot be nil")
	ErrNilPresenter  = DriverError("presenter cannot be nil")
	ErrNegativeTicks = DriverError("max ticks cannot be negative")
)
