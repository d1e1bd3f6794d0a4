package errors

import "fmt"

var (
	ErrStoreUnavailable  = fmt.Errorf("count store unavailable")
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrNegativeReset     = fmt.Errorf("reset value must not be negative")
	ErrCoordinatorClosed = fmt.Errorf("coordinator is not running")
)
