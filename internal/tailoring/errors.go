package tailoring

import "fmt"

// ServiceError represents a failed or unusable completion call
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tailoring service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("tailoring service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
