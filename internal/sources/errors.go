package sources

import (
	"errors"
	"fmt"
)

var (
	ErrMassiveIncidentNotFound = errors.New("massive incident not found")
	ErrInvalidIncidentID       = errors.New("invalid incident id")
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend %s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("backend %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}
