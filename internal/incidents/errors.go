package incidents

import (
	"netops-dashboard/internal/shared/svcerrors"
)

const (
	codeInvalidIncidentID      = "INC_1000"
	codeMassiveIncidentMissing = "INC_1001"

	codeUnavailableBackend = "INC_9000"
)

func errInvalidIncidentID(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidIncidentID, "incident id must be a positive integer", cause)
}

// errMassiveIncidentMissing returns an error when no open massive incident has the id.
func errMassiveIncidentMissing(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeMassiveIncidentMissing, "massive incident not found or already closed", cause)
}

func errBackendUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeUnavailableBackend, "incident backend is unavailable", cause)
}
