package refreshers

import (
	"fmt"

	"netops-dashboard/internal/shared/svcerrors"
)

const (
	codeStaleSnapshot = "REF_1000"

	codeInternalSampleUnavailable = "REF_9000"
	codeUnavailableCanceled       = "REF_9001"
)

// errStaleSnapshot returns an error when a newer refresh installed its snapshot first.
func errStaleSnapshot(sequence, installed uint64) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeStaleSnapshot,
		"a newer snapshot is already installed", fmt.Errorf("snapshot %d discarded, %d installed", sequence, installed))
}

func errSampleUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSampleUnavailable, fmt.Errorf("fallback dataset unavailable: %w", cause))
}

func errRefreshCanceled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeUnavailableCanceled, "refresh canceled", cause)
}
