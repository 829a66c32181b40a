package aggregators

import (
	"errors"
	"fmt"

	"netops-dashboard/internal/shared/svcerrors"
)

const (
	codeInvalidGranularity   = "AGG_1000"
	codeInvalidDrilldownView = "AGG_1001"
	codeInvalidDrilldownCell = "AGG_1002"
	codeSLAMonthNotFound     = "AGG_1003"
	codeInvalidIncidentType  = "AGG_1004"

	codeUnavailableSnapshotNotReady = "AGG_9000"
)

var errSnapshotNotReady = errors.New("no snapshot installed yet")

func errInvalidGranularity(value string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidGranularity,
		"granularity must be one of day, week, month, year", fmt.Errorf("invalid granularity: %q", value))
}

func errInvalidDrilldownView(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDrilldownView,
		"view must be one of comparative, heatmap, sla_history, weekday, trends", cause)
}

// errInvalidDrilldownCell returns an error when the cell coordinates do not fit the view.
func errInvalidDrilldownCell(message string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDrilldownCell, message, errors.New(message))
}

func errSLAMonthNotFound(month string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSLAMonthNotFound,
		"month is not part of the selected SLA history", fmt.Errorf("sla month not found: %q", month))
}

func errInvalidIncidentType(value string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidIncidentType,
		"type must be one of standard_failure, degradation, massive_incident", fmt.Errorf("invalid incident type: %q", value))
}

// errSnapshotUnavailable returns an error when views are requested before the first refresh completed.
func errSnapshotUnavailable() *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeUnavailableSnapshotNotReady,
		"dashboard data is still loading", errSnapshotNotReady)
}
