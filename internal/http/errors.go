package http

import (
	"fmt"

	"netops-dashboard/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParam  = "HTTP_1000"
	codeInvalidProviderKey = "HTTP_1001"
	codeArchiveNotFound    = "HTTP_1002"

	codeInternalArchiveUnreadable   = "HTTP_9000"
	codeUnavailableRefreshNotQueued = "HTTP_9001"
)

func errInvalidQueryParam(name, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam,
		fmt.Sprintf("query parameter %q is invalid", name), fmt.Errorf("%s=%q: %w", name, value, cause))
}

func errInvalidProviderKey(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidProviderKey,
		"series must be PROVIDER|COUNTRY", cause)
}

func errInvalidDrilldownQuery(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, "query parameter \"view\" is invalid", cause)
}

func errArchiveNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeArchiveNotFound, "no live snapshot has been archived yet", cause)
}

func errArchiveUnreadable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalArchiveUnreadable, cause)
}

func errRefreshNotQueued(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeUnavailableRefreshNotQueued, "refresh could not be queued", cause)
}
