package http

import (
	"net/http"
	"strconv"
	"strings"

	"netops-dashboard/internal/models"
	"netops-dashboard/internal/shared/svcerrors"
)

// queryInt returns 0 when the parameter is absent.
func queryInt(r *http.Request, name string) (int, *svcerrors.ServiceError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidQueryParam(name, raw, err)
	}
	return v, nil
}

func queryBool(r *http.Request, name string) (bool, *svcerrors.ServiceError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errInvalidQueryParam(name, raw, err)
	}
	return v, nil
}

func queryGranularity(r *http.Request) models.Granularity {
	return models.Granularity(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("granularity"))))
}

// queryProviderKeys reads every series=PROVIDER|COUNTRY parameter.
func queryProviderKeys(r *http.Request, name string) ([]models.ProviderKey, *svcerrors.ServiceError) {
	values := r.URL.Query()[name]
	keys := make([]models.ProviderKey, 0, len(values))
	for _, v := range values {
		key, err := models.ParseProviderKey(v)
		if err != nil {
			return nil, errInvalidProviderKey(err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
