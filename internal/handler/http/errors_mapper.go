package http

import (
	"errors"
	"net/http"

	"github.com/mlevkin/launchcopy/internal/generator"
	"github.com/mlevkin/launchcopy/internal/service"
	"github.com/mlevkin/launchcopy/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrNotAuthenticated:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	generator.ErrGenerationFailed: http.StatusBadGateway,

	store.ErrUsernameTaken:      http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrProjectNotFound:    http.StatusNotFound,
	store.ErrNoActiveSession:    http.StatusUnauthorized,
	store.ErrStorageUnavailable: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
