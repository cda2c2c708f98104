package http

import (
	"errors"
	"net/http"

	"github.com/marchocode/clash-merger/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrSubscriptionURLNotSet: http.StatusInternalServerError,
	service.ErrFetch:                 http.StatusInternalServerError,
	service.ErrParse:                 http.StatusInternalServerError,
	service.ErrIO:                    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the plain-text body sent for a failed conversion.
// A missing subscription URL gets its own fixed message.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrSubscriptionURLNotSet) {
		return service.ErrSubscriptionURLNotSet.Error()
	}
	return "conversion failed: " + err.Error()
}
