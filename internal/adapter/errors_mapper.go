package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen caps how much of an error response ends up in messages.
const maxErrorBodyLen = 256

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := truncateBody(strings.TrimSpace(string(resp.Body())))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: http %d: %s", ErrUnexpectedStatus, ErrUnauthorized, resp.StatusCode(), body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: http %d: %s", ErrUnexpectedStatus, ErrNotFound, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

// truncateBody cuts body to at most maxErrorBodyLen bytes on a rune boundary.
func truncateBody(body string) string {
	if len(body) <= maxErrorBodyLen {
		return body
	}

	cut := maxErrorBodyLen
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "..."
}
