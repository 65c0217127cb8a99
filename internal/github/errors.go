package github

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v81/github"
)

type Kind string

const (
	KindNotFound  Kind = "NOT_FOUND"
	KindRateLimit Kind = "RATE_LIMIT"
	KindAPI       Kind = "API_ERROR"
)

// Sentinels for errors.Is. Every *Error matches exactly one of them.
var (
	ErrNotFound    = errors.New("github user not found")
	ErrRateLimited = errors.New("github rate limit exceeded")
	ErrAPI         = errors.New("github api error")
)

// Error is a categorized failure from the GitHub adapter.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Username   string
	// Reset is when the rate limit window ends, if GitHub reported it.
	Reset time.Time
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrRateLimited:
		return e.Kind == KindRateLimit
	case ErrAPI:
		return e.Kind == KindAPI
	}
	return false
}

func newNotFoundError(username string) *Error {
	return &Error{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("GitHub user %q not found", username),
		StatusCode: http.StatusNotFound,
		Username:   username,
	}
}

func newRateLimitError(username string, reset time.Time, cause error) *Error {
	msg := "GitHub API rate limit exceeded"
	if !reset.IsZero() {
		msg += fmt.Sprintf(" (resets at %s)", reset.Format("15:04:05"))
	}
	return &Error{
		Kind:       KindRateLimit,
		Message:    msg + "; try again later or set GITHUB_TOKEN",
		StatusCode: http.StatusForbidden,
		Username:   username,
		Reset:      reset,
		Cause:      cause,
	}
}

func newAPIError(username, message string, status int, cause error) *Error {
	return &Error{
		Kind:       KindAPI,
		Message:    message,
		StatusCode: status,
		Username:   username,
		Cause:      cause,
	}
}

// classify maps a go-github failure onto the adapter's error kinds.
func classify(username, action string, resp *gh.Response, err error) error {
	var rle *gh.RateLimitError
	if errors.As(err, &rle) {
		return newRateLimitError(username, rle.Rate.Reset.Time, err)
	}
	var abuse *gh.AbuseRateLimitError
	if errors.As(err, &abuse) {
		var reset time.Time
		if abuse.RetryAfter != nil {
			reset = time.Now().Add(*abuse.RetryAfter)
		}
		return newRateLimitError(username, reset, err)
	}

	status := 0
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}
	switch status {
	case http.StatusNotFound:
		return newNotFoundError(username)
	case http.StatusForbidden:
		return newRateLimitError(username, time.Time{}, err)
	}
	return newAPIError(username, fmt.Sprintf("failed to %s", action), status, err)
}
