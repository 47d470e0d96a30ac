package domain

import "fmt"

// AuthError reports a failed login, a malformed auth response, or a request
// issued without a valid session.
type AuthError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth failed: %v", e.Err)
	}
	return fmt.Sprintf("auth failed (%d): %s", e.StatusCode, e.Body)
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError reports a non-2xx or undecodable response from one of the
// order endpoints. Op names the request that failed.
type FetchError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s (%d): %s", e.Op, e.StatusCode, e.Body)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DisplayError reports a snapshot too incomplete to render at all. Merely
// missing fields are shown as placeholders instead.
type DisplayError struct {
	Reason string
}

func (e *DisplayError) Error() string { return "cannot display order: " + e.Reason }
