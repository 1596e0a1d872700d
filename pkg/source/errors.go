package source

import "fmt"

// FetchError reports a failed remote retrieval: either a transport
// failure (Status 0, Err set) or a non-2xx response (Status set).
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FormatError reports a payload that was retrieved but could not be
// decoded into a dish collection.
type FormatError struct {
	Resource string
	Err      error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Resource, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
