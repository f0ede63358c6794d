package httpcheck

import (
	"errors"
	"fmt"
	"strings"
)

const emptyLocation = "<empty location header>"

// ExpectStatus fails unless the response has the given status code.
func ExpectStatus(resp *Response, want int) error {
	if resp.StatusCode != want {
		return fmt.Errorf("Expected HTTP %d, got HTTP %d", want, resp.StatusCode)
	}
	return nil
}

// ExpectSuccess fails unless the response has a 2xx status code.
func ExpectSuccess(resp *Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("Expected a successful response, got HTTP %d", resp.StatusCode)
	}
	return nil
}

// IsRedirect reports whether the response is a 3xx redirect.
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode <= 399
}

// Location returns the Location header or a placeholder when it is missing.
func (r *Response) Location() string {
	if location := r.Header.Get("Location"); location != "" {
		return location
	}
	return emptyLocation
}

// ExpectRedirect fails unless the response redirects to location.
func ExpectRedirect(resp *Response, location string) error {
	if !resp.IsRedirect() {
		return fmt.Errorf("Expected a redirect to %s, got HTTP %d", location, resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != location {
		return fmt.Errorf("Expected a redirect to %s, got %s", location, resp.Location())
	}
	return nil
}

// ExpectHeader fails with message unless the header has exactly the given value.
func ExpectHeader(resp *Response, name, value, message string) error {
	if resp.Header.Get(name) != value {
		return errors.New(message)
	}
	return nil
}

// ExpectHeaderContains fails with message unless the header contains substr.
func ExpectHeaderContains(resp *Response, name, substr, message string) error {
	if !strings.Contains(resp.Header.Get(name), substr) {
		return errors.New(message)
	}
	return nil
}

// ExpectBodyContains fails with message unless the body contains substr.
func ExpectBodyContains(resp *Response, substr, message string) error {
	if !strings.Contains(string(resp.Body), substr) {
		return errors.New(message)
	}
	return nil
}
