package main

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var errNoURL = errors.New("no URL given")

// bareHost matches a host name with a top level domain and an optional
// path, like "example.com/x".
var bareHost = regexp.MustCompile(`(?i)^[\w.-]+\.[a-z]{2,}(/.*)?$`)

// normalizeURL trims s, prepends "https://" to a bare host name and
// checks that the result is an http or https URL with a host.
func normalizeURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errNoURL
	}
	if bareHost.MatchString(s) {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%q: not an http or https URL", s)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%q: no host", s)
	}
	return s, nil
}
