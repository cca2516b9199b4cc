package endpoint

import (
	"errors"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
)

// Validate reports whether raw is an absolute URL with a scheme and an authority.
func Validate(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		var urlErr *url.Error
		reason := err.Error()
		if errors.As(err, &urlErr) {
			reason = urlErr.Err.Error()
		}
		return &InvalidURLError{Input: raw, Reason: reason}
	}

	switch {
	case u.Scheme == "":
		return &InvalidURLError{Input: raw, Reason: "relative URL without a base"}
	case u.Opaque != "" || u.Host == "":
		return &InvalidURLError{Input: raw, Reason: "empty host"}
	case u.Hostname() == "":
		return &InvalidURLError{Input: raw, Reason: "empty host"}
	}

	host := u.Hostname()
	if strings.Contains(host, ":") && !strings.HasPrefix(u.Host, "[") {
		// url.Parse leaves "host:1:2" in Host; only the last segment is the port.
		return &InvalidURLError{Input: raw, Reason: "invalid port number"}
	}
	if p := u.Port(); p != "" {
		if _, err := strconv.ParseUint(p, 10, 16); err != nil {
			return &InvalidURLError{Input: raw, Reason: "invalid port number"}
		}
	}
	if isNumericHost(host) {
		if _, err := netip.ParseAddr(host); err != nil {
			return &InvalidURLError{Input: raw, Reason: "invalid IPv4 address"}
		}
	}
	return nil
}

// isNumericHost reports whether host consists only of digits and dots,
// which makes it an IPv4 address rather than a domain.
func isNumericHost(host string) bool {
	if host == "" {
		return false
	}
	for _, c := range host {
		if c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
