package validators

import (
	"net"
	"strings"
)

// HasEmailShape is a cheap structural check used on public intake forms.
func HasEmailShape(email string) bool {
	if strings.ContainsAny(email, " \t") {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// IsEmailDomainValid resolves the domain. Only used on staff registration,
// where a DNS round trip is acceptable.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
