package email

import (
	"fmt"
	"net"
	"net/mail"
	"strings"
)

// ValidateAddress parses and validates an email address before submission.
//
// The return value will be nil if the address passes validation, or non nil if
// it fails.
//
// Validation is format-scoped only: the address is parsed with
// [mail.ParseAddress] and checked against known invalid usernames and domains.
// No DNS or other network lookups happen here, so an invalid form submission
// never costs a network round trip.
func ValidateAddress(address string) (err error) {
	_, user, domain, err := parseAddress(strings.TrimSpace(address))
	if err != nil {
		return
	} else if isKnownInvalidAddress(user, domain) {
		return fmt.Errorf("invalid email address: %s", address)
	}
	return
}

func parseAddress(address string) (email, user, domain string, err error) {
	addr, parseErr := mail.ParseAddress(address)

	if parseErr != nil {
		err = fmt.Errorf("invalid email address: %s: %s", address, parseErr)
	} else {
		email = addr.Address
		// mail.ParseAddress guarantees an "@domain" part is present.
		i := strings.LastIndexByte(email, '@')
		user = email[0:i]
		domain = email[i+1:]
	}
	return
}

var invalidUserNames = map[string]bool{
	"postmaster": true,
	"abuse":      true,
}

var invalidDomains = map[string]bool{
	"localhost":       true,
	"example.invalid": true,
}

func isKnownInvalidAddress(user, domain string) bool {
	return invalidUserNames[strings.Split(user, "+")[0]] ||
		strings.HasPrefix(domain, "[") ||
		net.ParseIP(domain) != nil ||
		invalidDomains[domain] ||
		invalidDomains[getPrimaryDomain(domain)]
}

func getPrimaryDomain(domainName string) string {
	parts := strings.Split(domainName, ".")
	if len(parts) < 2 {
		return domainName
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
