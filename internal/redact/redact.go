// Package redact removes credentials from strings before they are logged.
// Connection URLs and driver errors routinely embed the database password;
// everything that logs them goes through this package first.
package redact

import (
	"net/url"
	"regexp"
)

// Placeholders substituted for redacted content.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPasswordPlaceholder   = "xxxxx"
)

var (
	// user:password@ inside a connection URL
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql|db|database|connection)://[^@\s]+@`)

	// password=..., pwd: ... in DSNs and free text
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)
)

// String redacts connection credentials and password assignments from input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := dbConnRegex.ReplaceAllString(input, RedactedCredentialPlaceholder)
	result = passwordRegex.ReplaceAllString(result, RedactedCredentialPlaceholder)
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// DatabaseURL masks the password of a database URL while keeping the user,
// host and database visible. Strings that do not parse as a URL with a
// scheme are passed through String.
func DatabaseURL(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return String(dbURL)
	}

	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), RedactedPasswordPlaceholder)
		}
	}

	q := u.Query()
	if q.Has("password") {
		q.Set("password", RedactedPasswordPlaceholder)
		u.RawQuery = q.Encode()
	}

	return u.String()
}
