// Package validation holds input checks for values that reach the file
// system or the network listener.
package validation

import (
	"fmt"
	"path"
	"strings"
)

var dangerousChars = []string{";", "&", "|", "$", "`", "<", ">", "\x00"}

// ValidatePath rejects file paths carrying shell metacharacters or NUL.
// Relative paths, including ones that climb with "..", are allowed.
func ValidatePath(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	for _, char := range dangerousChars {
		if strings.Contains(p, char) {
			return fmt.Errorf("path contains dangerous character %q", char)
		}
	}
	return nil
}

// ValidateHost rejects listen hosts that are empty or could be abused when
// echoed into logs or shell commands.
func ValidateHost(host string) error {
	if strings.TrimSpace(host) == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if strings.ContainsAny(host, ";&|$`()<>\"'\\ \t\r\n\x00") {
		return fmt.Errorf("host %q contains a forbidden character", host)
	}
	return nil
}

// ValidateOriginPattern checks a WebSocket origin pattern. Patterns match
// the Origin host, such as "example.com" or "*.example.com", so schemes
// are rejected.
func ValidateOriginPattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return fmt.Errorf("origin pattern cannot be empty")
	}
	if strings.Contains(pattern, "://") {
		return fmt.Errorf("origin pattern %q must be a host, not a URL", pattern)
	}
	if strings.ContainsAny(pattern, "/ \t") {
		return fmt.Errorf("origin pattern %q contains a path or whitespace", pattern)
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("origin pattern %q is malformed: %w", pattern, err)
	}
	return nil
}
