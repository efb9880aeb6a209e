package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "site/index.html", false},
		{"parent", "../shared/index.html", false},
		{"absolute", "/srv/www/index.html", false},
		{"empty", "  ", true},
		{"command chain", "index.html; rm -rf /", true},
		{"substitution", "$(whoami).html", true},
		{"pipe", "a|b", true},
		{"nul", "index\x00.html", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHost(t *testing.T) {
	for _, ok := range []string{"localhost", "0.0.0.0", "::1", "preview.internal"} {
		assert.NoError(t, ValidateHost(ok), ok)
	}
	for _, bad := range []string{"", "localhost;rm -rf", "host name", "a`b`", "x\ny"} {
		assert.Error(t, ValidateHost(bad), bad)
	}
}

func TestValidateOriginPattern(t *testing.T) {
	for _, ok := range []string{"example.com", "*.example.com", "localhost:3000"} {
		assert.NoError(t, ValidateOriginPattern(ok), ok)
	}
	for _, bad := range []string{"", "https://example.com", "example.com/app", "[bad"} {
		assert.Error(t, ValidateOriginPattern(bad), bad)
	}
}
