package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name      string
		attr      string
		fromClass bool
		want      []string
	}{
		{"single class tag", "input validate-email", true, []string{"email"}},
		{"multiple class tags", "validate-text validate-numeric wide", true, []string{"text", "numeric"}},
		{"no tags defaults to text", "input wide", true, []string{"text"}},
		{"empty attribute defaults to text", "", true, []string{"text"}},
		{"duplicates dropped", "validate-url validate-url", true, []string{"url"}},
		{"embedded prefix ignored", "novalidate-email", true, []string{"text"}},
		{"bare prefix ignored", "validate-", true, []string{"text"}},
		{"name ends at first non-word char", "validate-email-confirm", true, []string{"email"}},
		{"suffixed duplicate dropped", "validate-email validate-email-2", true, []string{"email"}},
		{"non-word name ignored", "validate-!x", true, []string{"text"}},
		{"plain list", "email, numeric", false, []string{"email", "numeric"}},
		{"plain list with prefix", "validate-alpha name", false, []string{"alpha", "name"}},
		{"plain empty", "  ", false, []string{"text"}},
		{"plain list suffix", "numeric-strict", false, []string{"numeric"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.ParseTags(tt.attr, tt.fromClass))
		})
	}
}
