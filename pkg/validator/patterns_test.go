package validator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestLoadPatterns(t *testing.T) {
	t.Run("registers patterns and messages", func(t *testing.T) {
		reg := validator.DefaultRegistry()
		doc := `
validators:
  zip: '^\d{5}$'
  slug: '^[a-z0-9-]+$'
messages:
  zip: must be a 5 digit ZIP code
`
		require.NoError(t, validator.LoadPatterns(strings.NewReader(doc), reg))

		ok, err := reg.Check("zip", "90210")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = reg.Check("slug", "Not A Slug")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.Equal(t, "must be a 5 digit ZIP code", reg.Message("zip"))
		assert.Equal(t, "must match the slug format", reg.Message("slug"))
		assert.True(t, reg.Has(validator.Email))
	})

	t.Run("empty document is a no-op", func(t *testing.T) {
		reg := validator.NewRegistry()
		require.NoError(t, validator.LoadPatterns(strings.NewReader(""), reg))
		assert.Empty(t, reg.Names())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		err := validator.LoadPatterns(strings.NewReader("validators: [unterminated"), validator.NewRegistry())
		assert.ErrorIs(t, err, validator.ErrInvalidPatternFile)
	})

	t.Run("invalid regex", func(t *testing.T) {
		err := validator.LoadPatterns(strings.NewReader("validators:\n  bad: '(['\n"), validator.NewRegistry())
		assert.ErrorIs(t, err, validator.ErrInvalidPattern)
	})
}

func TestLoadPatternFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "validators.yaml")
	require.NoError(t, os.WriteFile(path, []byte("validators:\n  hex: '^[0-9a-f]+$'\n"), 0o600))

	reg := validator.NewRegistry()
	require.NoError(t, validator.LoadPatternFile(path, reg))
	assert.True(t, reg.Has("hex"))

	err := validator.LoadPatternFile(filepath.Join(dir, "missing.yaml"), reg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
