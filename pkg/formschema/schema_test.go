package formschema_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/formschema"
	"github.com/dmitrymomot/formguard/pkg/formvalidator"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

const signup = `<form id="signup">
  <input name="email" class="validate-email">
  <input name="age" class="validate-numeric">
  <input name="nick" class="optional validate-alpha">
  <input name="bio">
  <input class="validate-email">
  <input name="email" class="validate-alpha">
</form>`

func TestParse(t *testing.T) {
	t.Run("reads named fields", func(t *testing.T) {
		s, err := formschema.Parse(strings.NewReader(signup), "#signup", formschema.WithName("signup"))
		require.NoError(t, err)

		assert.Equal(t, "signup", s.Name)
		assert.Equal(t, []formschema.Field{
			{Name: "email", Validators: []string{"email"}},
			{Name: "age", Validators: []string{"numeric"}},
			{Name: "nick", Validators: []string{"alpha"}, Optional: true},
			{Name: "bio", Validators: []string{"text"}},
		}, s.Fields)

		f, ok := s.Field("nick")
		require.True(t, ok)
		assert.True(t, f.Optional)
		_, ok = s.Field("missing")
		assert.False(t, ok)
	})

	t.Run("missing form", func(t *testing.T) {
		_, err := formschema.Parse(strings.NewReader(signup), "#login")
		assert.ErrorIs(t, err, formschema.ErrNoForm)
	})

	t.Run("form without named fields", func(t *testing.T) {
		_, err := formschema.Parse(strings.NewReader(`<form><input class="validate-email"></form>`), "form")
		assert.ErrorIs(t, err, formvalidator.ErrNoFields)
	})

	t.Run("unknown validator", func(t *testing.T) {
		_, err := formschema.Parse(strings.NewReader(`<form><input name="zip" class="validate-zip"></form>`), "form")
		assert.ErrorIs(t, err, validator.ErrUnknownValidator)
	})

	t.Run("custom registry", func(t *testing.T) {
		reg := validator.DefaultRegistry()
		require.NoError(t, reg.RegisterPattern("zip", `^\d{5}$`))

		s, err := formschema.Parse(strings.NewReader(`<form><input name="zip" class="validate-zip"></form>`), "form",
			formschema.WithRegistry(reg))
		require.NoError(t, err)
		assert.Nil(t, s.Validate(url.Values{"zip": {"12345"}}))
		assert.Equal(t, []string{"zip"}, s.Validate(url.Values{"zip": {"1234"}}).Validators("zip"))
	})

	t.Run("data attribute tags", func(t *testing.T) {
		opts := formvalidator.DefaultOptions()
		opts.AttributeForType = "data-validate"

		s, err := formschema.Parse(strings.NewReader(`<form><input name="n" data-validate="alpha, validate-text"></form>`), "form",
			formschema.WithValidatorOptions(opts))
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "text"}, s.Fields[0].Validators)
	})
}

func TestSchema_Validate(t *testing.T) {
	s, err := formschema.Parse(strings.NewReader(signup), "form")
	require.NoError(t, err)

	t.Run("valid submission", func(t *testing.T) {
		errs := s.Validate(url.Values{
			"email": {"a@b.co"},
			"age":   {"123.45"},
			"bio":   {"hi"},
		})
		assert.Nil(t, errs)
	})

	t.Run("failures are grouped by field", func(t *testing.T) {
		errs := s.Validate(url.Values{
			"email": {"abc"},
			"age":   {"12x"},
			"nick":  {"n1ck"},
		})
		require.NotNil(t, errs)
		assert.Equal(t, map[string][]string{
			"email": {"email"},
			"age":   {"numeric"},
			"nick":  {"alpha"},
			"bio":   {"text"},
		}, errs.ByField())
		assert.Equal(t, "must be a valid email address", errs.Get("email")[0])
	})

	t.Run("empty optional field passes", func(t *testing.T) {
		errs := s.Validate(url.Values{
			"email": {"a@b.co"},
			"age":   {"1"},
			"nick":  {""},
			"bio":   {"x"},
		})
		assert.Nil(t, errs)
	})
}

func TestLoadDir(t *testing.T) {
	set, err := formschema.LoadDir("testdata/forms")
	require.NoError(t, err)

	assert.Equal(t, []string{"contact", "signup"}, set.Names())

	contact, err := set.Get("contact")
	require.NoError(t, err)
	assert.Equal(t, "contact", contact.Name)
	require.Len(t, contact.Fields, 3)
	assert.Equal(t, "message", contact.Fields[2].Name)

	_, err = set.Get("nope")
	assert.ErrorIs(t, err, formschema.ErrUnknownSchema)

	_, err = formschema.LoadDir("testdata/missing")
	assert.Error(t, err)
}
