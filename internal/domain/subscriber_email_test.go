package domain

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberEmail_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"missing at symbol", "ursuladomain.com"},
		{"missing subject", "@domain.com"},
		{"missing domain", "ursula@"},
		{"only at symbol", "@"},
		{"whitespace", "   "},
		{"two at symbols", "ursula@@domain.com"},
		{"space in local part", "ursula le guin@domain.com"},
		{"definitely not an email", "definitely-not-an-email"},
		{"dotless domain", "user@localhost"},
		{"ip literal domain", "a@[127.0.0.1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubscriberEmail(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSubscriberEmail))
			assert.False(t, errors.Is(err, ErrInvalidSubscriberName))
		})
	}
}

func TestParseSubscriberEmail_ErrorQuotesInput(t *testing.T) {
	_, err := ParseSubscriberEmail("ursuladomain.com")
	require.Error(t, err)
	assert.Equal(t, "ursuladomain.com is not a valid subscriber email.", err.Error())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, "ursuladomain.com", verr.Value)
}

func TestParseSubscriberEmail_StoresInputVerbatim(t *testing.T) {
	inputs := []string{
		"ursula_le_guin@gmail.com",
		"Ursula.Le.Guin@Example.COM",
		"first+tag@sub.domain.org",
		"o'brien@example.net",
	}

	for _, input := range inputs {
		email, err := ParseSubscriberEmail(input)
		require.NoError(t, err, input)
		assert.Equal(t, input, email.String())
	}
}

func TestMustParseSubscriberEmail_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseSubscriberEmail("nope") })
	assert.NotPanics(t, func() { MustParseSubscriberEmail("yes@example.com") })
}

// validEmailFixture generates addresses shaped like name@example.tld.
type validEmailFixture string

func (validEmailFixture) Generate(r *rand.Rand, _ int) reflect.Value {
	f := gofakeit.New(r.Int63())

	local := strings.ToLower(f.LetterN(uint(1 + r.Intn(12))))
	if r.Intn(2) == 0 {
		local += "." + strings.ToLower(f.LetterN(uint(1+r.Intn(8))))
	}
	if r.Intn(2) == 0 {
		local += f.DigitN(uint(1 + r.Intn(4)))
	}
	domain := "example." + f.RandomString([]string{"com", "org", "net"})

	return reflect.ValueOf(validEmailFixture(local + "@" + domain))
}

func TestParseSubscriberEmail_ValidEmailsAreParsed(t *testing.T) {
	property := func(fixture validEmailFixture) bool {
		email, err := ParseSubscriberEmail(string(fixture))
		return err == nil && email.String() == string(fixture)
	}

	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 500}))
}

func FuzzParseSubscriberEmail(f *testing.F) {
	for _, seed := range []string{"", "@", "a@b.co", "ursula@domain.com", "no-at-sign", "x@y@z.com"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		email, err := ParseSubscriberEmail(raw)
		if err != nil {
			if !strings.Contains(err.Error(), raw) {
				t.Fatalf("error %q does not mention input %q", err, raw)
			}
			return
		}
		if email.String() != raw {
			t.Fatalf("parsed %q into %q", raw, email.String())
		}
		if !strings.Contains(raw, "@") {
			t.Fatalf("accepted %q without an @", raw)
		}
	})
}
