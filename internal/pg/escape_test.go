package pg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"papka/internal/pg"
)

func TestQuoteIdentifier(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "users", `"users"`},
		{"reserved word", "select", `"select"`},
		{"spaces", "my strange table", `"my strange table"`},
		{"embedded quotes", `a"b`, `"a""b"`},
		{"only quotes", `""`, `""""""`},
		{"empty", "", `""`},
		{"single quote inside", "o'clock", `"o'clock"`},
		{"injection attempt", `x"; DROP TABLE users; --`, `"x""; DROP TABLE users; --"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pg.QuoteIdentifier(tc.in))
		})
	}
}

func TestQuoteLiteral(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", `'hello'`},
		{"single quote", "O'Reilly", `'O''Reilly'`},
		{"only quote", "'", `''''`},
		{"empty", "", `''`},
		{"double quote passes through", `say "hi"`, `'say "hi"'`},
		{"backslash switches to E-form", `a\b`, `E'a\\b'`},
		{"backslash and quote", `a\'b`, `E'a\\''b'`},
		{"injection attempt", `'; DROP TABLE users; --`, `'''; DROP TABLE users; --'`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pg.QuoteLiteral(tc.in))
		})
	}
}
