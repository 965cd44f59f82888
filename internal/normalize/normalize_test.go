package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain lowercase", "mumbai", "mumbai"},
		{"mixed case", "Mumbai", "mumbai"},
		{"surrounding whitespace", "  Pune  ", "pune"},
		{"accented", "Ahmedābād", "ahmedabad"},
		{"combining dot below", "Ạhmedabad ", "ahmedabad"},
		{"latin with tilde", "São Paulo", "sao paulo"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"interior spaces preserved", "Navi Mumbai", "navi mumbai"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Key(tt.in))
		})
	}
}

func TestKeyIdempotent(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Ạhmedabad ", "  DELHI", "Bengalūru", "chennai"} {
		once := Key(raw)
		assert.Equal(t, once, Key(once), "Key must be idempotent for %q", raw)
	}
}

func TestKeyAccentAndCaseInsensitive(t *testing.T) {
	t.Parallel()

	// Two spellings of the same city must land on the same key.
	assert.Equal(t, Key("ahmedabad"), Key("Ạhmedabad "))
	assert.Equal(t, Key("pune"), Key("PUNE"))
}

func TestKeys(t *testing.T) {
	t.Parallel()

	set := Keys([]string{"Mumbai", "mumbai", "  ", "Pune"})
	assert.Len(t, set, 2)
	assert.True(t, set["mumbai"])
	assert.True(t, set["pune"])
	assert.False(t, set[""])
}
