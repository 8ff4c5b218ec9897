package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExact(t *testing.T) {
	code, exact := Resolve("France")
	assert.True(t, exact)
	assert.Equal(t, "FR", code)
}

func TestResolveCaseInsensitive(t *testing.T) {
	code, exact := Resolve("gErMaNy")
	assert.True(t, exact)
	assert.Equal(t, "DE", code)
}

func TestResolveCommaTail(t *testing.T) {
	code, exact := Resolve("Paris, France")
	assert.True(t, exact)
	assert.Equal(t, "FR", code)

	code, exact = Resolve("Brooklyn, New York, United States")
	assert.True(t, exact)
	assert.Equal(t, "US", code)
}

func TestResolveSubstring(t *testing.T) {
	// Input contains the table name.
	code, exact := Resolve("the Kingdom of Spain")
	assert.True(t, exact)
	assert.Equal(t, "ES", code)

	// Table name contains the input.
	code, exact = Resolve("Zealand")
	assert.True(t, exact)
	assert.Equal(t, "NZ", code)
}

func TestResolveFallbackGuess(t *testing.T) {
	code, exact := Resolve("Atlantis")
	assert.False(t, exact)
	assert.Equal(t, "AT", code)
}

func TestResolveEmpty(t *testing.T) {
	code, exact := Resolve("   ")
	assert.False(t, exact)
	assert.Equal(t, "", code)
}

func TestNameRoundTrip(t *testing.T) {
	name, ok := Name("FR")
	assert.True(t, ok)
	assert.Equal(t, "France", name)

	_, ok = Name("XX")
	assert.False(t, ok)
}

func TestIsSchengen(t *testing.T) {
	assert.True(t, IsSchengen("FR"))
	assert.True(t, IsSchengen("CH")) // non-EU member
	assert.False(t, IsSchengen("GB"))
	assert.False(t, IsSchengen("IE"))
	assert.False(t, IsSchengen(""))
}
