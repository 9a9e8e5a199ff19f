package umlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAccess(t *testing.T) {
	tests := []struct {
		token string
		want  Access
	}{
		{"+", AccessPublic},
		{"#", AccessProtected},
		{"-", AccessPrivate},
		{"public", "public"},
		{"protected", "protected"},
		{"private", "private"},
		{"?", AccessPublic},
		{"", AccessPublic},
		{"Private", AccessPublic},
		{"~", AccessPublic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveAccess(tt.token), "token: %q", tt.token)
	}
}

func TestIsAccessKeyword(t *testing.T) {
	assert.True(t, IsAccessKeyword("public"))
	assert.True(t, IsAccessKeyword("protected"))
	assert.True(t, IsAccessKeyword("private"))
	assert.False(t, IsAccessKeyword("PUBLIC"))
	assert.False(t, IsAccessKeyword("+"))
	assert.False(t, IsAccessKeyword("internal"))
}

func TestAccessSymbol(t *testing.T) {
	assert.Equal(t, "+", AccessPublic.Symbol())
	assert.Equal(t, "#", AccessProtected.Symbol())
	assert.Equal(t, "-", AccessPrivate.Symbol())
	for _, sym := range []string{"+", "#", "-"} {
		assert.Equal(t, sym, ResolveAccess(sym).Symbol())
	}
}
