package eater

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceToken(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain domain", "https://eater.com/test-restaurant", "eater"},
		{"subdomain stripped", "https://sf.eater.com/maps/best-restaurants", "eater"},
		{"deep subdomain", "https://a.b.eater.com/x", "eater"},
		{"other site", "https://www.infatuation.com/sf", "infatuation"},
		{"localhost", "http://localhost:8080/page", "localhost"},
		{"empty", "", ""},
		{"no host", "not-a-url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SourceToken(tt.url))
		})
	}
}
