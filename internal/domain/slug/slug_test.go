package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "punctuation stripped", in: "Fresh Milk 1L!", want: "fresh-milk-1l"},
		{name: "whitespace runs collapse", in: "Choco   Bar\tMini", want: "choco-bar-mini"},
		{name: "surrounding space trimmed", in: "  Tea  ", want: "tea"},
		{name: "existing hyphens kept", in: "Low-Fat Yogurt", want: "low-fat-yogurt"},
		{name: "non ascii removed", in: "Café Latte", want: "caf-latte"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.in))
		})
	}
}

func TestDerive_SameNameSameSlug(t *testing.T) {
	assert.Equal(t, Derive("Fresh Milk"), Derive("fresh   milk"))
}
