// file: utils/answer_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerMatches(t *testing.T) {
	cases := []struct {
		name      string
		submitted string
		stored    string
		want      bool
	}{
		{"exact", "mars", "mars", true},
		{"case insensitive", "Mars", "mars", true},
		{"surrounding whitespace", " Sirius ", "sirius", true},
		{"stored has whitespace", "sirius", "  Sirius", true},
		{"wrong answer", "venus", "mars", false},
		{"inner whitespace differs", "red planet", "redplanet", false},
		{"empty submission", "", "mars", false},
		{"both empty", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnswerMatches(tc.submitted, tc.stored))
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "sirius", NormalizeAnswer(" Sirius "))
	assert.Equal(t, "two words", NormalizeAnswer("\tTwo Words\n"))
	assert.Equal(t, "", NormalizeAnswer("   "))
}
