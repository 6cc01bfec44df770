// file: dto/qrcode_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQRCodeEntry_NormalizeDefaults(t *testing.T) {
	e := QRCodeEntry{
		Number:   " 7 ",
		Value:    " v7 ",
		Question: "  What orbits Mars?  ",
		Answer:   " Phobos ",
	}
	e.Normalize()

	assert.Equal(t, "7", e.Number)
	assert.Equal(t, "v7", e.Value)
	assert.Equal(t, "What orbits Mars?", e.Question)
	assert.Equal(t, "Phobos", e.Answer)
	assert.Equal(t, "5", e.Time)
	assert.Equal(t, 50, e.Points)
	assert.Equal(t, 10, e.MaxScans)
	assert.Equal(t, 1, e.Round)
}

func TestQRCodeEntry_NormalizeAliases(t *testing.T) {
	e := QRCodeEntry{
		Number:            "1",
		Question:          "q",
		Answer:            "a",
		QuestionLinkSnake: "https://example.com/q1",
		MaxScansSnake:     3,
		QueImageNameSnake: "q1.png",
	}
	e.Normalize()

	assert.Equal(t, "https://example.com/q1", e.QuestionLink)
	assert.Equal(t, 3, e.MaxScans)
	assert.Equal(t, "q1.png", e.QueImageName)
}

func TestQRCodeEntry_CanonicalWinsOverAlias(t *testing.T) {
	e := QRCodeEntry{
		Number:            "1",
		Question:          "q",
		Answer:            "a",
		QuestionLink:      "https://canonical",
		QuestionLinkSnake: "https://alias",
		MaxScans:          5,
		MaxScansSnake:     9,
	}
	e.Normalize()

	assert.Equal(t, "https://canonical", e.QuestionLink)
	assert.Equal(t, 5, e.MaxScans)
}

func TestQRCodeEntry_Valid(t *testing.T) {
	e := QRCodeEntry{Number: "1", Question: "q", Answer: "a"}
	e.Normalize()
	assert.True(t, e.Valid())

	missing := QRCodeEntry{Number: "1", Question: "q"}
	missing.Normalize()
	assert.False(t, missing.Valid())
}
