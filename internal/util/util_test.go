package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "upload limit", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestContentChecksum(t *testing.T) {
	t.Parallel()

	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", ContentChecksum([]byte("abc")))
}

func TestSafeExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		expected string
	}{
		{filename: "Logo.PNG", expected: ".png"},
		{filename: `C:\uploads\banner.jpeg`, expected: ".jpeg"},
		{filename: "../../etc/passwd", expected: ""},
		{filename: "noext", expected: ""},
		{filename: "weird.ph p", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SafeExt(tt.filename))
		})
	}
}

func TestObjectName(t *testing.T) {
	t.Parallel()

	first := ObjectName("a.webp")
	second := ObjectName("a.webp")

	assert.Regexp(t, `^[0-9a-f-]{36}\.webp$`, first)
	assert.NotEqual(t, first, second)
}
