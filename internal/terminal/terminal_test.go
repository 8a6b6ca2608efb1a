package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestLinesFor(t *testing.T) {
	tests := []struct {
		n, width, want int
	}{
		{0, 80, 2},
		{10, 80, 2},
		{80, 80, 2},
		{81, 80, 3},
		{100, 0, 3},
	}
	for _, tt := range tests {
		if got := linesFor(tt.n, tt.width); got != tt.want {
			t.Errorf("linesFor(%d, %d) = %d, want %d", tt.n, tt.width, got, tt.want)
		}
	}
}

func TestClearPreviousLines(t *testing.T) {
	var buf bytes.Buffer
	ClearPreviousLines(&buf, 10)
	if got, want := buf.String(), "\r\x1b[2K\x1b[1A\r\x1b[2K"; got != want {
		t.Errorf("ClearPreviousLines() wrote %q, want %q", got, want)
	}
}

func TestReadAll(t *testing.T) {
	got, err := ReadAll(strings.NewReader("s3cret\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "s3cret" {
		t.Errorf("ReadAll() = %q, want %q", got, "s3cret")
	}
}
