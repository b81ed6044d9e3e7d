package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/puethe/gubbins/pkg/brokenio"
)

func TestFailsAtBudget(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader("0123456789"), 4)
	b, err := io.ReadAll(rdr)
	if !errors.Is(err, brokenio.ErrInjected) {
		t.Fatal("wanted injected error, got", err)
	}
	if string(b) != "0123" {
		t.Fatalf("wanted the first 4 bytes, got %q", b)
	}
}

func TestBigBudgetIsHarmless(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader("0123"), 1000)
	b, err := io.ReadAll(rdr)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "0123" {
		t.Fatalf("got %q", b)
	}
}
