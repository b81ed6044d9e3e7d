package zwrap_test

import (
	"compress/gzip"
	"io"
	"os"
	"testing"

	"github.com/puethe/gubbins/pkg/seq/common"
	"github.com/puethe/gubbins/pkg/zwrap"
)

const payload = ">s1\nACGTACGT\n"

// wrtGz writes payload gzipped to a temp file and returns the name.
func wrtGz(t *testing.T) string {
	t.Helper()
	fp, err := os.CreateTemp(t.TempDir(), "zwrap")
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fp)
	if _, err := zw.Write([]byte(payload)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fp.Close(); err != nil {
		t.Fatal(err)
	}
	return fp.Name()
}

func readAll(t *testing.T, path string, wantCompressed bool) {
	t.Helper()
	r, err := zwrap.Open(path)
	if err != nil {
		t.Fatal("opening:", err)
	}
	if r.Compressed() != wantCompressed {
		t.Fatalf("compressed flag: wanted %v", wantCompressed)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal("reading:", err)
	}
	if string(b) != payload {
		t.Fatalf("content wanted %q got %q", payload, b)
	}
	if err := r.Close(); err != nil {
		t.Fatal("closing:", err)
	}
}

func TestPlain(t *testing.T) {
	fname, err := common.WrtTemp(payload)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	readAll(t, fname, false)
}

func TestGzipped(t *testing.T) {
	readAll(t, wrtGz(t), true)
}

func TestMissing(t *testing.T) {
	if _, err := zwrap.Open("no/such/file/anywhere"); err == nil {
		t.Fatal("wanted an error opening a missing file")
	}
}
