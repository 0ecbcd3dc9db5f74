package storage

import (
	"io"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestArchiveKey(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	got := ArchiveKey("imports", `C:\uploads\checks.csv`, now)
	want := "imports/2026/08/29/" + strconv.FormatInt(now.Unix(), 10) + "-checks.csv"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if k := ArchiveKey("imports", "", now); !strings.HasSuffix(k, "-upload") {
		t.Fatalf("empty filename key = %q", k)
	}
}

func TestFSStoreRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key, err := store.Put("imports/2026/08/29/x.csv", strings.NewReader("a,b\n1,2\n"))
	if err != nil {
		t.Fatal(err)
	}
	rc, err := store.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	if string(b) != "a,b\n1,2\n" {
		t.Fatalf("round trip = %q", b)
	}
}
