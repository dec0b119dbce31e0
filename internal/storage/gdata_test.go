package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/lanehop/internal/game"
)

func openTestGdata(t *testing.T) (*GdataStore, string) {
	t.Helper()
	appName := fmt.Sprintf("lanehop_test_%d", time.Now().UnixNano())
	store, err := OpenGdata(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return store, appName
}

func TestGdataStoreRoundTrip(t *testing.T) {
	store, appName := openTestGdata(t)

	if got := store.GetInt(game.KeyHighScore, 5); got != 5 {
		t.Errorf("GetInt() on empty store = %d, want default 5", got)
	}

	store.PutInt(game.KeyHighScore, 12)
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	reopened, err := OpenGdata(appName)
	if err != nil {
		t.Fatalf("OpenGdata() failed: %v", err)
	}
	if got := reopened.GetInt(game.KeyHighScore, 0); got != 12 {
		t.Errorf("high after reopen = %d, want 12", got)
	}
}

func TestGdataStoreUnflushedVisible(t *testing.T) {
	store, _ := openTestGdata(t)
	store.PutInt(game.KeyTotalEvaded, 3)
	if got := store.GetInt(game.KeyTotalEvaded, 0); got != 3 {
		t.Errorf("GetInt() = %d, want 3 before flush", got)
	}
}

func TestGdataStoreFlushMergesWithOtherWriters(t *testing.T) {
	a, appName := openTestGdata(t)
	b, err := OpenGdata(appName)
	if err != nil {
		t.Fatalf("OpenGdata() failed: %v", err)
	}

	b.MaxInt(game.KeyHighScore, 9)
	b.AddInt(game.KeyTotalEvaded, 9)
	if err := b.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	// a read nothing before b flushed, so it sees b's values on first use.
	a.MaxInt(game.KeyHighScore, 7)
	a.AddInt(game.KeyTotalEvaded, 7)
	if err := a.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	if got := a.GetInt(game.KeyHighScore, 0); got != 9 {
		t.Errorf("high = %d, want 9", got)
	}
	if got := a.GetInt(game.KeyTotalEvaded, 0); got != 16 {
		t.Errorf("total = %d, want 16", got)
	}
}
