package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/pwmeter/internal/model"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st, path
}

func TestThemeUnset(t *testing.T) {
	st, _ := openTestStore(t)
	theme, ok, err := st.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if ok || theme != "" {
		t.Fatalf("expected no saved theme, got %q (ok=%v)", theme, ok)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	st, path := openTestStore(t)
	ctx := context.Background()
	if err := st.SetTheme(ctx, model.ThemeLight); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if err := st.SetTheme(ctx, model.ThemeDark); err != nil {
		t.Fatalf("overwrite theme: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		_ = reopened.Close()
	}()
	theme, ok, err := reopened.Theme(ctx)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if !ok || theme != model.ThemeDark {
		t.Fatalf("expected dark theme, got %q (ok=%v)", theme, ok)
	}
}

func TestThemeRejectsGarbage(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()
	if err := st.set(ctx, themeKey, "sepia"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, _, err := st.Theme(ctx); err == nil {
		t.Fatalf("expected error for unknown stored theme")
	}
}
