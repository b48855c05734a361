package model

import "testing"

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"dark", ThemeDark, false},
		{" Light ", ThemeLight, false},
		{"sepia", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := ParseTheme(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseTheme(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseTheme(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle() != ThemeDark {
		t.Fatalf("toggle should swap dark and light")
	}
}
