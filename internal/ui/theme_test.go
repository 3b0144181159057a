package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Dracula", "Nightfox", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}

	names[0] = "mutated"
	if ThemeNames()[0] != "Dracula" {
		t.Fatalf("ThemeNames() exposed its backing slice")
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Dracula":  "Nightfox",
		"Nightfox": "Slate",
		"Slate":    "Dracula",
		"Unknown":  "Dracula",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Dracula" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Dracula (fallback)", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := []string{
			th.Background, th.Surface, th.SurfaceAlt, th.FocusBg,
			th.SelectionBg, th.SelectionText,
			th.Border, th.BorderMuted, th.BorderFocus,
			th.Text, th.Muted, th.Faint, th.Accent,
			th.Success, th.Warning, th.Danger, th.Info,
		}
		for i, c := range colors {
			if c == "" {
				t.Fatalf("theme %s color #%d is empty", name, i)
			}
		}
	}
}
