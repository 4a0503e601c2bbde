// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"fmt"
	"strings"
)

// Theme names
const (
	ThemeGeneric    = "generic"
	ThemeWhiteLabel = "whitelabel"
)

// Theme is the presentation layer of the lookup page. Themes never change behavior.
type Theme struct {
	Name     string
	Path     string // route the form submits to
	Title    string
	Subtitle string
	Footer   string // empty hides the footer

	Background  string
	Accent      string
	AccentHover string
	Text        string
	Muted       string
}

// Generic is the default ZIP Finder skin.
func Generic() Theme {
	return Theme{
		Name:        ThemeGeneric,
		Path:        "/",
		Title:       "ZIP Finder",
		Subtitle:    "Lookup Tool",
		Footer:      "Powered by Supabase",
		Background:  "linear-gradient(135deg, #f9fafb, #f3f4f6)",
		Accent:      "#2563eb",
		AccentHover: "#1d4ed8",
		Text:        "#111827",
		Muted:       "#4b5563",
	}
}

// WhiteLabel is the partner skin. It carries the partner's brand name and
// no vendor footer.
func WhiteLabel(brand string) Theme {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		brand = "ZIP Finder"
	}
	return Theme{
		Name:        ThemeWhiteLabel,
		Path:        "/white-label",
		Title:       brand,
		Subtitle:    "ZIP Code Lookup",
		Background:  "#ffffff",
		Accent:      "#334155",
		AccentHover: "#1e293b",
		Text:        "#0f172a",
		Muted:       "#64748b",
	}
}

// ThemeByName resolves a theme name to a Theme.
func ThemeByName(name, brand string) (Theme, error) {
	switch name {
	case ThemeGeneric:
		return Generic(), nil
	case ThemeWhiteLabel:
		return WhiteLabel(brand), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}
