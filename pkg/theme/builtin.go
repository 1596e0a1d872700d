package theme

// registerBuiltins registers all built-in palettes.
func registerBuiltins() {
	for _, p := range []Palette{
		defaultPalette(),
		sinagPalette(),
		gabiPalette(),
	} {
		Register(p)
	}
}

// defaultPalette is a dark neutral palette with a purple accent.
func defaultPalette() Palette {
	return Palette{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		Border:      "#3e3e3e",
		BorderFocus: "#7C3AED",
		Title:       "#d4d4d4",

		BadgeLow:    "#15803d",
		BadgeMedium: "#b45309",
		BadgeHigh:   "#b91c1c",
		BadgeText:   "#f5f5f4",

		Error:   "#e06c75",
		Warn:    "#e5c07b",
		OK:      "#4ec970",
		Loading: "#7C3AED",

		SearchPrompt: "#7C3AED",
		HelpKey:      "#7C3AED",
		HelpDesc:     "#6b6b6b",
	}
}

// sinagPalette is a warm sunset palette.
func sinagPalette() Palette {
	return Palette{
		Name:       "sinag",
		Background: "#2b1d16",
		Foreground: "#f3e3ce",
		Dim:        "#9a7e64",
		Accent:     "#f59e0b",

		Border:      "#55402f",
		BorderFocus: "#f59e0b",
		Title:       "#fcd34d",

		BadgeLow:    "#4d7c0f",
		BadgeMedium: "#d97706",
		BadgeHigh:   "#dc2626",
		BadgeText:   "#fef3c7",

		Error:   "#f87171",
		Warn:    "#fbbf24",
		OK:      "#84cc16",
		Loading: "#f59e0b",

		SearchPrompt: "#f59e0b",
		HelpKey:      "#fcd34d",
		HelpDesc:     "#9a7e64",
	}
}

// gabiPalette is a deep blue night palette.
func gabiPalette() Palette {
	return Palette{
		Name:       "gabi",
		Background: "#101524",
		Foreground: "#c0caf5",
		Dim:        "#565f89",
		Accent:     "#7aa2f7",

		Border:      "#2a3150",
		BorderFocus: "#7aa2f7",
		Title:       "#c0caf5",

		BadgeLow:    "#166534",
		BadgeMedium: "#a16207",
		BadgeHigh:   "#991b1b",
		BadgeText:   "#e0e7ff",

		Error:   "#f7768e",
		Warn:    "#e0af68",
		OK:      "#9ece6a",
		Loading: "#7aa2f7",

		SearchPrompt: "#7aa2f7",
		HelpKey:      "#7aa2f7",
		HelpDesc:     "#565f89",
	}
}
