package theme

const (
	DarkThemeName  = "Firefly"
	LightThemeName = "Solarized Light"
)

// DefaultDark is the built-in dark palette.
func DefaultDark() Theme {
	return Theme{
		Color0:  "#1c1a1c",
		Color1:  "#a64b3a",
		Color2:  "#91b794",
		Color3:  "#d48b1d",
		Color4:  "#625c70",
		Color5:  "#cc666b",
		Color6:  "#79999d",
		Color7:  "#b9bfca",
		Color8:  "#5c6370",
		Color9:  "#bd5644",
		Color10: "#b5e5b9",
		Color11: "#f1d6ab",
		Color12: "#888198",
		Color13: "#e0a3a6",
		Color14: "#a1ccd1",
		Color15: "#e3dede",
		Color16: "#d19a66",
		Color17: "#e5c07b",
		Bg0:     "#21252b",
		Bg1:     "#2c313a",
		Bg2:     "#353b45",
		Fg0:     "#dcdfe4",
		Fg1:     "#9da5b4",
		Fg2:     "#978787",
	}
}

// DefaultLight is the built-in light palette.
func DefaultLight() Theme {
	return Theme{
		Color0:  "#fdf6e3",
		Color1:  "#dc322f",
		Color2:  "#859900",
		Color3:  "#b58900",
		Color4:  "#268bd2",
		Color5:  "#d33682",
		Color6:  "#2aa198",
		Color7:  "#93a1a1",
		Color8:  "#586e75",
		Color9:  "#cb4b16",
		Color10: "#8ea600",
		Color11: "#b58900",
		Color12: "#6c71c4",
		Color13: "#d33682",
		Color14: "#2aa198",
		Color15: "#657b83",
		Color16: "#cb4b16",
		Color17: "#b58900",
		Bg0:     "#fdf6e3",
		Bg1:     "#eee8d5",
		Bg2:     "#e6dfc8",
		Fg0:     "#657b83",
		Fg1:     "#586e75",
		Fg2:     "#93a1a1",
	}
}

// Default returns the built-in palette for the given mode.
func Default(dark bool) Theme {
	if dark {
		return DefaultDark()
	}
	return DefaultLight()
}
