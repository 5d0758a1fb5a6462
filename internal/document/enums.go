// internal/document/enums.go
package document

type DisplayType string

const (
	DisplayInline   DisplayType = "inline"
	DisplayDownload DisplayType = "download"
	DisplayLink     DisplayType = "link"
)

func (t DisplayType) Valid() bool {
	switch t {
	case DisplayInline, DisplayDownload, DisplayLink:
		return true
	}
	return false
}

type BackgroundFit string

const (
	FitCover   BackgroundFit = "cover"
	FitContain BackgroundFit = "contain"
	FitFill    BackgroundFit = "fill"
)

// Valid accepts the empty value, which renders as cover.
func (f BackgroundFit) Valid() bool {
	switch f {
	case "", FitCover, FitContain, FitFill:
		return true
	}
	return false
}

// CSS returns the background-size value for the fit.
func (f BackgroundFit) CSS() string {
	switch f {
	case FitContain:
		return "contain"
	case FitFill:
		return "100% 100%"
	}
	return "cover"
}

type BackgroundPosition string

const (
	PositionCenter BackgroundPosition = "center"
	PositionTop    BackgroundPosition = "top"
	PositionBottom BackgroundPosition = "bottom"
	PositionLeft   BackgroundPosition = "left"
	PositionRight  BackgroundPosition = "right"
)

// Valid accepts the empty value, which renders as center.
func (p BackgroundPosition) Valid() bool {
	switch p {
	case "", PositionCenter, PositionTop, PositionBottom, PositionLeft, PositionRight:
		return true
	}
	return false
}

func (p BackgroundPosition) CSS() string {
	if p == "" {
		return string(PositionCenter)
	}
	return string(p)
}

// Theme names a colour preset. The colours themselves live in
// Customization; the theme is recorded so the editor can show which preset
// was applied.
type Theme string

const (
	ThemeDefault      Theme = "default"
	ThemeVibrant      Theme = "vibrant"
	ThemeProfessional Theme = "professional"
	ThemeModern       Theme = "modern"
	ThemeCreative     Theme = "creative"
	ThemeMinimal      Theme = "minimal"
	ThemeCustom       Theme = "custom"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeDefault, ThemeVibrant, ThemeProfessional, ThemeModern, ThemeCreative, ThemeMinimal, ThemeCustom:
		return true
	}
	return false
}
