package newsletter

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Color is a CSS color value such as "#06b6d4".
type Color string

// Length is a CSS length value such as "30px" or "50%".
type Length string

// Px returns a pixel length.
func Px(n int) Length {
	if n == 0 {
		return "0"
	}
	return Length(strconv.Itoa(n) + "px")
}

// Percent returns a percentage length.
func Percent(n int) Length {
	return Length(strconv.Itoa(n) + "%")
}

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Styling is the set of per-block overrides a template may declare.
// Zero fields keep the theme-derived default for that block type.
type Styling struct {
	BackgroundColor Color  `json:"background_color,omitempty"`
	TextColor       Color  `json:"text_color,omitempty"`
	Padding         Length `json:"padding,omitempty"`
	Margin          Length `json:"margin,omitempty"`
	FontSize        Length `json:"font_size,omitempty"`
	TextAlign       Align  `json:"text_align,omitempty"`
	BorderRadius    Length `json:"border_radius,omitempty"`
}

// over returns s with every zero field filled from defaults.
func (s Styling) over(defaults Styling) Styling {
	if s.BackgroundColor == "" {
		s.BackgroundColor = defaults.BackgroundColor
	}
	if s.TextColor == "" {
		s.TextColor = defaults.TextColor
	}
	if s.Padding == "" {
		s.Padding = defaults.Padding
	}
	if s.Margin == "" {
		s.Margin = defaults.Margin
	}
	if s.FontSize == "" {
		s.FontSize = defaults.FontSize
	}
	if s.TextAlign == "" {
		s.TextAlign = defaults.TextAlign
	}
	if s.BorderRadius == "" {
		s.BorderRadius = defaults.BorderRadius
	}
	return s
}

// declarations renders the styling as an inline declaration list.
func (s Styling) declarations() inline {
	return inline{}.
		set("background-color", string(s.BackgroundColor)).
		set("color", string(s.TextColor)).
		set("padding", string(s.Padding)).
		set("margin", string(s.Margin)).
		set("font-size", string(s.FontSize)).
		set("text-align", string(s.TextAlign)).
		set("border-radius", string(s.BorderRadius))
}

// inline is an ordered list of CSS declarations for a style attribute.
type inline []string

// set appends a declaration, skipping empty values.
func (in inline) set(property, value string) inline {
	if value == "" {
		return in
	}
	return append(in, property+": "+value+";")
}

func (in inline) String() string {
	return strings.Join(in, " ")
}

// attr renders the declarations as an escaped style attribute.
func (in inline) attr() string {
	if len(in) == 0 {
		return ""
	}
	return ` style="` + templ.EscapeString(in.String()) + `"`
}
