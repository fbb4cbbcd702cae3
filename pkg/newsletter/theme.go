package newsletter

import (
	"fmt"
	"slices"
)

// Category groups themes by visual family.
type Category string

const (
	CategoryModern  Category = "modern"
	CategoryClassic Category = "classic"
	CategoryMinimal Category = "minimal"
	CategoryBold    Category = "bold"
	CategoryElegant Category = "elegant"
)

type HeaderStyle string

const (
	HeaderCentered HeaderStyle = "centered"
	HeaderLeft     HeaderStyle = "left"
	HeaderRight    HeaderStyle = "right"
)

type ContentWidth string

const (
	WidthNarrow ContentWidth = "narrow"
	WidthMedium ContentWidth = "medium"
	WidthWide   ContentWidth = "wide"
)

type ButtonShape string

const (
	ButtonRounded ButtonShape = "rounded"
	ButtonSquare  ButtonShape = "square"
	ButtonPill    ButtonShape = "pill"
)

type ImageShape string

const (
	ImageRounded ImageShape = "rounded"
	ImageSquare  ImageShape = "square"
	ImageCircle  ImageShape = "circle"
)

// Palette holds the theme colors shared by every block.
type Palette struct {
	Primary    Color `json:"primary"`
	Secondary  Color `json:"secondary"`
	Accent     Color `json:"accent"`
	Background Color `json:"background"`
	Text       Color `json:"text"`
	TextLight  Color `json:"text_light"`
	Border     Color `json:"border"`
}

// Fonts holds font-family specifiers per typographic role.
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Button  string `json:"button"`
}

// Layout holds the layout tokens that drive derived styles.
type Layout struct {
	HeaderStyle  HeaderStyle  `json:"header_style"`
	ContentWidth ContentWidth `json:"content_width"`
	ButtonStyle  ButtonShape  `json:"button_style"`
	ImageStyle   ImageShape   `json:"image_style"`
}

// Theme is a named bundle of color, font and layout tokens.
// Themes are value types: copying a Theme never shares mutable state.
type Theme struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Colors      Palette  `json:"colors"`
	Fonts       Fonts    `json:"fonts"`
	Layout      Layout   `json:"layout"`
}

// ContainerWidth returns the max-width of the document container.
// Unrecognized values fall back to the medium width.
func (t Theme) ContainerWidth() Length {
	switch t.Layout.ContentWidth {
	case WidthNarrow:
		return Px(600)
	case WidthWide:
		return Px(800)
	default:
		return Px(700)
	}
}

// ButtonRadius returns the corner radius for button anchors.
func (t Theme) ButtonRadius() Length {
	switch t.Layout.ButtonStyle {
	case ButtonPill:
		return Px(25)
	case ButtonSquare:
		return Px(0)
	default:
		return Px(8)
	}
}

// ImageRadius returns the corner radius for images.
func (t Theme) ImageRadius() Length {
	switch t.Layout.ImageStyle {
	case ImageCircle:
		return Percent(50)
	case ImageSquare:
		return Px(0)
	default:
		return Px(12)
	}
}

// HeaderAlign maps the header layout token to a text alignment.
func (t Theme) HeaderAlign() Align {
	switch t.Layout.HeaderStyle {
	case HeaderLeft:
		return AlignLeft
	case HeaderRight:
		return AlignRight
	default:
		return AlignCenter
	}
}

var themeCatalog = []Theme{
	{
		ID:          "modern-cyan",
		Name:        "Modern Cyan",
		Description: "Clean and contemporary with bright cyan accents",
		Category:    CategoryModern,
		Colors: Palette{
			Primary:    "#06b6d4",
			Secondary:  "#0891b2",
			Accent:     "#22d3ee",
			Background: "#f8fafc",
			Text:       "#1e293b",
			TextLight:  "#64748b",
			Border:     "#e2e8f0",
		},
		Fonts: Fonts{
			Heading: "'Inter', Arial, sans-serif",
			Body:    "'Inter', Arial, sans-serif",
			Button:  "'Inter', Arial, sans-serif",
		},
		Layout: Layout{
			HeaderStyle:  HeaderCentered,
			ContentWidth: WidthMedium,
			ButtonStyle:  ButtonRounded,
			ImageStyle:   ImageRounded,
		},
	},
	{
		ID:          "classic-navy",
		Name:        "Classic Navy",
		Description: "Timeless serif typography on a navy and gold palette",
		Category:    CategoryClassic,
		Colors: Palette{
			Primary:    "#1e3a8a",
			Secondary:  "#b45309",
			Accent:     "#f59e0b",
			Background: "#fdfbf7",
			Text:       "#1f2937",
			TextLight:  "#6b7280",
			Border:     "#d6d3d1",
		},
		Fonts: Fonts{
			Heading: "Georgia, 'Times New Roman', serif",
			Body:    "Georgia, 'Times New Roman', serif",
			Button:  "Arial, Helvetica, sans-serif",
		},
		Layout: Layout{
			HeaderStyle:  HeaderLeft,
			ContentWidth: WidthNarrow,
			ButtonStyle:  ButtonSquare,
			ImageStyle:   ImageSquare,
		},
	},
	{
		ID:          "minimal-mono",
		Name:        "Minimal Mono",
		Description: "Monochrome layout that lets the story speak",
		Category:    CategoryMinimal,
		Colors: Palette{
			Primary:    "#111827",
			Secondary:  "#4b5563",
			Accent:     "#9ca3af",
			Background: "#ffffff",
			Text:       "#111827",
			TextLight:  "#6b7280",
			Border:     "#e5e7eb",
		},
		Fonts: Fonts{
			Heading: "'Helvetica Neue', Helvetica, Arial, sans-serif",
			Body:    "'Helvetica Neue', Helvetica, Arial, sans-serif",
			Button:  "'Helvetica Neue', Helvetica, Arial, sans-serif",
		},
		Layout: Layout{
			HeaderStyle:  HeaderLeft,
			ContentWidth: WidthNarrow,
			ButtonStyle:  ButtonSquare,
			ImageStyle:   ImageSquare,
		},
	},
	{
		ID:          "bold-sunset",
		Name:        "Bold Sunset",
		Description: "High-contrast orange and magenta for urgent appeals",
		Category:    CategoryBold,
		Colors: Palette{
			Primary:    "#ea580c",
			Secondary:  "#db2777",
			Accent:     "#facc15",
			Background: "#fff7ed",
			Text:       "#1c1917",
			TextLight:  "#78716c",
			Border:     "#fed7aa",
		},
		Fonts: Fonts{
			Heading: "'Montserrat', 'Arial Black', sans-serif",
			Body:    "Arial, Helvetica, sans-serif",
			Button:  "'Montserrat', Arial, sans-serif",
		},
		Layout: Layout{
			HeaderStyle:  HeaderCentered,
			ContentWidth: WidthWide,
			ButtonStyle:  ButtonPill,
			ImageStyle:   ImageRounded,
		},
	},
	{
		ID:          "elegant-plum",
		Name:        "Elegant Plum",
		Description: "Soft plum tones with refined typography for donor stewardship",
		Category:    CategoryElegant,
		Colors: Palette{
			Primary:    "#6b21a8",
			Secondary:  "#a21caf",
			Accent:     "#e9d5ff",
			Background: "#faf5ff",
			Text:       "#2e1065",
			TextLight:  "#7c6f8a",
			Border:     "#e9d5ff",
		},
		Fonts: Fonts{
			Heading: "'Playfair Display', Georgia, serif",
			Body:    "'Lato', Arial, sans-serif",
			Button:  "'Lato', Arial, sans-serif",
		},
		Layout: Layout{
			HeaderStyle:  HeaderRight,
			ContentWidth: WidthMedium,
			ButtonStyle:  ButtonPill,
			ImageStyle:   ImageCircle,
		},
	},
}

// Themes returns the theme catalogue in display order.
// The returned slice is a copy and may be modified by the caller.
func Themes() []Theme {
	return slices.Clone(themeCatalog)
}

// ThemeByID looks a theme up by its id.
func ThemeByID(id string) (Theme, error) {
	for _, t := range themeCatalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrThemeNotFound, id)
}

// mustTheme is used by the template catalogue, which only references compiled-in themes.
func mustTheme(id string) Theme {
	t, err := ThemeByID(id)
	if err != nil {
		panic(err)
	}
	return t
}
