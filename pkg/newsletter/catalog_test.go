package newsletter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fundkit/pkg/newsletter"
)

func TestThemes(t *testing.T) {
	t.Parallel()

	themes := newsletter.Themes()
	require.NotEmpty(t, themes)

	seen := make(map[string]bool)
	for _, theme := range themes {
		t.Run(theme.ID, func(t *testing.T) {
			t.Parallel()

			fields := map[string]string{
				"id":            theme.ID,
				"name":          theme.Name,
				"description":   theme.Description,
				"category":      string(theme.Category),
				"primary":       string(theme.Colors.Primary),
				"secondary":     string(theme.Colors.Secondary),
				"accent":        string(theme.Colors.Accent),
				"background":    string(theme.Colors.Background),
				"text":          string(theme.Colors.Text),
				"text_light":    string(theme.Colors.TextLight),
				"border":        string(theme.Colors.Border),
				"font_heading":  theme.Fonts.Heading,
				"font_body":     theme.Fonts.Body,
				"font_button":   theme.Fonts.Button,
				"header_style":  string(theme.Layout.HeaderStyle),
				"content_width": string(theme.Layout.ContentWidth),
				"button_style":  string(theme.Layout.ButtonStyle),
				"image_style":   string(theme.Layout.ImageStyle),
			}
			for name, value := range fields {
				assert.NotEmpty(t, value, "theme %s has empty %s", theme.ID, name)
			}
			assert.NotContains(t, theme.Fonts.Body, `"`, "font specifiers are embedded in style attributes")
		})

		assert.False(t, seen[theme.ID], "duplicate theme id %s", theme.ID)
		seen[theme.ID] = true
	}

	themes[0].Colors.Primary = "#000000"
	assert.NotEqual(t, newsletter.Color("#000000"), newsletter.Themes()[0].Colors.Primary)
}

func TestThemeByID(t *testing.T) {
	t.Parallel()

	theme, err := newsletter.ThemeByID("modern-cyan")
	require.NoError(t, err)
	assert.Equal(t, "Modern Cyan", theme.Name)
	assert.Equal(t, newsletter.CategoryModern, theme.Category)

	_, err = newsletter.ThemeByID("neon")
	assert.ErrorIs(t, err, newsletter.ErrThemeNotFound)
}

func TestTheme_DerivedStyles(t *testing.T) {
	t.Parallel()

	theme := newsletter.Theme{Layout: newsletter.Layout{
		HeaderStyle:  newsletter.HeaderRight,
		ContentWidth: newsletter.WidthNarrow,
		ButtonStyle:  newsletter.ButtonPill,
		ImageStyle:   newsletter.ImageCircle,
	}}
	assert.Equal(t, newsletter.AlignRight, theme.HeaderAlign())
	assert.Equal(t, newsletter.Length("600px"), theme.ContainerWidth())
	assert.Equal(t, newsletter.Length("25px"), theme.ButtonRadius())
	assert.Equal(t, newsletter.Length("50%"), theme.ImageRadius())

	var zero newsletter.Theme
	assert.Equal(t, newsletter.AlignCenter, zero.HeaderAlign())
	assert.Equal(t, newsletter.Length("700px"), zero.ContainerWidth())
	assert.Equal(t, newsletter.Length("8px"), zero.ButtonRadius())
	assert.Equal(t, newsletter.Length("12px"), zero.ImageRadius())
}

func TestTemplates(t *testing.T) {
	t.Parallel()

	templates := newsletter.Templates()
	require.NotEmpty(t, templates)

	defaults := 0
	seen := make(map[string]bool)
	for _, tpl := range templates {
		t.Run(tpl.ID, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, newsletter.Validate(tpl))
			assert.NotEmpty(t, tpl.Name)
			assert.NotEmpty(t, tpl.Subject)
			assert.NotEmpty(t, tpl.Theme.ID)

			html, err := newsletter.Generate(tpl, nil)
			require.NoError(t, err)
			assert.Contains(t, html, "</html>")
		})

		assert.False(t, seen[tpl.ID], "duplicate template id %s", tpl.ID)
		seen[tpl.ID] = true
		if tpl.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestTemplates_ReturnsCopies(t *testing.T) {
	t.Parallel()

	first := newsletter.Templates()
	first[0].Blocks[0].Order = 99
	first[0].Name = "changed"

	second := newsletter.Templates()
	assert.NotEqual(t, 99, second[0].Blocks[0].Order)
	assert.NotEqual(t, "changed", second[0].Name)

	tpl, err := newsletter.TemplateByID(second[0].ID)
	require.NoError(t, err)
	tpl.Blocks[0].ID = "changed"
	again, err := newsletter.TemplateByID(second[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Blocks[0].ID)
}

func TestTemplateByID_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newsletter.TemplateByID("missing")
	assert.ErrorIs(t, err, newsletter.ErrTemplateNotFound)
}
