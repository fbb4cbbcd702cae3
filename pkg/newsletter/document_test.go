package newsletter_test

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fundkit/pkg/newsletter"
)

var unresolvedToken = regexp.MustCompile(`\{[A-Z][A-Z0-9_]*\}`)

func assertOrdered(t *testing.T, s string, parts ...string) {
	t.Helper()

	last := -1
	for _, part := range parts {
		idx := strings.Index(s, part)
		require.NotEqual(t, -1, idx, "missing %q", part)
		assert.Greater(t, idx, last, "%q is out of order", part)
		last = idx
	}
}

func scenarioData() newsletter.Data {
	return newsletter.Data{
		"STORY_TITLE":          "Clean Water Well",
		"SUBSCRIBER_NAME":      "Sam",
		"PROGRESS_PERCENTAGE":  "72",
		"RAISED_AMOUNT":        "$7,200",
		"GOAL_AMOUNT":          "$10,000",
		"REMAINING_AMOUNT":     "$2,800",
		"CUSTOM_MESSAGE":       "We broke ground this week!",
		"DONATION_URL":         "https://x/y",
		"STORY_IMAGE":          "https://x/img.jpg",
		"UNSUBSCRIBE_URL":      "https://x/u",
		"ORGANIZATION_WEBSITE": "https://x",
		"ORGANIZATION_NAME":    "Hope Org",
	}
}

func textBlock(id, text string, order int) newsletter.Block {
	return newsletter.Block{ID: id, Type: newsletter.BlockText, Content: newsletter.TextContent{Text: text}, Order: order}
}

func TestGenerate_StoryProgressUpdate(t *testing.T) {
	t.Parallel()

	tpl, err := newsletter.TemplateByID("story-progress-update")
	require.NoError(t, err)
	require.Equal(t, "Story Progress Update", tpl.Name)
	require.Equal(t, "Modern Cyan", tpl.Theme.Name)

	html, err := newsletter.Generate(tpl, scenarioData())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Clean Water Well")
	assert.Contains(t, html, "Sam")
	assert.Contains(t, html, "We broke ground this week!")
	assert.Contains(t, html, `<a href="https://x/y"`)
	assert.Contains(t, html, `href="https://x/u"`)
	assert.Contains(t, html, "width: 72%;")
	assertOrdered(t, html, "$7,200", "$2,800", "72%")
	assert.Empty(t, unresolvedToken.FindAllString(html, -1))
}

func TestGenerate_LeavesUnknownTokens(t *testing.T) {
	t.Parallel()

	tpl, err := newsletter.TemplateByID("story-progress-update")
	require.NoError(t, err)

	data := scenarioData()
	delete(data, "SUBSCRIBER_NAME")
	delete(data, "UNSUBSCRIBE_URL")

	html, err := newsletter.Generate(tpl, data)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"{SUBSCRIBER_NAME}", "{UNSUBSCRIBE_URL}"},
		unresolvedToken.FindAllString(html, -1),
	)

	personalized := newsletter.Personalize(html, newsletter.Data{
		"SUBSCRIBER_NAME": "Sam",
		"UNSUBSCRIBE_URL": "https://x/u",
	})
	full, err := newsletter.Generate(tpl, scenarioData())
	require.NoError(t, err)
	assert.Equal(t, full, personalized)
}

func TestGenerate_OrdersBlocksByOrder(t *testing.T) {
	t.Parallel()

	tpl, err := newsletter.TemplateByID("story-progress-update")
	require.NoError(t, err)
	tpl.Blocks = []newsletter.Block{
		textBlock("c", "<p>fragment-three</p>", 3),
		textBlock("a", "<p>fragment-one</p>", 1),
		textBlock("b", "<p>fragment-two</p>", 2),
	}

	html, err := newsletter.Generate(tpl, nil)
	require.NoError(t, err)
	assertOrdered(t, html, "fragment-one", "fragment-two", "fragment-three")

	assert.Equal(t, "c", tpl.Blocks[0].ID, "input blocks must not be reordered")
}

func TestGenerate_ThemeIsolation(t *testing.T) {
	t.Parallel()

	tpl, err := newsletter.TemplateByID("story-progress-update")
	require.NoError(t, err)
	bold, err := newsletter.ThemeByID("bold-sunset")
	require.NoError(t, err)

	cyan, err := newsletter.Generate(tpl, scenarioData())
	require.NoError(t, err)
	sunset, err := newsletter.Generate(tpl.WithTheme(bold), scenarioData())
	require.NoError(t, err)

	styleBlock := regexp.MustCompile(`(?s)<style>.*?</style>`)
	tags := regexp.MustCompile(`<[^>]*>`)
	text := func(s string) string { return tags.ReplaceAllString(styleBlock.ReplaceAllString(s, ""), "") }

	assert.NotEqual(t, cyan, sunset)
	assert.Equal(t, text(cyan), text(sunset))
	assert.NotEqual(t, styleBlock.FindString(cyan), styleBlock.FindString(sunset))

	assert.Contains(t, cyan, "max-width: 700px;")
	assert.Contains(t, sunset, "max-width: 800px;")
	assert.Contains(t, cyan, "border-radius: 8px;")
	assert.Contains(t, sunset, "border-radius: 25px;")

	assert.Equal(t, "modern-cyan", tpl.Theme.ID, "WithTheme must not modify the receiver")
}

func TestGenerate_SkipsUnknownBlockTypes(t *testing.T) {
	t.Parallel()

	tpl, err := newsletter.TemplateByID("story-progress-update")
	require.NoError(t, err)
	tpl.Blocks = []newsletter.Block{
		textBlock("a", "<p>one</p>", 1),
		textBlock("b", "<p>two</p>", 3),
	}
	withUnknown := tpl
	withUnknown.Blocks = append([]newsletter.Block{
		{ID: "x", Type: "unsupported", Content: newsletter.TextContent{Text: "<p>never</p>"}, Order: 2},
		{ID: "y", Type: "carousel", Order: 4},
	}, tpl.Blocks...)

	plain, err := newsletter.Generate(tpl, nil)
	require.NoError(t, err)
	skipped, err := newsletter.Generate(withUnknown, nil)
	require.NoError(t, err)

	assert.Equal(t, plain, skipped)
	assert.NotContains(t, skipped, "never")
}

func TestGenerate_ContainerWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width newsletter.ContentWidth
		want  string
	}{
		{width: newsletter.WidthNarrow, want: "max-width: 600px;"},
		{width: newsletter.WidthMedium, want: "max-width: 700px;"},
		{width: newsletter.WidthWide, want: "max-width: 800px;"},
		{width: "huge", want: "max-width: 700px;"},
	}

	for _, tt := range tests {
		t.Run(string(tt.width), func(t *testing.T) {
			t.Parallel()

			tpl, err := newsletter.TemplateByID("story-progress-update")
			require.NoError(t, err)
			theme := tpl.Theme
			theme.Layout.ContentWidth = tt.width

			html, err := newsletter.Generate(tpl.WithTheme(theme), scenarioData())
			require.NoError(t, err)
			assert.Contains(t, html, ".container { "+tt.want)
		})
	}
}

func TestGenerate_DocumentShell(t *testing.T) {
	t.Parallel()

	tpl, err := newsletter.TemplateByID("monthly-digest")
	require.NoError(t, err)

	html, err := newsletter.Generate(tpl, nil)
	require.NoError(t, err)

	assertOrdered(t, html,
		`<meta charset="UTF-8">`,
		`<meta name="viewport"`,
		"<style>",
		"font-family: Georgia, 'Times New Roman', serif;",
		".progress-bar {",
		"@media only screen and (max-width: 620px)",
		"max-width: 100% !important;",
		"</style>",
		`<div class="container">`,
		"</html>",
	)
}

func TestGenerate_StructuralErrors(t *testing.T) {
	t.Parallel()

	base, err := newsletter.TemplateByID("story-progress-update")
	require.NoError(t, err)

	tests := []struct {
		name   string
		blocks []newsletter.Block
		err    error
	}{
		{
			name:   "duplicate order",
			blocks: []newsletter.Block{textBlock("a", "x", 1), textBlock("b", "y", 1)},
			err:    newsletter.ErrDuplicateOrder,
		},
		{
			name:   "duplicate id",
			blocks: []newsletter.Block{textBlock("a", "x", 1), textBlock("a", "y", 2)},
			err:    newsletter.ErrDuplicateBlockID,
		},
		{
			name: "button without url",
			blocks: []newsletter.Block{
				{ID: "b", Type: newsletter.BlockButton, Content: newsletter.ButtonContent{Text: "Give", Style: newsletter.ButtonPrimary}, Order: 1},
			},
			err: newsletter.ErrMissingField,
		},
		{
			name: "content mismatch",
			blocks: []newsletter.Block{
				{ID: "p", Type: newsletter.BlockProgress, Content: newsletter.TextContent{Text: "x"}, Order: 1},
			},
			err: newsletter.ErrContentMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tpl := base
			tpl.Blocks = tt.blocks

			assert.ErrorIs(t, newsletter.Validate(tpl), tt.err)

			html, err := newsletter.Generate(tpl, scenarioData())
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, html)

			var sb strings.Builder
			err = newsletter.Component(tpl, nil).Render(context.Background(), &sb)
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, sb.String())
		})
	}
}

func TestGenerate_EmptyDataValues(t *testing.T) {
	t.Parallel()

	tpl, err := newsletter.TemplateByID("story-progress-update")
	require.NoError(t, err)

	data := scenarioData()
	data["STORY_IMAGE"] = ""
	data["DONATION_URL"] = " "
	data["RAISED_AMOUNT"] = ""

	html, err := newsletter.Generate(tpl, data)
	require.NoError(t, err)
	assert.Contains(t, html, `<img src=""`)
	assert.Contains(t, html, `<a href=" " target="_blank"`)
	assert.Contains(t, html, "width: 0%;")
	assert.Contains(t, html, "Clean Water Well")
}

func TestGenerate_Concurrent(t *testing.T) {
	t.Parallel()

	tpl, err := newsletter.TemplateByID("story-progress-update")
	require.NoError(t, err)

	want, err := newsletter.Generate(tpl, scenarioData())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = newsletter.Generate(tpl, scenarioData())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestBody(t *testing.T) {
	t.Parallel()

	tpl, err := newsletter.TemplateByID("story-progress-update")
	require.NoError(t, err)
	tpl.Blocks = []newsletter.Block{textBlock("a", "<p>{NAME}</p>", 1)}

	body, err := newsletter.Body(tpl, newsletter.Data{"NAME": "Sam"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(body, `<div class="block block-text"`))
	assert.Contains(t, body, "<p>Sam</p>")
	assert.NotContains(t, body, "<html")
}
