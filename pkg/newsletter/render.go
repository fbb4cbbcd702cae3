package newsletter

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fundkit/pkg/sanitizer"
)

// RenderBlock renders one block with already resolved content.
// Unknown block types render as an empty fragment. Content of the wrong
// variant returns ErrContentMismatch. Required fields are checked by Validate
// on the template; here resolved values are rendered as they are, empty or not,
// so missing data never aborts a render.
func RenderBlock(block Block, content Content, theme Theme) (string, error) {
	if !block.Type.Known() {
		return "", nil
	}
	if err := checkVariant(block, content); err != nil {
		return "", err
	}

	var b strings.Builder
	switch c := content.(type) {
	case HeaderContent:
		renderHeader(&b, c, block.Styling, theme)
	case TextContent:
		renderText(&b, c, block.Styling, theme)
	case ImageContent:
		renderImage(&b, c, block.Styling, theme)
	case ButtonContent:
		renderButton(&b, c, block.Styling, theme)
	case ProgressContent:
		renderProgress(&b, c, block.Styling, theme)
	case StoryContent:
		renderStory(&b, c, block.Styling, theme)
	case SpacerContent:
		renderSpacer(&b, c, block.Styling)
	case DividerContent:
		renderDivider(&b, block.Styling, theme)
	case nil:
		switch block.Type {
		case BlockSpacer:
			renderSpacer(&b, SpacerContent{}, block.Styling)
		case BlockDivider:
			renderDivider(&b, block.Styling, theme)
		}
	}
	return b.String(), nil
}

var esc = templ.EscapeString[string]

func open(b *strings.Builder, kind BlockType, style inline) {
	b.WriteString(`<div class="block block-`)
	b.WriteString(string(kind))
	b.WriteString(`"`)
	b.WriteString(style.attr())
	b.WriteString(">")
}

func closeBlock(b *strings.Builder) {
	b.WriteString("</div>\n")
}

func renderHeader(b *strings.Builder, c HeaderContent, s Styling, theme Theme) {
	st := s.over(Styling{
		BackgroundColor: theme.Colors.Primary,
		TextColor:       "#ffffff",
		Padding:         "40px 30px",
		TextAlign:       theme.HeaderAlign(),
	})
	open(b, BlockHeader, st.declarations())

	title := inline{}.
		set("margin", "0 0 10px 0").
		set("font-family", theme.Fonts.Heading).
		set("font-size", string(firstLength(st.FontSize, "28px"))).
		set("line-height", "1.3").
		set("color", string(st.TextColor))
	b.WriteString("<h1" + title.attr() + ">" + esc(c.Title) + "</h1>")

	sub := inline{}.
		set("margin", "0").
		set("font-size", "16px").
		set("line-height", "1.5").
		set("opacity", "0.9")
	b.WriteString("<p" + sub.attr() + ">" + esc(c.Subtitle) + "</p>")
	closeBlock(b)
}

func renderText(b *strings.Builder, c TextContent, s Styling, theme Theme) {
	st := s.over(Styling{
		TextColor: theme.Colors.Text,
		Padding:   "20px 30px",
		FontSize:  Px(16),
	})
	open(b, BlockText, st.declarations().set("line-height", "1.6"))
	b.WriteString(c.Text)
	closeBlock(b)
}

func renderImage(b *strings.Builder, c ImageContent, s Styling, theme Theme) {
	st := s.over(Styling{
		Padding:   "20px 30px",
		TextAlign: AlignCenter,
	})
	open(b, BlockImage, st.declarations())

	img := inline{}.
		set("display", "block").
		set("max-width", "100%").
		set("height", "auto").
		set("margin", "0 auto").
		set("border", "0").
		set("border-radius", string(theme.ImageRadius()))
	b.WriteString(`<img src="` + esc(c.Src) + `" alt="` + esc(c.Alt) + `"` + img.attr() + ">")

	if present(c.Caption) {
		caption := inline{}.
			set("margin", "10px 0 0 0").
			set("font-size", "14px").
			set("color", string(theme.Colors.TextLight))
		b.WriteString("<p" + caption.attr() + ">" + esc(c.Caption) + "</p>")
	}
	closeBlock(b)
}

func renderButton(b *strings.Builder, c ButtonContent, s Styling, theme Theme) {
	st := s.over(Styling{
		Padding:   "20px 30px",
		TextAlign: AlignCenter,
	})
	open(b, BlockButton, st.declarations())

	bg := theme.Colors.Secondary
	if c.Style == ButtonPrimary {
		bg = theme.Colors.Primary
	}
	anchor := inline{}.
		set("display", "inline-block").
		set("background-color", string(bg)).
		set("color", "#ffffff").
		set("padding", "14px 32px").
		set("border-radius", string(theme.ButtonRadius())).
		set("font-family", theme.Fonts.Button).
		set("font-size", "16px").
		set("font-weight", "bold").
		set("text-decoration", "none")
	b.WriteString(`<a href="` + esc(c.URL) + `" target="_blank"` + anchor.attr() + ">" + esc(c.Text) + "</a>")
	closeBlock(b)
}

// progressWidth sizes the bar fill from the raised and goal amounts.
// Unparseable amounts count as zero and the result is always within [0, 100].
func progressWidth(c ProgressContent) int {
	raised, _ := sanitizer.ParseAmount(c.Raised)
	goal, ok := sanitizer.ParseAmount(c.Goal)
	if !ok {
		return 0
	}
	return sanitizer.Percentage(raised, goal)
}

func renderProgress(b *strings.Builder, c ProgressContent, s Styling, theme Theme) {
	st := s.over(Styling{
		BackgroundColor: theme.Colors.Background,
		Padding:         "30px",
	})
	open(b, BlockProgress, st.declarations())

	width := progressWidth(c)
	label := strings.TrimSuffix(strings.TrimSpace(c.Percentage), "%")

	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>`)
	stat(b, c.Raised, "Raised", theme)
	stat(b, c.Remaining, "Still needed", theme)
	stat(b, label+"%", "Funded", theme)
	b.WriteString("</tr></table>")

	bar := inline{}.
		set("background-color", string(theme.Colors.Border)).
		set("border-radius", "10px").
		set("height", "12px").
		set("overflow", "hidden").
		set("margin-top", "20px")
	fill := inline{}.
		set("width", strconv.Itoa(width)+"%").
		set("height", "12px").
		set("background-color", string(theme.Colors.Accent)).
		set("border-radius", "10px")
	b.WriteString(`<div class="progress-bar"` + bar.attr() + `><div class="progress-fill"` + fill.attr() + "></div></div>")

	goal := inline{}.
		set("margin", "10px 0 0 0").
		set("font-size", "13px").
		set("text-align", "center").
		set("color", string(theme.Colors.TextLight))
	b.WriteString("<p" + goal.attr() + ">Goal: " + esc(c.Goal) + "</p>")
	closeBlock(b)
}

func stat(b *strings.Builder, value, caption string, theme Theme) {
	cell := inline{}.
		set("width", "33%").
		set("text-align", "center").
		set("padding", "0 5px")
	number := inline{}.
		set("font-family", theme.Fonts.Heading).
		set("font-size", "24px").
		set("font-weight", "bold").
		set("color", string(theme.Colors.Primary))
	text := inline{}.
		set("font-size", "13px").
		set("color", string(theme.Colors.TextLight))
	b.WriteString(`<td class="progress-stat"` + cell.attr() + ">")
	b.WriteString("<div" + number.attr() + ">" + esc(value) + "</div>")
	b.WriteString("<div" + text.attr() + ">" + esc(caption) + "</div>")
	b.WriteString("</td>")
}

func renderStory(b *strings.Builder, c StoryContent, s Styling, theme Theme) {
	st := s.over(Styling{
		TextColor: theme.Colors.Text,
		Padding:   "20px 30px",
	})
	open(b, BlockStory, st.declarations())

	if present(c.ImageURL) {
		img := inline{}.
			set("display", "block").
			set("width", "100%").
			set("height", "auto").
			set("border", "0").
			set("border-radius", string(theme.ImageRadius())).
			set("margin-bottom", "15px")
		b.WriteString(`<img src="` + esc(c.ImageURL) + `" alt="` + esc(c.Title) + `"` + img.attr() + ">")
	}

	title := inline{}.
		set("margin", "0 0 10px 0").
		set("font-family", theme.Fonts.Heading).
		set("font-size", "22px").
		set("color", string(st.TextColor))
	b.WriteString("<h2" + title.attr() + ">" + esc(c.Title) + "</h2>")

	if present(c.Summary) {
		summary := inline{}.
			set("margin", "0 0 15px 0").
			set("font-size", "15px").
			set("line-height", "1.6").
			set("color", string(theme.Colors.TextLight))
		b.WriteString("<p" + summary.attr() + ">" + esc(c.Summary) + "</p>")
	}

	if present(c.URL) {
		text := c.LinkText
		if !present(text) {
			text = "Read the full story"
		}
		link := inline{}.
			set("color", string(theme.Colors.Primary)).
			set("font-weight", "bold").
			set("text-decoration", "none")
		b.WriteString(`<a href="` + esc(c.URL) + `" target="_blank"` + link.attr() + ">" + esc(text) + " &rarr;</a>")
	}
	closeBlock(b)
}

func renderSpacer(b *strings.Builder, c SpacerContent, s Styling) {
	height := string(firstLength(c.Height, Px(30)))
	st := inline{}.
		set("background-color", string(s.BackgroundColor)).
		set("height", height).
		set("line-height", height).
		set("font-size", "0")
	open(b, BlockSpacer, st)
	closeBlock(b)
}

func renderDivider(b *strings.Builder, s Styling, theme Theme) {
	st := s.over(Styling{Padding: "0 30px"})
	open(b, BlockDivider, st.declarations())
	rule := inline{}.
		set("border", "none").
		set("border-top", "1px solid "+string(theme.Colors.Border)).
		set("margin", "20px 0")
	b.WriteString("<hr" + rule.attr() + ">")
	closeBlock(b)
}

func firstLength(v, fallback Length) Length {
	if v == "" {
		return fallback
	}
	return v
}
