package newsletter

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fundkit/pkg/email/templates"
)

// Validate checks the structural invariants of a template: unique block ids,
// unique order values, and content matching each known block type.
// Blocks of unknown type are not checked; they are skipped at render time.
func Validate(t Template) error {
	ids := make(map[string]struct{}, len(t.Blocks))
	orders := make(map[int]string, len(t.Blocks))
	for _, b := range t.Blocks {
		if _, ok := ids[b.ID]; ok {
			return fmt.Errorf("%w: %q in template %q", ErrDuplicateBlockID, b.ID, t.ID)
		}
		ids[b.ID] = struct{}{}

		if other, ok := orders[b.Order]; ok {
			return fmt.Errorf("%w: blocks %q and %q both use order %d", ErrDuplicateOrder, other, b.ID, b.Order)
		}
		orders[b.Order] = b.ID

		if b.Type.Known() {
			if err := checkContent(b, b.Content); err != nil {
				return err
			}
		}
	}
	return nil
}

// sortedBlocks returns the blocks in ascending order value.
func sortedBlocks(blocks []Block) []Block {
	sorted := slices.Clone(blocks)
	slices.SortStableFunc(sorted, func(a, b Block) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return sorted
}

// Body renders the template blocks in order with data substituted,
// without the surrounding document shell.
func Body(t Template, data Data) (string, error) {
	if err := Validate(t); err != nil {
		return "", err
	}

	var body strings.Builder
	for _, b := range sortedBlocks(t.Blocks) {
		resolved, _ := Substitute(b.Content, data).(Content)
		fragment, err := RenderBlock(b, resolved, t.Theme)
		if err != nil {
			return "", err
		}
		body.WriteString(fragment)
	}
	return body.String(), nil
}

// Component returns the complete email document as a templ component.
// Nothing is written when the template fails validation.
func Component(t Template, data Data) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := Body(t, data)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, shell(t, body))
		return err
	})
}

// Generate compiles a template and data into a standalone HTML document.
// Tokens missing from data are left in place and unknown block types are
// skipped; structural template errors are returned.
func Generate(t Template, data Data) (string, error) {
	return templates.Render(context.Background(), Component(t, data))
}

func shell(t Template, body string) string {
	theme := t.Theme

	var b strings.Builder
	b.Grow(len(body) + 2048)
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">` + "\n<head>\n")
	b.WriteString(`<meta charset="UTF-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	b.WriteString(`<meta http-equiv="X-UA-Compatible" content="IE=edge">` + "\n")
	b.WriteString("<title>" + esc(t.Name) + "</title>\n")
	b.WriteString("<style>\n")
	fmt.Fprintf(&b, "body { margin: 0; padding: 0; font-family: %s; background-color: %s; color: %s; -webkit-text-size-adjust: 100%%; }\n",
		theme.Fonts.Body, theme.Colors.Background, theme.Colors.Text)
	b.WriteString("img { border: 0; outline: none; text-decoration: none; }\n")
	b.WriteString("table { border-collapse: collapse; }\n")
	b.WriteString("a { color: " + string(theme.Colors.Primary) + "; }\n")
	fmt.Fprintf(&b, ".container { max-width: %s; margin: 0 auto; background-color: #ffffff; }\n", theme.ContainerWidth())
	fmt.Fprintf(&b, ".progress-bar { background-color: %s; border-radius: 10px; height: 12px; overflow: hidden; }\n", theme.Colors.Border)
	fmt.Fprintf(&b, ".progress-fill { height: 12px; background-color: %s; }\n", theme.Colors.Accent)
	b.WriteString("@media only screen and (max-width: 620px) {\n")
	b.WriteString("  .container { max-width: 100% !important; width: 100% !important; }\n")
	b.WriteString("  .block { padding-left: 15px !important; padding-right: 15px !important; }\n")
	b.WriteString("  .progress-stat { display: block !important; width: 100% !important; padding-bottom: 10px !important; }\n")
	b.WriteString("}\n")
	b.WriteString("</style>\n</head>\n")
	b.WriteString("<body>\n")
	b.WriteString(`<div class="container">` + "\n")
	b.WriteString(body)
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}
