// Package newsletter compiles themed, block-based templates into standalone HTML
// documents suitable for email delivery.
//
// A Template embeds a Theme and an ordered set of Blocks. Rendering resolves
// {NAME} tokens in each block's content from a flat Data map, renders every
// block with inline styles derived from the theme, and wraps the result in a
// document shell with reset styles and a narrow-viewport media query.
//
// # Usage
//
//	tpl, err := newsletter.TemplateByID("story-progress-update")
//	if err != nil {
//	    return err
//	}
//
//	html, err := newsletter.Generate(tpl, newsletter.Data{
//	    "STORY_TITLE":   "Clean Water Well",
//	    "RAISED_AMOUNT": "$7,200",
//	    "GOAL_AMOUNT":   "$10,000",
//	})
//
// Tokens absent from the data map are left verbatim, so a document can be
// compiled once per campaign and personalized per recipient afterwards:
//
//	html, _ := newsletter.Generate(tpl, campaignData)
//	body := newsletter.Personalize(html, newsletter.Data{"SUBSCRIBER_NAME": "Sam"})
//
// # Blocks
//
// Block content is a closed set of variants, one per BlockType:
//   - HeaderContent: title and subtitle on the theme's primary color
//   - TextContent: trusted markup emitted without escaping
//   - ImageContent: image with theme-derived corner radius and optional caption
//   - ButtonContent: call-to-action anchor in the primary or secondary color
//   - ProgressContent: raised, remaining and percentage stats with a bar
//   - StoryContent: story teaser card
//   - SpacerContent, DividerContent: layout helpers
//
// Blocks of an unknown type render as nothing. Per-block Styling overrides the
// defaults each block type derives from the theme.
//
// # Error Handling
//
// Generate never fails for missing data or unknown block types. Structural
// template errors are reported as sentinel errors:
//   - ErrDuplicateOrder, ErrDuplicateBlockID
//   - ErrContentMismatch: content variant does not match the block type
//   - ErrMissingField: a required content field is empty
//
// # Concurrency
//
// Catalogues are immutable and rendering holds no shared state, so Generate
// may be called from any number of goroutines.
package newsletter
