package newsletter

import (
	"fmt"
	"strings"
)

// BlockType identifies the renderer used for a block.
type BlockType string

const (
	BlockHeader   BlockType = "header"
	BlockText     BlockType = "text"
	BlockImage    BlockType = "image"
	BlockButton   BlockType = "button"
	BlockProgress BlockType = "progress"
	BlockStory    BlockType = "story"
	BlockSpacer   BlockType = "spacer"
	BlockDivider  BlockType = "divider"
)

// Known reports whether the renderer implements the block type.
func (t BlockType) Known() bool {
	switch t {
	case BlockHeader, BlockText, BlockImage, BlockButton,
		BlockProgress, BlockStory, BlockSpacer, BlockDivider:
		return true
	}
	return false
}

// Block is one renderable unit of a template.
// Order defines the render sequence; array position is irrelevant.
type Block struct {
	ID      string    `json:"id"`
	Type    BlockType `json:"type"`
	Content Content   `json:"content"`
	Styling Styling   `json:"styling"`
	Order   int       `json:"order"`
}

// Content is the type-specific payload of a block.
// Every variant may contain unresolved {NAME} markers in its string fields.
type Content interface {
	blockType() BlockType
	validate() error
	substitute(data Data) Content
}

func missing(t BlockType, field string) error {
	return fmt.Errorf("%w: %s block requires %q", ErrMissingField, t, field)
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

type HeaderContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

func (HeaderContent) blockType() BlockType { return BlockHeader }

func (c HeaderContent) validate() error {
	if !present(c.Title) {
		return missing(BlockHeader, "title")
	}
	if !present(c.Subtitle) {
		return missing(BlockHeader, "subtitle")
	}
	return nil
}

func (c HeaderContent) substitute(data Data) Content {
	c.Title = SubstituteString(c.Title, data)
	c.Subtitle = SubstituteString(c.Subtitle, data)
	return c
}

// TextContent carries a trusted markup fragment emitted without escaping.
type TextContent struct {
	Text string `json:"text"`
}

func (TextContent) blockType() BlockType { return BlockText }

func (c TextContent) validate() error {
	if !present(c.Text) {
		return missing(BlockText, "text")
	}
	return nil
}

func (c TextContent) substitute(data Data) Content {
	c.Text = SubstituteString(c.Text, data)
	return c
}

type ImageContent struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

func (ImageContent) blockType() BlockType { return BlockImage }

func (c ImageContent) validate() error {
	if !present(c.Src) {
		return missing(BlockImage, "src")
	}
	if !present(c.Alt) {
		return missing(BlockImage, "alt")
	}
	return nil
}

func (c ImageContent) substitute(data Data) Content {
	c.Src = SubstituteString(c.Src, data)
	c.Alt = SubstituteString(c.Alt, data)
	c.Caption = SubstituteString(c.Caption, data)
	return c
}

// ButtonVariant selects the theme color of a button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

type ButtonContent struct {
	Text  string        `json:"text"`
	URL   string        `json:"url"`
	Style ButtonVariant `json:"style"`
}

func (ButtonContent) blockType() BlockType { return BlockButton }

func (c ButtonContent) validate() error {
	if !present(c.Text) {
		return missing(BlockButton, "text")
	}
	if !present(c.URL) {
		return missing(BlockButton, "url")
	}
	if !present(string(c.Style)) {
		return missing(BlockButton, "style")
	}
	return nil
}

func (c ButtonContent) substitute(data Data) Content {
	c.Text = SubstituteString(c.Text, data)
	c.URL = SubstituteString(c.URL, data)
	return c
}

// ProgressContent holds preformatted fundraising figures.
// Raised and Goal are parsed back into numbers to size the bar.
type ProgressContent struct {
	Raised     string `json:"raised"`
	Goal       string `json:"goal"`
	Remaining  string `json:"remaining"`
	Percentage string `json:"percentage"`
}

func (ProgressContent) blockType() BlockType { return BlockProgress }

func (c ProgressContent) validate() error {
	if !present(c.Raised) {
		return missing(BlockProgress, "raised")
	}
	if !present(c.Goal) {
		return missing(BlockProgress, "goal")
	}
	if !present(c.Remaining) {
		return missing(BlockProgress, "remaining")
	}
	if !present(c.Percentage) {
		return missing(BlockProgress, "percentage")
	}
	return nil
}

func (c ProgressContent) substitute(data Data) Content {
	c.Raised = SubstituteString(c.Raised, data)
	c.Goal = SubstituteString(c.Goal, data)
	c.Remaining = SubstituteString(c.Remaining, data)
	c.Percentage = SubstituteString(c.Percentage, data)
	return c
}

// StoryContent is a teaser card linking to a fundraising story.
type StoryContent struct {
	Title    string `json:"title"`
	Summary  string `json:"summary,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	URL      string `json:"url,omitempty"`
	LinkText string `json:"link_text,omitempty"`
}

func (StoryContent) blockType() BlockType { return BlockStory }

func (c StoryContent) validate() error {
	if !present(c.Title) {
		return missing(BlockStory, "title")
	}
	return nil
}

func (c StoryContent) substitute(data Data) Content {
	c.Title = SubstituteString(c.Title, data)
	c.Summary = SubstituteString(c.Summary, data)
	c.ImageURL = SubstituteString(c.ImageURL, data)
	c.URL = SubstituteString(c.URL, data)
	c.LinkText = SubstituteString(c.LinkText, data)
	return c
}

// SpacerContent sets the spacer height; zero means the default 30px.
type SpacerContent struct {
	Height Length `json:"height,omitempty"`
}

func (SpacerContent) blockType() BlockType { return BlockSpacer }
func (SpacerContent) validate() error      { return nil }

func (c SpacerContent) substitute(Data) Content { return c }

type DividerContent struct{}

func (DividerContent) blockType() BlockType       { return BlockDivider }
func (DividerContent) validate() error            { return nil }
func (c DividerContent) substitute(Data) Content { return c }

// checkVariant verifies that content is the variant the block type expects.
// Spacer and divider blocks accept nil content.
func checkVariant(b Block, c Content) error {
	if c == nil {
		switch b.Type {
		case BlockSpacer, BlockDivider:
			return nil
		}
		return fmt.Errorf("%w: block %q of type %s has no content", ErrContentMismatch, b.ID, b.Type)
	}
	if c.blockType() != b.Type {
		return fmt.Errorf("%w: block %q of type %s carries %s content", ErrContentMismatch, b.ID, b.Type, c.blockType())
	}
	return nil
}

// checkContent runs checkVariant and then the required-field checks of the
// variant. It applies to template content before substitution.
func checkContent(b Block, c Content) error {
	if err := checkVariant(b, c); err != nil {
		return err
	}
	if c == nil {
		return nil
	}
	if err := c.validate(); err != nil {
		return fmt.Errorf("block %q: %w", b.ID, err)
	}
	return nil
}
