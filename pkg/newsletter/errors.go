package newsletter

import "errors"

var (
	// ErrDuplicateOrder is returned when two blocks of one template share an order value.
	ErrDuplicateOrder = errors.New("newsletter.errors.duplicate_block_order")

	// ErrDuplicateBlockID is returned when two blocks of one template share an id.
	ErrDuplicateBlockID = errors.New("newsletter.errors.duplicate_block_id")

	// ErrMissingField is returned when a block's content lacks a field its type requires.
	ErrMissingField = errors.New("newsletter.errors.missing_content_field")

	// ErrContentMismatch is returned when a block's content variant does not match its type.
	ErrContentMismatch = errors.New("newsletter.errors.content_type_mismatch")

	// ErrTemplateNotFound is returned by TemplateByID for an unknown template id.
	ErrTemplateNotFound = errors.New("newsletter.errors.template_not_found")

	// ErrThemeNotFound is returned by ThemeByID for an unknown theme id.
	ErrThemeNotFound = errors.New("newsletter.errors.theme_not_found")
)
