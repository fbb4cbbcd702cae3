package newsletter

import (
	"fmt"
	"slices"
)

// Template is an ordered set of blocks bound to one theme.
// The theme is embedded so rendering never needs a registry lookup.
type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Subject     string  `json:"subject"`
	Theme       Theme   `json:"theme"`
	Blocks      []Block `json:"blocks"`
	IsDefault   bool    `json:"is_default"`
}

// WithTheme returns a copy of the template bound to another theme.
func (t Template) WithTheme(theme Theme) Template {
	t.Theme = theme
	t.Blocks = slices.Clone(t.Blocks)
	return t
}

func (t Template) clone() Template {
	t.Blocks = slices.Clone(t.Blocks)
	return t
}

var templateCatalog = []Template{
	{
		ID:          "story-progress-update",
		Name:        "Story Progress Update",
		Description: "Share fundraising progress on a story with its followers",
		Subject:     "Progress update: {STORY_TITLE}",
		Theme:       mustTheme("modern-cyan"),
		IsDefault:   true,
		Blocks: []Block{
			{
				ID:   "header",
				Type: BlockHeader,
				Content: HeaderContent{
					Title:    "{STORY_TITLE}",
					Subtitle: "Hi {SUBSCRIBER_NAME}, here is the latest from the story you follow",
				},
				Order: 1,
			},
			{
				ID:      "story-image",
				Type:    BlockImage,
				Content: ImageContent{Src: "{STORY_IMAGE}", Alt: "{STORY_TITLE}"},
				Order:   2,
			},
			{
				ID:      "message",
				Type:    BlockText,
				Content: TextContent{Text: "<p style=\"margin: 0;\">{CUSTOM_MESSAGE}</p>"},
				Order:   3,
			},
			{
				ID:   "progress",
				Type: BlockProgress,
				Content: ProgressContent{
					Raised:     "{RAISED_AMOUNT}",
					Goal:       "{GOAL_AMOUNT}",
					Remaining:  "{REMAINING_AMOUNT}",
					Percentage: "{PROGRESS_PERCENTAGE}",
				},
				Order: 4,
			},
			{
				ID:      "donate",
				Type:    BlockButton,
				Content: ButtonContent{Text: "Donate Now", URL: "{DONATION_URL}", Style: ButtonPrimary},
				Order:   5,
			},
			{ID: "divider", Type: BlockDivider, Content: DividerContent{}, Order: 6},
			{
				ID:   "footer",
				Type: BlockText,
				Content: TextContent{
					Text: "<p style=\"margin: 0;\">Sent by <a href=\"{ORGANIZATION_WEBSITE}\">{ORGANIZATION_NAME}</a>. " +
						"<a href=\"{UNSUBSCRIBE_URL}\">Unsubscribe</a></p>",
				},
				Styling: Styling{FontSize: Px(12), TextColor: "#94a3b8", TextAlign: AlignCenter},
				Order:   7,
			},
		},
	},
	{
		ID:          "welcome-subscriber",
		Name:        "Welcome New Subscriber",
		Description: "Greet a new follower and introduce the organization",
		Subject:     "Welcome to {ORGANIZATION_NAME}",
		Theme:       mustTheme("elegant-plum"),
		Blocks: []Block{
			{
				ID:   "header",
				Type: BlockHeader,
				Content: HeaderContent{
					Title:    "Welcome, {SUBSCRIBER_NAME}!",
					Subtitle: "Thank you for following {ORGANIZATION_NAME}",
				},
				Order: 1,
			},
			{
				ID:   "intro",
				Type: BlockText,
				Content: TextContent{
					Text: "<p>You will receive updates whenever a story you follow reaches a milestone. " +
						"Every share and every gift moves a story closer to its goal.</p>",
				},
				Order: 2,
			},
			{
				ID:   "featured",
				Type: BlockStory,
				Content: StoryContent{
					Title:    "{STORY_TITLE}",
					Summary:  "{STORY_SUMMARY}",
					ImageURL: "{STORY_IMAGE}",
					URL:      "{STORY_URL}",
				},
				Order: 3,
			},
			{ID: "spacer", Type: BlockSpacer, Content: SpacerContent{Height: Px(20)}, Order: 4},
			{
				ID:      "visit",
				Type:    BlockButton,
				Content: ButtonContent{Text: "Explore our stories", URL: "{ORGANIZATION_WEBSITE}", Style: ButtonSecondary},
				Order:   5,
			},
			{ID: "divider", Type: BlockDivider, Content: DividerContent{}, Order: 6},
			{
				ID:      "footer",
				Type:    BlockText,
				Content: TextContent{Text: "<p style=\"margin: 0;\"><a href=\"{UNSUBSCRIBE_URL}\">Unsubscribe</a></p>"},
				Styling: Styling{FontSize: Px(12), TextAlign: AlignCenter},
				Order:   7,
			},
		},
	},
	{
		ID:          "urgent-appeal",
		Name:        "Urgent Appeal",
		Description: "A short, high-contrast call to close the funding gap",
		Subject:     "Only {REMAINING_AMOUNT} to go for {STORY_TITLE}",
		Theme:       mustTheme("bold-sunset"),
		Blocks: []Block{
			{
				ID:   "header",
				Type: BlockHeader,
				Content: HeaderContent{
					Title:    "We are almost there",
					Subtitle: "{STORY_TITLE} needs {REMAINING_AMOUNT} more",
				},
				Styling: Styling{Padding: "50px 30px", FontSize: Px(32)},
				Order:   1,
			},
			{
				ID:   "progress",
				Type: BlockProgress,
				Content: ProgressContent{
					Raised:     "{RAISED_AMOUNT}",
					Goal:       "{GOAL_AMOUNT}",
					Remaining:  "{REMAINING_AMOUNT}",
					Percentage: "{PROGRESS_PERCENTAGE}",
				},
				Order: 2,
			},
			{
				ID:      "appeal",
				Type:    BlockText,
				Content: TextContent{Text: "<p>{CUSTOM_MESSAGE}</p>"},
				Order:   3,
			},
			{
				ID:      "donate",
				Type:    BlockButton,
				Content: ButtonContent{Text: "Give today", URL: "{DONATION_URL}", Style: ButtonPrimary},
				Order:   4,
			},
			{
				ID:      "footer",
				Type:    BlockText,
				Content: TextContent{Text: "<p style=\"margin: 0;\"><a href=\"{UNSUBSCRIBE_URL}\">Unsubscribe</a></p>"},
				Styling: Styling{FontSize: Px(12), TextAlign: AlignCenter},
				Order:   5,
			},
		},
	},
	{
		ID:          "monthly-digest",
		Name:        "Monthly Impact Digest",
		Description: "A calm monthly roundup of the stories a donor supports",
		Subject:     "Your {MONTH} impact digest",
		Theme:       mustTheme("classic-navy"),
		Blocks: []Block{
			{
				ID:      "header",
				Type:    BlockHeader,
				Content: HeaderContent{Title: "{MONTH} at {ORGANIZATION_NAME}", Subtitle: "What your support made possible"},
				Order:   1,
			},
			{
				ID:   "lead",
				Type: BlockStory,
				Content: StoryContent{
					Title:    "{STORY_TITLE}",
					Summary:  "{STORY_SUMMARY}",
					URL:      "{STORY_URL}",
					LinkText: "See the update",
				},
				Order: 2,
			},
			{ID: "divider", Type: BlockDivider, Content: DividerContent{}, Order: 3},
			{
				ID:      "message",
				Type:    BlockText,
				Content: TextContent{Text: "<p>{CUSTOM_MESSAGE}</p>"},
				Order:   4,
			},
			{
				ID:      "footer",
				Type:    BlockText,
				Content: TextContent{Text: "<p style=\"margin: 0;\"><a href=\"{UNSUBSCRIBE_URL}\">Unsubscribe</a></p>"},
				Styling: Styling{FontSize: Px(12), TextAlign: AlignCenter},
				Order:   5,
			},
		},
	},
}

// Templates returns the template catalogue in display order.
// Each template is a copy; mutating it does not affect the catalogue.
func Templates() []Template {
	out := make([]Template, len(templateCatalog))
	for i, t := range templateCatalog {
		out[i] = t.clone()
	}
	return out
}

// TemplateByID looks a template up by its id.
func TemplateByID(id string) (Template, error) {
	for _, t := range templateCatalog {
		if t.ID == id {
			return t.clone(), nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
}
