// Package slug turns free text into lowercase ASCII identifiers.
//
//	slug.Make("Café Opening, 2024!")             // "cafe-opening-2024"
//	slug.Make("story-progress-update", slug.WithSuffix(6)) // "story-progress-update-x7g3k2"
//
// Campaign runs use it to derive readable ids when none is given.
package slug
