package slug

import (
	"crypto/rand"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*options)

type options struct {
	maxLength    int
	separator    string
	suffixLength int
}

// MaxLength truncates the slug, suffix included, to n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxLength = n
		}
	}
}

// Separator replaces the default "-" between words.
func Separator(s string) Option {
	return func(o *options) {
		if s != "" {
			o.separator = s
		}
	}
}

// WithSuffix appends a random lowercase alphanumeric suffix of the given length.
func WithSuffix(length int) Option {
	return func(o *options) {
		if length > 0 {
			o.suffixLength = length
		}
	}
}

// Make converts s into a lowercase ASCII slug. Diacritics are folded
// ("Café" becomes "cafe") and any other run of non-alphanumeric characters
// collapses into a single separator.
func Make(s string, opts ...Option) string {
	o := options{separator: "-"}
	for _, opt := range opts {
		opt(&o)
	}

	limit := o.maxLength
	if o.suffixLength > 0 && limit > 0 {
		limit -= o.suffixLength + len(o.separator)
		if limit < 0 {
			limit = 0
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range fold(s) {
		r = unicode.ToLower(r)
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			pendingSep = b.Len() > 0
			continue
		}
		extra := 1
		if pendingSep {
			extra += len(o.separator)
		}
		if limit > 0 && b.Len()+extra > limit {
			break
		}
		if limit == 0 && o.maxLength > 0 {
			break
		}
		if pendingSep {
			b.WriteString(o.separator)
			pendingSep = false
		}
		b.WriteRune(r)
	}

	result := b.String()
	if o.suffixLength == 0 {
		return result
	}
	suffix := randomSuffix(o.suffixLength)
	if o.maxLength > 0 && len(suffix) > o.maxLength {
		suffix = suffix[:o.maxLength]
	}
	if result == "" {
		return suffix
	}
	return result + o.separator + suffix
}

// fold strips combining marks after canonical decomposition.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func randomSuffix(n int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}
