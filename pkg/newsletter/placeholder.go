package newsletter

import (
	"fmt"
	"regexp"
	"strconv"
)

// Data is the flat personalization context of one render: token name to value.
// Values are usually strings; numbers and booleans are formatted on insertion.
type Data map[string]any

// Merge returns a new Data holding d overlaid with other.
func (d Data) Merge(other Data) Data {
	out := make(Data, len(d)+len(other))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// tokenRegex matches {NAME} markers: an opening brace, one or more characters
// other than a closing brace, then a closing brace. Matches never overlap.
var tokenRegex = regexp.MustCompile(`\{([^}]+)\}`)

// SubstituteString replaces every {NAME} marker whose NAME is present in data.
// Unknown markers are left verbatim so that a later pass can resolve them.
// Inserted values are not re-scanned.
func SubstituteString(s string, data Data) string {
	return replaceTokens(s, data, nil)
}

// Personalize applies a second substitution pass to an already compiled HTML document.
// Values are HTML-escaped because they land in markup rather than block content.
//
// The pass scans the whole document, including values inserted by the first
// pass. A campaign-level value such as "Dear {SUBSCRIBER_NAME}," is therefore
// resolved per recipient here. Values inserted by this pass are not re-scanned.
// Callers that must keep first-pass values literal should not put recipient
// token names in them.
func Personalize(html string, data Data) string {
	return replaceTokens(html, data, esc)
}

func replaceTokens(s string, data Data, encode func(string) string) string {
	if len(data) == 0 || len(s) < 3 {
		return s
	}
	return tokenRegex.ReplaceAllStringFunc(s, func(token string) string {
		v, ok := data[token[1:len(token)-1]]
		if !ok {
			return token
		}
		str := stringify(v)
		if encode != nil {
			str = encode(str)
		}
		return str
	})
}

// Substitute walks content and resolves tokens in every string it contains.
// Maps and slices are copied, block content variants are rebuilt with resolved
// fields, and any other value is returned unchanged.
func Substitute(content any, data Data) any {
	switch v := content.(type) {
	case string:
		return SubstituteString(v, data)
	case Content:
		return v.substitute(data)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = Substitute(val, data)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = SubstituteString(val, data)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = Substitute(val, data)
		}
		return out
	case []string:
		out := make([]string, len(v))
		for i, val := range v {
			out[i] = SubstituteString(val, data)
		}
		return out
	default:
		return content
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
