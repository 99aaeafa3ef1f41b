package services

import "regexp"

var (
	angleBrackets  = regexp.MustCompile(`[<>]`)
	javascriptURI  = regexp.MustCompile(`(?i)javascript:`)
	inlineHandlers = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// SanitizeString strips the markup-injection patterns from one value.
func SanitizeString(s string) string {
	s = angleBrackets.ReplaceAllString(s, "")
	s = javascriptURI.ReplaceAllString(s, "")
	s = inlineHandlers.ReplaceAllString(s, "")
	return s
}

// SanitizeDocument walks an arbitrarily nested document and scrubs
// every string leaf. Non-string leaves and the map/slice shape are
// left untouched.
func SanitizeDocument(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = sanitizeValue(v)
	}
	return out
}

func sanitizeValue(v interface{}) interface{} {
	switch value := v.(type) {
	case string:
		return SanitizeString(value)
	case map[string]interface{}:
		return SanitizeDocument(value)
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = sanitizeValue(item)
		}
		return out
	default:
		return v
	}
}
