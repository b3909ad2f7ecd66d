package validation

import "strings"

// NormalizePath converts a schema-validator instance location (a JSON
// pointer such as "/cameras/0/id") into the dotted/bracketed grammar
// used everywhere else ("cameras[0].id"). It is total: malformed input
// degrades to a best-effort reconstruction, since paths are diagnostic
// rather than a primary contract. The root pointer normalizes to "".
func NormalizePath(raw string) string {
	if raw == "" || raw == "/" {
		return ""
	}

	var b strings.Builder
	for _, seg := range strings.Split(strings.TrimPrefix(raw, "/"), "/") {
		if seg == "" {
			continue
		}
		// JSON pointer escapes, ~1 before ~0 per RFC 6901.
		seg = strings.ReplaceAll(seg, "~1", "/")
		seg = strings.ReplaceAll(seg, "~0", "~")

		if isIndex(seg) {
			b.WriteString("[")
			b.WriteString(seg)
			b.WriteString("]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(seg)
	}
	return b.String()
}

// isIndex reports whether a pointer segment is an array index. JSON
// pointers do not distinguish indexes from numeric object keys, so
// channel-map keys (the schema's one numeric-property spot) also render
// bracketed; the bracketed form is unambiguous enough for diagnostics.
func isIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
