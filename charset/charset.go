// Package charset implements the tokenizer's external character-encoding
// collaborator: extracting a charset label from a Content-Type or
// <meta charset> string, and decoding raw bytes against it into the UTF-8
// stream the tokenizer's buffer queue consumes.
package charset

import (
	"strings"
)

// ExtractLabel scans s for a "charset" key and returns its value, the way a
// <meta http-equiv=Content-Type content="..."> or a Content-Type header
// would encode it. It recognizes both the bare "charset=value" form and the
// "...; charset=value" parameter form, case-insensitively, searching for the
// key anywhere in s rather than requiring it immediately after a mimetype
// prefix. "charset" not immediately followed by '=' (after optional
// whitespace) is not a match: a bare "charset utf8" is not the key=value
// form.
func ExtractLabel(s string) (string, bool) {
	lower := strings.ToLower(s)
	const key = "charset"
	i := 0
	for {
		idx := strings.Index(lower[i:], key)
		if idx < 0 {
			return "", false
		}
		pos := i + idx + len(key)
		j := pos
		for j < len(s) && s[j] == ' ' {
			j++
		}
		if j < len(s) && s[j] == '=' {
			j++
			for j < len(s) && s[j] == ' ' {
				j++
			}
			start := j
			if j < len(s) && (s[j] == '"' || s[j] == '\'') {
				quote := s[j]
				j++
				start = j
				for j < len(s) && s[j] != quote {
					j++
				}
				return s[start:j], true
			}
			for j < len(s) && s[j] != ';' && s[j] != ' ' {
				j++
			}
			return s[start:j], true
		}
		i = pos
	}
}
