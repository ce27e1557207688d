package typescript

import (
	"strings"
	"unicode"
)

func PascalCase(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for _, word := range words {
		result.WriteString(capitalize(word))
	}
	return result.String()
}

func CamelCase(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for i, word := range words {
		if i == 0 {
			result.WriteString(strings.ToLower(word))
		} else {
			result.WriteString(capitalize(word))
		}
	}
	return result.String()
}

func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				if current.Len() > 0 {
					words = append(words, current.String())
					current.Reset()
				}
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

var tsReservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true,
}

// EscapeReserved appends an underscore to TypeScript reserved words so
// they stay usable as parameter names.
func EscapeReserved(s string) string {
	if tsReservedWords[s] {
		return s + "_"
	}
	return s
}

// IsValidIdentifier reports whether s can appear unquoted as a property
// key or parameter name.
func IsValidIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return !tsReservedWords[s]
}

// ToIdentifier turns an arbitrary string into a usable identifier,
// prefixing a leading digit and escaping reserved words.
func ToIdentifier(s string) string {
	result := CamelCase(s)
	if len(result) == 0 {
		return "value"
	}
	if unicode.IsDigit(rune(result[0])) {
		result = "_" + result
	}
	return EscapeReserved(result)
}

// EscapeComment makes free text safe inside a JSDoc block: comment
// terminators are defused and line breaks collapse to single spaces.
func EscapeComment(s string) string {
	s = strings.ReplaceAll(s, "*/", "*")
	s = strings.ReplaceAll(s, "/*", "*")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

// QuoteKey wraps s in single quotes unless it is already a valid
// identifier.
func QuoteKey(s string) string {
	if IsValidIdentifier(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
}
