package swagger

import (
	"strings"
	"unicode"
)

// Nickname synthesizes a deterministic operation id from a method and URI
// template: path and dash separators become word breaks, path parameters read
// as "by <name>", and the words are camel cased. Nickname("get", "/user/:id")
// is "getUserById". Collision avoidance across routes is the caller's
// responsibility.
func Nickname(method, uri string) string {
	s := method + " " + uri
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, ":", " by ")
	return camelCase(strings.Fields(s))
}

func camelCase(words []string) string {
	var b strings.Builder
	for i, w := range words {
		r := []rune(w)
		if i == 0 {
			r[0] = unicode.ToLower(r[0])
		} else {
			r[0] = unicode.ToUpper(r[0])
		}
		b.WriteString(string(r))
	}
	return b.String()
}
