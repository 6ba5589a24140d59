package swagger

import (
	"regexp"

	"github.com/cgrand/ring-swagger/schema"
)

// A path token is a colon-prefixed run of characters excluding the colon,
// alternative, capture-group and segment delimiters.
var pathTokenPattern = regexp.MustCompile(`:([^:|(/]+)`)

// SwaggerPath rewrites a colon-style URI template into the brace style
// Swagger 1.2 expects: /user/:id/order/:order-id -> /user/{id}/order/{order-id}.
func SwaggerPath(uri string) string {
	return pathTokenPattern.ReplaceAllString(uri, "{$1}")
}

// pathTokens returns the template's parameter names in extraction order.
func pathTokens(uri string) []string {
	matches := pathTokenPattern.FindAllStringSubmatch(uri, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// ImpliedPathParameters synthesizes the path parameter spec implied by a URI
// template: every token becomes a required string field, in extraction order.
// Returns nil when the template declares no tokens.
func ImpliedPathParameters(uri string) *ParameterSpec {
	tokens := pathTokens(uri)
	if len(tokens) == 0 {
		return nil
	}
	fields := make([]schema.Field, 0, len(tokens))
	for _, tok := range tokens {
		fields = append(fields, schema.Req(tok, schema.String))
	}
	return &ParameterSpec{
		Location: InPath,
		Schema:   &schema.Model{Fields: fields},
	}
}
