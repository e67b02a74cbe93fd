package vanilla

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// copyPolicy admits the inline markup allowed in configurable page copy and
// help text.
func copyPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("b", "strong", "em", "i", "code", "br")
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowStandardURLs()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

type sanitizer struct {
	copy  *bluemonday.Policy
	plain *bluemonday.Policy
}

func newSanitizer(policy *bluemonday.Policy) sanitizer {
	if policy == nil {
		policy = copyPolicy()
	}
	return sanitizer{copy: policy, plain: bluemonday.StrictPolicy()}
}

// markup returns HTML safe to emit unescaped.
func (s sanitizer) markup(value string) string {
	return strings.TrimSpace(s.copy.Sanitize(value))
}

// text strips every tag. The result is unescaped again because templates
// escape on output.
func (s sanitizer) text(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.plain.Sanitize(value)))
}
