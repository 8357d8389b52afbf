package sanitize

import (
	"regexp"
	"strings"

	"github.com/OuicestnousCA/oca/constant"
)

// Order metadata supplied at checkout is later rendered in admin views
// and confirmation emails, so every string is stripped of script tags,
// inline event handlers and residual markup before it is forwarded to
// the gateway or persisted.

var (
	scriptRe  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	handlerRe = regexp.MustCompile(`(?i)\son\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]+)`)
	tagRe     = regexp.MustCompile(`<[^>]*>`)
	refRe     = regexp.MustCompile(`^[A-Za-z0-9._=-]+$`)
)

// String strips script blocks (with their contents), inline event
// handler attributes and any remaining HTML tags, then drops stray
// angle brackets so the result can never reopen markup.
func String(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = handlerRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}

// Reference reports whether ref is safe to interpolate into the
// gateway's verify URL: bounded length, allow-listed characters only.
func Reference(ref string) bool {
	if ref == "" || len(ref) > constant.MaxReferenceLength {
		return false
	}
	return refRe.MatchString(ref)
}
