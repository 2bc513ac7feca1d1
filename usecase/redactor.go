package usecase

import (
	"regexp"
	"strings"
)

// Redactor masks financial identifiers in free text. It is the only gate in
// front of voice synthesis; no text may reach a TTS API without passing
// through Redact first.
type Redactor struct{}

type redactionRule struct {
	pattern *regexp.Regexp
	replace func(match string) string
}

// redactionRules apply strictly in order, each rule's output feeding the
// next rule's input. The 16-digit card rule runs before the bare 9-digit
// rule so a routing-shaped window inside a longer number is already masked
// when the 9-digit rule scans.
var redactionRules = []redactionRule{
	{
		// Social Security Numbers. Full mask, no digits survive.
		pattern: regexp.MustCompile(`\d{3}-\d{2}-\d{4}`),
		replace: func(string) string { return "XXX-XX-XXXX" },
	},
	{
		// 16-digit card/account groupings, keeping the last four digits.
		pattern: regexp.MustCompile(`\d{4}[ -]?\d{4}[ -]?\d{4}[ -]?\d{4}`),
		replace: maskCardNumber,
	},
	{
		// Any remaining bare 9-digit run has routing-number shape. Routing
		// numbers are fully masked; revealing even a suffix narrows the
		// issuing bank.
		pattern: regexp.MustCompile(`\d{9}`),
		replace: func(string) string { return "XXXX-XXXX-X" },
	},
}

func maskCardNumber(match string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, match)
	return "XXXX-XXXX-XXXX-" + digits[len(digits)-4:]
}

// NewRedactor creates a new redactor.
func NewRedactor() *Redactor {
	return &Redactor{}
}

// Redact applies the ordered rule set. It is pure and idempotent: redacting
// already-redacted text changes nothing, because no rule's replacement
// contains a digit run another rule matches.
func (r *Redactor) Redact(text string) string {
	for _, rule := range redactionRules {
		text = rule.pattern.ReplaceAllStringFunc(text, rule.replace)
	}
	return text
}
