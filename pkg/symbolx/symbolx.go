package symbolx

import "strings"

type ruleKind int

const (
	rulePrefix ruleKind = iota
	ruleSuffix
)

type rule struct {
	kind  ruleKind
	token string
}

// rules are evaluated in order, at most one applies.
// "-USDT" must come before "USDT" so "BTC-USDT" strips to "BTC", not "BTC-".
var rules = []rule{
	{rulePrefix, "KRW-"},
	{ruleSuffix, "-USDT"},
	{ruleSuffix, "-SWAP"},
	{ruleSuffix, "USDT"},
}

// Normalize maps a raw exchange symbol to its display form.
// Unrecognized formats pass through unchanged, and a match that would
// leave an empty string is ignored.
func Normalize(raw string) string {
	for _, r := range rules {
		var stripped string
		switch r.kind {
		case rulePrefix:
			if !strings.HasPrefix(raw, r.token) {
				continue
			}
			stripped = strings.TrimPrefix(raw, r.token)
		case ruleSuffix:
			if !strings.HasSuffix(raw, r.token) {
				continue
			}
			stripped = strings.TrimSuffix(raw, r.token)
		}
		if stripped == "" {
			return raw
		}
		return stripped
	}
	return raw
}
