package domain

import "strings"

// KeyPolicy controls how identity keys and booking references are normalized
// before matching. The default trims surrounding whitespace, which tolerates
// hand-maintained CSV exports; Strict keeps them byte-exact. Matching is
// case-sensitive either way. Loaders and the reconciler must share one
// policy, otherwise keys and references stop lining up.
type KeyPolicy struct {
	Strict bool
}

func (p KeyPolicy) Normalize(s string) string {
	if p.Strict {
		return s
	}
	return strings.TrimSpace(s)
}
