// Package themes assigns wellness-discourse theme labels to article text.
//
// Themes are a fixed supervised taxonomy (IDs 1-6), distinct from topic
// clusters: a theme is assigned by keyword rules, a topic by unsupervised
// clustering. An article can carry several themes at once.
package themes

import "strings"

// DefaultTheme is assigned when no rule matches. Labeling never produces
// an empty theme set.
const DefaultTheme = 1

// Rule maps one theme ID to its trigger keywords. A rule fires when the
// text contains any keyword as a substring, case-insensitive ("stress"
// matches inside "distressed"; containment, not token equality).
type Rule struct {
	ID       int
	Keywords []string
}

// DefaultRules is the built-in rule table, evaluated in order. The keyword
// lists are load-bearing for snapshot compatibility; edit with care.
//
// Note: "community" appears under both 4 and 6, so community-centered
// articles always carry both facets. That overlap is intentional in the
// labeled data this table reproduces.
func DefaultRules() []Rule {
	return []Rule{
		{ID: 1, Keywords: []string{"relax", "reset", "renewal", "mental", "stress", "burnout", "healing", "yoga", "retreat"}}, // stress relief + burnout recovery
		{ID: 2, Keywords: []string{"body", "self", "image", "muffins", "baths", "spa"}},                                       // body love + self-image
		{ID: 3, Keywords: []string{"meditation", "movement", "beginners", "try", "experiences"}},                              // movement access + beginner-friendly
		{ID: 4, Keywords: []string{"spiritual", "culture", "community", "mindfulness", "nature", "sanctuaries", "healing arts"}}, // cultural / spiritual connection
		{ID: 5, Keywords: []string{"free", "access", "affordable", "low cost"}},                                               // financial access + mutual aid
		{ID: 6, Keywords: []string{"safe spaces", "community", "together", "group", "nonprofit", "support"}},                  // community care + solidarity
	}
}

// Labeler evaluates an ordered rule table against article text.
type Labeler struct {
	rules []Rule
}

// NewLabeler creates a labeler for the given rules. Rules are evaluated in
// slice order, which fixes the order of IDs in the result.
func NewLabeler(rules []Rule) *Labeler {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		normalized[i] = Rule{ID: r.ID, Keywords: kws}
	}
	return &Labeler{rules: normalized}
}

// Label returns the theme IDs whose rules fire on text, in rule order.
// Each rule contributes its ID at most once. When nothing fires the result
// is {DefaultTheme}, never empty.
func (l *Labeler) Label(text string) []int {
	lower := strings.ToLower(text)

	var ids []int
	for _, rule := range l.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				ids = append(ids, rule.ID)
				break
			}
		}
	}

	if len(ids) == 0 {
		ids = []int{DefaultTheme}
	}
	return ids
}
