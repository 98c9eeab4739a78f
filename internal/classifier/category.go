package classifier

import "strings"

// categoryThreshold is the number of distinct keywords from a rule
// that must occur in the text before the category is selected.
const categoryThreshold = 2

// Classify scores text against each rule in declaration order and
// returns the first category whose keyword count reaches the
// threshold. This is deliberately first-match-wins rather than
// highest-score-wins; callers depend on the stable rule ordering. The
// second return is false when no category reaches the threshold.
func (t *RuleTable) Classify(text string) (string, bool) {
	for _, rule := range t.rules {
		matches := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				matches++
				if matches >= categoryThreshold {
					break
				}
			}
		}
		if matches >= categoryThreshold {
			return rule.Category, true
		}
	}
	return "", false
}
