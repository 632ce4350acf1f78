// Package naming derives canonical scenario phrases from requirement text.
// Scenario is a pure function: identical text and ordinal always produce
// the identical phrase. Builders use it when composing draft titles; it
// never consults the Ruleset or any other state.
package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pattern pairs keep match order deterministic: first hit wins within a
// table, and tables are consulted in a fixed order.
type pattern struct {
	re   *regexp.Regexp
	name string
}

// Action verb families, most specific first.
var actionPatterns = []pattern{
	{regexp.MustCompile(`rotat(?:e|es|ing)`), "Rotate"},
	{regexp.MustCompile(`mirror(?:s|ing)?\s+horizontally`), "Mirror Horizontally"},
	{regexp.MustCompile(`mirror(?:s|ing)?\s+vertically`), "Mirror Vertically"},
	{regexp.MustCompile(`flip(?:s|ping)?\s+horizontally`), "Mirror Horizontally"},
	{regexp.MustCompile(`flip(?:s|ping)?\s+vertically`), "Mirror Vertically"},
	{regexp.MustCompile(`enable(?:d|s)?`), "Enable"},
	{regexp.MustCompile(`disable(?:d|s)?`), "Disable"},
	{regexp.MustCompile(`activate(?:d|s)?`), "Activate"},
	{regexp.MustCompile(`deactivate(?:d|s)?`), "Deactivate"},
	{regexp.MustCompile(`toggle(?:d|s)?`), "Toggle"},
	{regexp.MustCompile(`show(?:n|s)?`), "Show"},
	{regexp.MustCompile(`hide(?:s)?|hidden`), "Hide"},
	{regexp.MustCompile(`create(?:d|s)?`), "Create"},
	{regexp.MustCompile(`add(?:ed|s)?\b`), "Add"},
	{regexp.MustCompile(`remove(?:d|s)?`), "Remove"},
	{regexp.MustCompile(`delete(?:d|s)?`), "Delete"},
	{regexp.MustCompile(`modify|modifies`), "Modify"},
	{regexp.MustCompile(`update(?:d|s)?`), "Update"},
	{regexp.MustCompile(`undo`), "Undo"},
	{regexp.MustCompile(`redo`), "Redo"},
	{regexp.MustCompile(`persist(?:s|ed|ent)?`), "Persist"},
	{regexp.MustCompile(`remain(?:s|ing)?`), "Remain"},
	{regexp.MustCompile(`stay(?:s)?`), "Stay"},
	{regexp.MustCompile(`appl(?:y|ies|ied)`), "Apply"},
	{regexp.MustCompile(`affect(?:s|ed)?`), "Affect"},
}

// Outcome families. "Available In <X>" carries the captured surface name.
var outcomePatterns = []pattern{
	{regexp.MustCompile(`immediat(?:e|ely)`), "Immediately"},
	{regexp.MustCompile(`in-place|in place`), "In Place"},
	{regexp.MustCompile(`proportions?\s+(?:unchanged|preserved|maintained)`), "Proportions Unchanged"},
	{regexp.MustCompile(`only\s+selected`), "Only Selected"},
	{regexp.MustCompile(`multi(?:-)?select(?:ed|ion)?`), "Multi Selection"},
	{regexp.MustCompile(`preserv(?:e|es|ing)\s+relative\s+(?:position|layout)`), "Preserving Relative Layout"},
	{regexp.MustCompile(`disabled?\s+(?:when|if)\s+no\s+(?:selection|object)`), "Disabled When No Selection"},
	{regexp.MustCompile(`available\s+in\s+(?:the\s+)?(.+?)(?:\.|$)`), "Available In $1"},
	{regexp.MustCompile(`synchronized?`), "Synchronized"},
	{regexp.MustCompile(`consistent(?:ly)?`), "Consistent"},
}

// Negative-scenario cues take priority over composition for ordinals > 1.
var negativePatterns = []pattern{
	{regexp.MustCompile(`no\s+(?:selection|object(?:s)?)\s+selected`), "No Selection"},
	{regexp.MustCompile(`does?\s+not\s+(?:modify|change|affect)`), "Does Not Affect"},
	{regexp.MustCompile(`(?:hidden|not\s+visible)\s+(?:when|for)`), "Hidden For"},
	{regexp.MustCompile(`not\s+available`), "Not Available"},
	{regexp.MustCompile(`disabled`), "Disabled State"},
}

// Target vocabulary, checked in order; longer phrases first so
// "selected object" wins over "object".
var targets = []struct{ keyword, name string }{
	{"multi-selected object", "Multi-Selected Objects"},
	{"selected object", "Selected Object"},
	{"canvas", "Canvas"},
	{"dialog", "Dialog"},
	{"panel", "Panel"},
	{"menu", "Menu"},
	{"toolbar", "Toolbar"},
	{"control", "Control"},
	{"button", "Button"},
	{"toggle", "Toggle"},
	{"field", "Field"},
}

// Scenario maps one requirement's text and its 1-based ordinal position to
// a canonical "Area / Action / Outcome"-style phrase. Ordinal 1 is always
// availability-flavored: by convention the first requirement in any list
// describes the entry point only.
func Scenario(text string, ordinal int) string {
	lower := strings.ToLower(strings.TrimSpace(text))

	if ordinal == 1 {
		return firstOrdinalScenario(lower)
	}

	for _, p := range negativePatterns {
		if p.re.MatchString(lower) {
			return negativeScenario(lower, p.name)
		}
	}

	action := matchTable(actionPatterns, lower)
	outcome := matchOutcome(lower)
	target := matchTarget(lower)

	switch {
	case action != "" && outcome != "" && target != "":
		return action + " " + target + " " + outcome
	case action != "" && outcome != "":
		return action + " " + outcome
	case action != "" && target != "":
		return action + " " + target
	case action != "":
		return action + " Behavior"
	}
	return fallbackScenario(text, lower)
}

func firstOrdinalScenario(lower string) string {
	switch {
	case strings.Contains(lower, "following"):
		return "Commands Available In Menu"
	case strings.Contains(lower, "available"):
		return "Feature Availability"
	case strings.Contains(lower, "visible") || strings.Contains(lower, "appear"):
		return "Feature Visibility"
	}
	return "Feature Availability"
}

var (
	notModifyRe = regexp.MustCompile(`do(?:es)?\s+not\s+modify\s+(?:object\s+)?(.+?)(?:\.|,|$)`)
	hiddenForRe = regexp.MustCompile(`(?:hidden|not\s+visible)\s+(?:for|when)\s+(.+?)(?:\.|$)`)
	orListRe    = regexp.MustCompile(`\s+or\s+`)
)

func negativeScenario(lower, base string) string {
	if m := notModifyRe.FindStringSubmatch(lower); m != nil {
		attrs := orListRe.ReplaceAllString(strings.TrimSpace(m[1]), ", ")
		return "Does Not Modify " + titleCase(attrs)
	}
	if strings.Contains(lower, "hidden") || strings.Contains(lower, "not visible") {
		if m := hiddenForRe.FindStringSubmatch(lower); m != nil {
			return "Hidden For " + titleCase(strings.TrimSpace(m[1]))
		}
		return "Hidden State"
	}
	if strings.Contains(lower, "disabled") && strings.Contains(lower, "no ") {
		return "Disabled When No Selection"
	}
	return base
}

func matchTable(table []pattern, lower string) string {
	for _, p := range table {
		if p.re.MatchString(lower) {
			return p.name
		}
	}
	return ""
}

func matchOutcome(lower string) string {
	for _, p := range outcomePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if strings.Contains(p.name, "$1") && len(m) > 1 {
			return strings.ReplaceAll(p.name, "$1", titleCase(strings.TrimSpace(m[1])))
		}
		return p.name
	}
	return ""
}

func matchTarget(lower string) string {
	for _, t := range targets {
		if strings.Contains(lower, t.keyword) {
			return t.name
		}
	}
	return ""
}

func fallbackScenario(text, lower string) string {
	switch {
	case strings.Contains(lower, "undo") && strings.Contains(lower, "redo"):
		return "Undo Redo Support"
	case strings.Contains(lower, "synchron") || strings.Contains(lower, "match"):
		return "State Synchronization"
	case strings.Contains(lower, "persist") || strings.Contains(lower, "remain"):
		return "State Persistence"
	case strings.Contains(lower, "multi") && strings.Contains(lower, "select"):
		return "Multi Selection Behavior"
	case strings.Contains(lower, "immediate") || strings.Contains(lower, "instantly"):
		return "Immediate Update"
	}

	// Last resort: up to three capitalized words from the original text.
	var caps []string
	for _, w := range strings.Fields(text) {
		if len(w) > 3 && w[0] >= 'A' && w[0] <= 'Z' {
			caps = append(caps, strings.Trim(w, ".,;:"))
			if len(caps) == 3 {
				break
			}
		}
	}
	if len(caps) > 0 {
		return strings.Join(caps, " ")
	}
	return "Functional Behavior"
}

// titleCase renders a phrase in Title Case. Fresh Caser per call: x/text
// Casers are stateful and must not be shared across goroutines.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
