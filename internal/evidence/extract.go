package evidence

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexical trigger families. Presence of any phrase (case-insensitive
// substring) sets the corresponding signal kind on the bullet.
var kindTriggers = map[Kind][]string{
	Availability:  {"available", "accessible", "can be activated", "is displayed"},
	StateChange:   {"state", "enabled", "disabled", "active", "inactive"},
	Visibility:    {"visible", "hidden", "displayed", "shown", "appears"},
	Constraint:    {"constraint", "limit", "boundary", "maximum", "minimum"},
	UndoRedo:      {"undo", "redo"},
	Accessibility: {"accessibility", "keyboard", "screen reader", "voiceover", "talkback", "wcag"},
	Persistence:   {"persist", "save", "retain", "remember"},
}

// Action verbs are matched on word boundaries so that inflected forms do
// not leak into the family ("activated" is availability wording, not an
// action trigger).
var actionTriggerRe = regexp.MustCompile(`(?i)\b(?:add|remove|enable|disable|toggle|activate|deactivate)\b`)

var (
	// The entry-point name must be a capitalized word; "from the context
	// menu" describes a location in prose, not a named UI surface.
	entryPointRe = regexp.MustCompile(`\b(?i:from|in|via)\s+(?i:the\s+)?([A-Z][a-z]+)\s+(?i:(menu|panel|toolbar|dialog))\b`)
	wcagRe       = regexp.MustCompile(`(?i)wcag\s*(\d+\.\d+)?\s*(A{1,3})?`)

	// FeedbackWords, LayoutWords and HotkeyWords are the wording families
	// that drafts may only use when the matching explicit flag licenses
	// them. Shared with the evidence validator.
	FeedbackWords = []string{"feedback", "notification", "message", "alert"}
	LayoutWords   = []string{"layout", "position", "arrange", "space", "occupy"}
	HotkeyWords   = []string{"hotkey", "shortcut", "key combination", "ctrl+", "cmd+"}

	objectTypes = []string{"rectangle", "circle", "triangle", "arrow", "line", "polygon", "text"}

	cancelledIndicators = []string{
		"cancelled", "out of scope", "to be cancelled", "removed", "not implemented",
		"deprecated", "superseded", "will not be implemented", "deferred",
	}
)

// titleCase canonicalizes a phrase to Title Case ("edit menu" -> "Edit Menu").
// A fresh Caser per call: x/text Casers are stateful and not safe to share
// across concurrent generation runs.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// extract populates the bullet's signal set and folds tag-level facts
// into the builder. Called exactly once per bullet, at registration.
// Absence of any trigger is silent: the bullet simply carries no signal.
func (b *Builder) extract(bl *Bullet) {
	lower := strings.ToLower(bl.Text)

	bl.Cancelled = containsAny(lower, cancelledIndicators)

	for k, triggers := range kindTriggers {
		if containsAny(lower, triggers) {
			bl.signals[k] = true
			b.flags[k] = true
		}
	}
	if actionTriggerRe.MatchString(bl.Text) {
		bl.signals[Action] = true
		b.flags[Action] = true
	}

	for _, m := range entryPointRe.FindAllStringSubmatch(bl.Text, -1) {
		b.entryPoints[titleCase(m[1]+" "+m[2])] = true
	}

	if strings.Contains(lower, "windows") || strings.Contains(lower, "win11") {
		b.platforms["Windows 11"] = true
	}
	if strings.Contains(lower, "ipad") {
		b.platforms["iPad"] = true
	}
	if strings.Contains(lower, "android") || strings.Contains(lower, "tablet") {
		b.platforms["Android Tablet"] = true
	}

	if strings.Contains(lower, "metric") {
		b.units["metric"] = true
	}
	if strings.Contains(lower, "imperial") {
		b.units["imperial"] = true
	}

	if strings.Contains(lower, "select") || strings.Contains(lower, "selection") {
		b.requiresSelection = true
	}

	for _, ot := range objectTypes {
		if strings.Contains(lower, ot) {
			b.objectTypes[ot] = true
		}
	}

	if strings.Contains(lower, "no selection") || strings.Contains(lower, "without selection") {
		b.negatives[NoSelection] = true
		bl.negatives[NoSelection] = true
	}
	if strings.Contains(lower, "empty canvas") || strings.Contains(lower, "no objects") {
		b.negatives[EmptyCanvas] = true
		bl.negatives[EmptyCanvas] = true
	}

	if containsAny(lower, FeedbackWords) {
		b.explicitFeedback = true
	}
	if containsAny(lower, LayoutWords) {
		b.explicitLayout = true
	}
	if containsAny(lower, HotkeyWords) {
		b.explicitHotkeys = true
	}

	if strings.Contains(lower, "wcag") {
		version, level := "2.1", "AA"
		if m := wcagRe.FindStringSubmatch(bl.Text); m != nil {
			if m[1] != "" {
				version = m[1]
			}
			if m[2] != "" {
				level = strings.ToUpper(m[2])
			}
		}
		b.accessibilityStandard = "WCAG " + version + " " + level
	}
}
