// Package render turns a pick-set into human-facing text: the prose
// narrative, the rationale listing, and the styled console report. Nothing
// here has side effects; every function is a pure formatter over its inputs.
package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/kingrea/lifecast/internal/content"
	"github.com/kingrea/lifecast/internal/engine"
	"github.com/kingrea/lifecast/internal/seed"
)

const wrapWidth = 84

// Narrative renders the multi-line prose forecast. The fact line draws from
// a dedicated "facts"-salted source so rerolls and Monte Carlo trials never
// disturb which highlights appear.
func Narrative(pack content.Pack, name, timeline string, p engine.PickSet) string {
	first := firstName(name)
	impact := p.Career.Impact
	if impact == "" {
		impact = "meaningful work"
	}
	line1 := fmt.Sprintf("By 2050, %s is a %s known for %s.", first, p.Career.ShortLabel(), impact)
	line2 := fmt.Sprintf("They live in a %s and get around with %s.", p.House.ShortLabel(), p.Car.ShortLabel())
	line3 := fmt.Sprintf("Relationship status: %s. Fame: %s (%s).", p.Relationship.Label, p.Fame.Label, FameMeter(p.Fame.Level))
	line4 := ""
	if facts := MicroFacts(pack, p, seed.SourceFor(name, timeline, "facts"), 2); len(facts) > 0 {
		line4 = "Highlights: " + strings.Join(facts, ", ") + "."
	}
	return strings.Join([]string{wrap(line1), wrap(line2), wrap(line3), wrap(line4)}, "\n")
}

// MicroFacts picks up to k flavor facts from the union of tags across the
// career, house and car picks. Tags are sorted before the facts are gathered
// so the candidate order is stable, then the source shuffles and truncates.
func MicroFacts(pack content.Pack, p engine.PickSet, src seed.Source, k int) []string {
	tagSet := make(map[string]bool)
	for _, trait := range []content.Trait{p.Career, p.House, p.Car} {
		for _, tag := range trait.Tags {
			tagSet[tag] = true
		}
	}
	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	var options []string
	for _, tag := range tags {
		options = append(options, pack.FactsFor(tag)...)
	}
	src.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	if len(options) > k {
		options = options[:k]
	}
	return options
}

// FameMeter renders a 10-slot star bar for a fame level, clamped to 0..10.
func FameMeter(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 10 {
		level = 10
	}
	return strings.Repeat("★", level) + strings.Repeat("☆", 10-level)
}

// Rationale lists every domain's chosen identifier with its key attributes,
// followed by the rule trace verbatim.
func Rationale(p engine.PickSet) []string {
	lines := []string{
		fmt.Sprintf("career: %s (prestige=%d, risk=%d)", p.Career.ID, p.Career.Prestige, p.Career.Risk),
		fmt.Sprintf("car: %s", p.Car.ID),
		fmt.Sprintf("house: %s", p.House.ID),
		fmt.Sprintf("relationship: %s", p.Relationship.ID),
		fmt.Sprintf("fame: %s (level=%d)", p.Fame.ID, p.Fame.Level),
	}
	for _, entry := range p.Trace {
		lines = append(lines, "rule → "+entry)
	}
	return lines
}

// firstName extracts and title-cases the first word of the name; an empty
// name falls back to "You" so the narrative still reads.
func firstName(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return "You"
	}
	return titleWord(fields[0])
}

// titleWord capitalizes the first letter of every letter run, so hyphenated
// and apostrophe names read naturally ("o'brien" becomes "O'Brien").
func titleWord(word string) string {
	runes := []rune(word)
	prevLetter := false
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			prevLetter = false
			continue
		}
		if prevLetter {
			runes[i] = unicode.ToLower(r)
		} else {
			runes[i] = unicode.ToUpper(r)
		}
		prevLetter = true
	}
	return string(runes)
}

// wrap is a greedy word wrapper; lines break before the word that would
// exceed the width.
func wrap(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len([]rune(word))
			continue
		}
		wordLen := len([]rune(word))
		if lineLen+1+wordLen > wrapWidth {
			b.WriteByte('\n')
			b.WriteString(word)
			lineLen = wordLen
			continue
		}
		b.WriteByte(' ')
		b.WriteString(word)
		lineLen += 1 + wordLen
	}
	return b.String()
}
