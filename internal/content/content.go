// Package content holds the trait tables and micro-fact snippets that the
// forecast engine samples from. The builtin pack is fixed reference data;
// extra packs can be layered on top of it from YAML files or Go-script
// plugins. Packs are never mutated after loading — anything that adjusts
// weights works on copies.
package content

import (
	"fmt"
	"strings"
)

// Domain identifies one of the five outcome categories.
type Domain string

const (
	DomainCareer       Domain = "career"
	DomainCar          Domain = "car"
	DomainHouse        Domain = "house"
	DomainRelationship Domain = "relationship"
	DomainFame         Domain = "fame"
)

// Domains lists every domain in canonical order. Aggregation, rendering and
// export all iterate in this order so output never depends on map iteration.
var Domains = []Domain{DomainCareer, DomainCar, DomainHouse, DomainRelationship, DomainFame}

// ParseDomain validates a user-supplied domain name.
func ParseDomain(value string) (Domain, error) {
	trimmed := Domain(strings.ToLower(strings.TrimSpace(value)))
	for _, d := range Domains {
		if d == trimmed {
			return d, nil
		}
	}
	return "", fmt.Errorf("content: unknown domain %q", value)
}

// Trait is a single candidate outcome within a domain. Weight drives
// sampling; the remaining attributes are domain-specific flavor (careers
// carry prestige/risk/impact, cars price/sustainability, houses price/space,
// fame a 0–10 level).
type Trait struct {
	ID     string   `yaml:"id" json:"id"`
	Label  string   `yaml:"label" json:"label"`
	Weight int      `yaml:"weight" json:"weight"`
	Tags   []string `yaml:"tags,omitempty" json:"tags,omitempty"`

	Prestige       int    `yaml:"prestige,omitempty" json:"prestige,omitempty"`
	Risk           int    `yaml:"risk,omitempty" json:"risk,omitempty"`
	Impact         string `yaml:"impact,omitempty" json:"impact,omitempty"`
	Price          string `yaml:"price,omitempty" json:"price,omitempty"`
	Sustainability int    `yaml:"sustainability,omitempty" json:"sustainability,omitempty"`
	Space          string `yaml:"space,omitempty" json:"space,omitempty"`
	Level          int    `yaml:"level,omitempty" json:"level,omitempty"`
}

// HasTag reports whether the trait carries the given tag.
func (t Trait) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// ShortLabel returns the display label, falling back to the identifier.
func (t Trait) ShortLabel() string {
	if t.Label != "" {
		return t.Label
	}
	return t.ID
}

// Clone returns a deep copy safe to adjust without touching the original.
func (t Trait) Clone() Trait {
	clone := t
	if len(t.Tags) > 0 {
		clone.Tags = append([]string{}, t.Tags...)
	}
	return clone
}

// Pack bundles the per-domain trait tables with the tag-keyed micro-facts.
type Pack struct {
	Name   string              `yaml:"name,omitempty"`
	Traits map[Domain][]Trait  `yaml:"traits"`
	Facts  map[string][]string `yaml:"facts,omitempty"`
}

// Traits is keyed by domain but each domain's list is ordered, and that
// order is load-bearing: the sampler's tie-break returns the first item when
// every weight is zero, so conforming packs must keep list order stable.

// Domain returns a fresh copy of one domain's trait list.
func (p Pack) Domain(d Domain) []Trait {
	source := p.Traits[d]
	pool := make([]Trait, len(source))
	for i, t := range source {
		pool[i] = t.Clone()
	}
	return pool
}

// FactsFor returns the micro-facts registered under a tag.
func (p Pack) FactsFor(tag string) []string {
	return append([]string{}, p.Facts[tag]...)
}

// Normalized returns a trimmed copy of the pack.
func (p Pack) Normalized() Pack {
	clone := Pack{Name: strings.TrimSpace(p.Name)}
	if len(p.Traits) > 0 {
		clone.Traits = make(map[Domain][]Trait, len(p.Traits))
		for domain, traits := range p.Traits {
			key := Domain(strings.ToLower(strings.TrimSpace(string(domain))))
			normalized := make([]Trait, len(traits))
			for i, t := range traits {
				normalized[i] = t.normalized()
			}
			clone.Traits[key] = normalized
		}
	}
	if len(p.Facts) > 0 {
		clone.Facts = make(map[string][]string, len(p.Facts))
		for tag, facts := range p.Facts {
			trimmedTag := strings.TrimSpace(tag)
			if trimmedTag == "" {
				continue
			}
			kept := make([]string, 0, len(facts))
			for _, fact := range facts {
				if trimmed := strings.TrimSpace(fact); trimmed != "" {
					kept = append(kept, trimmed)
				}
			}
			clone.Facts[trimmedTag] = kept
		}
	}
	return clone
}

func (t Trait) normalized() Trait {
	clone := t.Clone()
	clone.ID = strings.TrimSpace(t.ID)
	clone.Label = strings.TrimSpace(t.Label)
	for i, tag := range clone.Tags {
		clone.Tags[i] = strings.TrimSpace(tag)
	}
	return clone
}

// Validate ensures the pack is well-formed: known domains only, unique
// non-empty trait identifiers, non-negative weights.
func (p Pack) Validate() error {
	normalized := p.Normalized()
	for domain, traits := range normalized.Traits {
		if _, err := ParseDomain(string(domain)); err != nil {
			return err
		}
		seen := make(map[string]bool, len(traits))
		for i, t := range traits {
			if t.ID == "" {
				return fmt.Errorf("content: %s[%d]: id is required", domain, i)
			}
			if seen[t.ID] {
				return fmt.Errorf("content: %s: duplicate trait %q", domain, t.ID)
			}
			seen[t.ID] = true
			if t.Weight < 0 {
				return fmt.Errorf("content: %s/%s: weight must be >= 0", domain, t.ID)
			}
		}
	}
	return nil
}

// Merge layers another pack on top of this one: extra traits append to the
// domain lists (appending keeps the base tables' sampling order intact) and
// extra facts append per tag. Traits whose ID already exists in the base are
// rejected so packs cannot silently shadow builtin outcomes.
func (p Pack) Merge(extra Pack) (Pack, error) {
	if err := extra.Validate(); err != nil {
		return Pack{}, err
	}
	merged := Pack{
		Name:   p.Name,
		Traits: make(map[Domain][]Trait, len(p.Traits)),
		Facts:  make(map[string][]string, len(p.Facts)),
	}
	for domain, traits := range p.Traits {
		merged.Traits[domain] = append([]Trait{}, traits...)
	}
	for tag, facts := range p.Facts {
		merged.Facts[tag] = append([]string{}, facts...)
	}
	normalized := extra.Normalized()
	for _, domain := range Domains {
		for _, t := range normalized.Traits[domain] {
			for _, existing := range merged.Traits[domain] {
				if existing.ID == t.ID {
					return Pack{}, fmt.Errorf("content: pack %q: %s/%s already defined", normalized.Name, domain, t.ID)
				}
			}
			merged.Traits[domain] = append(merged.Traits[domain], t)
		}
	}
	for tag, facts := range normalized.Facts {
		merged.Facts[tag] = append(merged.Facts[tag], facts...)
	}
	return merged, nil
}
