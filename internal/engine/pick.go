package engine

import (
	"fmt"

	"github.com/kingrea/lifecast/internal/content"
	"github.com/kingrea/lifecast/internal/seed"
)

// Pick runs one full deterministic forecast pass. Draw order is fixed —
// career, fame, relationship, car, house — because every draw consumes the
// source's stream and changing the order changes every result. Locked
// domains are taken as-is and consume nothing. The initial car and house
// picks are provisional; the rule engine re-samples them (and sometimes
// fame) from adjusted pools using the same source.
func Pick(pack content.Pack, name, timeline, salt string, locks Locks) (PickSet, error) {
	return pickFrom(pack, seed.SourceFor(name, timeline, salt), locks)
}

func pickFrom(pack content.Pack, src seed.Source, locks Locks) (PickSet, error) {
	draw := func(domain content.Domain) (content.Trait, error) {
		if locked, ok := locks[domain]; ok {
			return locked, nil
		}
		trait, err := WeightedChoice(src, pack.Domain(domain))
		if err != nil {
			return content.Trait{}, fmt.Errorf("engine: draw %s: %w", domain, err)
		}
		return trait, nil
	}

	var p PickSet
	for _, domain := range []content.Domain{
		content.DomainCareer,
		content.DomainFame,
		content.DomainRelationship,
		content.DomainCar,
		content.DomainHouse,
	} {
		trait, err := draw(domain)
		if err != nil {
			return PickSet{}, err
		}
		p.setDomain(domain, trait)
	}

	return applyRules(pack, p, src)
}

// Reroll re-runs the pipeline with every domain except target pinned to its
// previous trait, under a domain-specific salt. The rule engine still runs,
// so rerolling relationship can legitimately move car or house when a rule
// condition now reads differently — that cascade is the point, not a leak.
func Reroll(pack content.Pack, name, timeline string, target content.Domain, base PickSet) (PickSet, error) {
	locks := make(Locks, len(content.Domains)-1)
	for _, domain := range content.Domains {
		if domain != target {
			locks[domain] = base.ByDomain(domain)
		}
	}
	return Pick(pack, name, timeline, "reroll:"+string(target), locks)
}
