package engine

import "github.com/kingrea/lifecast/internal/content"

// PickSet is one complete forecast: the selected trait for every domain plus
// the ordered trace of coherence rules that fired while producing it.
// A PickSet is built fresh per pick pass and never persisted.
type PickSet struct {
	Career       content.Trait
	Car          content.Trait
	House        content.Trait
	Relationship content.Trait
	Fame         content.Trait
	Trace        []string
}

// Locks pins domains to previously chosen traits so a pick pass skips
// drawing them. Locked domains consume no draws from the source.
type Locks map[content.Domain]content.Trait

// ByDomain returns the selected trait for a domain.
func (p PickSet) ByDomain(d content.Domain) content.Trait {
	switch d {
	case content.DomainCareer:
		return p.Career
	case content.DomainCar:
		return p.Car
	case content.DomainHouse:
		return p.House
	case content.DomainRelationship:
		return p.Relationship
	case content.DomainFame:
		return p.Fame
	}
	return content.Trait{}
}

func (p *PickSet) setDomain(d content.Domain, t content.Trait) {
	switch d {
	case content.DomainCareer:
		p.Career = t
	case content.DomainCar:
		p.Car = t
	case content.DomainHouse:
		p.House = t
	case content.DomainRelationship:
		p.Relationship = t
	case content.DomainFame:
		p.Fame = t
	}
}
