package engine

import (
	"github.com/kingrea/lifecast/internal/content"
	"github.com/kingrea/lifecast/internal/seed"
)

// applyRules runs the ordered coherence adjustments over a freshly drawn
// pick-set. Later rules read earlier rules' outputs (the house rules look at
// the re-sampled car), so the sequence is fixed. Every adjustment works on a
// copy of the base tables; the pack itself is never touched.
func applyRules(pack content.Pack, p PickSet, src seed.Source) (PickSet, error) {
	prestige := p.Career.Prestige
	fameLevel := p.Fame.Level
	highProfile := prestige >= 8 && fameLevel >= 7

	carPool := pack.Domain(content.DomainCar)
	if highProfile {
		adjust(carPool, 3, "ultra_lux_ev")
		p.Trace = append(p.Trace, "car: luxury boost (prestige ≥8 & fame ≥7)")
	} else {
		dampFloor(carPool, 2, 1, "ultra_lux_ev")
		p.Trace = append(p.Trace, "car: luxury damped (prestige/fame below threshold)")
	}

	if p.House.HasTag("urban") || p.Career.HasTag("tech") {
		adjust(carPool, 2, "no_car_city", "smart_scooter")
		p.Trace = append(p.Trace, "car: urban mobility boost")
	}

	car, err := WeightedChoice(src, carPool)
	if err != nil {
		return PickSet{}, err
	}
	p.Car = car

	housePool := pack.Domain(content.DomainHouse)
	if p.Relationship.ID == "solo" {
		adjust(housePool, 3, "tiny_home", "studio_loft")
		p.Trace = append(p.Trace, "house: compact-living boost (solo)")
	}
	if p.Car.ID == "no_car_city" || p.Car.ID == "smart_scooter" {
		adjustTagged(housePool, "urban", 2)
		p.Trace = append(p.Trace, "house: urban access boost (city mobility)")
	}
	if highProfile {
		adjust(housePool, 2, "skyline_penthouse")
		p.Trace = append(p.Trace, "house: penthouse boost (prestige & fame)")
	}

	house, err := WeightedChoice(src, housePool)
	if err != nil {
		return PickSet{}, err
	}
	p.House = house

	if p.Career.HasTag("creator") || p.Career.ID == "founder" || p.Career.ID == "cinematic_vfx" {
		famePool := pack.Domain(content.DomainFame)
		adjust(famePool, 1, "viral_creator", "industry_respected")
		p.Trace = append(p.Trace, "fame: creator/founder nudge")
		fame, err := WeightedChoice(src, famePool)
		if err != nil {
			return PickSet{}, err
		}
		p.Fame = fame
	}

	return p, nil
}

func adjust(pool []content.Trait, delta int, ids ...string) {
	for i := range pool {
		for _, id := range ids {
			if pool[i].ID == id {
				pool[i].Weight += delta
			}
		}
	}
}

// dampFloor lowers matching weights but never below floor.
func dampFloor(pool []content.Trait, delta, floor int, ids ...string) {
	for i := range pool {
		for _, id := range ids {
			if pool[i].ID == id {
				if pool[i].Weight-delta > floor {
					pool[i].Weight -= delta
				} else {
					pool[i].Weight = floor
				}
			}
		}
	}
}

func adjustTagged(pool []content.Trait, tag string, delta int) {
	for i := range pool {
		if pool[i].HasTag(tag) {
			pool[i].Weight += delta
		}
	}
}
