package engine

import (
	"reflect"
	"testing"

	"github.com/kingrea/lifecast/internal/content"
)

func TestPickDeterministic(t *testing.T) {
	pack := content.Builtin()
	first, err := Pick(pack, "Ada", "prime", "", nil)
	if err != nil {
		t.Fatalf("first pick: %v", err)
	}
	second, err := Pick(pack, "Ada", "prime", "", nil)
	if err != nil {
		t.Fatalf("second pick: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs diverged:\n%+v\n%+v", first, second)
	}
	if len(first.Trace) == 0 {
		t.Fatalf("rule 1 always fires one branch, trace is empty")
	}
}

// Frozen outputs of the live seeded pipeline for fixed identities. These
// literals are the compatibility contract: any change to the seed derivation,
// the draw order, or the rule arithmetic moves them, and with them every
// forecast users have already shared.
func TestPickKnownIdentities(t *testing.T) {
	pack := content.Builtin()
	tests := []struct {
		name, timeline                         string
		career, car, house, relationship, fame string
		trace                                  []string
	}{
		{
			name: "Ada", timeline: "prime",
			career: "product_lead", car: "solid_ev", house: "tiny_home",
			relationship: "married_kids", fame: "local_known",
			trace: []string{
				"car: luxury damped (prestige/fame below threshold)",
				"car: urban mobility boost",
			},
		},
		{
			name: "Grace Hopper", timeline: "neon",
			career: "data_ethicist", car: "smart_scooter", house: "skyline_penthouse",
			relationship: "partnered", fame: "low_profile",
			trace: []string{
				"car: luxury damped (prestige/fame below threshold)",
				"car: urban mobility boost",
				"house: urban access boost (city mobility)",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name+"/"+tc.timeline, func(t *testing.T) {
			p, err := Pick(pack, tc.name, tc.timeline, "", nil)
			if err != nil {
				t.Fatalf("pick: %v", err)
			}
			got := map[content.Domain]string{
				content.DomainCareer:       p.Career.ID,
				content.DomainCar:          p.Car.ID,
				content.DomainHouse:        p.House.ID,
				content.DomainRelationship: p.Relationship.ID,
				content.DomainFame:         p.Fame.ID,
			}
			want := map[content.Domain]string{
				content.DomainCareer:       tc.career,
				content.DomainCar:          tc.car,
				content.DomainHouse:        tc.house,
				content.DomainRelationship: tc.relationship,
				content.DomainFame:         tc.fame,
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("frozen picks moved:\nwant %v\ngot  %v", want, got)
			}
			if !reflect.DeepEqual(p.Trace, tc.trace) {
				t.Fatalf("frozen trace moved:\nwant %q\ngot  %q", tc.trace, p.Trace)
			}
		})
	}
}

// All-zero draws land on the first weighted item of every pool, which makes
// the whole pipeline computable by hand.
func TestPickFromScriptedBaseline(t *testing.T) {
	pack := content.Builtin()
	p, err := pickFrom(pack, &scriptedSource{draws: []float64{0}}, nil)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	want := map[content.Domain]string{
		content.DomainCareer:       "ai_researcher",
		content.DomainCar:          "solid_ev",
		content.DomainHouse:        "smart_apartment",
		content.DomainRelationship: "married_kids",
		content.DomainFame:         "local_known",
	}
	for domain, id := range want {
		if got := p.ByDomain(domain).ID; got != id {
			t.Fatalf("%s: expected %s, got %s", domain, id, got)
		}
	}
	// ai_researcher is prestige 9 but local_known is level 3, so the luxury
	// rule damps; the house is urban and the career tech, so the urban
	// mobility boost fires too.
	wantTrace := []string{
		"car: luxury damped (prestige/fame below threshold)",
		"car: urban mobility boost",
	}
	if !reflect.DeepEqual(p.Trace, wantTrace) {
		t.Fatalf("expected trace %q, got %q", wantTrace, p.Trace)
	}
}

// Locks career=founder and fame=global_icon, then scripts the six remaining
// draws. Every weight adjustment along the way is worked out by hand, so
// this doubles as the frozen regression fixture for the rule engine.
func TestPickFromScriptedHighProfile(t *testing.T) {
	pack := content.Builtin()
	locks := Locks{
		content.DomainCareer: pack.Traits[content.DomainCareer][2], // founder
		content.DomainFame:   pack.Traits[content.DomainFame][3],   // global_icon
	}
	// Draw order: relationship, car, house, car re-sample, house re-sample,
	// fame re-sample (the creator/founder rule fires for founder).
	src := &scriptedSource{draws: []float64{0.99, 0, 0, 0.99, 0.99, 0.99}}
	p, err := pickFrom(pack, src, locks)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if p.Career.ID != "founder" {
		t.Fatalf("locked career moved: %s", p.Career.ID)
	}
	// relationship: 0.99*26 = 25.74 → global_long_distance (cumulative 26).
	if p.Relationship.ID != "global_long_distance" {
		t.Fatalf("relationship: expected global_long_distance, got %s", p.Relationship.ID)
	}
	// car pool after rules: solid 10, ultra 3+3, retro 4, no_car 6+2,
	// scooter 5+2 (urban boost via the initial smart_apartment house);
	// 0.99*35 = 34.65 → smart_scooter.
	if p.Car.ID != "smart_scooter" {
		t.Fatalf("car: expected smart_scooter, got %s", p.Car.ID)
	}
	// house pool: apartment 10+2, penthouse 2+2, villa 3, tiny 4, loft 6+2;
	// 0.99*31 = 30.69 → studio_loft.
	if p.House.ID != "studio_loft" {
		t.Fatalf("house: expected studio_loft, got %s", p.House.ID)
	}
	// fame pool: local 8, industry 8+1, viral 4+1, icon 1, low 6;
	// 0.99*29 = 28.71 → low_profile. The locked fame is overwritten — the
	// founder rule re-samples it on purpose.
	if p.Fame.ID != "low_profile" {
		t.Fatalf("fame: expected low_profile, got %s", p.Fame.ID)
	}
	wantTrace := []string{
		"car: luxury boost (prestige ≥8 & fame ≥7)",
		"car: urban mobility boost",
		"house: urban access boost (city mobility)",
		"house: penthouse boost (prestige & fame)",
		"fame: creator/founder nudge",
	}
	if !reflect.DeepEqual(p.Trace, wantTrace) {
		t.Fatalf("expected trace %q, got %q", wantTrace, p.Trace)
	}
}

func TestRuleMonotonicity(t *testing.T) {
	pack := content.Builtin()
	locks := Locks{
		content.DomainCareer: pack.Traits[content.DomainCareer][0], // ai_researcher, prestige 9
		content.DomainFame:   pack.Traits[content.DomainFame][3],   // global_icon, level 10
	}
	p, err := Pick(pack, "Ada", "prime", "", locks)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if p.Trace[0] != "car: luxury boost (prestige ≥8 & fame ≥7)" {
		t.Fatalf("expected the boost branch first, got %q", p.Trace[0])
	}
	var penthouse bool
	for _, entry := range p.Trace {
		if entry == "car: luxury damped (prestige/fame below threshold)" {
			t.Fatalf("damp branch fired alongside boost: %q", p.Trace)
		}
		if entry == "house: penthouse boost (prestige & fame)" {
			penthouse = true
		}
	}
	if !penthouse {
		t.Fatalf("penthouse boost must fire at prestige 9 / fame 10, trace %q", p.Trace)
	}
}

func TestRerollKeepsLockedDomains(t *testing.T) {
	pack := content.Builtin()
	base, err := Pick(pack, "Ada", "prime", "", nil)
	if err != nil {
		t.Fatalf("base pick: %v", err)
	}
	rerolled, err := Reroll(pack, "Ada", "prime", content.DomainCareer, base)
	if err != nil {
		t.Fatalf("reroll: %v", err)
	}
	// No rule ever adjusts relationship, so it must survive any reroll.
	if rerolled.Relationship.ID != base.Relationship.ID {
		t.Fatalf("relationship changed across a career reroll: %s → %s",
			base.Relationship.ID, rerolled.Relationship.ID)
	}
	again, err := Reroll(pack, "Ada", "prime", content.DomainCareer, base)
	if err != nil {
		t.Fatalf("second reroll: %v", err)
	}
	if !reflect.DeepEqual(rerolled, again) {
		t.Fatalf("reroll is not deterministic:\n%+v\n%+v", rerolled, again)
	}
}

// Rerolling career can legitimately change fame: the creator/founder rule
// depends on the career pick and re-samples fame even when fame is locked.
func TestRerollCareerCascadesIntoFame(t *testing.T) {
	pack := content.Builtin()
	locks := make(Locks)
	for _, domain := range content.Domains {
		if domain != content.DomainCareer {
			locks[domain] = pack.Traits[domain][0]
		}
	}
	// Script the career draw onto founder (cumulative 16..24 of 52;
	// 0.4*52 = 20.8), then zero out the remaining draws.
	src := &scriptedSource{draws: []float64{0.4, 0, 0, 0, 0, 0}}
	p, err := pickFrom(pack, src, locks)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if p.Career.ID != "founder" {
		t.Fatalf("expected scripted career founder, got %s", p.Career.ID)
	}
	var cascade bool
	for _, entry := range p.Trace {
		if entry == "fame: creator/founder nudge" {
			cascade = true
		}
	}
	if !cascade {
		t.Fatalf("founder career must re-open the locked fame domain, trace %q", p.Trace)
	}
}
