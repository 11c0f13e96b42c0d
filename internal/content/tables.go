package content

// Builtin returns the reference content pack. Identifiers, weights, tags and
// list order are frozen: the sampler's tie-break and every golden output
// depend on them.
func Builtin() Pack {
	return Pack{
		Name: "builtin",
		Traits: map[Domain][]Trait{
			DomainCareer: {
				{ID: "ai_researcher", Weight: 9, Prestige: 9, Risk: 5, Tags: []string{"tech", "research"}, Label: "AI Researcher", Impact: "breakthroughs in human–AI collaboration"},
				{ID: "creative_director", Weight: 7, Prestige: 7, Risk: 4, Tags: []string{"creative"}, Label: "Creative Director", Impact: "genre-bending campaigns and IP worlds"},
				{ID: "founder", Weight: 8, Prestige: 8, Risk: 9, Tags: []string{"business", "risk"}, Label: "Startup Founder", Impact: "a profitable mission-driven company"},
				{ID: "product_lead", Weight: 8, Prestige: 8, Risk: 6, Tags: []string{"tech", "product"}, Label: "Product Lead", Impact: "platforms used by millions"},
				{ID: "cinematic_vfx", Weight: 6, Prestige: 7, Risk: 6, Tags: []string{"creative", "film"}, Label: "Cinematic VFX Director", Impact: "award-winning visuals"},
				{ID: "wildcard_nomad", Weight: 3, Prestige: 5, Risk: 7, Tags: []string{"travel", "gig"}, Label: "Digital Nomad", Impact: "projects across continents"},
				{ID: "data_ethicist", Weight: 5, Prestige: 7, Risk: 3, Tags: []string{"tech", "policy"}, Label: "Data Ethicist", Impact: "safer, fairer AI systems"},
				{ID: "edu_creator", Weight: 6, Prestige: 6, Risk: 5, Tags: []string{"creator", "edu"}, Label: "Edu Creator", Impact: "teaching millions online"},
			},
			DomainCar: {
				{ID: "solid_ev", Weight: 10, Price: "mid", Sustainability: 8, Tags: []string{"ev"}, Label: "reliable EV"},
				{ID: "ultra_lux_ev", Weight: 3, Price: "ultra", Sustainability: 8, Tags: []string{"ev", "lux"}, Label: "ultra-luxury EV"},
				{ID: "retro_mod", Weight: 4, Price: "mid_low", Sustainability: 5, Tags: []string{"style"}, Label: "retro-modern ride"},
				{ID: "no_car_city", Weight: 6, Price: "none", Sustainability: 10, Tags: []string{"urban"}, Label: "no personal car (city mobility)"},
				{ID: "smart_scooter", Weight: 5, Price: "low", Sustainability: 9, Tags: []string{"urban", "ev"}, Label: "smart e-scooter + transit"},
			},
			DomainHouse: {
				{ID: "smart_apartment", Weight: 10, Price: "mid", Space: "mid", Tags: []string{"urban", "smart"}, Label: "smart apartment"},
				{ID: "skyline_penthouse", Weight: 2, Price: "ultra", Space: "mid", Tags: []string{"lux"}, Label: "skyline penthouse"},
				{ID: "villa_coastal", Weight: 3, Price: "high", Space: "high", Tags: []string{"coast"}, Label: "coastal villa"},
				{ID: "tiny_home", Weight: 4, Price: "low", Space: "low", Tags: []string{"minimal"}, Label: "tiny home"},
				{ID: "studio_loft", Weight: 6, Price: "mid_low", Space: "mid_low", Tags: []string{"urban", "creative"}, Label: "studio loft"},
			},
			DomainRelationship: {
				{ID: "married_kids", Weight: 7, Label: "married with kids"},
				{ID: "married_no_kids", Weight: 6, Label: "married, no kids"},
				{ID: "partnered", Weight: 6, Label: "partnered"},
				{ID: "solo", Weight: 5, Label: "solo"},
				{ID: "global_long_distance", Weight: 2, Label: "global long-distance"},
			},
			DomainFame: {
				{ID: "local_known", Weight: 8, Level: 3, Label: "locally known"},
				{ID: "industry_respected", Weight: 8, Level: 5, Label: "industry-respected"},
				{ID: "viral_creator", Weight: 4, Level: 7, Label: "viral creator"},
				{ID: "global_icon", Weight: 1, Level: 10, Label: "global icon"},
				{ID: "low_profile", Weight: 6, Level: 1, Label: "low profile"},
			},
		},
		Facts: map[string][]string{
			"tech":     {"holds 12 patents", "keynoted at a global dev summit", "open-sourced a popular toolkit"},
			"research": {"published in top journals", "mentored young scholars", "led a cross-lab consortium"},
			"creative": {"curated a traveling exhibition", "designed an award-winning brand system", "scored a streaming hit"},
			"film":     {"won a VFX guild award", "pioneered real-time virtual production", "helmed a festival favorite"},
			"business": {"backed climate-positive suppliers", "bootstrapped to profitability", "exited a venture gracefully"},
			"creator":  {"hit 100M monthly views", "launched a community fund", "toured three continents"},
			"urban":    {"bikes on car-free weekdays", "hosts maker nights", "chairs the neighborhood council"},
			"minimal":  {"lives with 42 carefully chosen items", "donates yearly to libraries", "keeps a zero-waste kitchen"},
			"coast":    {"surfs at sunrise", "restores coral reefs", "hosts beach cleanups"},
			"smart":    {"home runs on local solar", "uses edge-AI for safety", "digital twin optimizes energy"},
		},
	}
}
