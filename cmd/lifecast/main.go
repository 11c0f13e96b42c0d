package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kingrea/lifecast/internal/config"
	"github.com/kingrea/lifecast/internal/content"
	"github.com/kingrea/lifecast/internal/engine"
	"github.com/kingrea/lifecast/internal/export"
	"github.com/kingrea/lifecast/internal/logging"
	"github.com/kingrea/lifecast/internal/render"
	"github.com/kingrea/lifecast/internal/tui"
	"github.com/kingrea/lifecast/plugins"
)

func main() {
	name := flag.String("name", "", "your name (prompted interactively when omitted)")
	timeline := flag.String("timeline", "", "timeline seed (try: prime, neon, eco, creator, zen)")
	reroll := flag.String("reroll", "", "reroll only this domain, locking the rest (career|car|house|relationship|fame)")
	trials := flag.Int("mc", 0, "Monte Carlo trial count for probability bars (0 to skip)")
	asJSON := flag.Bool("json", false, "output the JSON document instead of the console report")
	asMarkdown := flag.Bool("md", false, "output the Markdown card instead of the console report")
	outPath := flag.String("out", "", "write JSON/Markdown output to this file instead of stdout")
	packsDir := flag.String("packs", "", "additional directory of content-pack files (YAML or Go scripts)")
	configPath := flag.String("config", "", "path to lifecast.yaml (defaults to ./lifecast.yaml when present)")
	logDir := flag.String("log", "", "append run diagnostics to lifecast.log in this directory")
	listPacks := flag.Bool("list-packs", false, "print the effective content-pack sources and exit")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configPath)
	if err != nil {
		die("%v", err)
	}

	packDirs := cfg.PackDirs
	if strings.TrimSpace(*packsDir) != "" {
		packDirs = append(packDirs, *packsDir)
	}
	pack, sources, err := plugins.LoadAll(content.Builtin(), packDirs)
	if err != nil {
		die("load content packs: %v", err)
	}

	if *listPacks {
		fmt.Println("builtin")
		for _, source := range sources {
			label := source.Pack.Name
			if label == "" {
				label = "(unnamed)"
			}
			fmt.Printf("%s (%s)\n", label, source.Path)
		}
		return
	}

	resolvedTimeline := cfg.Timeline
	if set["timeline"] {
		resolvedTimeline = strings.TrimSpace(*timeline)
	}
	resolvedTrials := cfg.Trials
	if set["mc"] {
		resolvedTrials = *trials
	}

	resolvedName := strings.TrimSpace(*name)
	if resolvedName == "" {
		resolvedName, resolvedTimeline, err = promptIdentity(resolvedTimeline, set["timeline"])
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				die("cancelled")
			}
			die("%v", err)
		}
		if resolvedName == "" {
			die("name cannot be empty")
		}
	}
	if resolvedTimeline == "" {
		resolvedTimeline = config.DefaultTimeline
	}

	resolvedLogDir := cfg.LogDir
	if set["log"] {
		resolvedLogDir = *logDir
	}

	var log *logging.Logger
	if resolvedLogDir != "" {
		log, err = logging.New(resolvedLogDir)
		if err != nil {
			die("%v", err)
		}
		defer log.Close()
	}

	picks, err := engine.Pick(pack, resolvedName, resolvedTimeline, "", nil)
	if err != nil {
		die("predict: %v", err)
	}
	if *reroll != "" {
		domain, err := content.ParseDomain(*reroll)
		if err != nil {
			die("%v", err)
		}
		picks, err = engine.Reroll(pack, resolvedName, resolvedTimeline, domain, picks)
		if err != nil {
			die("reroll %s: %v", domain, err)
		}
	}

	var agg *engine.Aggregate
	if resolvedTrials > 0 {
		agg, err = engine.MonteCarlo(pack, resolvedName, resolvedTimeline, resolvedTrials)
		if err != nil {
			die("monte carlo: %v", err)
		}
	}

	log.Printf("run name=%q timeline=%q reroll=%q trials=%d career=%s car=%s house=%s relationship=%s fame=%s",
		resolvedName, resolvedTimeline, *reroll, resolvedTrials,
		picks.Career.ID, picks.Car.ID, picks.House.ID, picks.Relationship.ID, picks.Fame.ID)

	switch {
	case *asJSON:
		payload, err := export.JSON(resolvedName, resolvedTimeline, picks, agg)
		if err != nil {
			die("%v", err)
		}
		export.Deliver(os.Stdout, os.Stderr, *outPath, strings.TrimRight(payload, "\n"))
	case *asMarkdown:
		payload := export.Markdown(pack, resolvedName, resolvedTimeline, picks, agg)
		export.Deliver(os.Stdout, os.Stderr, *outPath, payload)
	default:
		fmt.Println(render.Report(pack, resolvedName, resolvedTimeline, picks, agg))
	}
}

// promptIdentity runs the interactive fallback. The timeline question only
// appears when the timeline came neither from a flag nor from config; its
// empty answer falls back to the default timeline.
func promptIdentity(timeline string, timelineSet bool) (string, string, error) {
	questions := []tui.Question{{Label: "Enter your name", Placeholder: "Ada Lovelace"}}
	askTimeline := !timelineSet && timeline == config.DefaultTimeline
	if askTimeline {
		questions = append(questions, tui.Question{
			Label:       "Timeline seed (Enter for 'prime')",
			Placeholder: config.DefaultTimeline,
			Fallback:    config.DefaultTimeline,
		})
	}
	answers, err := tui.Ask(questions)
	if err != nil {
		return "", "", err
	}
	name := answers[0]
	if askTimeline {
		timeline = answers[1]
	}
	return name, timeline, nil
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
