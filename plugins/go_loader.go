package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"gopkg.in/yaml.v3"
)

const goPackFuncName = "PackDefinitions"

// LoadGoPackDir evaluates every .go file in dir and collects the content
// packs its PackDefinitions() function declares. Each returned map goes
// through a YAML round-trip so Go-script packs face exactly the same schema
// validation as file-based ones.
func LoadGoPackDir(dir string) ([]PackFile, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("plugin: read %s: %w", trimmed, err)
	}
	var packs []PackFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".go" {
			continue
		}
		filePacks, err := loadGoPackFile(filepath.Join(trimmed, entry.Name()))
		if err != nil {
			return nil, err
		}
		packs = append(packs, filePacks...)
	}
	if len(packs) == 0 {
		return nil, nil
	}
	sort.Slice(packs, func(i, j int) bool { return packs[i].Path < packs[j].Path })
	return packs, nil
}

func loadGoPackFile(path string) ([]PackFile, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plugin: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return nil, fmt.Errorf("plugin: %s is empty", path)
	}
	i := interp.New(interp.Options{})
	i.Use(stdlib.Symbols)
	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("plugin: interpret %s: %w", path, err)
	}
	fnValue, err := i.Eval(goPackFuncName)
	if err != nil {
		return nil, fmt.Errorf("plugin: %s must define %s() ([]map[string]any, error): %w", path, goPackFuncName, err)
	}
	defs, callErr := invokePackFunc(fnValue)
	if callErr != nil {
		return nil, fmt.Errorf("plugin: %s: %w", path, callErr)
	}
	packs := make([]PackFile, 0, len(defs))
	for idx, raw := range defs {
		payload, err := yaml.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("plugin: %s pack[%d]: %w", path, idx, err)
		}
		parsed, err := ParsePackYAML(payload)
		if err != nil {
			return nil, fmt.Errorf("plugin: %s pack[%d]: %w", path, idx, err)
		}
		packs = append(packs, PackFile{Pack: parsed, Path: fmt.Sprintf("%s#%d", path, idx+1)})
	}
	return packs, nil
}

// invokePackFunc calls the pack declaration function through a typed
// assertion, so interpreted code is held to the same signature a compiled
// plugin would have. The error-less variant is accepted for trivial packs.
func invokePackFunc(value reflect.Value) ([]map[string]any, error) {
	if !value.IsValid() {
		return nil, fmt.Errorf("missing %s function", goPackFuncName)
	}
	switch fn := value.Interface().(type) {
	case func() ([]map[string]any, error):
		return fn()
	case func() []map[string]any:
		return fn(), nil
	}
	return nil, fmt.Errorf("%s must be a func() ([]map[string]any, error)", goPackFuncName)
}
