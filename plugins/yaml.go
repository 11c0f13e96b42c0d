// Package plugins loads user content packs that extend the builtin trait
// tables: plain YAML pack files and Go-script packs evaluated with yaegi.
// Loaded packs are validated before they reach the engine; a malformed pack
// is a hard error, never guessed around.
package plugins

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/lifecast/internal/content"
)

// PackFile pairs a parsed content pack with its on-disk source.
type PackFile struct {
	Pack content.Pack
	Path string
}

// ParsePackYAML decodes and validates a single pack payload.
func ParsePackYAML(data []byte) (content.Pack, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return content.Pack{}, fmt.Errorf("plugin: pack payload is empty")
	}
	var pack content.Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return content.Pack{}, fmt.Errorf("plugin: decode pack: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return content.Pack{}, err
	}
	return pack.Normalized(), nil
}

// LoadPackFile reads a YAML file from disk and returns the parsed pack.
func LoadPackFile(path string) (PackFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return PackFile{}, fmt.Errorf("plugin: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return PackFile{}, fmt.Errorf("plugin: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PackFile{}, fmt.Errorf("plugin: read %s: %w", path, err)
	}
	pack, err := ParsePackYAML(data)
	if err != nil {
		return PackFile{}, fmt.Errorf("plugin: %s: %w", path, err)
	}
	return PackFile{Pack: pack, Path: filepath.Clean(path)}, nil
}

// LoadPackDir scans a directory for *.yaml packs and returns them sorted by
// path so merge order is stable. Missing directories mean "no packs".
func LoadPackDir(dir string) ([]PackFile, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("plugin: read %s: %w", trimmed, err)
	}
	var packs []PackFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isYAMLFile(name) {
			continue
		}
		pack, err := LoadPackFile(filepath.Join(trimmed, name))
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}
	if len(packs) == 0 {
		return nil, nil
	}
	sort.Slice(packs, func(i, j int) bool { return packs[i].Path < packs[j].Path })
	return packs, nil
}

// LoadAll gathers YAML and Go-script packs from every directory and layers
// them onto base in path order. It returns the merged pack plus the sources
// that contributed, for provenance listing.
func LoadAll(base content.Pack, dirs []string) (content.Pack, []PackFile, error) {
	merged := base
	var loaded []PackFile
	for _, dir := range dirs {
		yamlPacks, err := LoadPackDir(dir)
		if err != nil {
			return content.Pack{}, nil, err
		}
		goPacks, err := LoadGoPackDir(dir)
		if err != nil {
			return content.Pack{}, nil, err
		}
		for _, pf := range append(yamlPacks, goPacks...) {
			next, err := merged.Merge(pf.Pack)
			if err != nil {
				return content.Pack{}, nil, fmt.Errorf("plugin: %s: %w", pf.Path, err)
			}
			merged = next
			loaded = append(loaded, pf)
		}
	}
	return merged, loaded, nil
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
