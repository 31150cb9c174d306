// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every message id used in the Go sources exists in
// the English locale and that every other locale carries the same ids.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

// idPattern matches i18n.T("id") calls and bare string literals shaped like
// a message id ("login.error.password.empty").
var idPattern = regexp.MustCompile(`i18n\.T\("([^"]+)"|"((?:app|home|login|otp)\.[a-z.]+)"`)

type report struct {
	// ids used in code but absent from the primary locale
	Undefined []string
	// ids in the primary locale nobody uses
	Orphaned []string
	// per secondary locale file, ids it lacks
	Missing map[string][]string
}

func (r report) failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, ids := range r.Missing {
		if len(ids) > 0 {
			return true
		}
	}
	return false
}

func main() {
	r, err := lint(".", localesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}

	for _, id := range r.Undefined {
		fmt.Printf("undefined: %s\n", id)
	}
	for _, file := range slices.Sorted(maps.Keys(r.Missing)) {
		for _, id := range r.Missing[file] {
			fmt.Printf("missing in %s: %s\n", file, id)
		}
	}
	for _, id := range r.Orphaned {
		fmt.Printf("orphaned: %s\n", id)
	}

	if r.failed() {
		os.Exit(1)
	}
	fmt.Println("translations are consistent")
}

func lint(root, locales string) (report, error) {
	r := report{Missing: map[string][]string{}}

	used, err := findUsedIDs(root)
	if err != nil {
		return r, err
	}
	primary, err := loadIDs(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, err
	}

	for id := range used {
		if _, ok := primary[id]; !ok {
			r.Undefined = append(r.Undefined, id)
		}
	}
	for id := range primary {
		if _, ok := used[id]; !ok {
			r.Orphaned = append(r.Orphaned, id)
		}
	}
	slices.Sort(r.Undefined)
	slices.Sort(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		ids, err := loadIDs(file)
		if err != nil {
			return r, err
		}
		var missing []string
		for id := range primary {
			if _, ok := ids[id]; !ok {
				missing = append(missing, id)
			}
		}
		slices.Sort(missing)
		r.Missing[filepath.Base(file)] = missing
	}
	return r, nil
}

// findUsedIDs scans non-test Go files below root, skipping tools and the
// example pack.
func findUsedIDs(root string) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range idPattern.FindAllStringSubmatch(string(content), -1) {
			if match[1] != "" {
				ids[match[1]] = struct{}{}
			} else if match[2] != "" {
				ids[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return ids, err
}

// loadIDs reads a locale file. Nested maps are flattened with dots, the way
// go-i18n reads them.
func loadIDs(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ids := make(map[string]struct{})
	flatten("", data, ids)
	return ids, nil
}

func flatten(prefix string, node any, ids map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			ids[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flatten(k, v, ids)
	}
}
