package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// sectionOrder is the order top-level tables appear in written files.
// Tables not listed follow alphabetically.
var sectionOrder = []string{"splitter", "panes", "logging", "appearance", "keys"}

// schemaDirective lets taplo-based editors pick up `splitter config schema`.
const schemaDirective = "#:schema ./config.schema.json"

var tableHeader = regexp.MustCompile(`^\s*\[\[?\s*([^\]]+?)\s*\]\]?\s*$`)

// WriteConfigOrdered writes the configuration to path in MarshalOrdered form.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := MarshalOrdered(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MarshalOrdered encodes cfg as TOML with the schema directive on top and
// tables grouped per sectionOrder.
func MarshalOrdered(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return []byte(schemaDirective + "\n\n" + orderSections(buf.String())), nil
}

type tomlBlock struct {
	root  string
	lines []string
}

// orderSections regroups TOML tables by their root key. Nested tables and
// array entries stay with their root in document order. Keys before the
// first table header are kept on top.
func orderSections(content string) string {
	var (
		head   []string
		blocks []tomlBlock
	)
	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			root, _, _ := strings.Cut(m[1], ".")
			blocks = append(blocks, tomlBlock{root: root, lines: []string{line}})
			continue
		}
		if len(blocks) == 0 {
			head = append(head, line)
			continue
		}
		last := &blocks[len(blocks)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		ri, rj := sectionRank(blocks[i].root), sectionRank(blocks[j].root)
		if ri != rj {
			return ri < rj
		}
		if ri == len(sectionOrder) {
			return blocks[i].root < blocks[j].root
		}
		return false
	})

	var out []string
	if h := trimBlank(head); len(h) > 0 {
		out = append(out, strings.Join(h, "\n"))
	}
	for _, b := range blocks {
		out = append(out, strings.Join(trimBlank(b.lines), "\n"))
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n\n") + "\n"
}

func sectionRank(root string) int {
	for i, name := range sectionOrder {
		if name == root {
			return i
		}
	}
	return len(sectionOrder)
}

// trimBlank drops leading and trailing blank lines.
func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
