// Package settings loads run configuration from .buslift/settings.yaml.
package settings

// settings.go — Run settings: failure policy and rule-disable patterns.
//
// Rule patterns may be written as bare codes or globs ("SC001", "MP*") or
// wrapped in a Rule() verb ("Rule(SC001)") for readability in hand-written
// files. Disabling a rule removes it from the registered order before the
// run starts; it never reorders the remaining rules.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"buslift/pkg/pipeline"
)

// Settings holds run configuration from .buslift/settings.yaml.
type Settings struct {
	// OnRuleFailure is "halt" (default) or "continue".
	OnRuleFailure string `yaml:"on_rule_failure"`
	Rules         Rules  `yaml:"rules"`
}

// Rules controls which registered rules take part in the run.
type Rules struct {
	// Disable is a list of rule-code patterns excluded from the run.
	// Patterns may be bare codes, globs, or wrapped in Rule(...).
	// Example: ["Rule(MP001)", "EP*"]
	Disable []string `yaml:"disable"`
}

// Load reads .buslift/settings.yaml relative to root.
// Returns nil (not an error) if the file does not exist.
func Load(root string) (*Settings, error) {
	path := filepath.Join(root, ".buslift", "settings.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// IsDisabled reports whether a rule code matches any disable pattern.
// Safe to call on a nil *Settings receiver.
func (s *Settings) IsDisabled(code string) bool {
	if s == nil {
		return false
	}
	for _, rule := range s.Rules.Disable {
		if matchRulePattern(parseRulePattern(rule), code) {
			return true
		}
	}
	return false
}

// Policy returns the configured failure policy, halt by default.
// Safe to call on a nil *Settings receiver.
func (s *Settings) Policy() pipeline.FailurePolicy {
	if s != nil && s.OnRuleFailure == string(pipeline.ContinueOnFailure) {
		return pipeline.ContinueOnFailure
	}
	return pipeline.HaltOnFailure
}

// parseRulePattern extracts the code glob from a disable pattern.
//
//	"Rule(SC001)" → "SC001"
//	"SC001"       → "SC001"
func parseRulePattern(rule string) string {
	if strings.HasPrefix(rule, "Rule(") && strings.HasSuffix(rule, ")") {
		rule = rule[5 : len(rule)-1]
	}
	return strings.TrimSpace(rule)
}

// matchRulePattern reports whether code matches a disable glob pattern.
func matchRulePattern(pattern, code string) bool {
	matched, _ := filepath.Match(pattern, code)
	return matched
}
