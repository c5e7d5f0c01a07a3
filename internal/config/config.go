// Package config loads stylelens settings from file, environment, and
// defaults.
package config

import (
	"fmt"
	"sort"

	"github.com/csmtools/stylelens/internal/classify"
	"github.com/csmtools/stylelens/internal/principle"
)

// Default configuration values.
const (
	DefaultCheckstyleJar    = "checkstyle.jar"
	DefaultCheckstyleChecks = "google_checks.xml"
	DefaultOutputDir        = "."
)

// Config is the root configuration.
type Config struct {
	Checkstyle CheckstyleConfig `mapstructure:"checkstyle"`
	Output     OutputConfig     `mapstructure:"output"`
	// Mappings overlays the default seed table: rule identifier to
	// CSM principle display label. Entries win over the baked-in seed.
	Mappings map[string]string `mapstructure:"mappings"`
}

// CheckstyleConfig locates the external analysis engine.
type CheckstyleConfig struct {
	// Jar is the path to the checkstyle-all jar.
	Jar string `mapstructure:"jar"`
	// Checks is the path to the ruleset XML.
	Checks string `mapstructure:"checks"`
	// Report optionally points at a pre-produced XML audit; when set,
	// the JVM is not invoked.
	Report string `mapstructure:"report"`
	// Java optionally overrides the JVM binary.
	Java string `mapstructure:"java"`
}

// OutputConfig controls where reports land.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// Validate rejects mappings naming unknown principles. This is a
// configuration error and aborts before any file is analyzed.
func (c *Config) Validate() error {
	for rule, label := range c.Mappings {
		_, ok := principle.Parse(label)
		if !ok {
			return fmt.Errorf("mapping %q: unknown CSM principle %q", rule, label)
		}
	}

	return nil
}

// SeedOverlay converts the configured mappings into seed entries,
// sorted by rule for determinism. Validate must have passed.
func (c *Config) SeedOverlay() []classify.SeedEntry {
	rules := make([]string, 0, len(c.Mappings))
	for rule := range c.Mappings {
		rules = append(rules, rule)
	}

	sort.Strings(rules)

	entries := make([]classify.SeedEntry, 0, len(rules))

	for _, rule := range rules {
		p, ok := principle.Parse(c.Mappings[rule])
		if !ok {
			continue
		}

		entries = append(entries, classify.SeedEntry{Rule: rule, Principle: p})
	}

	return entries
}

// BuildClassifier returns the default classifier with the configured
// overlay applied on top, last-write-wins.
func (c *Config) BuildClassifier() *classify.Classifier {
	classifier := classify.NewDefault()
	for _, entry := range c.SeedOverlay() {
		classifier.Add(entry.Rule, entry.Principle)
	}

	return classifier
}
