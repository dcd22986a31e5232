package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/splitter/internal/domain/entity"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSplitter(config.Splitter)...)
	validationErrors = append(validationErrors, validatePanes(config.Panes)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateKeys(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks cfg the same way Load does.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

func validateSplitter(s SplitterConfig) []string {
	var validationErrors []string
	if _, err := entity.ParseOrientation(s.Orientation); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"splitter.orientation must be 'horizontal' or 'vertical' (got: %s)", s.Orientation))
	}
	if _, err := entity.ParseCollapseDirection(s.CollapseDirection); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"splitter.collapse_direction must be 'before' or 'after' (got: %s)", s.CollapseDirection))
	}
	if s.SplitBarSize < 0 {
		validationErrors = append(validationErrors, "splitter.split_bar_size must be non-negative")
	}
	if s.CollapsedExtent < 0 {
		validationErrors = append(validationErrors, "splitter.collapsed_extent must be non-negative")
	}
	return validationErrors
}

func validatePanes(panes []PaneConfig) []string {
	if len(panes) == 0 {
		return []string{"panes must declare at least one pane"}
	}

	var validationErrors []string
	seenNames := make(map[string]int)
	seenIDs := make(map[string]int)
	percent := 0

	for i, p := range panes {
		key := fmt.Sprintf("panes[%d]", i)
		if p.Name != "" {
			if prev, exists := seenNames[p.Name]; exists {
				validationErrors = append(validationErrors, fmt.Sprintf(
					"duplicate pane name '%s' in panes[%d] and %s", p.Name, prev, key))
			}
			seenNames[p.Name] = i
		}
		if p.ID != "" {
			if prev, exists := seenIDs[p.ID]; exists {
				validationErrors = append(validationErrors, fmt.Sprintf(
					"duplicate pane id '%s' in panes[%d] and %s", p.ID, prev, key))
			}
			seenIDs[p.ID] = i
		}

		if p.Size != "" {
			length, err := entity.ParseLength(p.Size)
			if err != nil {
				validationErrors = append(validationErrors, fmt.Sprintf("%s.size: %v", key, err))
			} else if length.Percent {
				percent += length.Value
			}
		}
		if p.MinSize < 0 {
			validationErrors = append(validationErrors, key+".min_size must be non-negative")
		}
		if p.MaxSize < 0 {
			validationErrors = append(validationErrors, key+".max_size must be non-negative")
		}
		if p.MaxSize > 0 && p.MinSize > p.MaxSize {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"%s.min_size (%d) exceeds max_size (%d)", key, p.MinSize, p.MaxSize))
		}
	}

	if percent > 100 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"pane sizes add up to %d%%, more than 100%%", percent))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.MaxSize < 0 {
		validationErrors = append(validationErrors, "logging.max_size must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	p := config.Appearance.DarkPalette
	colors := []struct {
		key   string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}
	for _, c := range colors {
		if c.value != "" && !hexColorPattern.MatchString(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"appearance.dark_palette.%s must be a hex color like #1a1a1b (got: %s)", c.key, c.value))
		}
	}
	return validationErrors
}

func validateKeys(config *Config) []string {
	var validationErrors []string
	if config.Keys.NudgeStep < 1 {
		validationErrors = append(validationErrors, "keys.nudge_step must be at least 1")
	}
	if config.Keys.LargeNudgeStep < 1 {
		validationErrors = append(validationErrors, "keys.large_nudge_step must be at least 1")
	}
	return validationErrors
}
