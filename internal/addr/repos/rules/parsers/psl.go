// Package parsers turns public suffix list text into rule values.
package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	logpkg "github.com/haukened/namevet/internal/addr/common/log"
	"github.com/haukened/namevet/internal/addr/domain"
)

const (
	beginICANN   = "// ===BEGIN ICANN DOMAINS==="
	beginPrivate = "// ===BEGIN PRIVATE DOMAINS==="
)

// ParseSuffixList parses public_suffix_list.dat text into Rule
// values.
//
// Behavior:
// - Supports '//' comment lines and blank lines
// - Tracks ICANN/PRIVATE section markers for rule attribution
// - Only the first whitespace-separated token of a line is the rule
// - '!' prefix marks an exception, a leading '*' label a wildcard
// - Labels are normalized to lowercase ASCII-compatible form
// - Malformed lines are logged and skipped, never fatal
// - De-duplicates rules while preserving first-seen order
func ParseSuffixList(r io.Reader, source string, logger logpkg.Logger) ([]domain.Rule, error) {
	scanner := bufio.NewScanner(r)

	section := domain.SectionICANN
	seen := make(map[string]struct{})
	out := make([]domain.Rule, 0, 8192)
	logger.Debug(map[string]any{"source": source}, "parse_suffix_list_start")
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimPrefix(scanner.Text(), "\uFEFF")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "//") {
			switch {
			case strings.HasPrefix(trimmed, beginICANN):
				section = domain.SectionICANN
			case strings.HasPrefix(trimmed, beginPrivate):
				section = domain.SectionPrivate
			}
			continue
		}

		// Everything after the first whitespace is commentary.
		if idx := strings.IndexAny(trimmed, " \t"); idx >= 0 {
			trimmed = trimmed[:idx]
		}

		rule, err := parseRuleLine(trimmed, section)
		if err != nil {
			logger.Debug(map[string]any{
				"source": source,
				"line":   lineNum,
				"error":  err.Error(),
			}, "skip_rule")
			continue
		}
		key := rule.Kind.String() + "|" + rule.String()
		if _, dup := seen[key]; dup {
			logger.Debug(map[string]any{"source": source, "line": lineNum}, "skip_duplicate")
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading suffix list %s: %w", source, err)
	}
	logger.Debug(map[string]any{"source": source, "rules": len(out)}, "parse_suffix_list_done")
	return out, nil
}

// parseRuleLine converts one list entry into a Rule.
func parseRuleLine(entry string, section domain.Section) (domain.Rule, error) {
	kind := domain.RuleKindPlain
	if strings.HasPrefix(entry, "!") {
		kind = domain.RuleKindException
		entry = entry[1:]
	}
	parts := strings.Split(entry, ".")
	labels := make([]string, 0, len(parts))
	for _, raw := range parts {
		if raw == "" {
			return domain.Rule{}, fmt.Errorf("empty label in rule %q", entry)
		}
		label, err := normalizeRuleLabel(raw)
		if err != nil {
			return domain.Rule{}, fmt.Errorf("label %q: %w", raw, err)
		}
		labels = append(labels, label)
	}
	if kind == domain.RuleKindPlain && labels[0] == "*" {
		kind = domain.RuleKindWildcard
	}
	return domain.NewRule(reverseLabels(labels), kind, section)
}
