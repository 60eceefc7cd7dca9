package bolt

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/namevet/internal/addr/domain"
)

// Stored value layout for one anchor, all integers big-endian:
//
//	u16 rule count
//	per rule: u8 kind, u8 section, u8 label count,
//	          per label: u8 length + label bytes
//
// Labels are already validated (≤ 63 bytes) before they reach the
// store, so the u8 length prefix is never lossy.

// encodeRules serializes the rule slice for one anchor.
func encodeRules(rs []domain.Rule) ([]byte, error) {
	if len(rs) > 0xFFFF {
		return nil, fmt.Errorf("too many rules for one anchor: %d", len(rs))
	}
	buf := make([]byte, 2, 2+16*len(rs))
	binary.BigEndian.PutUint16(buf, uint16(len(rs)))
	for _, r := range rs {
		if len(r.Labels) > 0xFF {
			return nil, fmt.Errorf("too many labels in rule %q: %d", r, len(r.Labels))
		}
		buf = append(buf, byte(r.Kind), byte(r.Section), byte(len(r.Labels)))
		for _, l := range r.Labels {
			if len(l) > 0xFF {
				return nil, fmt.Errorf("label too long in rule %q: %d bytes", r, len(l))
			}
			buf = append(buf, byte(len(l)))
			buf = append(buf, l...)
		}
	}
	return buf, nil
}

// decodeRules parses a stored anchor value back into rules.
func decodeRules(data []byte) ([]domain.Rule, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("rule value truncated: %d bytes", len(data))
	}
	count := int(binary.BigEndian.Uint16(data))
	data = data[2:]
	rs := make([]domain.Rule, 0, count)
	for i := 0; i < count; i++ {
		if len(data) < 3 {
			return nil, fmt.Errorf("rule %d header truncated", i)
		}
		kind := domain.RuleKind(data[0])
		section := domain.Section(data[1])
		nlabels := int(data[2])
		data = data[3:]
		labels := make([]string, 0, nlabels)
		for j := 0; j < nlabels; j++ {
			if len(data) < 1 {
				return nil, fmt.Errorf("rule %d label %d truncated", i, j)
			}
			l := int(data[0])
			data = data[1:]
			if len(data) < l {
				return nil, fmt.Errorf("rule %d label %d truncated", i, j)
			}
			labels = append(labels, string(data[:l]))
			data = data[l:]
		}
		r, err := domain.NewRule(labels, kind, section)
		if err != nil {
			return nil, fmt.Errorf("rule %d invalid: %w", i, err)
		}
		rs = append(rs, r)
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after rules", len(data))
	}
	return rs, nil
}
