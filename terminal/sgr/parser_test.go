package sgr

import (
	"iter"
	"testing"

	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tcs := []struct {
		name     string
		in       string
		expected []uint16
	}{
		{name: "empty", in: "", expected: nil},
		{name: "single", in: "31", expected: []uint16{31}},
		{name: "multiple", in: "31;1", expected: []uint16{31, 1}},
		{name: "trailing separator", in: "1;", expected: []uint16{1}},
		{name: "overflow saturates", in: "99999", expected: []uint16{65535}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseParams(tc.in))
		})
	}
}

func TestParserNext(t *testing.T) {
	tests := []struct {
		name     string
		params   []uint16
		expected *Attribute
	}{
		{
			name:     "[]: unset",
			params:   []uint16{},
			expected: &Attribute{Type: AttributeTypeUnset},
		},
		{
			name:     "[0]: unset",
			params:   []uint16{0},
			expected: &Attribute{Type: AttributeTypeUnset},
		},
		{
			name:     "[1]: bold",
			params:   []uint16{1},
			expected: &Attribute{Type: AttributeTypeBold, Param: 1},
		},
		{
			name:     "[2]: faint",
			params:   []uint16{2},
			expected: &Attribute{Type: AttributeTypeFaint, Param: 2},
		},
		{
			name:     "[22]: normal intensity",
			params:   []uint16{22},
			expected: &Attribute{Type: AttributeTypeResetBold, Param: 22},
		},
		{
			name:     "[31]: red fg",
			params:   []uint16{31},
			expected: &Attribute{Type: AttributeTypeFg, Color: color.Red, Param: 31},
		},
		{
			name:     "[47]: white bg",
			params:   []uint16{47},
			expected: &Attribute{Type: AttributeTypeBg, Color: color.White, Param: 47},
		},
		{
			name:     "[39]: default fg",
			params:   []uint16{39},
			expected: &Attribute{Type: AttributeTypeResetFg, Param: 39},
		},
		{
			name:     "[49]: default bg",
			params:   []uint16{49},
			expected: &Attribute{Type: AttributeTypeResetBg, Param: 49},
		},
		{
			name:     "[38]: unknown",
			params:   []uint16{38},
			expected: &Attribute{Type: AttributeTypeUnknown, Param: 38},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Parser{Params: tc.params}
			pull, stop := iter.Pull(p.Iter())
			defer stop()
			got, ok := pull()
			assert.True(t, ok)
			assert.EqualValues(t, tc.expected, got)
		})
	}
}

func TestParserNextMultiple(t *testing.T) {
	t.Run("[31, 1, 7, 0]: fg, bold, unknown, unset", func(t *testing.T) {
		parser := Parser{Params: []uint16{31, 1, 7, 0}}
		var types []AttributeType
		for idx, attr := range parser.Iter2() {
			assert.Equal(t, len(types), idx)
			types = append(types, attr.Type)
		}
		assert.Equal(t, []AttributeType{
			AttributeTypeFg,
			AttributeTypeBold,
			AttributeTypeUnknown,
			AttributeTypeUnset,
		}, types)
	})

	t.Run("stop early", func(t *testing.T) {
		parser := Parser{Params: []uint16{31, 1}}
		count := 0
		for range parser.Iter() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})

	t.Run("reusable", func(t *testing.T) {
		parser := Parser{Params: []uint16{42}}
		for range 2 {
			var got []*Attribute
			for attr := range parser.Iter() {
				got = append(got, attr)
			}
			assert.Len(t, got, 1)
			assert.Equal(t, color.Green, got[0].Color)
		}
	})
}
