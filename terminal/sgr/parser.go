// SGR (Select Graphic Rendition) parameter decoding.
//
// Only the subset the window layer can display is recognized: the eight
// basic foreground/background colors, their defaults, bold, dim, normal
// intensity and full reset. See https://vt100.net/docs/vt510-rm/SGR.html
package sgr

import (
	"iter"
	"strconv"
	"strings"

	"github.com/hnimtadd/termwin/terminal/color"
)

type AttributeType uint16

const (
	// Reset colors and attributes.
	AttributeTypeUnset AttributeType = iota

	// Bold the text.
	AttributeTypeBold
	// Faint/dim text.
	AttributeTypeFaint
	// Normal intensity, neither bold nor faint.
	AttributeTypeResetBold

	// Set one of the eight foreground colors.
	AttributeTypeFg
	// Set one of the eight background colors.
	AttributeTypeBg
	// Reset fg colors.
	AttributeTypeResetFg
	// Reset bg colors.
	AttributeTypeResetBg

	// Unknown
	AttributeTypeUnknown
)

func (t AttributeType) String() string {
	switch t {
	case AttributeTypeUnset:
		return "Unset"
	case AttributeTypeBold:
		return "Bold"
	case AttributeTypeFaint:
		return "Faint"
	case AttributeTypeResetBold:
		return "ResetBold"
	case AttributeTypeFg:
		return "Fg"
	case AttributeTypeBg:
		return "Bg"
	case AttributeTypeResetFg:
		return "ResetFg"
	case AttributeTypeResetBg:
		return "ResetBg"
	default:
		return "Unknown"
	}
}

type Attribute struct {
	Type AttributeType
	// Color is set for AttributeTypeFg and AttributeTypeBg.
	Color color.Color
	// Param is the raw parameter the attribute was decoded from.
	Param uint16
}

type Parser struct {
	Params []uint16
	idx    int
}

// ParseParams splits the parameter string of a CSI sequence ("31;1") into
// numbers. Empty parameters carry no value and are dropped. Values that do
// not fit into a uint16 saturate.
func ParseParams(s string) []uint16 {
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ";")
	params := make([]uint16, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		n, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			// Only digits reach us, so this is an overflow.
			n = 1<<16 - 1
		}
		params = append(params, uint16(n))
	}
	return params
}

// next return pull function that could be used to get attr parsed by this
// parser.
// Result of pull function:
//   - attr: parsed value
//   - ok: bool value indicated pull is availabe next time or not.
func (p *Parser) next() func() (attr *Attribute, ok bool) {
	p.idx = 0
	return func() (*Attribute, bool) {
		if p.idx >= len(p.Params) {
			// An empty list implicitly means reset.
			if p.idx == 0 {
				p.idx += 1
				return &Attribute{Type: AttributeTypeUnset}, false
			}
			return nil, false
		}
		param := p.Params[p.idx]
		p.idx += 1
		more := p.idx < len(p.Params)

		switch {
		case param == 0:
			return &Attribute{Type: AttributeTypeUnset, Param: param}, more
		case param == 1:
			return &Attribute{Type: AttributeTypeBold, Param: param}, more
		case param == 2:
			return &Attribute{Type: AttributeTypeFaint, Param: param}, more
		case param == 22:
			return &Attribute{Type: AttributeTypeResetBold, Param: param}, more
		case param >= 30 && param <= 37:
			return &Attribute{
				Type:  AttributeTypeFg,
				Color: color.Color(param - 30),
				Param: param,
			}, more
		case param == 39:
			return &Attribute{Type: AttributeTypeResetFg, Param: param}, more
		case param >= 40 && param <= 47:
			return &Attribute{
				Type:  AttributeTypeBg,
				Color: color.Color(param - 40),
				Param: param,
			}, more
		case param == 49:
			return &Attribute{Type: AttributeTypeResetBg, Param: param}, more
		}
		return &Attribute{Type: AttributeTypeUnknown, Param: param}, more
	}
}

// Iter returns iter.Seq[*Attribute] iterator that yields the attributes
func (p *Parser) Iter() iter.Seq[*Attribute] {
	next := p.next()
	return func(yield func(*Attribute) bool) {
		for {
			attr, ok := next()
			if attr == nil {
				return
			}
			if !yield(attr) {
				return
			}
			if !ok {
				return
			}
		}
	}
}

// Iter2 returns iter.Seq2[int, *Attribute] that yields the attributes with idx
func (p *Parser) Iter2() iter.Seq2[int, *Attribute] {
	return func(yield func(int, *Attribute) bool) {
		idx := 0
		for attr := range p.Iter() {
			if !yield(idx, attr) {
				return
			}
			idx++
		}
	}
}
