package csi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tcs := []struct {
		name     string
		seq      string
		expected Command
	}{
		{name: "sgr", seq: "\x1b[31;1m", expected: Command{Params: []uint16{31, 1}, Final: FinalSGR}},
		{name: "cup", seq: "\x1b[2;3H", expected: Command{Params: []uint16{2, 3}, Final: FinalCUP}},
		{name: "ed", seq: "\x1b[2J", expected: Command{Params: []uint16{2}, Final: FinalED}},
		{name: "no params", seq: "\x1b[J", expected: Command{Final: FinalED}},
		{name: "empty", seq: "\x1b[", expected: Command{}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Parse(tc.seq))
		})
	}
}

func TestParam(t *testing.T) {
	c := Command{Params: []uint16{7}}
	assert.EqualValues(t, 7, c.Param(0, 1))
	assert.EqualValues(t, 1, c.Param(1, 1))
	assert.Equal(t, "CSI [7] H", Command{Params: []uint16{7}, Final: 'H'}.String())
}
