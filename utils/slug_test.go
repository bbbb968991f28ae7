package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Barbería Demo":        "barbera-demo",
		"  El Corte  Perfecto": "el-corte-perfecto",
		"UPPER case":           "upper-case",
		"already-a-slug":       "already-a-slug",
		"---":                  "",
		"ñ!?":                  "",
		"a - b":                "a-b",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
