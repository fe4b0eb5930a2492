package anatomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAllRegions(t *testing.T) {
	all := All()
	require.Len(t, all, 21)
	assert.Equal(t, Head, all[0])
	assert.Equal(t, RightFoot, all[len(all)-1])

	seen := make(map[string]bool)
	for _, r := range all {
		assert.True(t, r.Valid(), "%d should be valid", r)
		assert.False(t, seen[r.String()], "duplicate tag %s", r)
		seen[r.String()] = true

		parsed, err := ParseRegion(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("")
	require.NoError(t, err)
	assert.Equal(t, None, r)

	r, err = ParseRegion("none")
	require.NoError(t, err)
	assert.Equal(t, None, r)

	_, err = ParseRegion("elbow")
	assert.ErrorContains(t, err, `unknown region "elbow"`)

	_, err = ParseRegion("Heart")
	assert.Error(t, err, "tags are case sensitive")
}

func TestRegionInvalidValues(t *testing.T) {
	assert.False(t, None.Valid())
	assert.False(t, Region(-1).Valid())
	assert.False(t, Region(99).Valid())
	assert.Equal(t, "none", Region(99).String())
	assert.Equal(t, "none", None.String())
}

func TestRegionYAML(t *testing.T) {
	var doc struct {
		Selected Region `yaml:"selected"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("selected: leftKidney\n"), &doc))
	assert.Equal(t, LeftKidney, doc.Selected)

	err := yaml.Unmarshal([]byte("selected: tail\n"), &doc)
	assert.ErrorContains(t, err, "line 1")

	out, err := yaml.Marshal(map[string]Region{"selected": RightLung})
	require.NoError(t, err)
	assert.Equal(t, "selected: rightLung\n", string(out))
}
