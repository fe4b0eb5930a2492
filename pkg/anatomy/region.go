// Package anatomy names the body regions of the viewer and maps model-local
// points onto them.
package anatomy

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Region identifies one of the 21 anatomical regions. The zero value None means
// "no region" and is never produced by Classify.
type Region int

const (
	None Region = iota
	Head
	Neck
	LeftShoulder
	RightShoulder
	Chest
	Heart
	LeftLung
	RightLung
	Spine
	LeftArm
	RightArm
	Liver
	LeftKidney
	RightKidney
	LowerBack
	Abdomen
	Hip
	LeftLeg
	RightLeg
	LeftFoot
	RightFoot

	regionCount
)

var regionNames = [regionCount]string{
	None:          "",
	Head:          "head",
	Neck:          "neck",
	LeftShoulder:  "leftShoulder",
	RightShoulder: "rightShoulder",
	Chest:         "chest",
	Heart:         "heart",
	LeftLung:      "leftLung",
	RightLung:     "rightLung",
	Spine:         "spine",
	LeftArm:       "leftArm",
	RightArm:      "rightArm",
	Liver:         "liver",
	LeftKidney:    "leftKidney",
	RightKidney:   "rightKidney",
	LowerBack:     "lowerBack",
	Abdomen:       "abdomen",
	Hip:           "hip",
	LeftLeg:       "leftLeg",
	RightLeg:      "rightLeg",
	LeftFoot:      "leftFoot",
	RightFoot:     "rightFoot",
}

var regionsByName = func() map[string]Region {
	m := make(map[string]Region, regionCount-1)
	for r := Head; r < regionCount; r++ {
		m[regionNames[r]] = r
	}
	return m
}()

// All returns the 21 regions in declaration order
func All() []Region {
	all := make([]Region, 0, regionCount-1)
	for r := Head; r < regionCount; r++ {
		all = append(all, r)
	}
	return all
}

// Valid reports whether r is one of the 21 regions
func (r Region) Valid() bool {
	return r > None && r < regionCount
}

// String returns the camelCase tag of the region, or "none"
func (r Region) String() string {
	if !r.Valid() {
		return "none"
	}
	return regionNames[r]
}

// ParseRegion resolves a region tag. The empty string and "none" map to None.
func ParseRegion(s string) (Region, error) {
	if s == "" || s == "none" {
		return None, nil
	}
	if r, ok := regionsByName[s]; ok {
		return r, nil
	}
	return None, fmt.Errorf("unknown region %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (r Region) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// UnmarshalYAML decodes a region tag from a YAML scalar
func (r *Region) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: region must be a scalar", node.Line)
	}
	if err := r.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}
