package anatomy

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Info is the host-facing description of a region shown in the info panel
type Info struct {
	ID          Region   `yaml:"id"`
	DisplayName string   `yaml:"displayName"`
	Description string   `yaml:"description"`
	Facts       []string `yaml:"facts"`
	AccentColor string   `yaml:"accentColor"`
}

// Catalog is a read-only lookup of region descriptions keyed by region.
// Classification never consults it.
type Catalog struct {
	entries map[Region]Info
}

type catalogFile struct {
	Regions []Info `yaml:"regions"`
}

// LoadCatalog decodes a YAML catalog of the form
//
//	regions:
//	  - id: heart
//	    displayName: Heart
//	    facts: [...]
//
// Unknown region ids and duplicates are rejected. Regions missing from the file
// simply have no entry.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &Catalog{entries: make(map[Region]Info, len(file.Regions))}
	for i, info := range file.Regions {
		if !info.ID.Valid() {
			return nil, fmt.Errorf("catalog entry %d: missing region id", i)
		}
		if _, dup := c.entries[info.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate region %s", i, info.ID)
		}
		c.entries[info.ID] = info
	}
	return c, nil
}

// Lookup returns the entry for r
func (c *Catalog) Lookup(r Region) (Info, bool) {
	if c == nil {
		return Info{}, false
	}
	info, ok := c.entries[r]
	return info, ok
}

// DisplayName returns the catalog name of r, falling back to its tag
func (c *Catalog) DisplayName(r Region) string {
	if info, ok := c.Lookup(r); ok && info.DisplayName != "" {
		return info.DisplayName
	}
	return r.String()
}

// Len returns the number of described regions
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
