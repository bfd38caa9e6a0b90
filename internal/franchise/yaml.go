package franchise

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML registry format, for deployments that maintain the lineage table
// outside the binary:
//
//	lineages:
//	  - canonical_id: ATL
//	    current_name: Atlanta Braves
//	    founded_year: 1876
//	    identifiers: [BSN, ML1, ATL]
//	    relocations:
//	      - year: 1953
//	        from_city: Boston
//	        to_city: Milwaukee
//	        identifier_changes: true

type yamlFile struct {
	Lineages []yamlLineage `yaml:"lineages"`
}

type yamlLineage struct {
	CanonicalID string           `yaml:"canonical_id"`
	CurrentName string           `yaml:"current_name"`
	FoundedYear int              `yaml:"founded_year"`
	Identifiers []string         `yaml:"identifiers"`
	Relocations []yamlRelocation `yaml:"relocations"`
	Notes       string           `yaml:"notes"`
}

type yamlRelocation struct {
	Year              int    `yaml:"year"`
	FromCity          string `yaml:"from_city"`
	ToCity            string `yaml:"to_city"`
	FromTeamName      string `yaml:"from_team_name"`
	ToTeamName        string `yaml:"to_team_name"`
	IdentifierChanges bool   `yaml:"identifier_changes"`
	Notes             string `yaml:"notes"`
}

// LoadFile builds a registry from a YAML lineage table. The same construction
// invariants apply as for the built-in table: identifier collisions abort.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	return LoadYAML(data)
}

// LoadYAML builds a registry from YAML bytes.
func LoadYAML(data []byte) (*Registry, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse registry yaml: %w", err)
	}
	if len(f.Lineages) == 0 {
		return nil, fmt.Errorf("registry yaml defines no lineages")
	}

	lineages := make([]FranchiseLineage, 0, len(f.Lineages))
	for _, yl := range f.Lineages {
		if yl.CanonicalID == "" {
			return nil, fmt.Errorf("registry yaml: lineage missing canonical_id")
		}
		lin := FranchiseLineage{
			CanonicalID: yl.CanonicalID,
			CurrentName: yl.CurrentName,
			FoundedYear: yl.FoundedYear,
			Identifiers: yl.Identifiers,
			Notes:       yl.Notes,
		}
		for _, yr := range yl.Relocations {
			lin.Relocations = append(lin.Relocations, RelocationEvent{
				Year:              yr.Year,
				FromCity:          yr.FromCity,
				ToCity:            yr.ToCity,
				FromTeamName:      yr.FromTeamName,
				ToTeamName:        yr.ToTeamName,
				IdentifierChanges: yr.IdentifierChanges,
				Notes:             yr.Notes,
			})
		}
		lineages = append(lineages, lin)
	}
	return BuildFrom(lineages)
}
