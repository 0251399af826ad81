package config

import "github.com/reactopo/reactopo/particle"

// RegistryConfig is the YAML document shape consumed by BuildRegistry: a
// particle-type catalog, a named topology-type catalog, and the two
// reaction tables. Structural reactions can't carry their Execute
// function as data (SPEC_FULL.md §4.3.1), so StructuralReactionCfg
// instead names a Kind resolved against the catalog the embedding
// application registers with RegisterStructuralKind.
type RegistryConfig struct {
	ParticleTypes []ParticleTypeConfig    `yaml:"particle_types"`
	TopologyTypes []string                `yaml:"topology_types"`
	Structural    []StructuralReactionCfg `yaml:"structural_reactions"`
	Spatial       []SpatialReactionCfg    `yaml:"spatial_reactions"`
}

// ParticleTypeConfig names and flavors one particle type; its position in
// the list determines its assigned particle.TypeID (registration order,
// matching particle.TypeRegistry.Register's own policy).
type ParticleTypeConfig struct {
	Name   string `yaml:"name"`
	Flavor string `yaml:"flavor"` // "normal" or "topology"
}

// StructuralReactionCfg declares one structural reaction by name and
// topology type, plus a Kind resolved against the process's structural
// reaction catalog (RegisterStructuralKind) to obtain its Execute and
// Rate functions. RateValue is passed to kinds that accept a constant
// base rate; kinds that ignore it are free to do so.
type StructuralReactionCfg struct {
	Name         string  `yaml:"name"`
	TopologyType string  `yaml:"topology_type"`
	Kind         string  `yaml:"kind"`
	RateValue    float64 `yaml:"rate"`
}

// SpatialReactionCfg is pure data — every field of reaction.SpatialReaction
// maps directly to YAML. An empty TopType*/TopTypeTo* string encodes
// reaction.NoTopologyType ("not inside a topology", spec.md §3's "⊥").
type SpatialReactionCfg struct {
	Name string `yaml:"name"`

	Type1    string `yaml:"type1"`
	TopType1 string `yaml:"top_type1"`
	Type2    string `yaml:"type2"`
	TopType2 string `yaml:"top_type2"`

	TypeTo1    string `yaml:"type_to1"`
	TopTypeTo1 string `yaml:"top_type_to1"`
	TypeTo2    string `yaml:"type_to2"`
	TopTypeTo2 string `yaml:"top_type_to2"`

	Rate                float64 `yaml:"rate"`
	Radius              float64 `yaml:"radius"`
	IsFusion            bool    `yaml:"is_fusion"`
	AllowSelfConnection bool    `yaml:"allow_self_connection"`
}

// flavorFromString maps a YAML flavor string to particle.Flavor,
// defaulting to FlavorNormal for anything other than "topology".
func flavorFromString(s string) particle.Flavor {
	if s == "topology" {
		return particle.FlavorTopology
	}
	return particle.FlavorNormal
}
