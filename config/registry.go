package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/reaction"
	"github.com/reactopo/reactopo/topology"
)

// LoadRegistryConfig reads and decodes a reaction-table YAML document,
// grounded on the teacher pack's config-file-by-flag idiom
// (mpisat-qumo's internal/cli/sdn.go loadSDNConfig: os.ReadFile +
// yaml.Unmarshal, wrapped errors via fmt.Errorf %w).
func LoadRegistryConfig(path string) (*RegistryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var doc RegistryConfig
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &doc, nil
}

// Built is the result of BuildRegistry: the reaction.Registry itself plus
// the two name tables the YAML document's reaction entries were resolved
// against, which callers need to translate particle/topology type names
// elsewhere (e.g. a demo runner seeding initial particles).
type Built struct {
	Registry      *reaction.Registry
	Types         *particle.TypeRegistry
	TopologyTypes map[string]topology.TopologyTypeID
}

// BuildRegistry decodes doc into a reaction.Registry: particle types are
// registered in listed order, topology type names are assigned sequential
// ids starting at 1 (0 is reserved as an ordinary, meaningful id a caller
// may still use for an "untyped" topology; reaction.NoTopologyType is the
// distinct 0xFFFF "no topology at all" sentinel spec.md §3 calls "⊥"),
// and each reaction table entry is resolved against those two name tables.
func BuildRegistry(doc RegistryConfig) (*Built, error) {
	types := particle.NewTypeRegistry()
	typeIDs := make(map[string]particle.TypeID, len(doc.ParticleTypes))
	for _, pt := range doc.ParticleTypes {
		id, err := types.Register(pt.Name, flavorFromString(pt.Flavor))
		if err != nil {
			return nil, fmt.Errorf("config: particle type %q: %w", pt.Name, err)
		}
		typeIDs[pt.Name] = id
	}

	topTypes := make(map[string]topology.TopologyTypeID, len(doc.TopologyTypes))
	for i, name := range doc.TopologyTypes {
		if name == "" {
			return nil, fmt.Errorf("config: topology_types[%d]: empty name", i)
		}
		topTypes[name] = topology.TopologyTypeID(i + 1)
	}

	reg := reaction.NewRegistry()

	for _, sc := range doc.Structural {
		topType, ok := topTypes[sc.TopologyType]
		if !ok {
			return nil, fmt.Errorf("config: structural reaction %q: unknown topology type %q", sc.Name, sc.TopologyType)
		}
		builder, ok := lookupStructuralKind(sc.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: %q (reaction %q)", ErrUnknownStructuralKind, sc.Kind, sc.Name)
		}
		rateFn, executeFn := builder(sc)
		if err := reg.AddStructuralReaction(reaction.StructuralReaction{
			Name:         sc.Name,
			TopologyType: topType,
			Rate:         rateFn,
			Execute:      executeFn,
		}); err != nil {
			return nil, fmt.Errorf("config: structural reaction %q: %w", sc.Name, err)
		}
	}

	for _, sp := range doc.Spatial {
		r, err := resolveSpatial(sp, typeIDs, topTypes)
		if err != nil {
			return nil, err
		}
		if err := reg.AddSpatialReaction(r); err != nil {
			return nil, fmt.Errorf("config: spatial reaction %q: %w", sp.Name, err)
		}
	}

	return &Built{Registry: reg, Types: types, TopologyTypes: topTypes}, nil
}

func resolveSpatial(
	sp SpatialReactionCfg,
	typeIDs map[string]particle.TypeID,
	topTypes map[string]topology.TopologyTypeID,
) (reaction.SpatialReaction, error) {
	t1, err := lookupParticleType(sp.Type1, typeIDs, sp.Name, "type1")
	if err != nil {
		return reaction.SpatialReaction{}, err
	}
	t2, err := lookupParticleType(sp.Type2, typeIDs, sp.Name, "type2")
	if err != nil {
		return reaction.SpatialReaction{}, err
	}
	typeTo1, err := lookupParticleType(sp.TypeTo1, typeIDs, sp.Name, "type_to1")
	if err != nil {
		return reaction.SpatialReaction{}, err
	}
	typeTo2, err := lookupParticleType(sp.TypeTo2, typeIDs, sp.Name, "type_to2")
	if err != nil {
		return reaction.SpatialReaction{}, err
	}
	topType1, err := lookupTopologyType(sp.TopType1, topTypes, sp.Name, "top_type1")
	if err != nil {
		return reaction.SpatialReaction{}, err
	}
	topType2, err := lookupTopologyType(sp.TopType2, topTypes, sp.Name, "top_type2")
	if err != nil {
		return reaction.SpatialReaction{}, err
	}
	topTypeTo1, err := lookupTopologyType(sp.TopTypeTo1, topTypes, sp.Name, "top_type_to1")
	if err != nil {
		return reaction.SpatialReaction{}, err
	}
	topTypeTo2, err := lookupTopologyType(sp.TopTypeTo2, topTypes, sp.Name, "top_type_to2")
	if err != nil {
		return reaction.SpatialReaction{}, err
	}

	return reaction.SpatialReaction{
		Name:                sp.Name,
		Type1:               t1,
		TopType1:            topType1,
		Type2:               t2,
		TopType2:            topType2,
		TypeTo1:             typeTo1,
		TypeTo2:             typeTo2,
		TopTypeTo1:          topTypeTo1,
		TopTypeTo2:          topTypeTo2,
		Rate:                sp.Rate,
		Radius:              sp.Radius,
		IsFusion:            sp.IsFusion,
		AllowSelfConnection: sp.AllowSelfConnection,
	}, nil
}

func lookupParticleType(name string, typeIDs map[string]particle.TypeID, reactionName, field string) (particle.TypeID, error) {
	id, ok := typeIDs[name]
	if !ok {
		return 0, fmt.Errorf("config: spatial reaction %q: unknown particle type %q in %s", reactionName, name, field)
	}
	return id, nil
}

// lookupTopologyType resolves an empty string to reaction.NoTopologyType
// ("⊥"); any other name must already be in topTypes, since
// RegistryConfig.TopologyTypes declares the full catalog up front.
func lookupTopologyType(name string, topTypes map[string]topology.TopologyTypeID, reactionName, field string) (topology.TopologyTypeID, error) {
	if name == "" {
		return reaction.NoTopologyType, nil
	}
	id, ok := topTypes[name]
	if !ok {
		return 0, fmt.Errorf("config: spatial reaction %q: unknown topology type %q in %s", reactionName, name, field)
	}
	return id, nil
}
