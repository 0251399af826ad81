package gexf

import (
	"encoding/xml"
	"fmt"

	"github.com/reactopo/reactopo/topology"
)

// document mirrors the handful of GEXF 1.2 elements this package emits:
// a single <graph> with flat <nodes>/<edges> lists, no viz/attribute
// extensions. No XML-handling library appears anywhere in the retrieved
// pack (see DESIGN.md), so this stays on the standard library's
// encoding/xml, matching the struct-plus-tags idiom the teacher uses
// throughout its own type definitions.
type document struct {
	XMLName xml.Name `xml:"gexf"`
	Xmlns   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Graph   graphXML `xml:"graph"`
}

type graphXML struct {
	Mode            string   `xml:"mode,attr"`
	DefaultEdgeType string   `xml:"defaultedgetype,attr"`
	Nodes           nodesXML `xml:"nodes"`
	Edges           edgesXML `xml:"edges"`
}

type nodesXML struct {
	Nodes []nodeXML `xml:"node"`
}

type nodeXML struct {
	ID    string `xml:"id,attr"`
	Label string `xml:"label,attr"`
}

type edgesXML struct {
	Edges []edgeXML `xml:"edge"`
}

type edgeXML struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// Export renders g as a GEXF 1.2 XML document (spec.md §6): one <node>
// per vertex, labeled by its backing particle index, and one <edge> per
// edge with an incrementing id. Vertex handles — not particle indices —
// are used as node/edge endpoint ids, since they are what Graph.Edges
// reports; node @label carries the particle index for readers that want
// it.
func Export(g *topology.Graph) ([]byte, error) {
	vertices := g.Vertices()
	nodes := make([]nodeXML, 0, len(vertices))
	for _, v := range vertices {
		idx, err := g.ParticleIndexOf(v)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, nodeXML{
			ID:    fmt.Sprintf("%d", int(v)),
			Label: fmt.Sprintf("%d", idx),
		})
	}

	edgePairs := g.Edges()
	edges := make([]edgeXML, 0, len(edgePairs))
	for i, e := range edgePairs {
		edges = append(edges, edgeXML{
			ID:     fmt.Sprintf("%d", i),
			Source: fmt.Sprintf("%d", int(e[0])),
			Target: fmt.Sprintf("%d", int(e[1])),
		})
	}

	doc := document{
		Xmlns:   "http://gexf.net/1.2",
		Version: "1.2",
		Graph: graphXML{
			Mode:            "static",
			DefaultEdgeType: "undirected",
			Nodes:           nodesXML{Nodes: nodes},
			Edges:           edgesXML{Edges: edges},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
