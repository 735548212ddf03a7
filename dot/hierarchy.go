package dot

import (
	"github.com/NickyBoy89/classcheck/symbol"
	"golang.org/x/exp/slices"
)

// InterfaceCluster is the subgraph that every interface is drawn in
const InterfaceCluster = "interfaces"

// Hierarchy draws every class in the table with an edge to its parent and to
// each of the interfaces it implements. Names that are referenced but never
// defined still show up as the target of an edge
func Hierarchy(table *symbol.Table) *Graph {
	graph := New("hierarchy")

	if ifaces := table.Interfaces(); len(ifaces) > 0 {
		cluster := graph.Subgraph(InterfaceCluster)
		for _, iface := range ifaces {
			cluster.AddNode(iface.Name())
		}
	}

	for _, class := range table.Classes() {
		var edges []string
		if class.HasParent() {
			edges = append(edges, class.Parent)
		}
		for _, iface := range class.Interfaces {
			if !slices.Contains(edges, iface) {
				edges = append(edges, iface)
			}
		}
		graph.AddNode(class.Name, edges...)
	}
	return graph
}
