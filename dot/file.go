package dot

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Graph is a Graphviz digraph, built up in memory and written out all at once
type Graph struct {
	SubGraph
}

// GraphPrinter is anything that can be rendered as part of a graph
type GraphPrinter interface {
	AsDot() (string, []Edge)
	Name() string
}

// GraphItem is any item in the graph
type GraphItem interface {
	GraphPrinter
	Subgraph(name string) GraphItem       // Returns the named subgraph, adding it if necessary
	AddNode(name string, edges ...string) // Adds a node to the graph
}

type Edge struct {
	From string
	To   []string
}

type SubGraph struct {
	name      string
	nodes     map[string]Node
	subgraphs map[string]GraphItem
}

// Methods for GraphItem
func (g *SubGraph) Subgraph(name string) GraphItem {
	if g.subgraphs == nil {
		g.subgraphs = make(map[string]GraphItem)
	}
	if _, in := g.subgraphs[name]; !in {
		g.subgraphs[name] = &SubGraph{name: name}
	}
	return g.subgraphs[name]
}

func (g *SubGraph) AddNode(name string, edges ...string) {
	if g.nodes == nil {
		g.nodes = make(map[string]Node)
	}
	g.nodes[name] = Node{name: name, edges: edges}
}

func (g SubGraph) Name() string {
	return g.name
}

// AsDot renders the subgraph as a cluster. Edges are returned instead of
// written, so that they can be drawn at the top level of the graph
func (g SubGraph) AsDot() (string, []Edge) {
	totalEdges := []Edge{}
	total := fmt.Sprintf("subgraph cluster_%s {\n", g.name)
	total += fmt.Sprintf("label=\"%s\"\n", g.name)
	for _, name := range sortedKeys(g.nodes) {
		item := g.nodes[name]
		totalEdges = append(totalEdges, Edge{From: item.name, To: item.edges})
		total += quote(item.Name()) + "\n"
	}
	for _, name := range sortedKeys(g.subgraphs) {
		sub, edges := g.subgraphs[name].AsDot()
		total += sub + "\n"
		totalEdges = append(totalEdges, edges...)
	}
	return total + "}", totalEdges
}

type Node struct {
	name  string
	edges []string
}

func (n Node) AsDot() (string, []Edge) {
	return "", []Edge{{From: n.name, To: n.edges}}
}

func (n Node) Name() string {
	return n.name
}

// New creates an empty graph
func New(name string) *Graph {
	return &Graph{SubGraph: SubGraph{name: name}}
}

func quote(name string) string {
	return "\"" + strings.ReplaceAll(name, "\"", "\\\"") + "\""
}

func commaSeparatedString(list []string) string {
	quoted := make([]string, len(list))
	for ind, item := range list {
		quoted[ind] = quote(item)
	}
	return strings.Join(quoted, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// WriteTo writes the whole graph in the Graphviz format
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var out strings.Builder
	totalEdges := []Edge{}
	out.WriteString("digraph {\n")

	// First, write out all the subgraphs
	for _, name := range sortedKeys(g.subgraphs) {
		sub, edges := g.subgraphs[name].AsDot()
		totalEdges = append(totalEdges, edges...)
		out.WriteString(sub + "\n")
	}

	// Then, go through the nodes
	for _, name := range sortedKeys(g.nodes) {
		node := g.nodes[name]
		if len(node.edges) == 0 {
			fmt.Fprintf(&out, "  %s\n", quote(name))
			continue
		}
		fmt.Fprintf(&out, "  %s -> {%s}\n", quote(name), commaSeparatedString(node.edges))
	}

	// Finally, connect all the edges from everything else
	for _, edge := range totalEdges {
		// Skip creating edges that don't point anywhere
		if len(edge.To) == 0 {
			continue
		}
		// Also skip empty nodes
		if edge.From == "" {
			continue
		}
		fmt.Fprintf(&out, "%s -> {%s}\n", quote(edge.From), commaSeparatedString(edge.To))
	}
	out.WriteString("}\n")

	n, err := io.WriteString(w, out.String())
	return int64(n), err
}

// WriteToFile creates the named file and writes the graph into it
func (g *Graph) WriteToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := g.WriteTo(file); err != nil {
		return err
	}
	return file.Close()
}
