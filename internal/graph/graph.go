// Package graph builds directed graphs and writes them in the Graphviz DOT
// language.
package graph

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Attr is a single DOT attribute. Attributes are written in the order given.
type Attr struct {
	Key   string
	Value string
}

// A is shorthand for building an Attr.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

type statement struct {
	from, to string
	edge     bool
	attrs    []Attr
}

// Graph is a directed graph. Node and edge statements are kept in the order
// they were added.
type Graph struct {
	Name  string
	attrs []Attr
	stmts []statement
	nodes map[string]bool
	edges int
}

// New returns an empty directed graph.
func New(name string) *Graph {
	return &Graph{Name: name, nodes: make(map[string]bool)}
}

// SetAttr sets a graph-level attribute, replacing any previous value.
func (g *Graph) SetAttr(key, value string) {
	for i := range g.attrs {
		if g.attrs[i].Key == key {
			g.attrs[i].Value = value
			return
		}
	}
	g.attrs = append(g.attrs, A(key, value))
}

// AddNode adds a node. A node is emitted once per id: if id was already
// added, the call is ignored and AddNode returns false.
func (g *Graph) AddNode(id string, attrs ...Attr) bool {
	if g.nodes[id] {
		return false
	}
	g.nodes[id] = true
	g.stmts = append(g.stmts, statement{from: id, attrs: attrs})
	return true
}

// AddEdge adds an edge from -> to. Endpoints need not have been added as nodes.
func (g *Graph) AddEdge(from, to string, attrs ...Attr) {
	g.stmts = append(g.stmts, statement{from: from, to: to, edge: true, attrs: attrs})
	g.edges++
}

// HasNode reports whether a node with id was added.
func (g *Graph) HasNode(id string) bool {
	return g.nodes[id]
}

// NodeCount returns the number of distinct nodes added.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges added.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// WriteTo writes the graph in DOT form.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	bw := bufio.NewWriter(cw)

	if g.Name != "" {
		fmt.Fprintf(bw, "digraph %s {\n", Quote(g.Name))
	} else {
		bw.WriteString("digraph {\n")
	}
	if len(g.attrs) > 0 {
		fmt.Fprintf(bw, "\tgraph %s\n", attrList(g.attrs))
	}
	for _, s := range g.stmts {
		bw.WriteString("\t")
		bw.WriteString(Quote(s.from))
		if s.edge {
			bw.WriteString(" -> ")
			bw.WriteString(Quote(s.to))
		}
		if len(s.attrs) > 0 {
			bw.WriteString(" ")
			bw.WriteString(attrList(s.attrs))
		}
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")

	err := bw.Flush()
	return cw.n, err
}

// String returns the DOT source of the graph.
func (g *Graph) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

func attrList(attrs []Attr) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.Key + "=" + Quote(a.Value)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

var (
	idPattern      = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	numeralPattern = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)
)

// keywords must be quoted to be used as IDs.
var keywords = map[string]bool{
	"node": true, "edge": true, "graph": true,
	"digraph": true, "subgraph": true, "strict": true,
}

// Quote returns s as a DOT ID. Plain identifiers and numerals are left
// bare; anything else is double-quoted with '"' and '\' escaped and
// line breaks (LF, CRLF or a lone CR) written as "\n".
func Quote(s string) string {
	if !keywords[strings.ToLower(s)] && (idPattern.MatchString(s) || numeralPattern.MatchString(s)) {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n', '\r':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
