// Package dot renders the structure of a linked list as a Graphviz digraph.
package dot

import (
	"fmt"
	"html"
	"io"
	"text/template"

	"linkedlists/cell"
)

type graphEdge struct {
	From, To string
	Attrs    map[string]string
}

type graphNode struct {
	ID    string
	Label string
	Attrs map[string]string
}

type graphContext struct {
	Title string
	Nodes []*graphNode
	Edges []*graphEdge
}

var graphTemplate = `digraph {{ printf "%q" $.Title }} {
	rankdir=LR;
	{{- range $i, $node := $.Nodes}}
	"{{ $node.ID }}" [label=<{{ $node.Label }}>{{ range $k, $v := $node.Attrs }},{{ $k }}={{ $v }}{{end}}];
	{{- end}}
	{{range $i, $edge := $.Edges}}
	"{{ $edge.From }}" -> "{{ $edge.To }}"{{ if $edge.Attrs }} [{{ range $k, $v := $edge.Attrs }}{{ $k }}={{ $v }},{{end}}]{{end}};
	{{- end}}
}
`

var tpl = template.Must(template.New("list").Parse(graphTemplate))

var (
	dataAttrs     = map[string]string{"shape": "circle"}
	sentinelAttrs = map[string]string{"shape": "box", "style": "filled", "fillcolor": "lightgrey"}
	prevAttrs     = map[string]string{"style": "dashed", "constraint": "false"}
	bottomAttrs   = map[string]string{"style": "dotted", "constraint": "false", "label": "bottom"}
)

// Write renders the chain starting at head, sentinels included. Nodes are
// named n0, n1, ... in chain order so the output is stable between runs.
func Write[T any](w io.Writer, title string, head *cell.Cell[T]) error {
	return tpl.Execute(w, graph(title, head))
}

func graph[T any](title string, head *cell.Cell[T]) *graphContext {
	ctx := &graphContext{Title: title}
	ids := make(map[*cell.Cell[T]]string)
	var cells []*cell.Cell[T]

	// stop at a cycle, the next edge of the last cell still points back
	for c := head; c != nil; c = c.Next() {
		if _, ok := ids[c]; ok {
			break
		}
		id := fmt.Sprintf("n%d", len(cells))
		ids[c] = id
		cells = append(cells, c)

		attrs := dataAttrs
		if c.IsSentinel() {
			attrs = sentinelAttrs
		}
		ctx.Nodes = append(ctx.Nodes, &graphNode{ID: id, Label: html.EscapeString(c.String()), Attrs: attrs})
	}

	edge := func(from *cell.Cell[T], to *cell.Cell[T], attrs map[string]string) {
		if to == nil {
			return
		}
		if id, ok := ids[to]; ok {
			ctx.Edges = append(ctx.Edges, &graphEdge{From: ids[from], To: id, Attrs: attrs})
		}
	}
	for _, c := range cells {
		edge(c, c.Next(), nil)
		edge(c, c.Prev(), prevAttrs)
		edge(c, c.Bottom(), bottomAttrs)
	}
	return ctx
}
