package digraph

import (
	"fmt"
	"io"
)

// WriteDOT prints g in Graphviz DOT format, consumed externally by the
// ccomps | dot | gvpack | neato pipeline (spec.md §6). label, if non-nil, is
// used to render each vertex; otherwise the raw int ID is printed. Ported
// from original_source/src/adjacency_list.rs's `to_dot`.
func (g *Digraph) WriteDOT(w io.Writer, label func(int) string) error {
	if label == nil {
		label = func(v int) string { return fmt.Sprintf("%d", v) }
	}
	if _, err := io.WriteString(w, "digraph {\n"); err != nil {
		return err
	}
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "\t%q;\n", label(v)); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "\t%q -> %q;\n", label(e[0]), label(e[1])); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
