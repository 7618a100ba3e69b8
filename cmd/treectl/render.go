package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/g-m-twostay/bintree/config"
)

var tableStyles = map[string]table.Style{
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"bold":    table.StyleBold,
	"double":  table.StyleDouble,
}

var listStyles = map[string]list.Style{
	"light":   list.StyleConnectedLight,
	"rounded": list.StyleConnectedRounded,
	"bold":    list.StyleConnectedBold,
	"double":  list.StyleConnectedDouble,
}

func newTable(w io.Writer, cfg config.OutputConfig, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyles[cfg.Style])

	if cfg.Color {
		t.Style().Color.Header = text.Colors{text.Bold, text.FgCyan}
	}

	t.AppendHeader(header)

	return t
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

func traversalRows(root *Trees.Node[int]) []table.Row {
	return []table.Row{
		{"inorder", joinInts(Trees.Collect(Trees.InOrder[int], root))},
		{"preorder", joinInts(Trees.Collect(Trees.PreOrder[int], root))},
		{"postorder", joinInts(Trees.Collect(Trees.PostOrder[int], root))},
		{"inorder (stack)", joinInts(Trees.Collect(Trees.InOrderIterative[int], root))},
		{"postorder (stacks)", joinInts(Trees.Collect(Trees.PostOrderIterative[int], root))},
		{"level order", joinInts(Trees.Collect(Trees.LevelOrder[int], root))},
		{"zigzag", joinInts(Trees.Collect(Trees.Zigzag[int], root))},
	}
}

// renderTree prints the tree as an indented hierarchy. A node with one child
// shows the missing side as "-".
func renderTree(w io.Writer, cfg config.OutputConfig, root *Trees.Node[int]) {
	if root == nil {
		io.WriteString(w, "(empty)\n")
		return
	}

	l := list.NewWriter()
	l.SetOutputMirror(w)
	l.SetStyle(listStyles[cfg.Style])
	appendNode(l, root, "")
	l.Render()
}

func appendNode(l list.Writer, n *Trees.Node[int], label string) {
	if n == nil {
		l.AppendItem(label + "-")
		return
	}

	l.AppendItem(label + strconv.Itoa(n.Value))
	if n.Leaf() {
		return
	}

	l.Indent()
	appendNode(l, n.Left, "L: ")
	appendNode(l, n.Right, "R: ")
	l.UnIndent()
}
