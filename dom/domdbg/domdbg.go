/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"

	"github.com/npillmayer/elq/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump writes an indented outline of the element tree below root to w,
// decorating each element with the values of the given attributes, if
// present. Text and comment nodes are skipped. Useful to inspect which
// elements are under management and which states a cycle produced.
func Dump(w io.Writer, root *html.Node, attrs ...string) error {
	printer := tp.New()
	appendElements(printer, root, attrs)
	_, err := io.WriteString(w, printer.String())
	return err
}

func appendElements(branch tp.Tree, n *html.Node, attrs []string) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		label := dom.NodeName(ch)
		for _, key := range attrs {
			if v, ok := dom.Attr(ch, key); ok {
				label += fmt.Sprintf(" %s=%q", key, v)
			}
		}
		appendElements(branch.AddBranch(label), ch, attrs)
	}
}
