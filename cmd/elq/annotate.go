package main

import (
	"io"
	"os"

	"github.com/npillmayer/elq"
	"github.com/npillmayer/elq/dom"
	"github.com/npillmayer/elq/dom/domdbg"
	"github.com/npillmayer/elq/frame"
	"github.com/npillmayer/elq/measure"
)

// annotateFile runs one full element-query cycle over an HTML file and
// writes the annotated document to the configured output.
func annotateFile(path string, flags *rootFlags) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	doc, err := dom.FromHTML(f)
	f.Close()
	if err != nil {
		return err
	}

	var meter measure.Measurer = measure.AttrWidths{}
	if flags.viewport > 0 {
		meter = measure.NewCascade(flags.viewport)
	}
	engine := elq.New(doc,
		elq.WithMeasurer(meter),
		elq.WithScheduler(frame.Synchronous{}),
		elq.WithConfigAttribute(flags.configAttr),
		elq.WithStateAttribute(flags.stateAttr),
	)
	if _, err := engine.RefreshNodes(); err != nil {
		return err
	}
	engine.Query(nil, true)

	if flags.dump {
		if err := domdbg.Dump(os.Stderr, doc.Root(), flags.configAttr, flags.stateAttr); err != nil {
			return err
		}
	}

	var out io.Writer = os.Stdout
	if flags.output != "" {
		o, err := os.Create(flags.output)
		if err != nil {
			return err
		}
		defer o.Close()
		out = o
	}
	return doc.WriteHTML(out)
}
