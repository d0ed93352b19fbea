package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/version"
)

func newTable(out io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func renderSignatures(out io.Writer, tbl *version.Table, launchers *version.Set) {
	t := newTable(out, table.Row{"#", "Revision", "File", "Digest"})
	for i, e := range tbl.Entries() {
		t.AppendRow(table.Row{i + 1, e.Revision, e.Revision.SignatureFile(), e.Signature.Digest()})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d signatures, %d launchers", tbl.Len(), launchers.Len())})
	t.Render()
}

type identified struct {
	Path      string
	Signature version.Signature
	Revision  version.Revision
	Err       error
}

func renderIdentified(out io.Writer, rows []identified) {
	t := newTable(out, table.Row{"Path", "Revision", "Digest"})
	for _, r := range rows {
		switch {
		case r.Err != nil:
			t.AppendRow(table.Row{r.Path, r.Err.Error(), ""})
		default:
			t.AppendRow(table.Row{r.Path, r.Revision, r.Signature.Digest()})
		}
	}
	t.Render()
}

func renderDetection(out io.Writer, executable string, res version.Result) {
	t := newTable(out, table.Row{"Executable", "Revision", "Guess", "Source", "Signature file"})
	t.AppendRow(table.Row{executable, res.Revision, res.Guess, res.Source, res.SignatureFile})
	t.Render()
}

func renderLayouts(out io.Writer, contracts []layout.Contract) error {
	t := newTable(out, table.Row{"Entity", "Family", "Size", "Fields", "Status"})
	var failed int
	for _, c := range contracts {
		status := "ok"
		if err := c.Verify(); err != nil {
			status = err.Error()
			failed++
		}
		fields := make([]string, 0, len(c.Fields))
		for _, f := range c.Fields {
			fields = append(fields, fmt.Sprintf("%s@%#x", f.Name, f.Offset))
		}
		t.AppendRow(table.Row{c.Entity, c.Family, fmt.Sprintf("%#x", c.Size), strings.Join(fields, " "), status})
	}
	t.Render()
	if failed > 0 {
		return fmt.Errorf("%d layouts do not match their contract", failed)
	}
	return nil
}

func renderMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	t := newTable(out, table.Row{"Metric", "Labels", "Value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			sort.Strings(labels)
			t.AppendRow(table.Row{mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()})
		}
	}
	t.Render()
	return nil
}
