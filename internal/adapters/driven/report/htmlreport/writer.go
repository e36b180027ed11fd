package htmlreport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ReportWriter = (*Writer)(nil)

// FileExtension is appended to the theme's base file name.
const FileExtension = ".html"

const (
	licenseURL = "https://mit-license.org/"
	copyright  = "Copyright © 2024 Kevin Garwood."
)

// Writer writes one HTML page per report into a run directory.
type Writer struct {
	dir string
}

// New creates a writer that places pages in dir.
func New(dir string) *Writer {
	return &Writer{dir: dir}
}

// Name returns the writer name.
func (w *Writer) Name() string { return "html" }

// Write renders report to <dir>/<base file name>.html.
func (w *Writer) Write(ctx context.Context, report *domain.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, report.Theme.BaseFileName()+FileExtension)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create html report: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := Render(bw, report); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write html report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close html report: %w", err)
	}
	return path, nil
}

// Render writes the report page to out.
func Render(out io.Writer, report *domain.Report) error {
	doc, err := build(report)
	if err != nil {
		return err
	}
	if err := html.Render(out, doc); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}

func build(report *domain.Report) (*html.Node, error) {
	terms := report.HighlightTerms
	if terms == nil {
		terms = DefaultHighlightTerms
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	head := element(atom.Head,
		element(atom.Meta, attr("charset", "utf-8")),
		withChildren(element(atom.Title), text(report.Title)),
	)
	body := element(atom.Body)
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)

	appendAll(body,
		withChildren(element(atom.H1), text(report.Title)),
		withChildren(element(atom.P),
			text(copyright+" This software and its outputs have been open-sourced through the "),
			withChildren(element(atom.A, attr("href", licenseURL)), text("MIT license")),
			text("."),
		),
		withChildren(element(atom.H2), text("Description")),
	)

	description, err := fragment(report.Description, atom.Body)
	if err != nil {
		return nil, fmt.Errorf("parse description: %w", err)
	}
	appendAll(body, description...)

	appendAll(body,
		withChildren(element(atom.H2), text("Filtering Criteria")),
		withChildren(element(atom.P), text("The following criteria were applied in successive order:")),
	)
	list := element(atom.Ol)
	for i, criterion := range report.Criteria {
		nodes, err := fragment(criterion, atom.Li)
		if err != nil {
			return nil, fmt.Errorf("parse criterion %d: %w", i+1, err)
		}
		list.AppendChild(withChildren(element(atom.Li), nodes...))
	}
	body.AppendChild(list)

	prefix := report.Theme.LabelPrefix()
	appendAll(body,
		withChildren(element(atom.H2), text("Results")),
		withChildren(element(atom.P), text(
			"If you would like to see the original search query that yielded a result, "+
				"click on the result number hyperlink. Please note all the results are labelled "+
				"using the naming convention of '"+prefix+"'-[number]",
		)),
	)

	table := report.Table
	flags := table.FlagColumns()
	for _, e := range table.Entries() {
		nodes, err := resultNodes(e, flags, terms)
		if err != nil {
			return nil, fmt.Errorf("render result %s: %w", e.Label, err)
		}
		appendAll(body, nodes...)
	}

	return doc, nil
}

// resultNodes renders one table entry.
func resultNodes(e domain.Entry, flags []domain.Column, terms []string) ([]*html.Node, error) {
	r := e.Row
	nodes := []*html.Node{
		withChildren(element(atom.H3, attr("id", e.Label)), text("Result "+e.Label)),
		withChildren(element(atom.P),
			withChildren(element(atom.A, attr("href", r.SourceURL), attr("target", "blank")),
				text("Original Source Query")),
		),
		fields(
			field{domain.ColEventDate, r.EventDate},
			field{domain.ColReportID, r.ReportID},
			field{domain.ColReportSourceCode, r.ReportSourceCode},
		),
		fields(
			field{domain.ColDeviceSpecialtyArea, r.DeviceSpecialtyArea},
			field{domain.ColDeviceClass, r.DeviceClass},
		),
		fields(
			field{domain.ColDeviceRegNumber, r.DeviceRegNumber},
			field{domain.ColDeviceName, r.DeviceName},
		),
		fields(
			field{domain.ColDeviceModelNumber, r.DeviceModelNumber},
			field{domain.ColDeviceCatalogueNumber, r.DeviceCatalogueNumber},
			field{domain.ColDeviceLotNumber, r.DeviceLotNumber},
			field{domain.ColDeviceExpirationDate, r.DeviceExpirationDate},
		),
		fields(field{domain.ColProductProblems, r.ProductProblems}),
		fields(field{domain.ColPatientProblems, r.PatientProblems}),
	}

	if len(flags) > 0 {
		flagFields := make([]field, len(flags))
		for i, name := range flags {
			flagFields[i] = field{name, strconv.FormatBool(e.Flags[name])}
		}
		nodes = append(nodes, fields(flagFields...))
	}

	for _, c := range []field{
		{domain.ColEventMainComments, r.EventMainComments},
		{domain.ColEventManufacturerComments, r.EventManufacturerComments},
	} {
		highlighted, err := fragment(highlightEscaped(c.value, terms), atom.P)
		if err != nil {
			return nil, err
		}
		p := withChildren(element(atom.P), withChildren(element(atom.B), text(string(c.name))), text(": "))
		appendAll(p, highlighted...)
		nodes = append(nodes, p)
	}

	return append(nodes, element(atom.Hr)), nil
}

type field struct {
	name  domain.Column
	value string
}

// fields renders labelled values on one line.
func fields(fs ...field) *html.Node {
	p := element(atom.P)
	for i, f := range fs {
		if i > 0 {
			p.AppendChild(text("    "))
		}
		p.AppendChild(withChildren(element(atom.B), text(string(f.name))))
		p.AppendChild(text(": " + f.value))
	}
	return p
}

func element(a atom.Atom, children ...any) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		switch c := c.(type) {
		case html.Attribute:
			n.Attr = append(n.Attr, c)
		case *html.Node:
			n.AppendChild(c)
		}
	}
	return n
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withChildren(n *html.Node, children ...*html.Node) *html.Node {
	appendAll(n, children...)
	return n
}

func appendAll(n *html.Node, children ...*html.Node) {
	for _, c := range children {
		n.AppendChild(c)
	}
}

// fragment parses trusted markup in the context of a parent element.
func fragment(markup string, parent atom.Atom) ([]*html.Node, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, nil
	}
	ctxNode := &html.Node{Type: html.ElementNode, DataAtom: parent, Data: parent.String()}
	return html.ParseFragment(strings.NewReader(markup), ctxNode)
}
