package sink

import (
	"bytes"
	"strings"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/frontmatter"
	"git.home.luguber.info/inful/classpage/internal/markdown"
	"git.home.luguber.info/inful/classpage/internal/model"
)

// Document is the Markdown Sink for one type's page. Content is buffered in
// memory and handed to its Destination on Finalize.
type Document struct {
	rc   model.RenderContext
	typ  *model.TypeEntity
	dest Destination
	buf  bytes.Buffer

	// Summary rows and method blocks number overloads independently and
	// in the same order.
	rowAnchors   markdown.MethodAnchors
	blockAnchors markdown.MethodAnchors

	finalized bool
}

var _ Sink = (*Document)(nil)
var _ Aborter = (*Document)(nil)

// NewDocument creates a sink that renders typ's page into dest.
func NewDocument(rc model.RenderContext, typ *model.TypeEntity, dest Destination) *Document {
	return &Document{rc: rc, typ: typ, dest: dest}
}

// Create opens a Document bound to a new file at path.
func Create(rc model.RenderContext, typ *model.TypeEntity, path string) (*Document, error) {
	dest, err := NewFileDestination(path)
	if err != nil {
		return nil, err
	}
	return NewDocument(rc, typ, dest), nil
}

// Path returns the destination path.
func (d *Document) Path() string { return d.dest.Path() }

func (d *Document) writable() error {
	if d.finalized {
		return errors.InternalError("write after finalize").WithContext("path", d.dest.Path()).Build()
	}
	return nil
}

// ensureBlankLine terminates the current block so the next one starts a new
// Markdown block.
func (d *Document) ensureBlankLine() {
	b := d.buf.Bytes()
	switch {
	case len(b) == 0, bytes.HasSuffix(b, []byte("\n\n")):
	case bytes.HasSuffix(b, []byte("\n")):
		d.buf.WriteByte('\n')
	default:
		d.buf.WriteString("\n\n")
	}
}

func (d *Document) writeLine(s string) {
	d.buf.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		d.buf.WriteByte('\n')
	}
}

// AppendHeader writes an ATX heading of the given level (1-6).
func (d *Document) AppendHeader(text string, level int) error {
	if err := d.writable(); err != nil {
		return err
	}
	if level < 1 || level > 6 {
		return errors.InternalError("invalid heading level").WithContext("level", level).Build()
	}
	d.ensureBlankLine()
	d.buf.WriteString(strings.Repeat("#", level))
	d.buf.WriteByte(' ')
	d.writeLine(text)
	d.buf.WriteByte('\n')
	return nil
}

// AppendText writes text verbatim, terminated by a newline.
func (d *Document) AppendText(text string) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.writeLine(text)
	return nil
}

// NewLine writes an empty line.
func (d *Document) NewLine() error {
	if err := d.writable(); err != nil {
		return err
	}
	d.buf.WriteByte('\n')
	return nil
}

func (d *Document) table(header string) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.ensureBlankLine()
	d.writeLine(header)
	return nil
}

func (d *Document) row(m model.Member, render func(model.PackageRef, model.Member, model.RenderContext) (string, error)) error {
	if err := d.writable(); err != nil {
		return err
	}
	line, err := render(d.typ.Package, m, d.rc)
	if err != nil {
		return err
	}
	d.writeLine(line)
	return nil
}

// InitializeMethodHeader starts the method summary table.
func (d *Document) InitializeMethodHeader() error { return d.table(markdown.MethodSummaryHeader) }

// AppendMethodHeader writes the summary row of m.
func (d *Document) AppendMethodHeader(m *model.Method) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := markdown.Validate(m); err != nil {
		return err
	}
	d.writeLine(markdown.MethodSummaryRow(d.typ.Package, m, d.rowAnchors.Next(m.Name), d.rc))
	return nil
}

// InitializeFieldSummaryHeader starts the field summary table.
func (d *Document) InitializeFieldSummaryHeader() error { return d.table(markdown.FieldSummaryHeader) }

// AppendFieldSummary writes the summary row of f.
func (d *Document) AppendFieldSummary(f *model.Field) error { return d.row(f, markdown.SummaryRow) }

// InitializeFieldHeader starts the fields table.
func (d *Document) InitializeFieldHeader() error { return d.table(markdown.FieldTableHeader) }

// AppendField writes the fields table row of f.
func (d *Document) AppendField(f *model.Field) error { return d.row(f, markdown.DetailBlock) }

// AppendMethod writes the full documentation block of m.
func (d *Document) AppendMethod(m *model.Method) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := markdown.Validate(m); err != nil {
		return err
	}
	d.ensureBlankLine()
	d.writeLine(markdown.MethodBlock(d.typ.Package, m, d.blockAnchors.Next(m.Name), d.rc))
	return nil
}

// Content returns the page as it would be persisted.
func (d *Document) Content() ([]byte, error) {
	body := bytes.TrimRight(d.buf.Bytes(), "\n")
	body = append(append([]byte(nil), body...), '\n')
	if !d.rc.Frontmatter {
		return body, nil
	}
	out, err := frontmatter.Render(frontmatter.PageFields(d.typ), body)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to render frontmatter").
			WithContext("path", d.dest.Path()).
			Build()
	}
	return out, nil
}

// Finalize persists the page. On failure the destination is aborted.
func (d *Document) Finalize() error {
	if err := d.writable(); err != nil {
		return err
	}
	d.finalized = true
	content, err := d.Content()
	if err != nil {
		_ = d.dest.Abort()
		return err
	}
	return d.dest.Commit(content)
}

// Abort releases the destination without persisting anything.
func (d *Document) Abort() error {
	d.finalized = true
	return d.dest.Abort()
}
