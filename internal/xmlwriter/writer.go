package xmlwriter

import (
	"github.com/beevik/etree"
)

// Writer builds an XML tree through a streaming surface: Start opens a child
// element, End closes the most recently opened one, and Attr, Text, CDATA and
// Raw apply to the element currently open. Calls with no open element are
// ignored rather than panicking; a Writer is single-use and not safe for
// concurrent use.
type Writer struct {
	doc   *etree.Document
	stack []*etree.Element
}

// New returns a Writer producing a bare XML fragment.
func New() *Writer {
	return &Writer{doc: etree.NewDocument()}
}

// NewDocument returns a Writer producing a standalone document with the XML
// declaration.
func NewDocument() *Writer {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return &Writer{doc: doc}
}

func (w *Writer) top() *etree.Element {
	if len(w.stack) == 0 {
		return nil
	}
	return w.stack[len(w.stack)-1]
}

// Start opens a new element under the currently open one, or at the top level
// when none is open.
func (w *Writer) Start(tag string) {
	var el *etree.Element
	if parent := w.top(); parent != nil {
		el = parent.CreateElement(tag)
	} else {
		el = w.doc.CreateElement(tag)
	}
	w.stack = append(w.stack, el)
}

// Attr sets an attribute on the currently open element.
func (w *Writer) Attr(key, value string) {
	if el := w.top(); el != nil {
		el.CreateAttr(key, value)
	}
}

// Text appends escaped character data to the currently open element.
func (w *Writer) Text(text string) {
	if el := w.top(); el != nil {
		el.CreateText(text)
	}
}

// CDATA appends a CDATA section to the currently open element.
func (w *Writer) CDATA(text string) {
	if el := w.top(); el != nil {
		el.CreateCData(text)
	}
}

// Raw appends markup that reaches the consumer unescaped. The tree library
// has no verbatim character-data node, so raw content is carried in a CDATA
// section, which parsers hand through byte for byte.
func (w *Writer) Raw(markup string) {
	if el := w.top(); el != nil {
		el.CreateCData(markup)
	}
}

// End closes the most recently opened element.
func (w *Writer) End() {
	if n := len(w.stack); n > 0 {
		w.stack = w.stack[:n-1]
	}
}

// Serialize renders the accumulated tree as a compact string.
func (w *Writer) Serialize() (string, error) {
	return w.doc.WriteToString()
}

// SerializeIndent renders the accumulated tree pretty-printed with the given
// indent width.
func (w *Writer) SerializeIndent(spaces int) (string, error) {
	w.doc.Indent(spaces)
	return w.doc.WriteToString()
}
