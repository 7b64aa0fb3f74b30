package sitemap

// XMLBuilder is the tree-construction capability entries emit through. It is
// a small streaming surface so this package carries no dependency on any
// concrete XML library; serialization belongs to the implementation (see
// internal/xmlwriter for the production one).
//
// Start opens a child element under the currently open element and End closes
// the most recently opened one. Attr, Text, CDATA and Raw all apply to the
// currently open element: Text appends escaped character data, CDATA appends
// a CDATA section, and Raw appends markup that must reach the consumer
// without escaping.
type XMLBuilder interface {
	Start(tag string)
	Attr(key, value string)
	Text(text string)
	CDATA(text string)
	Raw(markup string)
	End()
}

// textElement emits <tag>text</tag> on b.
func textElement(b XMLBuilder, tag, text string) {
	b.Start(tag)
	b.Text(text)
	b.End()
}

// cdataElement emits <tag><![CDATA[text]]></tag> on b.
func cdataElement(b XMLBuilder, tag, text string) {
	b.Start(tag)
	b.CDATA(text)
	b.End()
}
