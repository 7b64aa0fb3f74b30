package xmlwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_NestedElements(t *testing.T) {
	w := New()
	w.Start("a")
	w.Start("b")
	w.Text("x")
	w.End()
	w.Start("c")
	w.End()
	w.End()

	out, err := w.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "<a><b>x</b><c/></a>", out)
}

func TestWriter_AttributesKeepInsertionOrder(t *testing.T) {
	w := New()
	w.Start("el")
	w.Attr("b", "2")
	w.Attr("a", "1")
	w.End()

	out, err := w.Serialize()
	require.NoError(t, err)
	assert.Equal(t, `<el b="2" a="1"/>`, out)
}

func TestWriter_TextIsEscaped(t *testing.T) {
	w := New()
	w.Start("el")
	w.Text("a < b & c")
	w.End()

	out, err := w.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "<el>a &lt; b &amp; c</el>", out)
}

func TestWriter_CDATAIsVerbatim(t *testing.T) {
	w := New()
	w.Start("el")
	w.CDATA("a < b & c")
	w.End()

	out, err := w.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "<el><![CDATA[a < b & c]]></el>", out)
}

func TestWriter_CallsWithoutOpenElementAreIgnored(t *testing.T) {
	w := New()
	w.Attr("k", "v")
	w.Text("dangling")
	w.End()
	w.Start("root")
	w.End()
	w.End()

	out, err := w.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "<root/>", out)
}

func TestWriter_DocumentDeclaration(t *testing.T) {
	w := NewDocument()
	w.Start("root")
	w.End()

	out, err := w.Serialize()
	require.NoError(t, err)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?><root/>`, out)
}

func TestWriter_SerializeIndent(t *testing.T) {
	w := NewDocument()
	w.Start("root")
	w.Start("child")
	w.Text("x")
	w.End()
	w.End()

	out, err := w.SerializeIndent(2)
	require.NoError(t, err)
	assert.Contains(t, out, "\n  <child>x</child>")
}
