package sitemap

import "github.com/vvka-141/sitemapgen/internal/xmlwriter"

// WriteURLSet emits a complete urlset document for the given entries on b.
// The default sitemap namespace is always declared; extension namespaces are
// declared only when some entry actually uses them.
func WriteURLSet(b XMLBuilder, entries []*Entry) error {
	b.Start("urlset")
	b.Attr("xmlns", NamespaceSitemap)

	var image, video, news, mobile, xhtml bool
	for _, e := range entries {
		image = image || len(e.cfg.Images) > 0
		video = video || len(e.cfg.Videos) > 0
		news = news || e.cfg.News != nil
		mobile = mobile || (e.cfg.Mobile != nil && e.cfg.Mobile.Enabled)
		xhtml = xhtml || len(e.cfg.Links) > 0 || e.cfg.AndroidLink != "" || e.cfg.AMPLink != ""
	}
	if image {
		b.Attr("xmlns:image", NamespaceImage)
	}
	if video {
		b.Attr("xmlns:video", NamespaceVideo)
	}
	if news {
		b.Attr("xmlns:news", NamespaceNews)
	}
	if mobile {
		b.Attr("xmlns:mobile", NamespaceMobile)
	}
	if xhtml {
		b.Attr("xmlns:xhtml", NamespaceXHTML)
	}

	for _, e := range entries {
		if err := e.Build(b); err != nil {
			return err
		}
	}
	b.End()
	return nil
}

// Render serializes one entry's url node to an XML string.
func Render(e *Entry) (string, error) {
	w := xmlwriter.New()
	if err := e.Build(w); err != nil {
		return "", err
	}
	return w.Serialize()
}

// RenderURLSet serializes a complete urlset document. With indent true the
// output is pretty-printed, otherwise it is a single line preceded by the XML
// declaration.
func RenderURLSet(entries []*Entry, indent bool) (string, error) {
	w := xmlwriter.NewDocument()
	if err := WriteURLSet(w, entries); err != nil {
		return "", err
	}
	if indent {
		return w.SerializeIndent(2)
	}
	return w.Serialize()
}
