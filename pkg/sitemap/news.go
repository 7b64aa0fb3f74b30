package sitemap

// buildNews validates one news sub-schema and emits its news:news block.
// The required-field check fires even when every optional field is populated.
func buildNews(b XMLBuilder, n *News) error {
	if n.Publication.Name == "" || n.Publication.Language == "" ||
		n.PublicationDate == "" || n.Title == "" {
		return &ValidationError{Field: "news", Err: ErrInvalidNewsFormat}
	}
	if n.Access != "" && !attrValidators["news:access"].MatchString(n.Access) {
		return &ValidationError{
			Field:   "news:access",
			Value:   n.Access,
			Pattern: attrValidators["news:access"].String(),
			Err:     ErrInvalidNewsAccess,
		}
	}

	b.Start("news:news")
	defer b.End()

	b.Start("news:publication")
	cdataElement(b, "news:name", n.Publication.Name)
	textElement(b, "news:language", n.Publication.Language)
	b.End()

	if n.Access != "" {
		textElement(b, "news:access", n.Access)
	}
	if n.Genres != "" {
		textElement(b, "news:genres", n.Genres)
	}
	textElement(b, "news:publication_date", n.PublicationDate)
	cdataElement(b, "news:title", n.Title)
	if n.Keywords != "" {
		textElement(b, "news:keywords", n.Keywords)
	}
	if n.StockTickers != "" {
		textElement(b, "news:stock_tickers", n.StockTickers)
	}
	return nil
}
