package domain

// Document is a single catalog record. Its identity for retrieval is its
// ordinal position in the catalog; there is no stored ID.
type Document struct {
	Title       string
	Description string
	// Extra carries catalog fields retrieval ignores (price, category, ...).
	// They pass through the loader untouched.
	Extra map[string]any
}

// Text returns the searchable text of the document: title and description
// joined by a single space. Missing fields contribute an empty string.
func (d Document) Text() string {
	return d.Title + " " + d.Description
}

// Clone returns a deep copy of the document, including the Extra map,
// so that callers holding the original cannot alias engine state.
func (d Document) Clone() Document {
	c := d
	if d.Extra != nil {
		c.Extra = make(map[string]any, len(d.Extra))
		for k, v := range d.Extra {
			c.Extra[k] = v
		}
	}
	return c
}
