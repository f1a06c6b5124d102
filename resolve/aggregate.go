package resolve

import "github.com/pbartosik/wolref"

// Aggregate builds the final document output from the sections and their
// completed tracking map. A mnemonic seen once keeps its text inline at
// its one occurrence; a mnemonic seen more than once gets a pointer string
// at every occurrence and a single entry in the shared references table.
// Aggregate is a pure transform over already-resolved data.
func Aggregate(sections []wolref.Section, tracked map[string]*Tracked) *wolref.DocumentReferences {
	out := &wolref.DocumentReferences{
		Sections: make([]wolref.SectionReferences, 0, len(sections)),
		Shared:   make(map[string]string),
	}

	for _, section := range sections {
		refs := make([]wolref.ReferenceEntry, 0, len(section.Anchors))
		for _, anchor := range section.Anchors {
			entry, ok := tracked[anchor.Label]
			if !ok {
				continue
			}

			text := entry.Text
			if entry.Count > 1 {
				text = wolref.SharedReferencePointer(entry.Mnemonic)
				out.Shared[entry.Mnemonic] = entry.Text
			}

			refs = append(refs, wolref.ReferenceEntry{
				Mnemonic: entry.Mnemonic,
				Text:     text,
			})
		}
		out.Sections = append(out.Sections, wolref.SectionReferences{
			Title:      section.Title,
			References: refs,
		})
	}

	return out
}
