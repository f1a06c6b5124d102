package wolref

import (
	"context"
	"fmt"
)

// DefaultBaseURL is the site serving publication payloads.
const DefaultBaseURL = "https://wol.jw.org"

// relativePrefixLen is the length of the locale prefix ("/en") carried by
// every anchor href on the site. Payload URLs are built by stripping it and
// prepending the base URL.
const relativePrefixLen = 3

// UnableToExtract is the sentinel text substituted for a reference whose
// resolution failed. Failed references never abort a document resolution.
const UnableToExtract = "unable to extract reference"

// AnchorReference is one cross-reference anchor lifted out of a document by
// a DOM-traversal collaborator. Label is the visible mnemonic text (e.g., a
// scripture citation abbreviation) and doubles as the deduplication key.
// Href is the anchor's relative link as it appears in the markup.
type AnchorReference struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Validate returns an error if the anchor cannot be resolved. A missing
// label or an href too short to carry the locale prefix indicates a bug in
// the collaborator that collected the anchor, not an external failure.
func (a AnchorReference) Validate() error {
	if a.Label == "" {
		return Errorf(EINVALID, "anchor label required")
	}
	if len(a.Href) <= relativePrefixLen {
		return Errorf(EINVALID, "anchor %q href %q too short", a.Label, a.Href)
	}
	return nil
}

// Target derives the payload fetch URL from the anchor's relative link.
func (a AnchorReference) Target(baseURL string) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return baseURL + a.Href[relativePrefixLen:], nil
}

// Section is an ordered group of anchors within one document.
type Section struct {
	Title   string            `json:"title"`
	Anchors []AnchorReference `json:"anchors"`
}

// ResolvedReference is the end product of resolving one anchor.
type ResolvedReference struct {
	Mnemonic string `json:"mnemonic"`
	Text     string `json:"text"`
}

// ReferenceEntry is one resolved occurrence in a section's output: either
// the full text (mnemonic seen once in the document) or a pointer into the
// shared references table (mnemonic seen more than once).
type ReferenceEntry struct {
	Mnemonic string `json:"mnemonic"`
	Text     string `json:"text"`
}

// SectionReferences holds the resolved entries for one section, in anchor
// order.
type SectionReferences struct {
	Title      string           `json:"title"`
	References []ReferenceEntry `json:"references"`
}

// DocumentReferences is the complete output of one document-scoped
// resolution. A mnemonic appears either inline in the sections or once in
// Shared, never both.
type DocumentReferences struct {
	Sections []SectionReferences `json:"sections"`
	Shared   map[string]string   `json:"sharedMnemonicReferences"`
}

// SharedReferencePointer returns the text emitted at every occurrence of a
// mnemonic that recurs within a document. It is a path into the
// sharedMnemonicReferences field of the emitted document.
func SharedReferencePointer(mnemonic string) string {
	return fmt.Sprintf("SEE: sharedMnemonicReferences[%q]", mnemonic)
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// PayloadFetcher retrieves publication payloads from URLs.
type PayloadFetcher interface {
	// FetchPayload performs one JSON fetch of url. It returns EUNAVAILABLE
	// for network-level failures and non-2xx responses, and EMALFORMED for
	// bodies that are not valid JSON. The returned payload is decoded but
	// not validated.
	FetchPayload(ctx context.Context, url string) (*Payload, error)
}

// TextExtractor turns a publication's raw content fragment into plain text
// using the strategy matching its kind.
type TextExtractor interface {
	Extract(kind Kind, content string) (string, error)
}

// Resolver resolves one anchor to its referenced text.
type Resolver interface {
	// Resolve performs the one-hop fetch for anchor and extracts its text.
	// Failures are returned as coded errors, never panics; callers decide
	// whether to substitute a sentinel.
	Resolve(ctx context.Context, anchor AnchorReference) (*ResolvedReference, error)
}

// DocumentResolver resolves every anchor in a document's sections,
// deduplicating by mnemonic and compacting recurring references.
type DocumentResolver interface {
	// ResolveDocument returns EINVALID if any anchor fails validation;
	// per-reference fetch failures surface as sentinel text, not errors.
	ResolveDocument(ctx context.Context, sections []Section) (*DocumentReferences, error)
}

// Converter transforms HTML content into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
