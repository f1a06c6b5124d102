// Package wolref resolves cross-reference anchors embedded in publication
// pages from the Watchtower Online Library. Given a document's sections and
// their reference anchors, it fetches each distinct reference exactly once,
// classifies the fetched publication, extracts its plain text with a
// kind-specific strategy, and compacts recurring references into a shared
// table instead of repeating their text inline.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, http/,
// resolve/).
package wolref
