package wolref

import "regexp"

// Kind identifies which rendering template produced a fetched publication
// fragment. It is a closed set: the three kinds below are fixed by the
// source site's templates, and every publication classifies as exactly one
// of them.
type Kind string

// Publication kinds.
const (
	// KindWatchtower is the study edition of the Watchtower magazine.
	KindWatchtower Kind = "watchtower"

	// KindStudyBible is the New World Translation study edition.
	KindStudyBible Kind = "study-bible"

	// KindDefault covers every other publication.
	KindDefault Kind = "default"
)

// Publication class markers. The site tags every article element with a
// pub-* class naming the publication symbol it was rendered from.
var (
	watchtowerMarker = regexp.MustCompile(`(?i)\bpub-w\b`)
	studyBibleMarker = regexp.MustCompile(`(?i)\bpub-nwtsty\b`)
)

// ClassifyPublication determines the publication kind from an article
// element's class attribute. Markers are matched as whole words,
// case-insensitively, Watchtower first. Absence of both markers is the
// normal case for most publications, not an error.
func ClassifyPublication(articleClasses string) Kind {
	switch {
	case watchtowerMarker.MatchString(articleClasses):
		return KindWatchtower
	case studyBibleMarker.MatchString(articleClasses):
		return KindStudyBible
	default:
		return KindDefault
	}
}

// Payload is the JSON document returned by the site for one publication
// reference.
type Payload struct {
	Title string        `json:"title"`
	Items []PayloadItem `json:"items"`
}

// PayloadItem holds one publication fragment within a payload.
type PayloadItem struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	ArticleClasses string `json:"articleClasses"`
}

// Validate returns an error if the payload cannot be used for text
// extraction. Resolution reads exactly the first item, which must carry
// both the content fragment and the classes the classifier needs.
func (p *Payload) Validate() error {
	if len(p.Items) == 0 {
		return Errorf(EMALFORMED, "payload has no items")
	}
	if p.Items[0].Content == "" {
		return Errorf(EMALFORMED, "payload item content required")
	}
	if p.Items[0].ArticleClasses == "" {
		return Errorf(EMALFORMED, "payload item article classes required")
	}
	return nil
}
