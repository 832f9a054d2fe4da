package models

// ContentType identifies which catalog a content item belongs to
type ContentType string

const (
	ContentTypeWord    ContentType = "word"
	ContentTypePhrasal ContentType = "phrasal"
	ContentTypeIdiom   ContentType = "idiom"
)

// Valid reports whether the content type is one of the known catalogs
func (t ContentType) Valid() bool {
	return t == ContentTypeWord || t == ContentTypePhrasal || t == ContentTypeIdiom
}

// ContributionKind identifies which list field a contribution extends
type ContributionKind string

const (
	ContributionHindi   ContributionKind = "hindi"
	ContributionSynonym ContributionKind = "synonym"
)

// ContentItem represents one entry of the content catalog (word, idiom or phrasal verb)
type ContentItem struct {
	ID            int         `json:"id"`
	Step          int         `json:"step"` // Learning order, unique per catalog
	Word          string      `json:"word"`
	Meaning       string      `json:"meaning"`
	HindiMeanings []string    `json:"hindiMeanings"`
	Synonyms      []string    `json:"synonyms"`
	Sentence      string      `json:"sentence"`
	Level         string      `json:"level"`
	Type          ContentType `json:"type"`
	IsFavorite    bool        `json:"isFavorite"`
}

// ContributionResult represents the outcome of a contribution submission
type ContributionResult struct {
	Added int    `json:"added"`
	Type  string `json:"type"`
}
