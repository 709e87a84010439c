package models

// Record is a candidate question/answer pair awaiting quality scoring.
// Question and Answer are always present (possibly empty). SourceText is the
// passage the answer should be grounded in and may be empty. Metadata is an
// open mapping populated by upstream generators; scorers read individual keys
// defensively and tolerate absence.
//
// A Record is never mutated during scoring — scoring derives a QualityReport.
type Record struct {
	Question   string         `json:"question"`
	Answer     string         `json:"answer"`
	SourceText string         `json:"source_text,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// MetaString returns the metadata value for key as a string, or "" when the
// key is absent or not a string.
func (r Record) MetaString(key string) string {
	if r.Metadata == nil {
		return ""
	}
	if v, ok := r.Metadata[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Category returns the declared question category ("scholarship", "fee", ...)
// from metadata, or "" when none was declared.
func (r Record) Category() string {
	return r.MetaString("category")
}

// SourceFile returns the originating file recorded by the generator, if any.
func (r Record) SourceFile() string {
	return r.MetaString("source_file")
}
