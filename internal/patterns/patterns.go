// Package patterns holds the fixed pattern sets the metric calculators match
// against: speculative-language (hallucination) markers, cultural indicators
// for the Bangladeshi-student domain, and factual-detail extractors for
// currency amounts, percentages, years, and GPA figures.
//
// Phrase matching runs on normalized text; the factual extractors run on raw
// text because currency symbols and '%' do not survive normalization.
package patterns

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/banglastudy/dataqc/internal/textutil"
)

// hallucinationMarkers are speculative phrases whose presence signals
// non-extractive, fabricated content. Matched as substrings of normalized text.
var hallucinationMarkers = []string{
	"in my opinion",
	"i think",
	"i believe",
	"i assume",
	"i guess",
	"probably",
	"perhaps",
	"might be",
	"may be around",
	"could be around",
	"not sure",
	"as far as i know",
}

// bengaliLexicon maps transliterated (and script) Bengali domain terms to a
// canonical label. Distinct labels matched feed cultural sensitivity scoring.
var bengaliLexicon = map[string]string{
	"shikkharthi":    "student",
	"chhatro":        "student",
	"bishwabidyalay": "university",
	"bharti":         "admission",
	"britti":         "scholarship",
	"khoroch":        "cost",
	"taka":           "currency",
	"শিক্ষার্থী":     "student",
	"বিশ্ববিদ্যালয়":  "university",
	"ভর্তি":          "admission",
	"বৃত্তি":         "scholarship",
}

// educationTerms are Bangladeshi qualification/grading terms.
var educationTerms = []string{"ssc", "hsc", "dakhil", "alim", "gpa", "cgpa"}

var (
	currencyRE = regexp.MustCompile(`(?i)(?:₹|\$|rs\.?|inr|tk\.?|bdt)\s*[\d,]+(?:\.\d+)?`)
	percentRE  = regexp.MustCompile(`\d+(?:\.\d+)?\s*%`)
	yearRE     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	gpaRE      = regexp.MustCompile(`(?i)\b(?:gpa|cgpa)\s*(?:of\s+)?[0-9](?:\.\d{1,2})?\b`)

	gradeClaimRE = regexp.MustCompile(`(?i)\b(ssc|hsc|dakhil|alim|diploma|bachelor|cgpa)\b[^0-9]{0,20}?(\d(?:\.\d{1,2})?)`)
)

// HallucinationFlags returns the speculative-language markers found in text,
// in marker-list order, without duplicates. Empty input returns nil.
func HallucinationFlags(text string) []string {
	norm := textutil.Normalize(text)
	if norm == "" {
		return nil
	}
	padded := " " + norm + " "
	var flags []string
	for _, m := range hallucinationMarkers {
		if strings.Contains(padded, " "+m+" ") {
			flags = append(flags, m)
		}
	}
	return flags
}

// MentionsBangladesh reports whether text explicitly names Bangladesh or
// Bangladeshi context.
func MentionsBangladesh(text string) bool {
	norm := textutil.Normalize(text)
	return strings.Contains(norm, "bangladesh")
}

// BengaliTerms returns the distinct canonical labels of Bengali lexicon terms
// found in text.
func BengaliTerms(text string) []string {
	words := textutil.WordSet(text)
	seen := map[string]struct{}{}
	var labels []string
	for term, label := range bengaliLexicon {
		if _, ok := words[term]; !ok {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	// map iteration order is random; keep output deterministic
	sort.Strings(labels)
	return labels
}

// EducationTerms returns the Bangladeshi qualification terms present in text.
func EducationTerms(text string) []string {
	words := textutil.WordSet(text)
	var found []string
	for _, term := range educationTerms {
		if _, ok := words[term]; ok {
			found = append(found, term)
		}
	}
	return found
}

// FactualTokens extracts the checkable factual claims from raw text: currency
// amounts, percentages, four-digit years, and GPA/CGPA-labeled numbers. The
// returned tokens are lowercased with whitespace collapsed so that equality
// comparison between answer and source is exact.
func FactualTokens(text string) []string {
	if text == "" {
		return nil
	}
	var tokens []string
	for _, re := range []*regexp.Regexp{currencyRE, percentRE, yearRE, gpaRE} {
		for _, m := range re.FindAllString(text, -1) {
			tokens = append(tokens, canonicalToken(m))
		}
	}
	return tokens
}

func canonicalToken(tok string) string {
	return strings.Join(strings.Fields(strings.ToLower(tok)), " ")
}

// GradeClaim is a qualification-labeled numeric grade found in text, paired
// with the maximum value that qualification's scale allows.
type GradeClaim struct {
	Qualification string
	Value         float64
	Max           float64
}

// gradeScaleMax gives the known maximum for each qualification's grading
// scale: SSC/HSC (and madrasa equivalents) are out of 5.0, Diploma and
// Bachelor CGPAs out of 4.0.
var gradeScaleMax = map[string]float64{
	"ssc":      5.0,
	"hsc":      5.0,
	"dakhil":   5.0,
	"alim":     5.0,
	"diploma":  4.0,
	"bachelor": 4.0,
	"cgpa":     4.0,
}

// GradeClaims scans text for qualification-labeled grades ("SSC 4.8",
// "CGPA of 3.2"). Unparseable numbers are skipped.
func GradeClaims(text string) []GradeClaim {
	var claims []GradeClaim
	for _, m := range gradeClaimRE.FindAllStringSubmatch(text, -1) {
		qual := strings.ToLower(m[1])
		val, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		claims = append(claims, GradeClaim{
			Qualification: qual,
			Value:         val,
			Max:           gradeScaleMax[qual],
		})
	}
	return claims
}
