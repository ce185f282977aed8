package classify

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/MamuzaD/cal-hacks/pkg/entity"
)

// Result is the person/company guess for a raw search term. It is built
// fresh per request and never persisted.
type Result struct {
	Type       entity.Type `json:"type" jsonschema:"enum=person,enum=company"`
	Confidence float64     `json:"confidence" jsonschema:"minimum=0,maximum=1"`
	Reasoning  string      `json:"reasoning"`
}

var (
	reTicker        = regexp.MustCompile(`^[A-Z]{1,5}\.?$`)
	reTwoCapitals   = regexp.MustCompile(`[A-Z].*[A-Z]`)
	reFirstLast     = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)
	reMiddleInitial = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z]\.? [A-Z][a-z]+$`)
	reAge           = regexp.MustCompile(`\d{1,2}\s*(years old|yr old|yrs old)`)
)

var companySuffixes = []string{
	"inc", "corporation", "corp", "llc", "ltd", "limited", "group",
	"systems", "labs", "co.", "company", "technologies", "tech",
	"ventures", "capital", "partners", "holdings",
}

var personTitles = []string{
	"mr", "mrs", "ms", "dr", "prof", "sen", "rep", "gov", "pres", "vice",
}

var politicalKeywords = []string{
	"senator", "sen.", "representative", "rep.", "governor", "gov.",
	"mayor", "congressman", "congresswoman", "president",
	"vice president", "secretary", "attorney general", "assemblyman",
}

// Heuristic classifies a search term as person or company using lexical
// rules alone. It is pure and never fails. Rule order is significant,
// later rules only see terms the earlier ones passed on.
func Heuristic(term string) Result {
	t := strings.TrimSpace(term)
	tLower := strings.ToLower(t)
	words := strings.Fields(t)

	// 1-5 uppercase letters, optional trailing period
	if reTicker.MatchString(t) {
		return Result{
			Type:       entity.TypeCompany,
			Confidence: 0.7,
			Reasoning:  "Uppercase pattern matches stock ticker format",
		}
	}

	for _, suffix := range companySuffixes {
		if strings.HasSuffix(tLower, suffix) {
			return Result{
				Type:       entity.TypeCompany,
				Confidence: 0.75,
				Reasoning:  "Contains typical company suffix",
			}
		}
	}

	// Multiple capitals without a plain name shape ("Firstname Lastname"
	// or "Firstname M. Lastname"), e.g. "NYSE" or "McDonalds"
	if reTwoCapitals.MatchString(t) && !reFirstLast.MatchString(t) && !reMiddleInitial.MatchString(t) {
		return Result{
			Type:       entity.TypeCompany,
			Confidence: 0.65,
			Reasoning:  "Multiple capital letters suggest company branding",
		}
	}

	if len(words) >= 2 && len(words) <= 4 {
		properCaps := 0
		for _, w := range words {
			if isCapitalized(w) {
				properCaps++
			}
		}

		if float64(properCaps) >= float64(len(words))*0.8 {
			if slices.Contains(personTitles, strings.ToLower(words[0])) {
				return Result{
					Type:       entity.TypePerson,
					Confidence: 0.85,
					Reasoning:  "Title prefix detected",
				}
			}

			// John M. Doe
			if reMiddleInitial.MatchString(t) {
				return Result{
					Type:       entity.TypePerson,
					Confidence: 0.8,
					Reasoning:  "Middle initial pattern typical of person names",
				}
			}

			if len(words) <= 3 {
				return Result{
					Type:       entity.TypePerson,
					Confidence: 0.7,
					Reasoning:  "Proper capitalization suggests person name",
				}
			}
		}
	}

	for _, keyword := range politicalKeywords {
		if strings.Contains(tLower, keyword) {
			return Result{
				Type:       entity.TypePerson,
				Confidence: 0.8,
				Reasoning:  "Contains political position keyword",
			}
		}
	}

	if reAge.MatchString(tLower) {
		return Result{
			Type:       entity.TypePerson,
			Confidence: 0.75,
			Reasoning:  "Age indicator suggests person",
		}
	}

	if strings.Contains(tLower, "committee") ||
		strings.Contains(tLower, "foundation") ||
		strings.Contains(tLower, "fund") {
		return Result{
			Type:       entity.TypeCompany,
			Confidence: 0.6,
			Reasoning:  "Contains organization indicator",
		}
	}

	return Result{
		Type:       entity.TypeCompany,
		Confidence: 0.5,
		Reasoning:  "Default assumption: company",
	}
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}
