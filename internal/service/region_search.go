package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

// RegionSearchResult is what the region picker shows for a search term.
//
// @Description Deliverable regions matching a search term
type RegionSearchResult struct {
	Regions     []model.RegionRate `json:"regions"`
	Unavailable []string           `json:"unavailable"`
}

// RegionSearch filters the deliverable regions by a typed search term.
type RegionSearch struct{}

// NewRegionSearch creates a RegionSearch.
func NewRegionSearch() *RegionSearch {
	return &RegionSearch{}
}

// Search returns the regions of the shipping table, in table order, whose
// name contains term. Hamza seats, vowel marks, letter case and the common
// ta marbuta and alif maqsura spellings are ignored. An empty term matches
// every region. The unavailable regions are always returned in full.
func (s *RegionSearch) Search(catalog *model.Catalog, term string) RegionSearchResult {
	needle := foldRegionName(term)
	all := catalog.Regions()

	matches := make([]model.RegionRate, 0, len(all))
	for _, r := range all {
		if needle == "" || strings.Contains(foldRegionName(r.Region), needle) {
			matches = append(matches, r)
		}
	}

	return RegionSearchResult{
		Regions:     matches,
		Unavailable: catalog.UnavailableRegions(),
	}
}

var arabicSpellingFold = strings.NewReplacer(
	"ة", "ه",
	"ى", "ي",
	"ـ", "",
)

// foldRegionName reduces a region name to a comparison key.
func foldRegionName(name string) string {
	decomposed := norm.NFD.String(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	folded := cases.Fold().String(b.String())
	return arabicSpellingFold.Replace(norm.NFC.String(folded))
}
