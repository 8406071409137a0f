package packer

import (
	"regexp"
	"strconv"
	"strings"
)

// lineGrammar accepts "CAPACITY : (INDEX,WEIGHT,€PRICE) ..." where capacity and
// price have at most two digits or are 100, index is in 1..15 and weight has
// one or two decimals.
var lineGrammar = regexp.MustCompile(
	`^([1-9]|\d\d|100)(\s:)(\s(\(([1-9]|1[0-5]),(([1-9]|\d\d)\.([1-9]|\d\d)|(100\.00)),€([1-9]|\d\d|100)\)))+$`,
)

// ParseLine validates a line against the package grammar and, when it
// matches, extracts its capacity and candidates. ok is false for any line
// that does not match; no partial result is returned.
func ParseLine(line string) (pkg Package, ok bool) {
	if !lineGrammar.MatchString(line) {
		return Package{}, false
	}

	head, tail, _ := strings.Cut(line, ":")
	capacity, _ := strconv.Atoi(strings.TrimSpace(head))

	return Package{
		Capacity:   WeightFromUnits(capacity),
		Candidates: extractItems(strings.Fields(tail)),
	}, true
}

// extractItems converts validated "(i,w,€p)" tokens into items.
func extractItems(tokens []string) []Item {
	items := make([]Item, 0, len(tokens))
	for _, token := range tokens {
		fields := strings.Split(strings.Trim(token, "()"), ",")
		index, _ := strconv.Atoi(fields[0])
		price, _ := strconv.Atoi(strings.TrimPrefix(fields[2], "€"))
		items = append(items, Item{
			Index:  index,
			Weight: parseWeight(fields[1]),
			Price:  price,
		})
	}
	return items
}

// parseWeight reads a decimal with up to two fractional digits.
func parseWeight(raw string) Weight {
	whole, frac, _ := strings.Cut(raw, ".")
	units, _ := strconv.Atoi(whole)
	if len(frac) == 1 {
		frac += "0"
	}
	hundredths, _ := strconv.Atoi(frac)
	return WeightFromUnits(units) + Weight(hundredths)
}
