package packer

import (
	"cmp"
	"slices"
)

// FilterByCapacity keeps, in order, the items that fit on their own.
func FilterByCapacity(items []Item, capacity Weight) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Weight <= capacity {
			out = append(out, item)
		}
	}
	return out
}

// Select chooses items for a package in a single greedy pass.
//
// Candidates are visited by descending price (ties keep input order). The
// first one is always taken. Later ones are taken while the running weight
// stays strictly below capacity; otherwise a candidate may only replace the
// first cheapest chosen item when it has the same price and weighs less.
// The result is not guaranteed to be the optimal subset.
func Select(capacity Weight, candidates []Item) []Item {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return cmp.Compare(b.Price, a.Price)
	})

	chosen := make([]Item, 0, len(sorted))
	for _, candidate := range sorted {
		chosen = pick(capacity, chosen, candidate)
	}
	return chosen
}

func pick(capacity Weight, chosen []Item, candidate Item) []Item {
	weightSum, priceSum := totals(chosen)

	// Zero-priced items keep priceSum at 0, so they are all added. Weights
	// are exact, so a total landing on capacity is never added.
	if priceSum == 0 || weightSum+candidate.Weight < capacity {
		return append(chosen, candidate)
	}

	cheapest := cheapestIndex(chosen)
	if candidate.Price == chosen[cheapest].Price && candidate.Weight < chosen[cheapest].Weight {
		chosen = slices.Delete(chosen, cheapest, cheapest+1)
		return append(chosen, candidate)
	}
	return chosen
}

func totals(items []Item) (Weight, int) {
	var weight Weight
	price := 0
	for _, item := range items {
		weight += item.Weight
		price += item.Price
	}
	return weight, price
}

// cheapestIndex returns the position of the first lowest-priced item, or -1.
func cheapestIndex(items []Item) int {
	idx := -1
	for i, item := range items {
		if idx == -1 || item.Price < items[idx].Price {
			idx = i
		}
	}
	return idx
}
