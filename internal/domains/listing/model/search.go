package model

import (
	"sort"
	"strings"

	"pgstay/shared/constant"
	"pgstay/shared/money"
)

// Filter values shared by the food and gender predicates. Anything other
// than yes/no on the food side falls back to FilterAny.
const (
	FilterAny = "any"
	FoodYes   = "yes"
	FoodNo    = "no"
)

// Sort keys accepted by the search engine. An empty key keeps the order the
// store returned.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// SearchCriteria is the predicate configuration applied over a fetched
// collection. All predicates are ANDed.
type SearchCriteria struct {
	City     string
	MinPrice money.Amount
	MaxPrice money.Amount
	Food     string
	Gender   string
	Query    string
	Sort     string
}

// Apply filters and optionally sorts the given listings. Listings are never
// mutated; the result is a fresh slice.
//
// City matches case-insensitively but exactly, not by substring. The food
// and gender predicates are deliberately asymmetric: a listing without food
// information is excluded by a "yes" filter, while a listing without a
// gender set passes every gender filter.
func Apply(listings []Listing, criteria SearchCriteria) []Listing {
	matched := make([]Listing, 0, len(listings))

	for _, listing := range listings {
		if matches(listing, criteria) {
			matched = append(matched, listing)
		}
	}

	switch criteria.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price < matched[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price > matched[j].Price
		})
	}

	return matched
}

// Recommend returns the head of the filtered and sorted collection. There is
// no weighting behind the name, only truncation.
func Recommend(listings []Listing, criteria SearchCriteria) []Listing {
	matched := Apply(listings, criteria)

	if len(matched) > constant.RecommendedListingLimit {
		matched = matched[:constant.RecommendedListingLimit]
	}

	return matched
}

func matches(listing Listing, criteria SearchCriteria) bool {
	if criteria.City != constant.Empty && !strings.EqualFold(listing.City, criteria.City) {
		return false
	}

	if criteria.MinPrice > 0 && listing.Price < criteria.MinPrice {
		return false
	}

	if criteria.MaxPrice > 0 && listing.Price > criteria.MaxPrice {
		return false
	}

	if !matchesFood(listing, criteria.Food) {
		return false
	}

	if !matchesGender(listing, criteria.Gender) {
		return false
	}

	if !matchesQuery(listing, criteria.Query) {
		return false
	}

	return true
}

// matchesFood treats a missing food flag as false, so a "yes" filter
// excludes listings that never stated it.
func matchesFood(listing Listing, food string) bool {
	switch food {
	case FoodYes:
		return listing.FoodIncluded != nil && *listing.FoodIncluded
	case FoodNo:
		return listing.FoodIncluded == nil || !*listing.FoodIncluded
	default:
		return true
	}
}

// matchesGender lets a listing with no gender set pass every filter.
func matchesGender(listing Listing, gender string) bool {
	if gender == constant.Empty || gender == FilterAny {
		return true
	}

	if listing.Gender == constant.Empty {
		return true
	}

	return strings.EqualFold(listing.Gender, gender)
}

func matchesQuery(listing Listing, query string) bool {
	if query == constant.Empty {
		return true
	}

	needle := strings.ToLower(query)

	for _, haystack := range []string{listing.Title, listing.City, listing.Locality, listing.OwnerName} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}

	return false
}
