package model_test

import (
	"testing"

	"pgstay/internal/domains/listing/model"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func chennaiListings() []model.Listing {
	return []model.Listing{
		{ID: "l1", Title: "Sunrise PG", City: "Chennai", Locality: "Adyar", OwnerName: "Priya", Price: 4500},
		{ID: "l2", Title: "Lakeview Residency", City: "Chennai", Locality: "Velachery", OwnerName: "Arun", Gender: model.GenderWomen, Price: 6000},
		{ID: "l3", Title: "Metro Stay", City: "Bengaluru", Locality: "Indiranagar", OwnerName: "Kiran", Gender: model.GenderMen, Price: 5000, FoodIncluded: boolPtr(true)},
	}
}

func TestApply_CityCaseInsensitiveExactMatch(t *testing.T) {
	listings := chennaiListings()

	matched := model.Apply(listings, model.SearchCriteria{City: "chennai"})

	assert.Len(t, matched, 2)

	// exact match, not substring
	matched = model.Apply(listings, model.SearchCriteria{City: "chen"})

	assert.Empty(t, matched)
}

func TestApply_PriceRangeInclusive(t *testing.T) {
	listings := chennaiListings()

	matched := model.Apply(listings, model.SearchCriteria{MinPrice: 4500, MaxPrice: 5000})

	assert.Len(t, matched, 2)
	assert.Equal(t, "l1", matched[0].ID)
	assert.Equal(t, "l3", matched[1].ID)
}

func TestApply_GenderUnsetPassesEveryFilter(t *testing.T) {
	listings := chennaiListings()

	matched := model.Apply(listings, model.SearchCriteria{Gender: model.GenderWomen})

	ids := make([]string, len(matched))
	for i, listing := range matched {
		ids[i] = listing.ID
	}

	// l1 has no gender set and passes; l3 is men-only and fails
	assert.Equal(t, []string{"l1", "l2"}, ids)
}

func TestApply_MissingFoodTreatedAsFalse(t *testing.T) {
	listings := chennaiListings()

	matched := model.Apply(listings, model.SearchCriteria{Food: model.FoodYes})

	assert.Len(t, matched, 1)
	assert.Equal(t, "l3", matched[0].ID)

	matched = model.Apply(listings, model.SearchCriteria{Food: model.FoodNo})

	assert.Len(t, matched, 2)
}

func TestApply_ChennaiWomenUnderBudget(t *testing.T) {
	listings := []model.Listing{
		{ID: "a", City: "Chennai", Price: 4500},
		{ID: "b", City: "Chennai", Gender: model.GenderWomen, Price: 6000},
	}

	matched := model.Apply(listings, model.SearchCriteria{
		City:     "Chennai",
		MaxPrice: 5000,
		Gender:   model.GenderWomen,
	})

	assert.Len(t, matched, 1)
	assert.Equal(t, "a", matched[0].ID)
}

func TestApply_FreeTextAcrossFields(t *testing.T) {
	listings := chennaiListings()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "title match",
			query: "sunrise",
			want:  []string{"l1"},
		},
		{
			name:  "locality match",
			query: "velachery",
			want:  []string{"l2"},
		},
		{
			name:  "owner name match",
			query: "kiran",
			want:  []string{"l3"},
		},
		{
			name:  "city substring matches several",
			query: "chen",
			want:  []string{"l1", "l2"},
		},
		{
			name:  "no match",
			query: "hyderabad",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := model.Apply(listings, model.SearchCriteria{Query: tt.query})

			ids := make([]string, 0, len(matched))
			for _, listing := range matched {
				ids = append(ids, listing.ID)
			}

			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestApply_SortByPrice(t *testing.T) {
	listings := chennaiListings()

	ascending := model.Apply(listings, model.SearchCriteria{Sort: model.SortPriceAsc})
	assert.Equal(t, "l1", ascending[0].ID)
	assert.Equal(t, "l2", ascending[2].ID)

	descending := model.Apply(listings, model.SearchCriteria{Sort: model.SortPriceDesc})
	assert.Equal(t, "l2", descending[0].ID)
	assert.Equal(t, "l1", descending[2].ID)
}

func TestApply_NoSortKeepsInputOrder(t *testing.T) {
	listings := chennaiListings()

	matched := model.Apply(listings, model.SearchCriteria{})

	for i, listing := range listings {
		assert.Equal(t, listing.ID, matched[i].ID)
	}
}

func TestRecommend_TruncatesToFive(t *testing.T) {
	listings := make([]model.Listing, 8)
	for i := range listings {
		listings[i] = model.Listing{ID: string(rune('a' + i)), City: "Chennai"}
	}

	recommended := model.Recommend(listings, model.SearchCriteria{})

	assert.Len(t, recommended, 5)
	assert.Equal(t, listings[0].ID, recommended[0].ID)
}

func TestRecommend_FewerThanFive(t *testing.T) {
	recommended := model.Recommend(chennaiListings(), model.SearchCriteria{City: "Chennai"})

	assert.Len(t, recommended, 2)
}
