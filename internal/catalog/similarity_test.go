package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopgenie/internal/catalog"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		field    string
		expected float64
	}{
		{
			name:     "exact match",
			query:    "Nike Revolution 6",
			field:    "Nike Revolution 6",
			expected: 100,
		},
		{
			name:     "case insensitive",
			query:    "NIKE revolution 6",
			field:    "Nike Revolution 6",
			expected: 100,
		},
		{
			name:     "query contained in field",
			query:    "nike",
			field:    "Nike Revolution 6",
			expected: 100,
		},
		{
			name:     "field contained in query",
			query:    "red running shoes",
			field:    "Shoes",
			expected: 100,
		},
		{
			name:     "surrounding whitespace ignored",
			query:    "  nike  ",
			field:    "Nike Revolution 6",
			expected: 100,
		},
		{
			name:     "empty query",
			query:    "",
			field:    "Nike Revolution 6",
			expected: 0,
		},
		{
			name:     "empty field",
			query:    "nike",
			field:    "",
			expected: 0,
		},
		{
			name:     "single character typo",
			query:    "nikee",
			field:    "nike",
			expected: 80,
		},
		{
			name:     "completely different strings",
			query:    "xyz",
			field:    "abc",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, catalog.Similarity(tt.query, tt.field), 0.001)
		})
	}
}

func TestSimilarity_BestTokenAlignment(t *testing.T) {
	// "revolutoin" does not contain and is not contained, but its best token
	// pairing against "Nike Revolution 6" is close enough to score high.
	got := catalog.Similarity("revolutoin", "Nike Revolution 6")
	assert.Greater(t, got, 70.0)
	assert.Less(t, got, 100.0)
}

func TestSimilarity_Symmetric_Containment(t *testing.T) {
	a := catalog.Similarity("galaxy", "Samsung Galaxy M14")
	b := catalog.Similarity("Samsung Galaxy M14 5G 128GB", "Samsung Galaxy M14")
	assert.Equal(t, 100.0, a)
	assert.Equal(t, 100.0, b)
}
