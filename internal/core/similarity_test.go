package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearDuplicateExactMatch(t *testing.T) {
	assert.True(t, nearDuplicate("fever", "fever", DefaultSimilarityThreshold))
	assert.False(t, nearDuplicate("cough", "back pain", DefaultSimilarityThreshold))
}

func TestNearDuplicateTokenOrderInsensitive(t *testing.T) {
	// Token-sort ratio ignores word order.
	assert.True(t, nearDuplicate("mild fever", "fever mild", DefaultSimilarityThreshold))
	assert.True(t, nearDuplicate("severe headache", "headache severe", DefaultSimilarityThreshold))
}

func TestNearDuplicateThresholdBoundary(t *testing.T) {
	// A perfect 100 match is not a duplicate at threshold 100: the
	// contract is strictly-greater-than.
	assert.False(t, nearDuplicate("mild fever", "fever mild", 100))
}

func TestMergeSimilar(t *testing.T) {
	in := []string{"Mild Fever", "fever mild", "  cough ", "COUGH", "nausea"}
	out := MergeSimilar(in, DefaultSimilarityThreshold)
	assert.Equal(t, []string{"mild fever", "cough", "nausea"}, out)
}

func TestMergeSimilarEmptyAndBlank(t *testing.T) {
	assert.Empty(t, MergeSimilar(nil, DefaultSimilarityThreshold))
	assert.Empty(t, MergeSimilar([]string{"", "   "}, DefaultSimilarityThreshold))
}
