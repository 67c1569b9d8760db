package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorizerSelfSimilarityIsOne(t *testing.T) {
	v := fitVectorizer([]string{"촉촉하고 산뜻한 젤", "무겁고 리치한 크림"})

	a := v.transform("촉촉하고 산뜻한 젤")
	b := v.transform("촉촉하고 산뜻한 젤")
	assert.InDelta(t, 1.0, cosine(a, b), 1e-9)
}

func TestVectorizerDisjointTextsScoreZero(t *testing.T) {
	v := fitVectorizer([]string{"촉촉하고 산뜻한 젤", "무겁고 리치한 크림"})

	a := v.transform("촉촉하고 산뜻한 젤")
	b := v.transform("무겁고 리치한 크림")
	assert.Equal(t, 0.0, cosine(a, b))
}

func TestVectorizerEmptyTextIsZeroVector(t *testing.T) {
	v := fitVectorizer([]string{"촉촉하고 산뜻한 젤", ""})

	vec := v.transform("")
	for _, x := range vec {
		assert.Zero(t, x)
	}
	assert.Equal(t, 0.0, cosine(vec, v.transform("촉촉하고 산뜻한 젤")))
}

func TestTokenizeLowercasesAndSplits(t *testing.T) {
	assert.Equal(t, []string{"gel", "cleanser", "촉촉함"}, tokenize("Gel  Cleanser 촉촉함"))
	assert.Empty(t, tokenize("   "))
}
