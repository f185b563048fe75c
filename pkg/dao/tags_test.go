package dao

import (
	"testing"

	"github.com/memories-timeline/memories-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	cases := map[string]string{
		"A, a ,B,b":              "a,b",
		"":                       "",
		" , ,":                   "",
		"Beach,  Summer ,beach ": "beach,summer",
		"family":                 "family",
		"x,,y":                   "x,y",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, NormalizeTags(input), input)
	}
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	inputs := []string{"A, a ,B,b", "Road Trip, beach,SUNSET", "one"}
	for _, input := range inputs {
		once := NormalizeTags(input)
		assert.Equal(t, once, NormalizeTags(once))
	}
}

func TestNormalizedTagsOrNil(t *testing.T) {
	assert.Nil(t, normalizedTagsOrNil(nil))
	assert.Nil(t, normalizedTagsOrNil(utils.Ptr(" , ")))
	assert.Equal(t, "b,a", *normalizedTagsOrNil(utils.Ptr("B, a, b")))
}
