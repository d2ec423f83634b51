package mood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moodnest/moodnest-api/pkg/mood"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Happy", "Happy"},
		{"😊 Happy", "Happy"},
		{"🤔 Thoughtful", "Thoughtful"},
		{"  Calm  ", "Calm"},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, mood.Normalize(c.label), "label %q", c.label)
	}
}

func TestClassify(t *testing.T) {
	for _, word := range []string{"Happy", "Excited", "Relaxed", "Grateful", "Confident"} {
		assert.Equal(t, mood.CategoryPositive, mood.Classify(word), word)
	}
	for _, word := range []string{"Calm", "Thoughtful", "Curious", "Nostalgic", "Bored"} {
		assert.Equal(t, mood.CategoryNeutral, mood.Classify(word), word)
	}
	// everything outside the vocabulary falls through to negative
	for _, word := range []string{"Sad", "Angry", "happy", ""} {
		assert.Equal(t, mood.CategoryNegative, mood.Classify(word), word)
	}
}
