// Package mood holds the single mood vocabulary shared by the analytics,
// distribution and calendar code paths.
package mood

import "strings"

type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNeutral  Category = "neutral"
	CategoryNegative Category = "negative"
)

// vocabulary maps canonical mood words to their category. Words outside the
// table classify as negative, including typos and unknown moods.
var vocabulary = map[string]Category{
	"Happy":     CategoryPositive,
	"Excited":   CategoryPositive,
	"Relaxed":   CategoryPositive,
	"Grateful":  CategoryPositive,
	"Confident": CategoryPositive,

	"Calm":       CategoryNeutral,
	"Thoughtful": CategoryNeutral,
	"Curious":    CategoryNeutral,
	"Nostalgic":  CategoryNeutral,
	"Bored":      CategoryNeutral,
}

// Normalize strips the emoji prefix convention ("😊 Happy" -> "Happy"): the
// canonical word is everything after the first space, or the whole label
// when there is none. Labels with internal spaces are therefore truncated
// to their tail; known data-quality assumption of the mood picker.
func Normalize(label string) string {
	label = strings.TrimSpace(label)
	if i := strings.Index(label, " "); i >= 0 {
		return label[i+1:]
	}
	return label
}

// Classify maps a canonical mood word to its category.
func Classify(word string) Category {
	if c, exist := vocabulary[word]; exist {
		return c
	}
	return CategoryNegative
}
