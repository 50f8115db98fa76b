package catering

import "strings"

// bucket is one classification target for quota-based selection.
// Buckets are declared in priority order: on a score tie the earlier
// bucket wins.
type bucket struct {
	key           string
	keywords      []string
	categoryHints []string
}

var buckets = []bucket{
	{
		key:           "chicken",
		keywords:      []string{"chicken", "wings", "drumstick", "thigh", "charcoal"},
		categoryHints: []string{"chicken", "charcoal chicken"},
	},
	{
		key:           "salad",
		keywords:      []string{"salad", "coleslaw", "slaw", "tabouli", "greek", "caesar"},
		categoryHints: []string{"salads"},
	},
	{
		key:           "veggies",
		keywords:      []string{"veggie", "vegetable", "corn", "pumpkin", "beans", "broccoli", "cauliflower"},
		categoryHints: []string{"veggies", "vegetables", "sides"},
	},
	{
		key:           "breadroll",
		keywords:      []string{"bread", "roll", "bun", "pita"},
		categoryHints: []string{"bread", "rolls", "bread rolls"},
	},
}

const (
	nameWeight     = 5
	categoryWeight = 3
	hintWeight     = 6
	imageWeight    = 2
)

// Classify maps an item to a bucket key by weighted keyword scoring.
// The strictly highest non-zero score wins; items matching nothing
// return "".
func Classify(name, categoryName, imagePath string) string {
	name = strings.ToLower(name)
	categoryName = strings.ToLower(categoryName)
	imagePath = strings.ToLower(imagePath)

	best := ""
	bestScore := 0

	for _, b := range buckets {
		score := 0

		for _, kw := range b.keywords {
			if strings.Contains(name, kw) {
				score += nameWeight
			}
		}

		hinted := false
		for _, hint := range b.categoryHints {
			if categoryName == hint {
				score += hintWeight
				hinted = true
				break
			}
		}
		if !hinted && categoryName != "" {
			for _, kw := range b.keywords {
				if strings.Contains(categoryName, kw) {
					score += categoryWeight
				}
			}
		}

		if imagePath != "" {
			for _, kw := range b.keywords {
				if strings.Contains(imagePath, kw) {
					score += imageWeight
				}
			}
		}

		if score > bestScore {
			best = b.key
			bestScore = score
		}
	}

	return best
}

// BucketKeys returns the bucket keys in priority order.
func BucketKeys() []string {
	keys := make([]string, 0, len(buckets))
	for _, b := range buckets {
		keys = append(keys, b.key)
	}
	return keys
}
