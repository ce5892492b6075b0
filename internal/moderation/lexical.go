package moderation

import "strings"

// deny-list for the most severe categories. This is a cheap first line of
// defense that runs before any remote call; false negatives are expected
// and caught by the remote classifier.
var denyList = []string{
	"child sexual",
	"child porn",
	"child nude",
	"naked child",
	"underage sex",
	"underage nude",
	"minor sexual",
	"loli",
	"lolita sex",
	"toddler nude",
	"preteen sex",
	"non-consensual sex",
	"nonconsensual sex",
	"rape scene",
	"bestiality",
	"incest porn",
}

// reports whether the text is obviously disallowed.
// Case-insensitive substring match, no remote calls.
func ContainsDisallowed(text string) bool {
	lowered := strings.ToLower(text)

	for _, phrase := range denyList {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}

	return false
}
