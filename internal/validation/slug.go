package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9-]{1,220}$`)

// Polish diacritics folded to their ASCII base letters before slugging.
var polishFold = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n",
	"ó", "o", "ś", "s", "ź", "z", "ż", "z",
	"Ą", "a", "Ć", "c", "Ę", "e", "Ł", "l", "Ń", "n",
	"Ó", "o", "Ś", "s", "Ź", "z", "Ż", "z",
)

var nonSlugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title: Polish diacritics are folded,
// anything outside [a-z0-9] collapses into single hyphens, and the result
// is truncated to 220 characters. The empty string stays empty.
func Slugify(title string) string {
	s := strings.ToLower(polishFold.Replace(title))
	s = nonSlugRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 220 {
		s = strings.Trim(s[:220], "-")
	}
	return s
}

// ValidateSlug validates slug format for posts, pages, and taxonomies.
func ValidateSlug(slug string) error {
	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 1-220 characters and contain only lowercase letters, numbers, and hyphens")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}

	return nil
}
