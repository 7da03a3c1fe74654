// Package moderation cleans chirp bodies before they are stored.
package moderation

import "regexp"

// MaxChirpLength is the hard limit on a chirp body, in characters.
const MaxChirpLength = 140

var profanityPatterns = compile([]string{"kerfuffle", "sharbert", "fornax"})

func compile(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, regexp.MustCompile("(?i)"+w))
	}
	return patterns
}

// CleanBody masks every profanity occurrence, case-insensitively, with "****".
func CleanBody(body string) string {
	for _, p := range profanityPatterns {
		body = p.ReplaceAllString(body, "****")
	}
	return body
}
