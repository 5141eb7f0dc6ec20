package shell

import "strings"

// Tokenize splits line into at most maxArgs-1 space-delimited words. Runs
// of spaces yield no empty tokens and words past the bound are silently
// dropped. Only the space character delimits; any other whitespace is part
// of its token. The returned strings are freshly owned, so the vector never
// aliases a shared line buffer.
func Tokenize(line string, maxArgs int) []string {
	var args []string
	for _, word := range strings.Split(line, " ") {
		if word == "" {
			continue
		}
		if len(args) >= maxArgs-1 {
			break
		}
		args = append(args, word)
	}
	return args
}
