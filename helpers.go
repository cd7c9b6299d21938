package readline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// candidateAt indexes matches with the completer state convention:
// non-negative states count from the front, negative ones from the back.
func candidateAt(matches []string, state int) (string, bool) {
	if state < 0 {
		state += len(matches)
	}
	if state < 0 || state >= len(matches) {
		return "", false
	}
	return matches[state], true
}

// NewPrefixCompleter creates a completer cycling through the candidates that
// start with the fragment, in the given order. An empty fragment matches
// every candidate.
//
// Example:
//
//	ed := readline.New(readline.WithCompleter(
//		readline.NewPrefixCompleter([]string{"start", "stop", "next"}),
//	))
//	ed.Keypress(0, "tab") // "start"
//	ed.Keypress(0, "tab") // "stop"
func NewPrefixCompleter(candidates []string) Completer {
	return func(fragment string, state int) (string, bool) {
		matches := make([]string, 0, len(candidates))
		for _, c := range candidates {
			if c != "" && strings.HasPrefix(c, fragment) {
				matches = append(matches, c)
			}
		}
		return candidateAt(matches, state)
	}
}

// NewFuzzyCompleter creates a completer ranking candidates by fuzzy match
// quality against the fragment, best first:
//   - Exact matches score highest (1000)
//   - Prefix matches score 800+
//   - Substring matches score 500+
//   - Characters found in order score 10 each
//
// Matching ignores case. An empty fragment yields every candidate in order.
func NewFuzzyCompleter(candidates []string) Completer {
	return func(fragment string, state int) (string, bool) {
		return candidateAt(rankFuzzy(fragment, candidates), state)
	}
}

type fuzzyMatch struct {
	text  string
	score int
}

func rankFuzzy(input string, candidates []string) []string {
	if input == "" {
		return candidates
	}
	var matches []fuzzyMatch
	for _, c := range candidates {
		if score := calculateFuzzyScore(input, c, true); score > 0 {
			matches = append(matches, fuzzyMatch{text: c, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	ranked := make([]string, len(matches))
	for i, m := range matches {
		ranked[i] = m.text
	}
	return ranked
}

// calculateFuzzyScore calculates a fuzzy matching score between input and candidate.
// Returns 0 if no match, higher scores for better matches.
func calculateFuzzyScore(input, candidate string, ignoreCase bool) int {
	if input == "" {
		return 1
	}
	if candidate == "" {
		return 0
	}

	searchInput := input
	searchCandidate := candidate
	if ignoreCase {
		searchInput = strings.ToLower(input)
		searchCandidate = strings.ToLower(candidate)
	}

	if searchInput == searchCandidate {
		return 1000
	}
	if strings.HasPrefix(searchCandidate, searchInput) {
		return 800 + len(searchInput)*10
	}
	if strings.Contains(searchCandidate, searchInput) {
		return 500 + len(searchInput)*5
	}

	// Characters of the input in order, rune by rune
	score := 0
	rest := []rune(searchCandidate)
	for _, inputChar := range searchInput {
		i := 0
		for i < len(rest) && rest[i] != inputChar {
			i++
		}
		if i == len(rest) {
			break
		}
		score += 10
		rest = rest[i+1:]
	}
	return score
}

// NewFileCompleter creates a completer for file and directory paths. The
// fragment is read as a path; entries of its directory whose names start
// with its last element are returned in directory order, with a trailing
// slash on directories. Hidden entries only match a fragment starting with
// a dot.
func NewFileCompleter() Completer {
	return func(fragment string, state int) (string, bool) {
		return candidateAt(completeFilePath(fragment), state)
	}
}

func completeFilePath(path string) []string {
	dir, base := filepath.Split(path)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}

	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}

	matches := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if !strings.HasPrefix(name, base) {
			continue
		}
		full := dir + name
		if entry.IsDir() {
			full += string(filepath.Separator)
		}
		matches = append(matches, full)
	}
	return matches
}
