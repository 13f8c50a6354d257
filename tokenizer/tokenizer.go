package tokenizer

import (
	"log"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"
)

// FallbackTokenLimit caps the fallback splitter output
const FallbackTokenLimit = 20

// stopWords is a closed class of words that carry no preference signal:
// auxiliary verbs, demonstratives, copulas, common bound nouns and
// calendar/counter words.
var stopWords = map[string]struct{}{
	"する": {}, "ある": {}, "いる": {}, "なる": {}, "れる": {}, "できる": {}, "られる": {},
	"こと": {}, "もの": {}, "よう": {}, "ため": {}, "これ": {}, "それ": {}, "あれ": {},
	"この": {}, "その": {}, "あの": {}, "ここ": {}, "そこ": {}, "あそこ": {},
	"です": {}, "ます": {}, "だ": {}, "である": {}, "について": {}, "により": {},
	"年": {}, "月": {}, "日": {}, "時": {}, "分": {}, "秒": {}, "人": {}, "円": {}, "個": {}, "件": {},
}

var (
	digitsOnly  = regexp.MustCompile(`^\d+$`)
	fallbackSep = regexp.MustCompile(`[\s、。！？\n]+`)
)

var (
	initOnce sync.Once
	analyzer *kagome.Tokenizer
	initErr  error
)

// getAnalyzer builds the morphological analyzer once. The IPA dictionary is
// embedded in the kagome-dict module, so this is a pure in-process load.
func getAnalyzer() (*kagome.Tokenizer, error) {
	initOnce.Do(func() {
		analyzer, initErr = kagome.New(ipa.Dict(), kagome.OmitBosEos())
	})
	return analyzer, initErr
}

// ExtractWords tokenizes text and returns the deduplicated normalized
// content words: nouns, verbs and adjectives, reduced to their dictionary
// base form, minus stop words, single characters and pure digit strings.
// If the analyzer cannot be initialized it falls back to a naive splitter
// and never fails.
func ExtractWords(text string) []string {
	t, err := getAnalyzer()
	if err != nil {
		log.Printf("Warning: morphological analyzer unavailable, using fallback splitter: %v", err)
		return fallbackSplit(text)
	}

	seen := make(map[string]struct{})
	words := make([]string, 0, 16)

	for _, token := range t.Tokenize(text) {
		pos := token.POS()
		if len(pos) == 0 {
			continue
		}
		switch pos[0] {
		case "名詞", "動詞", "形容詞":
		default:
			continue
		}

		// Base form normalizes inflected verbs/adjectives to their lemma
		word := token.Surface
		if base, ok := token.BaseForm(); ok && base != "" && base != "*" {
			word = base
		}

		if !keepWord(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}

	return words
}

// keepWord applies the stop-word, length and digit filters to a normalized form.
func keepWord(word string) bool {
	if _, stop := stopWords[word]; stop {
		return false
	}
	if utf8.RuneCountInString(word) <= 1 {
		return false
	}
	if digitsOnly.MatchString(word) {
		return false
	}
	return true
}

// fallbackSplit is the terminal error boundary for tokenization: a naive
// split on whitespace and Japanese punctuation, keeping tokens longer than
// one rune, capped at FallbackTokenLimit.
func fallbackSplit(text string) []string {
	parts := fallbackSep.Split(text, -1)
	words := make([]string, 0, FallbackTokenLimit)
	for _, part := range parts {
		if utf8.RuneCountInString(part) <= 1 {
			continue
		}
		words = append(words, part)
		if len(words) >= FallbackTokenLimit {
			break
		}
	}
	return words
}

// ExtractWordFrequencies tokenizes each text independently and counts, for
// every word, the number of texts it appeared in. Repetition within a single
// text contributes at most 1 because ExtractWords deduplicates.
func ExtractWordFrequencies(texts []string) map[string]int {
	frequencies := make(map[string]int)
	for _, text := range texts {
		for _, word := range ExtractWords(text) {
			frequencies[word]++
		}
	}
	return frequencies
}
