package workloads

import (
	"context"
	"regexp"
	"strings"
)

const (
	defaultStringIterations   = 50_000
	defaultCompilerIterations = 20_000
)

var fourLetterWords = regexp.MustCompile(`\b\w{4}\b`)

// StringProcessing mixes tokenization, regex matching, and slice/concat
// churn over a repeated sentence.
func StringProcessing(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultStringIterations)
	if err != nil {
		return 0, err
	}

	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 50)

	var count int64
	for i := 0; i < iterations; i++ {
		words := strings.Fields(text)
		matches := fourLetterWords.FindAllString(text, -1)
		count += int64(len(matches) + len(words))
		count += int64(len(text[10:50] + text[0:5]))
	}
	return count, nil
}

type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenNumber
	tokenSymbol
)

type token struct {
	kind tokenKind
	text string
}

// CompilerSim tokenizes a small C-like source fragment and walks the token
// stream tracking brace depth, approximating a compiler front end.
func CompilerSim(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultCompilerIterations)
	if err != nil {
		return 0, err
	}

	code := strings.Repeat("int main() { int a = 5; if (a > 2) { return a; } return 0; } ", 10)

	var nodes int64
	for it := 0; it < iterations; it++ {
		tokens := tokenize(code)

		depth := 0
		nodes = 0
		for _, t := range tokens {
			switch t.text {
			case "{":
				depth++
			case "}":
				depth--
			}
			nodes++
		}
		_ = depth
	}
	return nodes, nil
}

func tokenize(code string) []token {
	tokens := make([]token, 0, len(code)/3)
	i := 0
	for i < len(code) {
		c := code[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			i++
		case isAlpha(c):
			start := i
			for i < len(code) && isAlnum(code[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: code[start:i]})
		case isDigit(c):
			start := i
			for i < len(code) && isDigit(code[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenNumber, text: code[start:i]})
		default:
			tokens = append(tokens, token{kind: tokenSymbol, text: code[i : i+1]})
			i++
		}
	}
	return tokens
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
