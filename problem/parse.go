package problem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/proc36/pairfield/field"
)

// Document is a parsed problem description: a board size and its row-major
// entities. It does not itself enforce the "every label appears exactly
// twice" precondition — that is field.New's caller's responsibility, same
// as spec §3 describes for Board.
type Document struct {
	Size     int
	Entities []int
}

// Board constructs a *field.Board from the document.
func (d Document) Board() (*field.Board, error) {
	return field.New(d.Size, d.Entities)
}

// ParseDocument parses a problem input document per spec §6: it locates
// the first "size" token and parses the following unsigned integer, then
// locates the first "entities" token, finds its array's matching closing
// bracket, and extracts every integer literal (including negatives) inside
// in document order. It rejects the document with ErrInvalidInput if either
// key is missing, the entities brackets are unbalanced, or the entity count
// does not equal size².
func ParseDocument(data []byte) (Document, error) {
	text := string(data)

	size, err := parseUintAfterKey(text, `"size"`)
	if err != nil {
		return Document{}, fmt.Errorf("problem.ParseDocument: %w", err)
	}

	entities, err := parseEntities(text, size)
	if err != nil {
		return Document{}, fmt.Errorf("problem.ParseDocument: %w", err)
	}

	return Document{Size: size, Entities: entities}, nil
}

// parseUintAfterKey locates key's first occurrence, then the first colon
// after it, skips whitespace, and parses the run of digits that follows.
func parseUintAfterKey(text, key string) (int, error) {
	keyPos := strings.Index(text, key)
	if keyPos < 0 {
		return 0, fmt.Errorf("missing key %s: %w", key, ErrInvalidInput)
	}
	colon := strings.IndexByte(text[keyPos+len(key):], ':')
	if colon < 0 {
		return 0, fmt.Errorf("malformed %s field: %w", key, ErrInvalidInput)
	}
	idx := keyPos + len(key) + colon + 1
	for idx < len(text) && isSpace(text[idx]) {
		idx++
	}
	start := idx
	for idx < len(text) && isDigit(text[idx]) {
		idx++
	}
	if idx == start {
		return 0, fmt.Errorf("%s value missing: %w", key, ErrInvalidInput)
	}
	n, err := strconv.Atoi(text[start:idx])
	if err != nil {
		return 0, fmt.Errorf("%s value malformed: %w", key, ErrInvalidInput)
	}
	return n, nil
}

// parseEntities locates the "entities" array, balances its brackets, and
// scans every (possibly negative) integer literal inside, in document
// order. It rejects the document if the count does not equal size².
func parseEntities(text string, size int) ([]int, error) {
	const key = `"entities"`
	keyPos := strings.Index(text, key)
	if keyPos < 0 {
		return nil, fmt.Errorf("missing key %s: %w", key, ErrInvalidInput)
	}
	rel := strings.IndexByte(text[keyPos+len(key):], '[')
	if rel < 0 {
		return nil, fmt.Errorf("entities array missing: %w", ErrInvalidInput)
	}
	start := keyPos + len(key) + rel

	end, err := matchingBracket(text, start, '[', ']')
	if err != nil {
		return nil, fmt.Errorf("entities array: %w", err)
	}

	values := make([]int, 0, size*size)
	var number strings.Builder
	flush := func() {
		if number.Len() == 0 {
			return
		}
		v, _ := strconv.Atoi(number.String())
		values = append(values, v)
		number.Reset()
	}
	for i := start; i <= end; i++ {
		ch := text[i]
		switch {
		case isDigit(ch):
			number.WriteByte(ch)
		case ch == '-' && number.Len() == 0:
			number.WriteByte(ch)
		default:
			flush()
		}
	}
	flush()

	if len(values) != size*size {
		return nil, fmt.Errorf("entities count %d != size^2 (%d): %w", len(values), size*size, ErrInvalidInput)
	}
	return values, nil
}

// matchingBracket returns the index of the close byte matching the open
// byte at openIdx (which must itself be open), honouring nesting depth. It
// returns ErrInvalidInput if a stray close is seen, or the brackets never
// balance back to zero.
func matchingBracket(text string, openIdx int, open, close byte) (int, error) {
	depth := 0
	for i := openIdx; i < len(text); i++ {
		switch text[i] {
		case open:
			depth++
		case close:
			if depth == 0 {
				return 0, fmt.Errorf("stray closing bracket: %w", ErrInvalidInput)
			}
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("bracket not closed: %w", ErrInvalidInput)
}

// ParseOperations parses an ops.json-shaped document: an object containing
// an "ops" array of {"x":X,"y":Y,"n":K} entries, scanned key-by-key rather
// than through a general-purpose JSON decoder (spec §6's parser is
// bracket-balancing and regex-free throughout). A document with no "ops"
// key returns an empty, nil-error slice, matching the original tool's
// "missing ops is not an error" behaviour.
func ParseOperations(data []byte) ([]field.Operation, error) {
	text := string(data)

	const key = `"ops"`
	keyPos := strings.Index(text, key)
	if keyPos < 0 {
		return nil, nil
	}
	rel := strings.IndexByte(text[keyPos+len(key):], '[')
	if rel < 0 {
		return nil, fmt.Errorf("problem.ParseOperations: ops array missing: %w", ErrInvalidInput)
	}
	start := keyPos + len(key) + rel
	end, err := matchingBracket(text, start, '[', ']')
	if err != nil {
		return nil, fmt.Errorf("problem.ParseOperations: %w", err)
	}

	var ops []field.Operation
	cursor := start
	for {
		xPos := indexFrom(text, `"x"`, cursor, end)
		if xPos < 0 {
			break
		}
		x, err := parseUintAfterKeyAt(text, xPos, `"x"`)
		if err != nil {
			return nil, fmt.Errorf("problem.ParseOperations: %w", err)
		}

		yPos := indexFrom(text, `"y"`, xPos+3, end)
		if yPos < 0 {
			return nil, fmt.Errorf("problem.ParseOperations: missing y: %w", ErrInvalidInput)
		}
		y, err := parseUintAfterKeyAt(text, yPos, `"y"`)
		if err != nil {
			return nil, fmt.Errorf("problem.ParseOperations: %w", err)
		}

		nPos := indexFrom(text, `"n"`, yPos+3, end)
		if nPos < 0 {
			return nil, fmt.Errorf("problem.ParseOperations: missing n: %w", ErrInvalidInput)
		}
		k, err := parseUintAfterKeyAt(text, nPos, `"n"`)
		if err != nil {
			return nil, fmt.Errorf("problem.ParseOperations: %w", err)
		}

		ops = append(ops, field.Operation{X: x, Y: y, K: k})
		cursor = nPos + 3
	}

	return ops, nil
}

// indexFrom finds key's next occurrence at or after from, bounded by limit
// (inclusive); it returns -1 if key does not occur before limit.
func indexFrom(text, key string, from, limit int) int {
	if from > limit || from >= len(text) {
		return -1
	}
	rel := strings.Index(text[from:], key)
	if rel < 0 {
		return -1
	}
	pos := from + rel
	if pos > limit {
		return -1
	}
	return pos
}

// parseUintAfterKeyAt is parseUintAfterKey anchored at an already-located
// key occurrence, used when the caller has bounded the search window.
func parseUintAfterKeyAt(text string, keyPos int, key string) (int, error) {
	return parseUintAfterKey(text[keyPos:], key)
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
