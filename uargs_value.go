package uargs

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// errInvalidValue is the bare cause for an enum value matching no choice; the
// call site wraps it with the option and literal text.
var errInvalidValue = errors.New("Invalid value")

// ParseRaw passes raw text through untouched. It never fails.
func ParseRaw(raw string) (string, error) {
	return raw, nil
}

// ParseString requires raw to be valid UTF-8 and returns it unchanged.
func ParseString(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", &NonUnicodeValueError{Raw: raw}
	}
	return raw, nil
}

func parseSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](raw string, bits int) (T, error) {
	s, err := ParseString(raw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

func parseUnsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](raw string, bits int) (T, error) {
	s, err := ParseString(raw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

// ParseInt coerces decimal text to int.
func ParseInt(raw string) (int, error) { return parseSigned[int](raw, strconv.IntSize) }

// ParseInt8 coerces decimal text to int8.
func ParseInt8(raw string) (int8, error) { return parseSigned[int8](raw, 8) }

// ParseInt16 coerces decimal text to int16.
func ParseInt16(raw string) (int16, error) { return parseSigned[int16](raw, 16) }

// ParseInt32 coerces decimal text to int32.
func ParseInt32(raw string) (int32, error) { return parseSigned[int32](raw, 32) }

// ParseInt64 coerces decimal text to int64.
func ParseInt64(raw string) (int64, error) { return parseSigned[int64](raw, 64) }

// ParseUint coerces decimal text to uint.
func ParseUint(raw string) (uint, error) { return parseUnsigned[uint](raw, strconv.IntSize) }

// ParseUint8 coerces decimal text to uint8.
func ParseUint8(raw string) (uint8, error) { return parseUnsigned[uint8](raw, 8) }

// ParseUint16 coerces decimal text to uint16.
func ParseUint16(raw string) (uint16, error) { return parseUnsigned[uint16](raw, 16) }

// ParseUint32 coerces decimal text to uint32.
func ParseUint32(raw string) (uint32, error) { return parseUnsigned[uint32](raw, 32) }

// ParseUint64 coerces decimal text to uint64.
func ParseUint64(raw string) (uint64, error) { return parseUnsigned[uint64](raw, 64) }

// Choice pairs the accepted spellings of one enum value with the value
// itself. The first name is the canonical spelling used in listings.
type Choice[T any] struct {
	Names []string
	Value T
}

// matchChoice resolves input against declared choices with the same
// discipline as long options: an exact match against any spelling wins
// outright; otherwise input must be a prefix of a spelling of exactly one
// choice. Each choice contributes at most its first prefix-matching spelling
// to the candidate list.
func matchChoice[T any](input string, choices []Choice[T]) (T, error) {
	var zero T
	if _, err := ParseString(input); err != nil {
		return zero, err
	}
	var candidates []string
	var matched T
	for _, c := range choices {
		for _, name := range c.Names {
			if name == input {
				return c.Value, nil
			}
			if strings.HasPrefix(name, input) {
				candidates = append(candidates, name)
				matched = c.Value
				break
			}
		}
	}
	switch len(candidates) {
	case 0:
		return zero, errInvalidValue
	case 1:
		return matched, nil
	default:
		return zero, &AmbiguousValueError{Value: input, Candidates: candidates}
	}
}
