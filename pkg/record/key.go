package record

import (
	"cmp"
	"fmt"
	"strings"
)

// Key selects the [Record] field used for ordering.
type Key int

const (
	KeyTitle Key = iota
	KeyGenre
	KeyCreator
	KeyYear
)

var (
	// AllKeys lists every key in display order.
	AllKeys = []Key{KeyTitle, KeyGenre, KeyCreator, KeyYear}

	// KeyNames lists the names accepted by [ParseKey].
	KeyNames = []string{"title", "genre", "creator", "year"}

	comparators = [...]func(a, b Record) int{
		KeyTitle:   func(a, b Record) int { return compareFold(a.Title, b.Title) },
		KeyGenre:   func(a, b Record) int { return compareFold(a.Genre, b.Genre) },
		KeyCreator: func(a, b Record) int { return compareFold(a.Creator, b.Creator) },
		KeyYear:    func(a, b Record) int { return cmp.Compare(a.Year, b.Year) },
	}
)

// ParseKey returns the [Key] with the given field name. Matching ignores case
// and surrounding whitespace.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range KeyNames {
		if n == name {
			return AllKeys[i], nil
		}
	}

	return KeyTitle, fmt.Errorf("%w %q, must be one of: %s", ErrUnknownKey, s, strings.Join(KeyNames, ", "))
}

func (k Key) String() string {
	if !k.valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}

	return KeyNames[k]
}

// Next returns the key following k, wrapping around after the last key.
func (k Key) Next() Key {
	if !k.valid() {
		return KeyTitle
	}

	return AllKeys[(int(k)+1)%len(AllKeys)]
}

// Compare compares a and b by the field selected by k. It returns a negative
// number when a sorts before b, zero when they rank equally and a positive
// number otherwise.
//
// Text fields are folded to lower case before a codepoint comparison. No
// whitespace, accent or locale normalization is applied.
func (k Key) Compare(a, b Record) int {
	if !k.valid() {
		return 0
	}

	return comparators[k](a, b)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Key) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKey, int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

func (k Key) valid() bool {
	return k >= KeyTitle && k <= KeyYear
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
