package titleid

import (
	"errors"
	"fmt"
	"strings"
)

/*
Content identifiers are fixed width hex strings.
	Base titles end with "000"
	Updates end with "800", and share the rest of the ID with their base title
	DLC's end with "YXXX", where Y is one position above the base title's digit

So the base title is found by checking the suffix, and for DLC stepping the
fourth from last character back by one before zeroing the tail.
This mirrors the 0xFFFFFFFFFFFFE000 mask used on the numeric title ID's,
but works on the string form as the data files use it.
*/

var ErrInvalidIdentifier = errors.New("invalid content identifier")

type Kind int

const (
	KindBase Kind = iota
	KindUpdate
	KindDLC
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "Base"
	case KindUpdate:
		return "Update"
	case KindDLC:
		return "DLC"
	}
	return "Unknown"
}

const minLength = 4

// KindOf classifies the identifier from its suffix
func KindOf(id string) (Kind, error) {
	if len(id) < minLength {
		return KindBase, fmt.Errorf("%w: %q is too short", ErrInvalidIdentifier, id)
	}
	if strings.HasSuffix(id, "000") {
		return KindBase, nil
	}
	if strings.HasSuffix(id, "800") {
		return KindUpdate, nil
	}
	return KindDLC, nil
}

// BaseTitleID returns the ID of the base title that owns the content
func BaseTitleID(id string) (string, error) {
	kind, err := KindOf(id)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindBase:
		return id, nil
	case KindUpdate:
		return id[:len(id)-3] + "000", nil
	}
	pos := len(id) - 4
	return id[:pos] + string(previousChar(id[pos])) + "000", nil
}

// previousChar steps back one position within the digit or letter class.
// '0', 'a' and 'A' have nothing before them and are returned as is, as is anything else.
func previousChar(c byte) byte {
	switch {
	case c >= '1' && c <= '9':
		return c - 1
	case c >= 'b' && c <= 'z':
		return c - 1
	case c >= 'B' && c <= 'Z':
		return c - 1
	}
	return c
}
