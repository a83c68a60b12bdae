package table

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

const (
	// Separator maps to itself and marks word boundaries.
	Separator = ' '
	Unknown   = "?"
)

type Entry struct {
	Char    rune
	Pattern string
}

type SymbolTable struct {
	forward *redblacktree.Tree
	inverse map[string]rune
}

func NewSymbolTable(entries []Entry) (*SymbolTable, error) {
	t := &SymbolTable{
		forward: redblacktree.NewWith(func(a, b interface{}) int {
			l, _ := a.(rune)
			r, _ := b.(rune)
			return int(l) - int(r)
		}),
		inverse: make(map[string]rune, len(entries)),
	}
	for _, e := range entries {
		err := validPattern(e)
		if err != nil {
			return nil, err
		}
		if _, found := t.forward.Get(e.Char); found {
			return nil, fmt.Errorf("SymbolTable: %q is already defined", e.Char)
		}
		if c, ok := t.inverse[e.Pattern]; ok {
			return nil, fmt.Errorf("SymbolTable: %q is already assigned to %q", e.Pattern, c)
		}
		t.forward.Put(e.Char, e.Pattern)
		t.inverse[e.Pattern] = e.Char
	}
	return t, nil
}

func validPattern(e Entry) error {
	if e.Char == Separator {
		if e.Pattern != string(Separator) {
			return fmt.Errorf("SymbolTable: the separator must map to %q, got %q", string(Separator), e.Pattern)
		}
		return nil
	}
	if e.Pattern == "" {
		return fmt.Errorf("SymbolTable: empty pattern for %q", e.Char)
	}
	for _, c := range e.Pattern {
		if c != '.' && c != '-' {
			return fmt.Errorf("SymbolTable: invalid pattern %q for %q", e.Pattern, e.Char)
		}
	}
	return nil
}

func (t *SymbolTable) Pattern(c rune) (string, bool) {
	v, found := t.forward.Get(c)
	if !found {
		return "", false
	}
	p, _ := v.(string)
	return p, true
}

func (t *SymbolTable) Char(pattern string) (rune, bool) {
	c, ok := t.inverse[pattern]
	return c, ok
}

func (t *SymbolTable) Size() int {
	return t.forward.Size()
}

// Each calls f for every entry in character order, separator included.
func (t *SymbolTable) Each(f func(c rune, pattern string)) {
	it := t.forward.Iterator()
	for it.Next() {
		c, _ := it.Key().(rune)
		p, _ := it.Value().(string)
		f(c, p)
	}
}
