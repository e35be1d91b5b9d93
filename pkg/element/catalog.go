package element

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/matzehuels/periodic/pkg/errors"
)

// Catalog is an immutable, validated sequence of elements ordered by atomic number.
// A Catalog is safe for concurrent use; nothing mutates it after construction.
type Catalog struct {
	elements []Element
	byNumber map[int]int
	bySymbol map[string]int // lower-case symbol → index
}

// New validates records and builds a catalog from them. Records must be sorted
// by strictly ascending atomic number; gaps are allowed.
//
// Validation fails fast on the first malformed record with an
// [errors.ErrCodeInvalidElement], [errors.ErrCodeInvalidCategory] or
// [errors.ErrCodeDuplicateElement] error. The records are copied.
func New(records []Element) (*Catalog, error) {
	c := &Catalog{
		elements: make([]Element, 0, len(records)),
		byNumber: make(map[int]int, len(records)),
		bySymbol: make(map[string]int, len(records)),
	}

	prev := 0
	for i, rec := range records {
		if err := validate(rec); err != nil {
			err.Message = fmt.Sprintf("record %d: %s", i, err.Message)
			return nil, err
		}
		if _, dup := c.byNumber[rec.AtomicNumber]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateElement, "record %d: duplicate atomic number %d", i, rec.AtomicNumber)
		}
		key := strings.ToLower(rec.Symbol)
		if _, dup := c.bySymbol[key]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateElement, "record %d: duplicate symbol %q", i, rec.Symbol)
		}
		if rec.AtomicNumber <= prev {
			return nil, errors.New(errors.ErrCodeInvalidElement, "record %d: atomic number %d out of order (after %d)", i, rec.AtomicNumber, prev)
		}
		prev = rec.AtomicNumber

		c.byNumber[rec.AtomicNumber] = len(c.elements)
		c.bySymbol[key] = len(c.elements)
		c.elements = append(c.elements, rec.clone())
	}
	return c, nil
}

// MustNew is like [New] but panics if the records are invalid.
// It is intended for static tables known at compile time.
func MustNew(records []Element) *Catalog {
	c, err := New(records)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in reference catalog. It is validated on first use and
// shared by every caller afterwards.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNew(referenceElements)
	})
	return defaultCatalog
}

// All returns every element in ascending atomic-number order.
// The slice and its records are copies.
func (c *Catalog) All() []Element {
	out := make([]Element, len(c.elements))
	for i, e := range c.elements {
		out[i] = e.clone()
	}
	return out
}

// Len returns the number of elements in the catalog.
func (c *Catalog) Len() int { return len(c.elements) }

// ByNumber looks up an element by atomic number.
func (c *Catalog) ByNumber(n int) (Element, bool) {
	i, ok := c.byNumber[n]
	if !ok {
		return Element{}, false
	}
	return c.elements[i].clone(), true
}

// BySymbol looks up an element by symbol, ignoring case.
func (c *Catalog) BySymbol(sym string) (Element, bool) {
	i, ok := c.bySymbol[strings.ToLower(strings.TrimSpace(sym))]
	if !ok {
		return Element{}, false
	}
	return c.elements[i].clone(), true
}

// Lookup resolves a user query that is either an atomic number, a symbol or a
// full element name (case-insensitive). It returns an [errors.ErrCodeNotFound]
// error when nothing matches.
func (c *Catalog) Lookup(q string) (Element, error) {
	if err := errors.ValidateQuery(q); err != nil {
		return Element{}, err
	}
	q = strings.TrimSpace(q)
	if n, err := strconv.Atoi(q); err == nil {
		if e, ok := c.ByNumber(n); ok {
			return e, nil
		}
		return Element{}, errors.New(errors.ErrCodeNotFound, "no element with atomic number %d", n)
	}
	if e, ok := c.BySymbol(q); ok {
		return e, nil
	}
	for _, e := range c.elements {
		if strings.EqualFold(e.Name, q) {
			return e.clone(), nil
		}
	}
	return Element{}, errors.New(errors.ErrCodeNotFound, "no element matches %q", q)
}

// Count returns how many elements belong to each category.
func (c *Catalog) Count() map[Category]int {
	counts := make(map[Category]int, len(categories))
	for _, e := range c.elements {
		counts[e.Category]++
	}
	return counts
}

func validate(e Element) *errors.Error {
	if e.AtomicNumber <= 0 {
		return errors.New(errors.ErrCodeInvalidElement, "atomic number must be positive, got %d", e.AtomicNumber)
	}
	if !validSymbol(e.Symbol) {
		return errors.New(errors.ErrCodeInvalidElement, "element %d: invalid symbol %q", e.AtomicNumber, e.Symbol)
	}
	if strings.TrimSpace(e.Name) == "" {
		return errors.New(errors.ErrCodeInvalidElement, "element %s: name is empty", e.Symbol)
	}
	if e.AtomicMass <= 0 {
		return errors.New(errors.ErrCodeInvalidElement, "element %s: atomic mass must be positive, got %g", e.Symbol, e.AtomicMass)
	}
	if !e.Category.Valid() {
		return errors.New(errors.ErrCodeInvalidCategory, "element %s: unknown category %q", e.Symbol, e.Category)
	}
	if e.Period < 1 || e.Period > 7 {
		return errors.New(errors.ErrCodeInvalidElement, "element %s: period %d outside 1-7", e.Symbol, e.Period)
	}
	if e.Group < 1 || e.Group > 18 {
		return errors.New(errors.ErrCodeInvalidElement, "element %s: group %d outside 1-18", e.Symbol, e.Group)
	}
	if !e.Block.Valid() {
		return errors.New(errors.ErrCodeInvalidElement, "element %s: invalid block %q", e.Symbol, e.Block)
	}
	for i, n := range e.Shells {
		if n < 0 {
			return errors.New(errors.ErrCodeInvalidElement, "element %s: shell %d has negative count %d", e.Symbol, i+1, n)
		}
	}
	return nil
}

// validSymbol accepts one upper-case letter optionally followed by one lower-case letter.
func validSymbol(s string) bool {
	r := []rune(s)
	if len(r) < 1 || len(r) > 2 || !unicode.IsUpper(r[0]) || !unicode.IsLetter(r[0]) {
		return false
	}
	return len(r) == 1 || unicode.IsLower(r[1])
}
