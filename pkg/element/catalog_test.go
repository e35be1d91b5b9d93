package element

import (
	"strings"
	"testing"

	"github.com/matzehuels/periodic/pkg/errors"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	all := Default().All()
	if len(all) != 86 {
		t.Fatalf("Default().All() has %d elements, want 86", len(all))
	}

	numbers := make(map[int]bool)
	symbols := make(map[string]bool)
	prev := 0
	for _, e := range all {
		if numbers[e.AtomicNumber] {
			t.Errorf("duplicate atomic number %d", e.AtomicNumber)
		}
		if symbols[e.Symbol] {
			t.Errorf("duplicate symbol %s", e.Symbol)
		}
		numbers[e.AtomicNumber] = true
		symbols[e.Symbol] = true

		if e.AtomicNumber <= prev {
			t.Errorf("%s out of order after %d", e, prev)
		}
		prev = e.AtomicNumber

		if !e.Category.Valid() {
			t.Errorf("%s has invalid category %q", e, e.Category)
		}
	}
}

func TestDefaultCatalogCoverage(t *testing.T) {
	cat := Default()
	for _, n := range []int{1, 56, 57, 71, 89, 103} {
		if _, ok := cat.ByNumber(n); !ok {
			t.Errorf("ByNumber(%d) missing", n)
		}
	}
	// The reference table skips Hf..Ra.
	for _, n := range []int{72, 80, 86, 88, 104} {
		if _, ok := cat.ByNumber(n); ok {
			t.Errorf("ByNumber(%d) present, want absent", n)
		}
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same catalog")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	cat := MustNew([]Element{
		{AtomicNumber: 11, Symbol: "Na", Name: "Sodium", AtomicMass: 22.99, Category: AlkaliMetal, Period: 3, Group: 1, Block: BlockS, Shells: []int{2, 8, 1}},
	})

	all := cat.All()
	all[0].Name = "Mutated"
	all[0].Shells[2] = 7

	again := cat.All()
	if again[0].Name != "Sodium" {
		t.Errorf("catalog name mutated to %q", again[0].Name)
	}
	if again[0].Shells[2] != 1 {
		t.Errorf("catalog shells mutated to %v", again[0].Shells)
	}
}

func TestNewCopiesInput(t *testing.T) {
	records := []Element{
		{AtomicNumber: 1, Symbol: "H", Name: "Hydrogen", AtomicMass: 1.008, Category: Nonmetal, Period: 1, Group: 1, Block: BlockS, Shells: []int{1}},
	}
	cat := MustNew(records)
	records[0].Symbol = "X"
	records[0].Shells[0] = 9

	e, ok := cat.ByNumber(1)
	if !ok || e.Symbol != "H" || e.Shells[0] != 1 {
		t.Errorf("catalog aliased its input: %+v", e)
	}
}

func TestNewValidation(t *testing.T) {
	valid := func() Element {
		return Element{AtomicNumber: 8, Symbol: "O", Name: "Oxygen", AtomicMass: 15.999, Category: Nonmetal, Period: 2, Group: 16, Block: BlockP}
	}

	tests := []struct {
		name   string
		mutate func(*Element)
		code   errors.Code
	}{
		{"zero atomic number", func(e *Element) { e.AtomicNumber = 0 }, errors.ErrCodeInvalidElement},
		{"empty symbol", func(e *Element) { e.Symbol = "" }, errors.ErrCodeInvalidElement},
		{"long symbol", func(e *Element) { e.Symbol = "Oxy" }, errors.ErrCodeInvalidElement},
		{"lower-case symbol", func(e *Element) { e.Symbol = "o" }, errors.ErrCodeInvalidElement},
		{"upper-case second letter", func(e *Element) { e.Symbol = "OX" }, errors.ErrCodeInvalidElement},
		{"empty name", func(e *Element) { e.Name = " " }, errors.ErrCodeInvalidElement},
		{"zero mass", func(e *Element) { e.AtomicMass = 0 }, errors.ErrCodeInvalidElement},
		{"unknown category", func(e *Element) { e.Category = "halogen" }, errors.ErrCodeInvalidCategory},
		{"period 0", func(e *Element) { e.Period = 0 }, errors.ErrCodeInvalidElement},
		{"period 8", func(e *Element) { e.Period = 8 }, errors.ErrCodeInvalidElement},
		{"group 0", func(e *Element) { e.Group = 0 }, errors.ErrCodeInvalidElement},
		{"group 19", func(e *Element) { e.Group = 19 }, errors.ErrCodeInvalidElement},
		{"bad block", func(e *Element) { e.Block = "g" }, errors.ErrCodeInvalidElement},
		{"negative shell", func(e *Element) { e.Shells = []int{2, -1} }, errors.ErrCodeInvalidElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid()
			tt.mutate(&e)
			_, err := New([]Element{e})
			if err == nil {
				t.Fatal("New() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("New() code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
			if !strings.Contains(err.Error(), "record 0") {
				t.Errorf("New() error %q should name the record", err)
			}
		})
	}

	if _, err := New([]Element{valid()}); err != nil {
		t.Errorf("New(valid) error = %v", err)
	}
}

func TestNewRejectsDuplicatesAndDisorder(t *testing.T) {
	h := Element{AtomicNumber: 1, Symbol: "H", Name: "Hydrogen", AtomicMass: 1.008, Category: Nonmetal, Period: 1, Group: 1, Block: BlockS}
	he := Element{AtomicNumber: 2, Symbol: "He", Name: "Helium", AtomicMass: 4.0026, Category: NobleGas, Period: 1, Group: 18, Block: BlockS}

	tests := []struct {
		name    string
		records []Element
		code    errors.Code
	}{
		{"duplicate number", []Element{h, h}, errors.ErrCodeDuplicateElement},
		{"duplicate symbol", []Element{h, func() Element { x := he; x.Symbol = "H"; return x }()}, errors.ErrCodeDuplicateElement},
		{"descending", []Element{he, h}, errors.ErrCodeInvalidElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			if !errors.Is(err, tt.code) {
				t.Errorf("New() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew should panic on invalid records")
		}
	}()
	MustNew([]Element{{AtomicNumber: -1}})
}

func TestLookup(t *testing.T) {
	cat := Default()

	tests := []struct {
		query   string
		want    string
		wantErr errors.Code
	}{
		{"Fe", "Fe", ""},
		{"fe", "Fe", ""},
		{" 26 ", "Fe", ""},
		{"iron", "Fe", ""},
		{"Lawrencium", "Lr", ""},
		{"80", "", errors.ErrCodeNotFound},
		{"Hg", "", errors.ErrCodeNotFound},
		{"unobtainium", "", errors.ErrCodeNotFound},
		{"", "", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			e, err := cat.Lookup(tt.query)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Lookup(%q) error = %v, want code %v", tt.query, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.query, err)
			}
			if e.Symbol != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.query, e.Symbol, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	counts := Default().Count()
	if counts[Lanthanide] != 15 {
		t.Errorf("lanthanides = %d, want 15", counts[Lanthanide])
	}
	if counts[Actinide] != 15 {
		t.Errorf("actinides = %d, want 15", counts[Actinide])
	}
	if counts[Unknown] != 0 {
		t.Errorf("unknown = %d, want 0", counts[Unknown])
	}
}
