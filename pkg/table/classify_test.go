package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/periodic/pkg/element"
)

func symbols(es []element.Element) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Symbol
	}
	return out
}

func TestClassifyNoFilterPartitions(t *testing.T) {
	all := element.Default().All()
	g := Classify(all, NoFilter())

	if g.Len() != len(all) {
		t.Fatalf("Len() = %d, want %d", g.Len(), len(all))
	}

	seen := make(map[int]Kind)
	g.Each(func(k Kind, e element.Element) {
		if prev, dup := seen[e.AtomicNumber]; dup {
			t.Errorf("%s in both %v and %v", e, prev, k)
		}
		seen[e.AtomicNumber] = k
	})
	for _, e := range all {
		if _, ok := seen[e.AtomicNumber]; !ok {
			t.Errorf("%s missing from groups", e)
		}
	}

	if len(g.Lanthanides) != 15 || len(g.Actinides) != 15 {
		t.Errorf("strips = %d/%d, want 15/15", len(g.Lanthanides), len(g.Actinides))
	}
	if len(g.Main) != 56 {
		t.Errorf("main = %d, want 56", len(g.Main))
	}
}

func TestClassifyPreservesOrder(t *testing.T) {
	g := Classify(element.Default().All(), NoFilter())
	for name, group := range map[string][]element.Element{
		"main": g.Main, "lanthanides": g.Lanthanides, "actinides": g.Actinides,
	} {
		for i := 1; i < len(group); i++ {
			if group[i].AtomicNumber <= group[i-1].AtomicNumber {
				t.Errorf("%s: %s after %s", name, group[i], group[i-1])
			}
		}
	}
	if g.Lanthanides[0].Symbol != "La" || g.Lanthanides[14].Symbol != "Lu" {
		t.Errorf("lanthanides = %v", symbols(g.Lanthanides))
	}
	if g.Actinides[0].Symbol != "Ac" || g.Actinides[14].Symbol != "Lr" {
		t.Errorf("actinides = %v", symbols(g.Actinides))
	}
}

func TestClassifyByCategory(t *testing.T) {
	all := element.Default().All()

	for _, c := range element.Categories() {
		t.Run(string(c), func(t *testing.T) {
			g := Classify(all, ByCategory(c))
			g.Each(func(_ Kind, e element.Element) {
				if e.Category != c {
					t.Errorf("%s has category %q, want %q", e, e.Category, c)
				}
			})
			if want := element.Default().Count()[c]; g.Len() != want {
				t.Errorf("Len() = %d, want %d", g.Len(), want)
			}
		})
	}
}

func TestClassifyLanthanideFilter(t *testing.T) {
	g := Classify(element.Default().All(), ByCategory(element.Lanthanide))
	if len(g.Main) != 0 || len(g.Actinides) != 0 {
		t.Errorf("main=%v actinides=%v, want both empty", symbols(g.Main), symbols(g.Actinides))
	}
	if len(g.Lanthanides) != 15 {
		t.Errorf("lanthanides = %d, want 15", len(g.Lanthanides))
	}
}

func TestClassifyNobleGases(t *testing.T) {
	g := Classify(element.Default().All(), ByCategory(element.NobleGas))
	want := []string{"He", "Ne", "Ar", "Kr", "Xe"}
	if diff := cmp.Diff(want, symbols(g.Main)); diff != "" {
		t.Errorf("noble gases mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyExactMatch(t *testing.T) {
	all := element.Default().All()
	for _, c := range []element.Category{"Noble Gas", "noble", "noble-gas", element.Unknown} {
		if g := Classify(all, ByCategory(c)); g.Len() != 0 {
			t.Errorf("ByCategory(%q) matched %d elements, want 0", c, g.Len())
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	all := element.Default().All()
	a := Classify(all, ByCategory(element.TransitionMetal))
	b := Classify(all, ByCategory(element.TransitionMetal))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Classify not deterministic (-first +second):\n%s", diff)
	}
}

func TestClassifyPeriodBound(t *testing.T) {
	// Hand-built records bypass catalog validation.
	in := []element.Element{
		{AtomicNumber: 1, Symbol: "H", Category: element.Nonmetal, Period: 1, Group: 1},
		{AtomicNumber: 119, Symbol: "Uue", Category: element.AlkaliMetal, Period: 8, Group: 1},
	}
	g := Classify(in, NoFilter())
	if diff := cmp.Diff([]string{"H"}, symbols(g.Main)); diff != "" {
		t.Errorf("main mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyEmpty(t *testing.T) {
	g := Classify(nil, NoFilter())
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
}

func TestFilter(t *testing.T) {
	if _, ok := NoFilter().Category(); ok {
		t.Error("NoFilter should not select a category")
	}
	if c, ok := ByCategory(element.Metalloid).Category(); !ok || c != element.Metalloid {
		t.Errorf("ByCategory().Category() = %q, %v", c, ok)
	}
	if NoFilter().String() != "all" || ByCategory(element.Metalloid).String() != "metalloid" {
		t.Error("unexpected Filter.String()")
	}
	if (Filter{}) != NoFilter() {
		t.Error("zero Filter should equal NoFilter()")
	}
}

func TestKindOf(t *testing.T) {
	cat := element.Default()
	tests := map[string]Kind{"H": KindMain, "Fe": KindMain, "La": KindLanthanide, "U": KindActinide}
	for sym, want := range tests {
		e, _ := cat.BySymbol(sym)
		if got := KindOf(e); got != want {
			t.Errorf("KindOf(%s) = %v, want %v", sym, got, want)
		}
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", got)
	}
}
