package table

import (
	"testing"

	"github.com/matzehuels/periodic/pkg/element"
)

func TestValenceElectronsCatalog(t *testing.T) {
	cat := element.Default()
	tests := []struct {
		symbol string
		want   int
	}{
		{"H", 1},
		{"Be", 2},
		{"B", 3},
		{"C", 4},
		{"O", 6},
		{"F", 7},
		{"Ne", 8},
		{"He", 8},
		{"Fe", 2},
		{"Zn", 2},
		{"La", 2}, // placeholder group 3
	}

	for _, tt := range tests {
		e, _ := cat.BySymbol(tt.symbol)
		if got := ValenceElectrons(e); got != tt.want {
			t.Errorf("ValenceElectrons(%s) = %d, want %d", tt.symbol, got, tt.want)
		}
	}
}

func TestValenceElectronsGroups(t *testing.T) {
	tests := []struct {
		group int
		want  int
	}{
		{-1, 0}, {0, 0}, {1, 1}, {2, 2}, {3, 2}, {8, 2}, {12, 2},
		{13, 3}, {15, 5}, {18, 8}, {19, 0}, {100, 0},
	}

	for _, tt := range tests {
		e := element.Element{Group: tt.group}
		if got := ValenceElectrons(e); got != tt.want {
			t.Errorf("ValenceElectrons(group %d) = %d, want %d", tt.group, got, tt.want)
		}
	}
}

func TestValenceElectronsShellsWin(t *testing.T) {
	tests := []struct {
		name   string
		shells []int
		group  int
		want   int
	}{
		{"sodium shells", []int{2, 8, 1}, 1, 1},
		{"shells override group", []int{2, 8, 1}, 16, 1},
		{"iron shells", []int{2, 8, 14, 2}, 8, 2},
		{"zero outer shell", []int{2, 0}, 18, 0},
		{"empty shells fall back", []int{}, 16, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := element.Element{Group: tt.group, Shells: tt.shells}
			if got := ValenceElectrons(e); got != tt.want {
				t.Errorf("ValenceElectrons() = %d, want %d", got, tt.want)
			}
		})
	}
}
