// internal/periodic/periodic.go
//
// Periodic-table dataset provider.
// Responsibilities:
//   - Describe the 118 elements (number, symbol, name, mass, classification).
//   - Place each element on a fixed 10×18 grid:
//       rows 0–6: periods 1–7 (group g → column g-1),
//       row 7:    empty spacer,
//       rows 8–9: f-block (Ce–Lu, Th–Lr) in columns 3–16.
//   - Answer position and atomic-number lookups.
//
// The dataset is static; Table() builds it once.

package periodic

import (
	"fmt"
	"sync"
)

// Grid extents.
const (
	Rows = 10
	Cols = 18
)

// Classification is the coarse element class used for coloring.
type Classification string

const (
	Metal     Classification = "metal"
	Metalloid Classification = "metalloid"
	Nonmetal  Classification = "nonmetal"
)

// Element is one cell of the table.
type Element struct {
	Number         int            `json:"atomicNumber"`
	Symbol         string         `json:"symbol"`
	Name           string         `json:"name"`
	Mass           float64        `json:"atomicMass"`
	Classification Classification `json:"classification"`
	Row            int            `json:"row"`
	Col            int            `json:"col"`
}

type entry struct {
	number int
	symbol string
	name   string
	mass   float64
	class  Classification
	period int
	group  int
}

// PeriodicTable is the positioned dataset.
type PeriodicTable struct {
	Elements []Element
	grid     [Rows][Cols]int // atomic number, 0 = empty
}

var (
	tableOnce sync.Once
	table     *PeriodicTable
)

// Table returns the shared dataset.
func Table() *PeriodicTable {
	tableOnce.Do(func() { table = build(elements) })
	return table
}

func build(src []entry) *PeriodicTable {
	t := &PeriodicTable{Elements: make([]Element, 0, len(src))}
	for _, e := range src {
		row, col := position(e)
		el := Element{
			Number:         e.number,
			Symbol:         e.symbol,
			Name:           e.name,
			Mass:           e.mass,
			Classification: e.class,
			Row:            row,
			Col:            col,
		}
		t.Elements = append(t.Elements, el)
		t.grid[row][col] = el.Number
	}
	return t
}

// position maps period/group to grid coordinates; f-block elements drop
// into rows 8 and 9.
func position(e entry) (row, col int) {
	if e.group == 0 {
		switch e.period {
		case 6:
			return 8, 3 + (e.number - 58)
		case 7:
			return 9, 3 + (e.number - 90)
		}
	}
	return e.period - 1, e.group - 1
}

// Dims returns (rows, cols).
func (t *PeriodicTable) Dims() (int, int) { return Rows, Cols }

// At returns the element at (row, col), if any.
func (t *PeriodicTable) At(row, col int) (Element, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Element{}, false
	}
	n := t.grid[row][col]
	if n == 0 {
		return Element{}, false
	}
	return t.Elements[n-1], true
}

// Occupied reports whether an element sits at (row, col).
func (t *PeriodicTable) Occupied(row, col int) bool {
	_, ok := t.At(row, col)
	return ok
}

// ByNumber looks up an element by atomic number.
func (t *PeriodicTable) ByNumber(n int) (Element, error) {
	if n < 1 || n > len(t.Elements) {
		return Element{}, fmt.Errorf("periodic: no element with atomic number %d", n)
	}
	return t.Elements[n-1], nil
}
