package format

import "slices"

// Step describes a unit by how many of the next smaller unit it contains.
// The first step of a table is the base unit and should have a multiplier of 1.
type Step[V Value[V]] struct {
	Multiplier V
	Long       string
	Short      string
}

// Unit is a named unit together with the number of base units it is worth.
type Unit[V Value[V]] struct {
	Multiplier V
	Long       string
	Short      string
}

// Name returns the short or the long unit name.
func (u Unit[V]) Name(short bool) string {
	if short {
		return u.Short
	}
	return u.Long
}

// Table is an ordered list of units, smallest unit first.
// A table is never modified after NewTable returned it.
type Table[V Value[V]] struct {
	units []Unit[V]
}

// NewTable accumulates the step multipliers into per unit base multipliers.
func NewTable[V Value[V]](steps ...Step[V]) Table[V] {
	units := make([]Unit[V], 0, len(steps))
	for i, s := range steps {
		total := s.Multiplier
		if i > 0 {
			total = units[i-1].Multiplier.Mul(s.Multiplier)
		}
		units = append(units, Unit[V]{
			Multiplier: total,
			Long:       s.Long,
			Short:      s.Short,
		})
	}
	return Table[V]{units: units}
}

func (t Table[V]) Len() int {
	return len(t.units)
}

// Units returns a copy of the table, smallest unit first.
func (t Table[V]) Units() []Unit[V] {
	return slices.Clone(t.units)
}

// Window returns the units starting at index from up to the largest unit,
// largest unit first. Indices out of range are clamped.
func (t Table[V]) Window(from int) []Unit[V] {
	from = min(max(from, 0), len(t.units))
	window := slices.Clone(t.units[from:])
	slices.Reverse(window)
	return window
}
