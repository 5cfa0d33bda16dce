package format

// Part is a single unit quantity of a decomposed value.
type Part[V Value[V]] struct {
	Quantity V
	Unit     Unit[V]
}

// Split decomposes value into quantities of the given units.
// units must be ordered largest first.
//
// A unit is only used when the remaining value is strictly greater than its
// multiplier, so a remainder that equals a multiplier is carried over to the
// next smaller unit. Whatever is left after the smallest unit is returned as rest.
func Split[V Value[V]](units []Unit[V], value V) (parts []Part[V], rest V) {
	for _, u := range units {
		if !value.More(u.Multiplier) {
			continue
		}
		quantity := value.Divide(u.Multiplier)
		value = value.Minus(quantity.Mul(u.Multiplier))
		parts = append(parts, Part[V]{Quantity: quantity, Unit: u})
	}
	return parts, value
}

// Custom formats value with the provided units, largest first, and appends the
// result to buf. Long unit names get an "s" suffix unless the quantity is one.
func Custom[V Value[V]](buf Appender, units []Unit[V], short bool, value V) {
	parts, _ := Split(units, value)
	for _, p := range parts {
		buf.AppendDivider()
		buf.AppendString(p.Quantity.String())
		buf.AppendString(p.Unit.Name(short))
		if !short && !p.Quantity.IsOne() {
			buf.AppendString("s")
		}
	}
}
