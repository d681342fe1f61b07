package rules

import "github.com/c360studio/conlaw/vocabulary/office"

// SuccessionLine is the order in which the presidency devolves,
// expressed as data. The constitutional line stops at the Vice
// President; the statutory offices that follow come from the caller.
type SuccessionLine []office.Type

// DefaultSuccessionLine returns the line as the text and the
// succession statute order it: president, vice president, then the
// statutory offices identified by name.
func DefaultSuccessionLine() SuccessionLine {
	return SuccessionLine{
		office.TypePresident,
		office.TypeVicePresident,
		office.Type("speaker_of_the_house"),
		office.Type("president_pro_tempore"),
		office.Type("secretary_of_state"),
	}
}

// Next returns the office that succeeds the given one, or "" when the
// line is exhausted or the office is not in it.
func (l SuccessionLine) Next(current office.Type) office.Type {
	for i, o := range l {
		if o == current && i+1 < len(l) {
			return l[i+1]
		}
	}
	return ""
}

// Position returns the zero-based position of an office in the line,
// or -1 when absent.
func (l SuccessionLine) Position(o office.Type) int {
	for i, entry := range l {
		if entry == o {
			return i
		}
	}
	return -1
}
