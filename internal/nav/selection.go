package nav

// Next returns the index after index in a list of length rows, wrapping from
// the last row to the first. length must be positive.
func Next(index, length int) int {
	if length <= 0 {
		return 0
	}
	if index >= length-1 {
		return 0
	}
	return index + 1
}

// Previous returns the index before index, wrapping from the first row to
// the last. length must be positive.
func Previous(index, length int) int {
	if length <= 0 {
		return 0
	}
	if index <= 0 {
		return length - 1
	}
	return index - 1
}

// Selection is an optional row index within a list view.
type Selection struct {
	index int
	set   bool
}

// Index returns the selected row and whether a row is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.set
}

// Valid reports whether a row is selected and lies within length rows.
func (s Selection) Valid(length int) bool {
	return s.set && s.index >= 0 && s.index < length
}

// Select marks row i as selected.
func (s *Selection) Select(i int) {
	s.index = i
	s.set = true
}

// Clear removes the selection.
func (s *Selection) Clear() {
	s.index = 0
	s.set = false
}

// reset selects the first row of a list with length rows, or clears the
// selection when the list is empty.
func (s *Selection) reset(length int) {
	if length > 0 {
		s.Select(0)
		return
	}
	s.Clear()
}

// clamp keeps an in-range selection and otherwise resets it.
func (s *Selection) clamp(length int) {
	if s.Valid(length) {
		return
	}
	s.reset(length)
}
