package nav

// View identifies which screen receives input.
type View int

const (
	PatternList View = iota
	SampleList
	Detail
)

var viewOrder = [...]View{PatternList, SampleList, Detail}

// Views returns the views in tab order.
func Views() []View {
	out := make([]View, len(viewOrder))
	copy(out, viewOrder[:])
	return out
}

// Next returns the following view, wrapping from Detail to PatternList.
func (v View) Next() View {
	switch v {
	case PatternList:
		return SampleList
	case SampleList:
		return Detail
	default:
		return PatternList
	}
}

// Prev returns the preceding view, wrapping from PatternList to Detail.
func (v View) Prev() View {
	switch v {
	case Detail:
		return SampleList
	case SampleList:
		return PatternList
	default:
		return Detail
	}
}

// String returns the tab title of the view.
func (v View) String() string {
	switch v {
	case PatternList:
		return "Pattern"
	case SampleList:
		return "Sample"
	case Detail:
		return "Detail"
	default:
		return "Unknown"
	}
}
