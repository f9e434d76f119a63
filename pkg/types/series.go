package types

// Series is the read interface shared by indicator histories: Last(0) is the
// most recent value, Last(1) the one before it, and so on. Out-of-range
// lookups return 0 so that warm-up periods read as the neutral value.
type Series interface {
	Last(i int) float64
	Length() int
}
