package sort

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrNaN is returned when a float sequence holds a NaN, which has no place in a
// non-decreasing order.
var ErrNaN = errors.New("NaN is not comparable")

// Number is any type ordered by the builtin < operator.
type Number interface {
	constraints.Integer | constraints.Float
}

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

type IntArray []int

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

type Float64Array []float64

func (p Float64Array) Len() int { return len(p) }

func (p Float64Array) Less(i, j int) bool { return p[i] < p[j] }

func (p Float64Array) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Array attaches the Sorter methods to a slice of any Number type.
type Array[T Number] []T

func (p Array[T]) Len() int { return len(p) }

func (p Array[T]) Less(i, j int) bool { return p[i] < p[j] }

func (p Array[T]) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Stats counts the work done by a single Sort call.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Sort orders data in place by repeatedly swapping adjacent elements that are
// out of order. Each pass leaves its largest element at the end of the unsorted
// prefix, and a pass without swaps ends the sort early.
func Sort(data Sorter) Stats {
	var st Stats
	n := data.Len()
	for pass := 1; pass < n; pass++ {
		st.Passes++
		swapped := false
		for i := 0; i < n-pass; i++ {
			st.Comparisons++
			// equal neighbours stay put
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
				st.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return st
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data Sorter) bool {
	return FirstUnsorted(data) < 0
}

// FirstUnsorted returns the smallest index i with data[i+1] < data[i], or -1.
func FirstUnsorted(data Sorter) int {
	for i := 0; i < data.Len()-1; i++ {
		if data.Less(i+1, i) {
			return i
		}
	}
	return -1
}

// Ints sorts s in place and returns it.
func Ints(s []int) []int {
	Sort(IntArray(s))
	return s
}

// Numbers sorts s in place and returns it. The position of any NaN in the
// result is unspecified; use Float64s or CheckNaN to reject them.
func Numbers[T Number](s []T) []T {
	Sort(Array[T](s))
	return s
}

// Float64s sorts s in place and returns it. A slice holding a NaN is left
// untouched and ErrNaN is returned.
func Float64s(s []float64) ([]float64, error) {
	if err := CheckNaN(s); err != nil {
		return s, err
	}
	Sort(Float64Array(s))
	return s, nil
}

// CheckNaN returns ErrNaN, annotated with the index, for the first NaN in s.
func CheckNaN[T Number](s []T) error {
	for i, v := range s {
		if v != v { // NaN
			return errors.Wrapf(ErrNaN, "value at index %d", i)
		}
	}
	return nil
}
