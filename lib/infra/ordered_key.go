package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

// Float permits any floating-point type.
// NaN is not totally ordered, so a tree keyed by floats must never
// receive one.
type Float interface {
	~float32 | ~float64
}

// OrderedKey is the set of builtin types with a total order by < and ==.
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// Comparator is a three-way comparison.
// Assume i is the new key.
//  1. i == j, return 0.
//  2. i > j, return a positive number, turn to right part.
//  3. i < j, return a negative number, turn to left part.
type Comparator[T any] func(i, j T) int64

type OrderedKeyComparator[K OrderedKey] Comparator[K]

func DefaultOrderedKeyComparator[K OrderedKey]() OrderedKeyComparator[K] {
	return func(i, j K) int64 {
		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	}
}

// ReverseComparator flips the order of cmp. Nil in, nil out.
func ReverseComparator[T any](cmp Comparator[T]) Comparator[T] {
	if cmp == nil {
		return nil
	}
	return func(i, j T) int64 {
		return cmp(j, i)
	}
}
