/*
Package dimen implements the dimension scalar used throughout this module.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Avery Laird

*/
package dimen

import (
	"fmt"
	"math"
)

// Dimen is a width in abstract design units. Values are IEEE-754 doubles;
// the infinities are first-class members of the model: an infinite glue
// stretch absorbs any amount of missing width, a penalty of Infty forbids
// a break and a penalty of MinInfty forces one.
type Dimen float64

// Zero is the null dimension.
const Zero Dimen = 0

// Infty is the positive infinite dimension.
var Infty = Dimen(math.Inf(1))

// MinInfty is the negative infinite dimension.
var MinInfty = Dimen(math.Inf(-1))

// IsInfinite returns true for +Infty and MinInfty.
func (d Dimen) IsInfinite() bool {
	return math.IsInf(float64(d), 0)
}

// Stringer implementation.
func (d Dimen) String() string {
	if d >= Infty {
		return "∞"
	} else if d <= MinInfty {
		return "-∞"
	}
	return fmt.Sprintf("%.2fu", float64(d))
}

// Min returns the lesser of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of a dimension.
func Abs(d Dimen) Dimen {
	if d < 0 {
		return -d
	}
	return d
}
