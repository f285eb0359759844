package dimen

import (
	"testing"
)

func TestInfinities(t *testing.T) {
	if !Infty.IsInfinite() || !MinInfty.IsInfinite() {
		t.Errorf("infinities should report IsInfinite")
	}
	if Dimen(42).IsInfinite() {
		t.Errorf("42 is quite finite")
	}
	if !(Infty > 1e300) || !(MinInfty < -1e300) {
		t.Errorf("infinities must compare beyond any finite dimension")
	}
	if Infty.String() != "∞" || MinInfty.String() != "-∞" {
		t.Errorf("unexpected string representation of infinities")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(1, 2) != 1 || Max(1, 2) != 2 {
		t.Errorf("Min/Max broken")
	}
	if Min(1, MinInfty) != MinInfty || Max(1, Infty) != Infty {
		t.Errorf("Min/Max must handle infinities")
	}
	if Abs(-3) != 3 || Abs(3) != 3 {
		t.Errorf("Abs broken")
	}
}
