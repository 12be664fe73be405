package core

import "testing"

func TestKeySet(t *testing.T) {
	s := Keys(KeyUp, KeyLeft)

	if !s.Has(KeyUp) || !s.Has(KeyLeft) {
		t.Errorf("Keys(Up, Left) = %v, missing a key", s)
	}
	if s.Has(KeyDown) || s.Has(KeyRight) {
		t.Errorf("Keys(Up, Left) = %v, has extra keys", s)
	}

	s = s.With(KeyRight)
	if !s.Has(KeyRight) {
		t.Error("With(Right) should add Right")
	}
	if s.String() != "Up+Left+Right" {
		t.Errorf("String() = %q, expected %q", s.String(), "Up+Left+Right")
	}
	if KeySet(0).String() != "None" {
		t.Errorf("empty String() = %q, expected None", KeySet(0).String())
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPause)
	f.Keys = Keys(KeyDown)
	if !f.Has(ActionPause) {
		t.Error("Set(Pause) not recorded")
	}

	f.Clear()
	if f.Has(ActionPause) || f.Keys != 0 {
		t.Error("Clear() should reset actions and keys")
	}
}
