package option

import (
	"errors"
	"testing"
)

func TestOptionalSomeNone(t *testing.T) {
	s := Some(42)
	if !s.IsSome() || s.IsNone() {
		t.Error("Some should report present")
	}
	if s.Value() != 42 {
		t.Errorf("Value = %d, want 42", s.Value())
	}

	n := None[int]()
	if n.IsSome() || !n.IsNone() {
		t.Error("None should report absent")
	}

	var zero Optional[string]
	if !zero.IsNone() {
		t.Error("zero value should be None")
	}
}

func TestOptionalValuePanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Value on None should panic")
		}
	}()
	None[int]().Value()
}

func TestOptionalGetOrElse(t *testing.T) {
	if v, ok := Some("x").Get(); !ok || v != "x" {
		t.Errorf("Get = (%q, %v)", v, ok)
	}
	if _, ok := None[string]().Get(); ok {
		t.Error("Get on None should report false")
	}
	if got := None[int]().OrElse(7); got != 7 {
		t.Errorf("OrElse = %d, want 7", got)
	}
	if got := Some(1).OrElse(7); got != 1 {
		t.Errorf("OrElse = %d, want 1", got)
	}
}

func TestOptionalTake(t *testing.T) {
	o := Some(5)
	if got := o.Take(); got != 5 {
		t.Errorf("Take = %d, want 5", got)
	}
	if !o.IsNone() {
		t.Error("Optional should be empty after Take")
	}

	defer func() {
		if recover() == nil {
			t.Error("Take on empty should panic")
		}
	}()
	o.Take()
}

func TestOptionalUnsafeValue(t *testing.T) {
	if got := None[int]().UnsafeValue(); got != 0 {
		t.Errorf("UnsafeValue on None = %d, want zero value", got)
	}
	if got := Some(9).UnsafeValue(); got != 9 {
		t.Errorf("UnsafeValue = %d, want 9", got)
	}
}

func TestOptionalString(t *testing.T) {
	if got := Some("a").String(); got != "Some('a')" {
		t.Errorf("String = %q", got)
	}
	if got := Some(3).String(); got != "Some(3)" {
		t.Errorf("String = %q", got)
	}
	if got := None[int]().String(); got != "None" {
		t.Errorf("String = %q", got)
	}
}

func TestResultOkErr(t *testing.T) {
	ok := Ok(3)
	if !ok.IsOk() || ok.IsErr() {
		t.Error("Ok should report success")
	}
	if ok.Value() != 3 {
		t.Errorf("Value = %d", ok.Value())
	}
	if ok.Err() != nil {
		t.Error("Err should be nil on success")
	}

	cause := errors.New("boom")
	bad := Err[int](cause)
	if bad.IsOk() || !bad.IsErr() {
		t.Error("Err should report failure")
	}
	if !errors.Is(bad.Err(), cause) {
		t.Error("Err should carry the cause")
	}
	if got := bad.OrElse(11); got != 11 {
		t.Errorf("OrElse = %d, want 11", got)
	}
}

func TestResultValuePanicsOnErr(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Value on failed Result should panic")
		}
	}()
	Err[int](errors.New("nope")).Value()
}

func TestResultErrNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Err(nil) should panic")
		}
	}()
	Err[int](nil)
}

func TestResultErrFrom(t *testing.T) {
	cause := errors.New("original")
	from := Err[string](cause)
	to := ErrFrom[int](from)
	if !to.IsErr() || !errors.Is(to.Err(), cause) {
		t.Error("ErrFrom should transfer the error")
	}

	defer func() {
		if recover() == nil {
			t.Error("ErrFrom on successful Result should panic")
		}
	}()
	ErrFrom[int](Ok("fine"))
}

func TestResultUnwrap(t *testing.T) {
	v, err := Ok(2).Unwrap()
	if v != 2 || err != nil {
		t.Errorf("Unwrap = (%d, %v)", v, err)
	}
	_, err = Err[int](errors.New("x")).Unwrap()
	if err == nil {
		t.Error("Unwrap on failed Result should return error")
	}
}
