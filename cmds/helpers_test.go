package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("foo", "")
	b := Var[string]("bar", "")
	if err := GlobalExecutor.Execute([]string{
		"foo", "42",
		"bar", "bar",
	}); err != nil {
		t.Fatal(err)
	}
	if *a != 42 {
		t.Fatal()
	}
	if *b != "bar" {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch", "")
	if err := GlobalExecutor.Execute([]string{
		"TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if *foo != true {
		t.Fatal()
	}
	if err := GlobalExecutor.Execute([]string{
		"!TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if *foo != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect", "")
	if err := GlobalExecutor.Execute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	}); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestVarReset(t *testing.T) {
	v := Var[float64]("TestVarReset", "")
	if err := GlobalExecutor.Execute([]string{
		"TestVarReset", "2.5",
	}); err != nil {
		t.Fatal(err)
	}
	if *v != 2.5 {
		t.Fatalf("got %v", *v)
	}
	if err := GlobalExecutor.Execute([]string{
		"TestVarReset.",
	}); err != nil {
		t.Fatal(err)
	}
	if *v != 0 {
		t.Fatalf("got %v", *v)
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar", "")
	if err := GlobalExecutor.Execute([]string{
		"TestTypedVar", "bar",
	}); err != nil {
		t.Fatal(err)
	}
	if *v != "bar" {
		t.Fatal()
	}
}
