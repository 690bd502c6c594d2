package interpreter

import "testing"

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("seen"); ok {
		t.Fatalf("fresh environment should be empty")
	}
	env.Set("seen", true)
	env.Set("done", false)
	env.Set("seen", false)

	if v, ok := env.Get("seen"); !ok || v {
		t.Fatalf("seen = %v, %v", v, ok)
	}
	if env.Len() != 2 {
		t.Fatalf("len = %d", env.Len())
	}
	if names := env.Names(); len(names) != 2 || names[0] != "done" || names[1] != "seen" {
		t.Fatalf("names = %v", names)
	}
}
