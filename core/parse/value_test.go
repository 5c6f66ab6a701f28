package parse

import (
	"encoding/json"
	"testing"
)

func TestObject_OrderAndDuplicates(t *testing.T) {
	obj := NewObject()
	obj.Set("b", Number("1"))
	obj.Set("a", String("x"))
	obj.Set("b", Number("2"))

	if obj.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", obj.Len())
	}
	keys := obj.Keys()
	if keys[0] != "b" || keys[1] != "a" {
		t.Errorf("Keys() = %v", keys)
	}
	if v, _ := obj.Get("b"); v != Number("2") {
		t.Errorf("last value should win, got %v", v)
	}

	got, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `{"b":2,"a":"x"}` {
		t.Errorf("Marshal() = %s", got)
	}
}

func TestValue_Marshal(t *testing.T) {
	inner := NewObject()
	inner.Set("z", Null{})
	v := List{Bool(true), String("s"), Number("-0.5"), inner, List{}, nil}

	got, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `[true,"s",-0.5,{"z":null},[],null]` {
		t.Errorf("Marshal() = %s", got)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		value Value
		want  Kind
	}{
		{nil, KindNull},
		{Null{}, KindNull},
		{Bool(false), KindBool},
		{Number("3"), KindNumber},
		{String(""), KindString},
		{List(nil), KindList},
		{NewObject(), KindObject},
	}
	for _, tt := range tests {
		if got := KindOf(tt.value); got != tt.want {
			t.Errorf("KindOf(%#v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}
