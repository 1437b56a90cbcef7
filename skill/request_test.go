package skill

import (
	"reflect"
	"testing"
)

func TestNewRequestDefaults(t *testing.T) {
	t.Parallel()

	r := NewRequest("X")
	if r.ID == "" {
		t.Fatal("ID not minted")
	}
	if r.Session == nil || r.Session.ID == "" || !r.Session.New {
		t.Fatalf("Session = %+v", r.Session)
	}
	if r2 := NewRequest("X"); r2.ID == r.ID {
		t.Fatal("request IDs not unique")
	}
}

func TestRequestAttributes(t *testing.T) {
	t.Parallel()

	r := NewRequest("X",
		WithLocale("de"),
		WithAttr("location", "Bonn", "Berlin"),
	)

	if r.Locale != "de" {
		t.Fatalf("Locale = %q", r.Locale)
	}
	if got := r.Attr("location"); got != "Bonn" {
		t.Fatalf("Attr = %q, want Bonn", got)
	}
	if got := r.AttrAll("location"); !reflect.DeepEqual(got, []string{"Bonn", "Berlin"}) {
		t.Fatalf("AttrAll = %v", got)
	}
	if got := r.Attr("missing"); got != "" {
		t.Fatalf("Attr(missing) = %q", got)
	}
}

func TestSessionAttributes(t *testing.T) {
	t.Parallel()

	s := NewSession()

	if _, ok := s.GetAttribute("k"); ok {
		t.Fatal("unset attribute found")
	}
	s.SetAttribute("k", "v")
	if v, ok := s.GetAttribute("k"); !ok || v != "v" {
		t.Fatalf("GetAttribute = %q, %v", v, ok)
	}
	s.DeleteAttribute("k")
	if _, ok := s.GetAttribute("k"); ok {
		t.Fatal("attribute survived delete")
	}

	// Zero-value session must not panic on writes.
	var zero Session
	zero.SetAttribute("k", "v")
	if v, _ := zero.GetAttribute("k"); v != "v" {
		t.Fatalf("zero session attribute = %q", v)
	}
}

func TestWithSessionReuse(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.SetAttribute("seen", "yes")

	r := NewRequest("X", WithSession(s))
	if r.Session != s {
		t.Fatal("session not reused")
	}
	if v, _ := r.Session.GetAttribute("seen"); v != "yes" {
		t.Fatalf("attribute lost: %q", v)
	}
}
