package legacy

import "testing"

func mustTranslate(t *testing.T, ambient string, raw ...string) string {
	t.Helper()
	tr, err := NewDispatcher().Translate(raw, ambient)
	if err != nil {
		t.Fatalf("Translate(%q) failed: %v", raw, err)
	}
	return tr.Command.String()
}

func expectKind(t *testing.T, err error, kind ErrorKind) *ParseError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.Kind != kind {
		t.Fatalf("expected %s error, got %s: %v", kind, pe.Kind, err)
	}
	return pe
}

func flag(alias string) string {
	return "--" + alias
}
