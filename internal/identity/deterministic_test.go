package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := UUID("go-docgen:test:alpha")
	second := UUID("go-docgen:test:alpha")
	if first == uuid.Nil {
		t.Fatalf("expected a non-nil UUID")
	}
	if first != second {
		t.Fatalf("same key must produce the same UUID: %s vs %s", first, second)
	}
}

func TestUUIDDistinguishesKeys(t *testing.T) {
	if UUID("go-docgen:test:alpha") == UUID("go-docgen:test:beta") {
		t.Fatalf("different keys must produce different UUIDs")
	}
}

func TestUUIDEmptyKeyIsNil(t *testing.T) {
	if UUID("   ") != uuid.Nil {
		t.Fatalf("blank keys must map to uuid.Nil")
	}
}

func TestRunUUIDIncorporatesFileList(t *testing.T) {
	base := RunUUID("pkg", "*.go", []string{"a.go", "b.go"})
	same := RunUUID("pkg", "*.go", []string{"a.go", "b.go"})
	other := RunUUID("pkg", "*.go", []string{"a.go"})

	if base != same {
		t.Fatalf("identical inputs must produce identical run IDs")
	}
	if base == other {
		t.Fatalf("different file lists must produce different run IDs")
	}
}
