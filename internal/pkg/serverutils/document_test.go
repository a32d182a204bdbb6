package serverutils

import (
	"testing"

	"github.com/google/uuid"
)

func TestStringifyIDsTopLevel(t *testing.T) {
	id := uuid.New()
	doc := map[string]interface{}{
		"_id":    id,
		"Header": "Lecture 1",
	}

	out := StringifyIDs(doc)

	if got, ok := out["_id"].(string); !ok || got != id.String() {
		t.Fatalf("expected _id %q, got %v", id.String(), out["_id"])
	}
	if out["Header"] != "Lecture 1" {
		t.Fatalf("unexpected Header: %v", out["Header"])
	}
}

func TestStringifyIDsNestedList(t *testing.T) {
	inner := uuid.New()
	doc := map[string]interface{}{
		"_id": uuid.New(),
		"notes": []interface{}{
			map[string]interface{}{"_id": inner, "Sum": "s"},
			"plain string",
		},
	}

	out := StringifyIDs(doc)

	list, ok := out["notes"].([]interface{})
	if !ok || len(list) != 2 {
		t.Fatalf("expected notes list of 2, got %v", out["notes"])
	}
	nested := list[0].(map[string]interface{})
	if nested["_id"] != inner.String() {
		t.Fatalf("expected nested _id %q, got %v", inner.String(), nested["_id"])
	}
	if list[1] != "plain string" {
		t.Fatalf("plain entry changed: %v", list[1])
	}
}
