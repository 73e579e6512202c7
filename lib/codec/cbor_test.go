// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

func TestMarshalDeterministic(t *testing.T) {
	// Maps with identical content must encode identically regardless
	// of construction order — that is the whole point of the
	// deterministic configuration.
	first := map[string]any{"name": "Widget", "price": 19.99, "stock": int64(3)}
	second := map[string]any{"stock": int64(3), "price": 19.99, "name": "Widget"}

	firstBytes, err := Marshal(first)
	if err != nil {
		t.Fatalf("Marshal(first): %v", err)
	}
	secondBytes, err := Marshal(second)
	if err != nil {
		t.Fatalf("Marshal(second): %v", err)
	}
	if !bytes.Equal(firstBytes, secondBytes) {
		t.Errorf("identical maps encoded differently:\n%x\n%x", firstBytes, secondBytes)
	}
}

func TestRoundTrip(t *testing.T) {
	type card struct {
		Title string   `json:"title"`
		Lines []string `json:"lines"`
	}
	original := card{Title: "Widget", Lines: []string{"Price: $19.99", "Stock: 3"}}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal(): %v", err)
	}

	var decoded card
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal(): %v", err)
	}
	if decoded.Title != original.Title || len(decoded.Lines) != 2 {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}

func TestUnmarshalAnyUsesStringKeys(t *testing.T) {
	data, err := Marshal(map[string]any{"key": "value"})
	if err != nil {
		t.Fatal(err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if _, ok := decoded.(map[string]any); !ok {
		t.Errorf("decoded type = %T, want map[string]any", decoded)
	}
}
