// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/shopfront-foundation/shopfront/lib/catalog"
)

func intPtr(v int64) *int64 { return &v }

func TestValidateItems(t *testing.T) {
	clean := []catalog.Item{
		{ID: 1, Name: "Widget", Price: 19.99, Stock: intPtr(3)},
		{ID: 2, Name: "Gadget", Price: 5, DiscountPercent: 50,
			RenderLink: &catalog.RenderLink{SurfaceID: 7, AnchorID: 8}},
	}
	if problems := validateItems(clean); len(problems) != 0 {
		t.Errorf("clean catalog reported problems: %v", problems)
	}

	damaged := []catalog.Item{
		{ID: 1, Name: "", Price: -1},
		{ID: 2, Name: "x", Price: 1.999},
		{ID: 3, Name: "y", Price: 1, Stock: intPtr(-5), DiscountPercent: 120},
		{ID: 4, Name: "z", Price: 1, RenderLink: &catalog.RenderLink{SurfaceID: 7}},
	}
	problems := validateItems(damaged)
	for _, want := range []string{
		"empty name",
		"negative price",
		"not rounded",
		"negative stock",
		"discount 120",
		"incomplete render link",
	} {
		if !containsProblem(problems, want) {
			t.Errorf("problems missing %q:\n%v", want, problems)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]catalog.Item{
		{ID: 1, Name: "Widget", Price: 19.99, Stock: intPtr(3)},
		{ID: 2, Name: "Gadget", Price: 10, DiscountPercent: 50},
	})
	for _, want := range []string{"#1", "Widget", "$19.99", "#2", "Gadget", "∞"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	if out := renderTable(nil); !strings.Contains(out, "empty") {
		t.Errorf("empty table = %q", out)
	}
}

func containsProblem(problems []string, want string) bool {
	for _, problem := range problems {
		if strings.Contains(problem, want) {
			return true
		}
	}
	return false
}
