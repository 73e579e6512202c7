// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopfront-foundation/shopfront/lib/showcase"
)

func TestAddCreatesPublishesAndLinks(t *testing.T) {
	f := newFixture(t)

	result := f.router.Dispatch(t.Context(), staffInvocation("add", Params{
		"name":            "Widget",
		"price":           19.995,
		"stock":           3.0,
		"payment_methods": "card, crypto",
	}))
	if !result.Success {
		t.Fatalf("add = %+v", result)
	}
	if !strings.Contains(result.Message, "#1") || !strings.Contains(result.Message, "Widget") {
		t.Errorf("Message = %q", result.Message)
	}

	item, err := f.store.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	// 19.995 sits above the binary midpoint and rounds up.
	if item.Price != 20.00 {
		t.Errorf("Price = %v, want 20.00", item.Price)
	}
	if item.Stock == nil || *item.Stock != 3 {
		t.Errorf("Stock = %v, want 3", item.Stock)
	}
	if len(item.PaymentMethods) != 2 || item.PaymentMethods[0] != "card" {
		t.Errorf("PaymentMethods = %v", item.PaymentMethods)
	}
	if f.surface.sends != 1 {
		t.Errorf("%d cards sent, want 1", f.surface.sends)
	}
	if item.RenderLink == nil || item.RenderLink.SurfaceID != 555 {
		t.Errorf("RenderLink = %+v", item.RenderLink)
	}
}

func TestAddResolvesAttachedImage(t *testing.T) {
	f := newFixture(t)

	inv := staffInvocation("add", Params{"name": "Widget", "price": 5.0})
	inv.Attachment = &showcase.Asset{Filename: "widget.png", Data: []byte("png")}

	if result := f.router.Dispatch(t.Context(), inv); !result.Success {
		t.Fatalf("add = %+v", result)
	}

	item, err := f.store.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if item.ImageRef != "https://durable.example/widget.png" {
		t.Errorf("ImageRef = %q, want relocated URL", item.ImageRef)
	}
}

func TestAddWithoutImageUsesPlaceholder(t *testing.T) {
	f := newFixture(t)

	if result := f.router.Dispatch(t.Context(), staffInvocation("add", Params{"name": "Widget", "price": 5.0})); !result.Success {
		t.Fatalf("add failed: %+v", result)
	}
	item, err := f.store.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if item.ImageRef != "https://cdn.example/placeholder.png" {
		t.Errorf("ImageRef = %q, want placeholder", item.ImageRef)
	}
}

func TestAddParameterValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{name: "missing name", params: Params{"price": 1.0}, want: "name is required"},
		{name: "missing price", params: Params{"name": "x"}, want: "price is required"},
		{name: "negative price", params: Params{"name": "x", "price": -1.0}, want: "Invalid product"},
		{name: "negative stock", params: Params{"name": "x", "price": 1.0, "stock": -2.0}, want: "Invalid product"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.router.Dispatch(t.Context(), staffInvocation("add", tt.params))
			if result.Success {
				t.Fatalf("add succeeded with %v", tt.params)
			}
			if !strings.Contains(result.Message, tt.want) {
				t.Errorf("Message = %q, want it to mention %q", result.Message, tt.want)
			}
		})
	}

	if f.store.Len() != 0 {
		t.Errorf("store has %d items after rejected adds", f.store.Len())
	}
}

func TestAddSurvivesPublishFailure(t *testing.T) {
	f := newFixture(t)
	f.surface.sendErr = errors.New("channel deleted")

	result := f.router.Dispatch(t.Context(), staffInvocation("add", Params{"name": "Widget", "price": 5.0}))
	if !result.Success {
		t.Fatalf("add = %+v, want success despite render failure", result)
	}

	item, err := f.store.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if item.RenderLink != nil {
		t.Errorf("RenderLink = %+v, want none after failed publish", item.RenderLink)
	}
}

func TestEditProductUpdatesAndReconciles(t *testing.T) {
	f := newFixture(t)
	if result := f.router.Dispatch(t.Context(), staffInvocation("add", Params{"name": "Widget", "price": 5.0})); !result.Success {
		t.Fatalf("add failed: %+v", result)
	}

	result := f.router.Dispatch(t.Context(), staffInvocation("editproduct", Params{"id": 1.0, "price": 9.999}))
	if !result.Success {
		t.Fatalf("editproduct = %+v", result)
	}

	item, err := f.store.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if item.Price != 10.00 {
		t.Errorf("Price = %v, want 10.00", item.Price)
	}
	if f.surface.updates != 1 {
		t.Errorf("%d card updates, want 1", f.surface.updates)
	}
}

func TestEditProductRequiresAField(t *testing.T) {
	f := newFixture(t)
	if result := f.router.Dispatch(t.Context(), staffInvocation("add", Params{"name": "Widget", "price": 5.0})); !result.Success {
		t.Fatalf("add failed: %+v", result)
	}

	result := f.router.Dispatch(t.Context(), staffInvocation("editproduct", Params{"id": 1.0}))
	if result.Success {
		t.Fatal("editproduct succeeded with no fields")
	}
}

func TestEditProductNotFound(t *testing.T) {
	f := newFixture(t)

	result := f.router.Dispatch(t.Context(), staffInvocation("editproduct", Params{"id": 9.0, "price": 1.0}))
	if result.Success || !strings.Contains(result.Message, "not found") {
		t.Errorf("editproduct = %+v", result)
	}
}

func TestEditProductSurvivesReconcileFailure(t *testing.T) {
	f := newFixture(t)
	if result := f.router.Dispatch(t.Context(), staffInvocation("add", Params{"name": "Widget", "price": 5.0})); !result.Success {
		t.Fatalf("add failed: %+v", result)
	}
	f.surface.updateErr = errors.New("message deleted")

	result := f.router.Dispatch(t.Context(), staffInvocation("editproduct", Params{"id": 1.0, "price": 6.0}))
	if !result.Success {
		t.Fatalf("editproduct = %+v, want success despite reconcile failure", result)
	}

	// The edit committed even though the card did not.
	item, err := f.store.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if item.Price != 6.00 {
		t.Errorf("Price = %v, want 6.00", item.Price)
	}
}

func TestRemove(t *testing.T) {
	f := newFixture(t)
	if result := f.router.Dispatch(t.Context(), staffInvocation("add", Params{"name": "Widget", "price": 5.0})); !result.Success {
		t.Fatalf("add failed: %+v", result)
	}

	result := f.router.Dispatch(t.Context(), staffInvocation("remove", Params{"id": 1.0}))
	if !result.Success {
		t.Fatalf("remove = %+v", result)
	}
	if f.store.Len() != 0 {
		t.Errorf("store has %d items after remove", f.store.Len())
	}

	// Removing again reports not-found.
	result = f.router.Dispatch(t.Context(), staffInvocation("remove", Params{"id": 1.0}))
	if result.Success || !strings.Contains(result.Message, "not found") {
		t.Errorf("second remove = %+v", result)
	}
}

func TestListProducts(t *testing.T) {
	f := newFixture(t)

	empty := f.router.Dispatch(t.Context(), staffInvocation("listproducts", nil))
	if !empty.Success || empty.Message != "The shop is empty." {
		t.Errorf("empty listing = %+v", empty)
	}

	for _, params := range []Params{
		{"name": "Widget", "price": 19.99, "stock": 3.0},
		{"name": "Gadget", "price": 10.0, "discount": 50.0},
	} {
		if result := f.router.Dispatch(t.Context(), staffInvocation("add", params)); !result.Success {
			t.Fatalf("add failed: %+v", result)
		}
	}

	// A customer without staff roles can list.
	result := f.router.Dispatch(t.Context(), Invocation{
		CallerID: customerID,
		GuildID:  enabledGuild,
		Command:  "listproducts",
	})
	if !result.Success {
		t.Fatalf("listproducts = %+v", result)
	}
	if !strings.Contains(result.Message, "#1 Widget — $19.99 (3 in stock)") {
		t.Errorf("listing missing widget line:\n%s", result.Message)
	}
	if !strings.Contains(result.Message, "#2 Gadget — $5.00") {
		t.Errorf("listing missing discounted gadget line:\n%s", result.Message)
	}
	if !result.Ephemeral {
		t.Error("listing is not ephemeral")
	}
}
