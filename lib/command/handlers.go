// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopfront-foundation/shopfront/lib/catalog"
	"github.com/shopfront-foundation/shopfront/lib/policy"
	"github.com/shopfront-foundation/shopfront/lib/ref"
	"github.com/shopfront-foundation/shopfront/lib/showcase"
)

// Handlers implements the storefront commands over the catalog store
// and the showcase manager.
type Handlers struct {
	store           *catalog.Store
	showcase        *showcase.Manager
	showcaseChannel ref.ChannelID
	logger          *slog.Logger
}

// NewHandlers wires the command handlers. showcaseChannel is where new
// product cards are published.
func NewHandlers(store *catalog.Store, manager *showcase.Manager, showcaseChannel ref.ChannelID, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		store:           store,
		showcase:        manager,
		showcaseChannel: showcaseChannel,
		logger:          logger,
	}
}

// Register binds every storefront command on the router. Catalog
// mutations require Staff; listing is Public (the guild allowlist
// still applies through the guard).
func (h *Handlers) Register(router *Router) {
	router.Register("add", policy.Staff, h.Add)
	router.Register("editproduct", policy.Staff, h.EditProduct)
	router.Register("remove", policy.Staff, h.Remove)
	router.Register("listproducts", policy.Public, h.ListProducts)
}

// Add creates a product. The catalog write commits first; publishing
// the card and attaching the render link are best-effort afterthoughts
// whose failure leaves the item valid but unrendered.
func (h *Handlers) Add(ctx context.Context, inv Invocation) Result {
	name, ok := inv.Params.String("name")
	if !ok || name == "" {
		return Result{Message: "A product name is required.", Ephemeral: true}
	}
	price, ok := inv.Params.Float("price")
	if !ok {
		return Result{Message: "A price is required.", Ephemeral: true}
	}

	draft := catalog.Draft{Name: name, Price: price}
	if stock, ok := inv.Params.Int("stock"); ok {
		draft.Stock = &stock
	}
	if discount, ok := inv.Params.Int("discount"); ok {
		draft.DiscountPercent = int(discount)
	}
	if methods, ok := inv.Params.String("payment_methods"); ok {
		draft.PaymentMethods = splitMethods(methods)
	}

	var asset showcase.Asset
	if inv.Attachment != nil {
		asset = *inv.Attachment
	}
	draft.ImageRef = h.showcase.ResolveImage(ctx, asset)

	item, err := h.store.Create(draft)
	if err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			return Result{Message: validationMessage(err), Ephemeral: true}
		}
		h.logger.Error("product create failed", "name", name, "error", err)
		return Result{Message: genericFailure, Ephemeral: true}
	}

	// Rendering happens after the catalog committed and outside any
	// store lock. On failure the item simply stays without a card.
	if link, err := h.showcase.Publish(ctx, h.showcaseChannel, item); err != nil {
		h.logger.Warn("product card publish failed", "item", item.ID, "error", err)
	} else if _, err := h.store.SetRenderLink(item.ID, *link); err != nil {
		h.logger.Warn("persisting render link failed", "item", item.ID, "error", err)
	}

	return Result{
		Success:   true,
		Message:   fmt.Sprintf("Added product #%d: %s", item.ID, item.Name),
		Ephemeral: true,
	}
}

// EditProduct partially updates price and/or stock, then reconciles
// the rendered card. The reconcile runs strictly after the store has
// committed and released its lock; its failure never unwinds the edit.
func (h *Handlers) EditProduct(ctx context.Context, inv Invocation) Result {
	id, ok := inv.Params.Int("id")
	if !ok {
		return Result{Message: "A product id is required.", Ephemeral: true}
	}

	var update catalog.Update
	if price, ok := inv.Params.Float("price"); ok {
		update.Price = &price
	}
	if stock, ok := inv.Params.Int("stock"); ok {
		update.Stock = &stock
	}
	if update.Price == nil && update.Stock == nil {
		return Result{Message: "Provide a new price, a new stock count, or both.", Ephemeral: true}
	}

	item, err := h.store.Update(id, update)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return Result{Message: fmt.Sprintf("Product #%d not found.", id), Ephemeral: true}
		case errors.Is(err, catalog.ErrValidation):
			return Result{Message: validationMessage(err), Ephemeral: true}
		default:
			h.logger.Error("product update failed", "item", id, "error", err)
			return Result{Message: genericFailure, Ephemeral: true}
		}
	}

	h.showcase.Reconcile(ctx, item)

	return Result{
		Success:   true,
		Message:   fmt.Sprintf("Updated product #%d.", id),
		Ephemeral: true,
	}
}

// Remove deletes a product. The rendered card is deliberately left in
// the channel; only the reconcile state for the id is dropped.
func (h *Handlers) Remove(ctx context.Context, inv Invocation) Result {
	id, ok := inv.Params.Int("id")
	if !ok {
		return Result{Message: "A product id is required.", Ephemeral: true}
	}

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Result{Message: fmt.Sprintf("Product #%d not found.", id), Ephemeral: true}
		}
		h.logger.Error("product delete failed", "item", id, "error", err)
		return Result{Message: genericFailure, Ephemeral: true}
	}
	h.showcase.Forget(id)

	return Result{
		Success:   true,
		Message:   fmt.Sprintf("Removed product #%d.", id),
		Ephemeral: true,
	}
}

// ListProducts renders the catalog as an ephemeral text listing.
func (h *Handlers) ListProducts(ctx context.Context, inv Invocation) Result {
	items := h.store.List()
	if len(items) == 0 {
		return Result{Success: true, Message: "The shop is empty.", Ephemeral: true}
	}

	var listing strings.Builder
	for _, item := range items {
		fmt.Fprintf(&listing, "#%d %s — $%.2f", item.ID, item.Name, item.EffectivePrice())
		if item.Stock != nil {
			fmt.Fprintf(&listing, " (%d in stock)", *item.Stock)
		}
		listing.WriteByte('\n')
	}
	return Result{Success: true, Message: listing.String(), Ephemeral: true}
}

// validationMessage strips the package prefix and the sentinel suffix
// from a validation error so the caller sees only the field complaint.
func validationMessage(err error) string {
	message := strings.TrimPrefix(err.Error(), "catalog: ")
	message = strings.TrimSuffix(message, ": "+catalog.ErrValidation.Error())
	return "Invalid product: " + message
}

func splitMethods(raw string) []string {
	var methods []string
	for _, method := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(method); trimmed != "" {
			methods = append(methods, trimmed)
		}
	}
	return methods
}
