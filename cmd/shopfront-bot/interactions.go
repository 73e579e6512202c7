// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopfront-foundation/shopfront/lib/catalog"
	"github.com/shopfront-foundation/shopfront/lib/command"
	"github.com/shopfront-foundation/shopfront/lib/netutil"
	"github.com/shopfront-foundation/shopfront/lib/ref"
	"github.com/shopfront-foundation/shopfront/lib/showcase"
)

// interactionRequest is the JSON body the platform gateway posts for
// each command invocation. Identifier fields arrive as decimal strings,
// matching the platform's wire format.
type interactionRequest struct {
	Command   string         `json:"command"`
	CallerID  ref.UserID     `json:"caller_id,string"`
	RoleIDs   []string       `json:"role_ids"`
	GuildID   ref.GuildID    `json:"guild_id,string"`
	ChannelID ref.ChannelID  `json:"channel_id,string"`
	Params    map[string]any `json:"params"`

	Attachment *struct {
		Filename   string `json:"filename"`
		URL        string `json:"url"`
		DataBase64 string `json:"data_base64"`
	} `json:"attachment"`
}

// interactionResponse mirrors command.Result on the wire.
type interactionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Ephemeral bool   `json:"ephemeral"`
}

// messageDeletedEvent is the gateway's notification that a message was
// deleted on the platform.
type messageDeletedEvent struct {
	ChannelID ref.ChannelID `json:"channel_id,string"`
	MessageID ref.MessageID `json:"message_id,string"`
}

// newInteractionHandler returns the HTTP handler translating gateway
// payloads into command invocations and catalog housekeeping. It is a
// delivery shim: all authorization and semantics live behind the
// router.
func newInteractionHandler(router *command.Router, store *catalog.Store, manager *showcase.Manager, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/interactions", func(w http.ResponseWriter, r *http.Request) {
		var request interactionRequest
		if err := netutil.DecodeResponse(r.Body, &request); err != nil {
			http.Error(w, "malformed interaction payload", http.StatusBadRequest)
			return
		}
		if request.Command == "" || request.CallerID.IsZero() {
			http.Error(w, "command and caller_id are required", http.StatusBadRequest)
			return
		}

		invocation, err := buildInvocation(request)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result := router.Dispatch(r.Context(), invocation)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(interactionResponse{
			Success:   result.Success,
			Message:   result.Message,
			Ephemeral: result.Ephemeral,
		}); err != nil {
			logger.Warn("writing interaction response failed", "error", err)
		}
	})

	// A deleted message may have been a product card. If it was, drop
	// the render link so the item goes back to unrendered instead of
	// pointing at a dead anchor.
	mux.HandleFunc("POST /v1/events/message-deleted", func(w http.ResponseWriter, r *http.Request) {
		var event messageDeletedEvent
		if err := netutil.DecodeResponse(r.Body, &event); err != nil {
			http.Error(w, "malformed event payload", http.StatusBadRequest)
			return
		}
		if event.ChannelID.IsZero() || event.MessageID.IsZero() {
			http.Error(w, "channel_id and message_id are required", http.StatusBadRequest)
			return
		}

		item, ok := store.FindByRenderAnchor(event.ChannelID, event.MessageID)
		if !ok {
			// Not a card we track; nothing to do.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if _, err := store.ClearRenderLink(item.ID); err != nil {
			logger.Error("clearing render link failed", "item", item.ID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		manager.Forget(item.ID)
		logger.Info("render link cleared after card deletion",
			"item", item.ID,
			"channel", event.ChannelID,
			"message", event.MessageID)
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func buildInvocation(request interactionRequest) (command.Invocation, error) {
	invocation := command.Invocation{
		CallerID:  request.CallerID,
		GuildID:   request.GuildID,
		ChannelID: request.ChannelID,
		Command:   request.Command,
		Params:    command.Params(request.Params),
	}

	for _, raw := range request.RoleIDs {
		roleID, err := ref.ParseRoleID(raw)
		if err != nil {
			return command.Invocation{}, err
		}
		invocation.RoleIDs = append(invocation.RoleIDs, roleID)
	}

	if request.Attachment != nil {
		asset := &showcase.Asset{
			Filename:     request.Attachment.Filename,
			TransientURL: request.Attachment.URL,
		}
		if request.Attachment.DataBase64 != "" {
			data, err := base64.StdEncoding.DecodeString(request.Attachment.DataBase64)
			if err != nil {
				return command.Invocation{}, err
			}
			asset.Data = data
		}
		invocation.Attachment = asset
	}

	return invocation, nil
}
