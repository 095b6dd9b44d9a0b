// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/newslens-io/newslens/internal/models"
)

// Preferences lists a user's category preferences.
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, err := urlParamInt64(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "User id must be a positive integer", nil)
		return
	}

	prefs, err := h.store.PreferencesByUser(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load preferences", err)
		return
	}
	if prefs == nil {
		prefs = []models.Preference{}
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":     userID,
		"preferences": prefs,
	}, started)
}

// SetPreference upserts one category preference for a user.
func (h *Handler) SetPreference(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, err := urlParamInt64(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "User id must be a positive integer", nil)
		return
	}
	category := chi.URLParam(r, "category")
	if category == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Category is required", nil)
		return
	}

	var req PreferenceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	pref := models.Preference{UserID: userID, Category: category, Weight: req.Weight}
	if err := h.store.UpsertPreference(r.Context(), &pref); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save preference", err)
		return
	}
	respondSuccess(w, http.StatusOK, pref, started)
}

// DeletePreference removes one category preference for a user.
func (h *Handler) DeletePreference(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, err := urlParamInt64(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "User id must be a positive integer", nil)
		return
	}
	category := chi.URLParam(r, "category")
	if category == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Category is required", nil)
		return
	}

	if err := h.store.DeletePreference(r.Context(), userID, category); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete preference", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":  userID,
		"category": category,
		"deleted":  true,
	}, started)
}
