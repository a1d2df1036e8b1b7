// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/go-chi/chi/v5"
)

const msgContactNotFound = "Contact not found"

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := currentUser(r)

	filter, err := contactFilterFromRequest(r, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContacts").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	contacts, err := h.services.ContactService.ListContacts(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContacts").Msg("error listing contacts")
		writeError(w, err)
		return
	}

	if contacts == nil {
		contacts = []models.Contact{}
	}
	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := currentUser(r)

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ContactService.CreateContact(r.Context(), user.UserID, contact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("error creating contact")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	h.withContactID(w, r, func(userID, contactID int64) (models.Contact, error) {
		return h.services.ContactService.GetContact(r.Context(), userID, contactID)
	})
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	var update models.ContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateContact").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	h.withContactID(w, r, func(userID, contactID int64) (models.Contact, error) {
		update.ID = contactID
		update.UserID = userID
		return h.services.ContactService.UpdateContact(r.Context(), update)
	})
}

func (h *Handler) updatePhone(w http.ResponseWriter, r *http.Request) {
	var patch models.ContactPhoneUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updatePhone").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	h.withContactID(w, r, func(userID, contactID int64) (models.Contact, error) {
		return h.services.ContactService.UpdatePhone(r.Context(), userID, contactID, patch.Phone)
	})
}

func (h *Handler) updateEmail(w http.ResponseWriter, r *http.Request) {
	var patch models.ContactEmailUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateEmail").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	h.withContactID(w, r, func(userID, contactID int64) (models.Contact, error) {
		return h.services.ContactService.UpdateEmail(r.Context(), userID, contactID, patch.Email)
	})
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	h.withContactID(w, r, func(userID, contactID int64) (models.Contact, error) {
		return h.services.ContactService.DeleteContact(r.Context(), userID, contactID)
	})
}

func (h *Handler) upcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	contacts, err := h.services.ContactService.UpcomingBirthdays(r.Context(), user.UserID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.upcomingBirthdays").Msg("error listing birthdays")
		writeError(w, err)
		return
	}

	if contacts == nil {
		contacts = []models.Contact{}
	}
	utils.WriteJSON(w, contacts, http.StatusOK)
}

// withContactID parses the {id} URL parameter, runs op for the current
// user and writes the single resulting contact.
func (h *Handler) withContactID(w http.ResponseWriter, r *http.Request, op func(userID, contactID int64) (models.Contact, error)) {
	log := logger.FromRequest(r)
	user, _ := currentUser(r)

	contactID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || contactID <= 0 {
		log.Err(errInvalidContactID).Str("id", chi.URLParam(r, "id")).Send()
		http.Error(w, errInvalidContactID.Error(), http.StatusBadRequest)
		return
	}

	contact, err := op(user.UserID, contactID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrContactNotFound):
			log.Err(err).Int64("contact_id", contactID).Msg("contact not found")
			http.Error(w, msgContactNotFound, http.StatusNotFound)
			return
		case errors.Is(err, validators.ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("contact_id", contactID).Msg("unexpected error occurred during contact operation")
			writeError(w, err)
			return
		}
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

// contactFilterFromRequest reads the list filters and paging from the
// query string. Unknown parameters are ignored.
func contactFilterFromRequest(r *http.Request, userID int64) (models.ContactFilter, error) {
	query := r.URL.Query()

	filter := models.ContactFilter{
		UserID:    userID,
		FirstName: query.Get("first_name"),
		LastName:  query.Get("last_name"),
		Email:     query.Get("email"),
	}

	var err error
	if raw := query.Get("skip"); raw != "" {
		if filter.Skip, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return models.ContactFilter{}, errInvalidPaging
		}
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.ContactFilter{}, errInvalidPaging
		}
		filter.Limit = &limit
	}

	return filter, nil
}
