package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	credentialerrors "taskhub/contexts/identity-access/credential-service/domain/errors"
	credentialhttp "taskhub/contexts/identity-access/credential-service/transport/http"
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialhttp.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.credentials.Handler.SignupHandler(r.Context(), req)
	if err != nil {
		writeCredentialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.credentials.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeCredentialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCredentialDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, credentialerrors.ErrInvalidEmail),
		errors.Is(err, credentialerrors.ErrPasswordTooShort),
		errors.Is(err, credentialerrors.ErrPasswordRequired),
		errors.Is(err, credentialerrors.ErrEmailTaken),
		errors.Is(err, credentialerrors.ErrInvalidCredentials):
		writeFailure(w, http.StatusBadRequest, err.Error())
	default:
		// Store failures and the like never leak detail to the caller.
		writeFailure(w, http.StatusInternalServerError, "Server error")
	}
}
