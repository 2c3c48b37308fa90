package httphandler

import (
	"log/slog"
	"net/http"
)

// GET  v1/session
// POST v1/session/login JSON {"email" string, "password" string}
// POST v1/session/logout

type SessionHandler struct {
	reg *Registry
}

func RegisterSession(mux *http.ServeMux, reg *Registry) {
	h := SessionHandler{reg}
	mux.HandleFunc("GET /v1/session", h.GetSession)
	mux.HandleFunc("POST /v1/session/login", h.Login)
	mux.HandleFunc("POST /v1/session/logout", h.Logout)
}

func (h SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.toView(r))
}

func (h SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.Login"

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	sess := h.reg.state(sessionID(r)).session
	if !sess.Login(body.Email, body.Password) {
		slog.Info("rejected login attempt", "op", op, "email", body.Email)
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.toView(r))
}

func (h SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := h.reg.state(sessionID(r)).session
	sess.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h SessionHandler) toView(r *http.Request) SessionView {
	sess := h.reg.state(sessionID(r)).session
	user, ok := sess.User()
	if !ok {
		return SessionView{}
	}
	return SessionView{Authenticated: true, Name: user.Name, Email: user.Email}
}
