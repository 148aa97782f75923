package handler

import (
	"net/http"

	"vagas/internal/http/payload"

	"go.uber.org/zap"
)

var (
	RegisterUser = "POST /api/usuario/register"
	LoginUser    = "POST /api/usuario/login"
	ListUsers    = "GET /api/usuario"
	GetUser      = "GET /api/usuario/{id}"
	ReplaceUser  = "PUT /api/usuario/{id}"
	PatchUser    = "PATCH /api/usuario/{id}"
	DeleteUser   = "DELETE /api/usuario/{id}"
)

type UserHandler struct {
	responder
	requestValidator RequestValidator
	users            UserService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService) *UserHandler {
	return &UserHandler{
		responder:        responder{logs: logger},
		requestValidator: requestValidator,
		users:            userService,
	}
}

func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, "Could not register user", RegisterUser, requestId)
		return
	}

	profile, err := h.users.Register(r.Context(), req.ToRegistration())
	if err != nil {
		h.fail(w, err, "Could not register user", RegisterUser, requestId)
		return
	}

	h.logs.Infow("user registered",
		"user_id", profile.ID,
		"handler", RegisterUser,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "User registered",
		Data:    payload.NewUserView(profile),
	}, http.StatusCreated, requestId)
}

func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, "Login failed", LoginUser, requestId)
		return
	}

	session, err := h.users.Login(r.Context(), req.ToCredentials())
	if err != nil {
		h.fail(w, err, "Login failed", LoginUser, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Login successful",
		Data:    payload.NewSessionView(session),
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	profiles, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.fail(w, err, "Could not retrieve users", ListUsers, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewUserViews(profiles),
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, err, "Could not retrieve user", GetUser, requestId)
		return
	}

	profile, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Could not retrieve user", GetUser, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewUserView(profile),
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleReplaceUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, err, "Could not update user", ReplaceUser, requestId)
		return
	}

	var req payload.RegisterRequest
	if err = h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, "Could not update user", ReplaceUser, requestId)
		return
	}

	profile, err := h.users.ReplaceUser(r.Context(), id, req.ToRegistration())
	if err != nil {
		h.fail(w, err, "Could not update user", ReplaceUser, requestId)
		return
	}

	h.respond(w, Response{
		Message: "User updated",
		Data:    payload.NewUserView(profile),
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandlePatchUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, err, "Could not update user", PatchUser, requestId)
		return
	}

	var req payload.PatchUserRequest
	if err = h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, "Could not update user", PatchUser, requestId)
		return
	}

	profile, err := h.users.PatchUser(r.Context(), id, req.ToPatch())
	if err != nil {
		h.fail(w, err, "Could not update user", PatchUser, requestId)
		return
	}

	h.respond(w, Response{
		Message: "User updated",
		Data:    payload.NewUserView(profile),
	}, http.StatusOK, requestId)
}

func (h *UserHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, err, "Could not delete user", DeleteUser, requestId)
		return
	}

	profile, err := h.users.DeleteUser(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Could not delete user", DeleteUser, requestId)
		return
	}

	h.logs.Infow("user deleted",
		"user_id", profile.ID,
		"handler", DeleteUser,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "User deleted",
		Data:    payload.NewUserView(profile),
	}, http.StatusOK, requestId)
}
