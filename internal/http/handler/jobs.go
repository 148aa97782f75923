package handler

import (
	"net/http"

	"vagas/internal/http/handler/middleware"
	"vagas/internal/http/payload"

	"go.uber.org/zap"
)

var (
	ListJobs   = "GET /api/vagas"
	GetJob     = "GET /api/vagas/{id}"
	CreateJob  = "POST /api/vagas"
	ReplaceJob = "PUT /api/vagas/{id}"
	DeleteJob  = "DELETE /api/vagas/{id}"
)

type JobHandler struct {
	responder
	requestValidator RequestValidator
	jobs             JobService
}

func NewJobHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, jobService JobService) *JobHandler {
	return &JobHandler{
		responder:        responder{logs: logger},
		requestValidator: requestValidator,
		jobs:             jobService,
	}
}

func (h *JobHandler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	postings, err := h.jobs.ListJobs(r.Context())
	if err != nil {
		h.fail(w, err, "Could not retrieve jobs", ListJobs, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewJobViews(postings),
	}, http.StatusOK, requestId)
}

func (h *JobHandler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, err, "Could not retrieve job", GetJob, requestId)
		return
	}

	posting, err := h.jobs.GetJob(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Could not retrieve job", GetJob, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewJobView(posting),
	}, http.StatusOK, requestId)
}

func (h *JobHandler) HandleCreateJob(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.JobRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, "Could not create job", CreateJob, requestId)
		return
	}

	var ownerID uint
	if claims, ok := middleware.ClaimsFrom(r.Context()); ok {
		ownerID = claims.UserID
	}

	posting, err := h.jobs.CreateJob(r.Context(), ownerID, req.ToDraft())
	if err != nil {
		h.fail(w, err, "Could not create job", CreateJob, requestId)
		return
	}

	h.logs.Infow("job created",
		"job_id", posting.ID,
		"user_id", ownerID,
		"handler", CreateJob,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Job created",
		Data:    payload.NewJobView(posting),
	}, http.StatusCreated, requestId)
}

func (h *JobHandler) HandleReplaceJob(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, err, "Could not update job", ReplaceJob, requestId)
		return
	}

	var req payload.JobRequest
	if err = h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, "Could not update job", ReplaceJob, requestId)
		return
	}

	posting, err := h.jobs.ReplaceJob(r.Context(), id, req.ToDraft())
	if err != nil {
		h.fail(w, err, "Could not update job", ReplaceJob, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Job updated",
		Data:    payload.NewJobView(posting),
	}, http.StatusOK, requestId)
}

func (h *JobHandler) HandleDeleteJob(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, err, "Could not delete job", DeleteJob, requestId)
		return
	}

	posting, err := h.jobs.DeleteJob(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Could not delete job", DeleteJob, requestId)
		return
	}

	h.logs.Infow("job deleted",
		"job_id", posting.ID,
		"handler", DeleteJob,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Job deleted",
		Data:    payload.NewJobView(posting),
	}, http.StatusOK, requestId)
}
