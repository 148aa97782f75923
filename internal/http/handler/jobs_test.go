package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"vagas/internal/core"
	apperrors "vagas/internal/errors"
	"vagas/internal/http/handler"
	"vagas/internal/http/handler/fake"
	"vagas/internal/http/handler/middleware"
	"vagas/internal/http/payload"
	tokenIssuer "vagas/pkg/jwt"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const jobBody = `{"title":"Go developer","description":"Build APIs","postedAt":"2024-05-01",` +
	`"contactPhone":"+55 11 99999-0000","status":"active","company":"Acme"}`

var _ = Describe("JobHandler", func() {
	var (
		jh            *handler.JobHandler
		fakeService   *fake.JobService
		fakeValidator *fake.RequestValidator
		router        chi.Router
		w             *httptest.ResponseRecorder
		req           *http.Request
		posting       core.JobPosting
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.JobService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeAndValidateJSONPayloadStub = payload.DecodeValidator{}.DecodeAndValidateJSONPayload

		jh = handler.NewJobHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
		router = chi.NewRouter()
		router.Get("/api/vagas", jh.HandleListJobs)
		router.Post("/api/vagas", jh.HandleCreateJob)
		router.Get("/api/vagas/{id}", jh.HandleGetJob)
		router.Put("/api/vagas/{id}", jh.HandleReplaceJob)
		router.Delete("/api/vagas/{id}", jh.HandleDeleteJob)

		w = httptest.NewRecorder()
		owner := uint(3)
		posting = core.JobPosting{
			ID:           7,
			Title:        "Go developer",
			Description:  "Build APIs",
			PostedAt:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			ContactPhone: "+55 11 99999-0000",
			Status:       "active",
			Company:      "Acme",
			CreatedBy:    &owner,
		}
	})

	JustBeforeEach(func() {
		router.ServeHTTP(w, req)
	})

	Describe("HandleCreateJob", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/vagas", strings.NewReader(jobBody))
			req = req.WithContext(context.WithValue(req.Context(), middleware.ClaimsKey, tokenIssuer.Claims{UserID: 3}))
			fakeService.CreateJobReturns(posting, nil)
		})

		It("should create the job owned by the token's user", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))

			_, ownerID, draft := fakeService.CreateJobArgsForCall(0)
			Expect(ownerID).To(Equal(uint(3)))
			Expect(draft.PostedAt).To(Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
			Expect(draft.Status).To(Equal("active"))

			var job payload.JobView
			Expect(json.Unmarshal(decodeEnvelope(w).Data, &job)).To(Succeed())
			Expect(job.ID).To(Equal(uint(7)))
			Expect(*job.CreatedBy).To(Equal(uint(3)))
			Expect(job.PostedAt.Equal(posting.PostedAt)).To(BeTrue())
		})

		When("a required field is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/vagas", strings.NewReader(`{"title":"Go developer"}`))
			})

			It("should return 400 and persist nothing", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateJobCallCount()).To(BeZero())
			})
		})

		When("the date is invalid", func() {
			BeforeEach(func() {
				body := strings.Replace(jobBody, "2024-05-01", "yesterday", 1)
				req = httptest.NewRequest("POST", "/api/vagas", strings.NewReader(body))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeEnvelope(w).Error).To(ContainSubstring("postedAt"))
			})
		})

		When("the service rejects the status", func() {
			BeforeEach(func() {
				fakeService.CreateJobReturns(core.JobPosting{}, apperrors.InvalidInput("status: must be a valid value.", nil))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.CreateJobReturns(core.JobPosting{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleListJobs", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/vagas", nil)
			fakeService.ListJobsReturns([]core.JobPosting{posting}, nil)
		})

		It("should return every job", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var jobs []payload.JobView
			Expect(json.Unmarshal(decodeEnvelope(w).Data, &jobs)).To(Succeed())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].Company).To(Equal("Acme"))
		})
	})

	Describe("HandleGetJob", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/vagas/7", nil)
			fakeService.GetJobReturns(posting, nil)
		})

		It("should return the job", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, id := fakeService.GetJobArgsForCall(0)
			Expect(id).To(Equal(uint(7)))
		})

		When("the job does not exist", func() {
			BeforeEach(func() {
				fakeService.GetJobReturns(core.JobPosting{}, apperrors.NotFound("job not found", nil))
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(decodeEnvelope(w).Error).To(Equal("job not found"))
			})
		})

		When("the id is zero", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/vagas/0", nil)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleReplaceJob", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("PUT", "/api/vagas/7", strings.NewReader(jobBody))
			fakeService.ReplaceJobReturns(posting, nil)
		})

		It("should replace the job", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, id, draft := fakeService.ReplaceJobArgsForCall(0)
			Expect(id).To(Equal(uint(7)))
			Expect(draft.Company).To(Equal("Acme"))
		})

		When("the job does not exist", func() {
			BeforeEach(func() {
				fakeService.ReplaceJobReturns(core.JobPosting{}, apperrors.NotFound("job not found", nil))
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleDeleteJob", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/api/vagas/7", nil)
			fakeService.DeleteJobReturns(posting, nil)
		})

		It("should return 200", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		When("the job does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteJobReturns(core.JobPosting{}, apperrors.NotFound("job not found", nil))
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})

var _ = Describe("HealthHandler", func() {
	var (
		hh         *handler.HealthHandler
		fakePinger *fake.Pinger
		w          *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		fakePinger = new(fake.Pinger)
		hh = handler.NewHealthHandler(zap.NewNop().Sugar(), fakePinger)
		w = httptest.NewRecorder()
	})

	It("should report ok when the database answers", func() {
		hh.HandleHealth(w, httptest.NewRequest("GET", "/healthz", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"status":"ok"`))
	})

	It("should return 503 when the database is down", func() {
		fakePinger.PingReturns(errors.New("connection refused"))

		hh.HandleHealth(w, httptest.NewRequest("GET", "/healthz", nil))
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})
})
