package cmd_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"vagas/cmd"
	"vagas/internal/config"
	"vagas/internal/core"
	"vagas/internal/http/handler"
	"vagas/internal/http/handler/fake"
	"vagas/internal/http/handler/middleware"
	mwfake "vagas/internal/http/handler/middleware/fake"
	"vagas/internal/http/payload"
	"vagas/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("NewRouter", func() {
	var (
		router      http.Handler
		userService *fake.UserService
		jobService  *fake.JobService
		limiter     *mwfake.Limiter
		jwtService  *jwt.JWTService
		cfg         config.App
		token       string
		w           *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		userService = new(fake.UserService)
		jobService = new(fake.JobService)
		limiter = new(mwfake.Limiter)
		limiter.AllowReturns(true, nil)
		jwtService = jwt.NewJWTService([]byte("test-secret"))

		var err error
		token, _, err = jwtService.Issue(jwt.TokenInfo{UserID: 3, Email: "a@x.com", Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		cfg = config.App{
			RequestTimeout: 5 * time.Second,
			CORSOrigin:     "*",
		}
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		logger := zap.NewNop().Sugar()
		router = cmd.NewRouter(logger, cfg, cmd.Routes{
			Users:      handler.NewUserHandler(logger, payload.DecodeValidator{}, userService),
			Jobs:       handler.NewJobHandler(logger, payload.DecodeValidator{}, jobService),
			Health:     handler.NewHealthHandler(logger, new(fake.Pinger)),
			Auth:       middleware.NewAuthenticator(logger, jwtService),
			LoginLimit: middleware.NewRateLimiter(logger, limiter, "login"),
		})
	})

	serve := func(method, path, body, bearer string) {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
		}
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		router.ServeHTTP(w, req)
	}

	DescribeTable("protected routes without a token",
		func(method, path string) {
			serve(method, path, "", "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		},
		Entry("list users", "GET", "/api/usuario"),
		Entry("get user", "GET", "/api/usuario/3"),
		Entry("replace user", "PUT", "/api/usuario/3"),
		Entry("patch user", "PATCH", "/api/usuario/3"),
		Entry("delete user", "DELETE", "/api/usuario/3"),
		Entry("list jobs", "GET", "/api/vagas"),
		Entry("get job", "GET", "/api/vagas/7"),
		Entry("create job", "POST", "/api/vagas"),
		Entry("replace job", "PUT", "/api/vagas/7"),
		Entry("delete job", "DELETE", "/api/vagas/7"),
	)

	It("should reject a token signed with another secret", func() {
		forged, _, err := jwt.NewJWTService([]byte("other")).Issue(jwt.TokenInfo{UserID: 3, Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		serve("GET", "/api/vagas", "", forged)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(jobService.ListJobsCallCount()).To(BeZero())
	})

	It("should serve protected routes with a valid token", func() {
		jobService.ListJobsReturns([]core.JobPosting{}, nil)

		serve("GET", "/api/vagas", "", token)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(jobService.ListJobsCallCount()).To(Equal(1))
	})

	It("should pass the token's user to job creation", func() {
		jobService.CreateJobReturns(core.JobPosting{ID: 7}, nil)

		serve("POST", "/api/vagas", `{"title":"t","description":"d","postedAt":"2024-05-01",`+
			`"contactPhone":"1","status":"active","company":"c"}`, token)
		Expect(w.Code).To(Equal(http.StatusCreated))

		_, ownerID, _ := jobService.CreateJobArgsForCall(0)
		Expect(ownerID).To(Equal(uint(3)))
	})

	It("should leave registration public", func() {
		userService.RegisterReturns(core.Profile{ID: 1}, nil)

		serve("POST", "/api/usuario/register", `{"name":"A","email":"a@x.com","password":"testpass"}`, "")
		Expect(w.Code).To(Equal(http.StatusCreated))
	})

	It("should throttle login through the limiter", func() {
		limiter.AllowReturns(false, nil)

		serve("POST", "/api/usuario/login", `{"email":"a@x.com","password":"testpass"}`, "")
		Expect(w.Code).To(Equal(http.StatusTooManyRequests))
		Expect(userService.LoginCallCount()).To(BeZero())
	})

	Describe("login throttling key", func() {
		login := func(remoteAddr, forwardedFor string) {
			req := httptest.NewRequest("POST", "/api/usuario/login",
				strings.NewReader(`{"email":"a@x.com","password":"testpass"}`))
			req.RemoteAddr = remoteAddr
			req.Header.Set("X-Forwarded-For", forwardedFor)
			router.ServeHTTP(httptest.NewRecorder(), req)
		}

		It("should ignore forwarding headers by default", func() {
			login("203.0.113.9:40000", "10.0.0.1")
			login("203.0.113.9:40001", "10.0.0.2")

			Expect(limiter.AllowCallCount()).To(Equal(2))
			_, first := limiter.AllowArgsForCall(0)
			_, second := limiter.AllowArgsForCall(1)
			Expect(first).To(Equal("login:203.0.113.9"))
			Expect(second).To(Equal(first))
		})

		When("proxy headers are trusted", func() {
			BeforeEach(func() {
				cfg.TrustProxyHeaders = true
			})

			It("should key on the forwarded client address", func() {
				login("203.0.113.9:40000", "10.0.0.1")
				login("203.0.113.9:40001", "10.0.0.2")

				_, first := limiter.AllowArgsForCall(0)
				_, second := limiter.AllowArgsForCall(1)
				Expect(first).To(Equal("login:10.0.0.1"))
				Expect(second).To(Equal("login:10.0.0.2"))
			})
		})
	})

	It("should tag every response with a request id", func() {
		serve("GET", "/healthz", "", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get(middleware.RequestIDHeader)).NotTo(BeEmpty())
	})

	It("should answer CORS preflight requests", func() {
		req := httptest.NewRequest("OPTIONS", "/api/vagas", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "GET")
		router.ServeHTTP(w, req)

		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})
})
