package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"vagas/internal/http/handler/middleware"
	"vagas/internal/http/handler/middleware/fake"
	tokenIssuer "vagas/pkg/jwt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestID", func() {
	var (
		w        *httptest.ResponseRecorder
		req      *http.Request
		captured string
		next     http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/vagas", nil)
		next = http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			captured = middleware.RequestIDFrom(r.Context())
		})
	})

	It("should generate an id when none is sent", func() {
		middleware.RequestID(next).ServeHTTP(w, req)

		Expect(uuid.Validate(captured)).To(Succeed())
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(captured))
	})

	It("should reuse the caller's id", func() {
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		middleware.RequestID(next).ServeHTTP(w, req)

		Expect(captured).To(Equal("abc-123"))
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
	})
})

var _ = Describe("Authenticator", func() {
	var (
		auth         *middleware.Authenticator
		fakeVerifier *fake.TokenVerifier
		w            *httptest.ResponseRecorder
		req          *http.Request
		nextCalled   bool
		seenClaims   tokenIssuer.Claims
		claims       tokenIssuer.Claims
	)

	BeforeEach(func() {
		fakeVerifier = new(fake.TokenVerifier)
		auth = middleware.NewAuthenticator(zap.NewNop().Sugar(), fakeVerifier)
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/vagas", nil)
		nextCalled = false
		claims = tokenIssuer.Claims{
			UserID:    3,
			Email:     "a@x.com",
			ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		fakeVerifier.ValidateReturns(claims, nil)
	})

	JustBeforeEach(func() {
		auth.Authenticate(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			nextCalled = true
			seenClaims, _ = middleware.ClaimsFrom(r.Context())
		})).ServeHTTP(w, req)
	})

	When("a valid bearer token is sent", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer signed-token")
		})

		It("should pass the claims on", func() {
			Expect(nextCalled).To(BeTrue())
			Expect(seenClaims).To(Equal(claims))
			Expect(fakeVerifier.ValidateArgsForCall(0)).To(Equal("signed-token"))
		})
	})

	When("the scheme is lower case", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "bearer signed-token")
		})

		It("should accept it", func() {
			Expect(nextCalled).To(BeTrue())
		})
	})

	When("the header is missing", func() {
		BeforeEach(func() {
			fakeVerifier.ValidateReturns(tokenIssuer.Claims{}, tokenIssuer.ErrTokenMissing)
		})

		It("should return 401 without calling the handler", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("missing bearer token"))
			Expect(fakeVerifier.ValidateArgsForCall(0)).To(Equal(""))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("a different scheme is used", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			fakeVerifier.ValidateReturns(tokenIssuer.Claims{}, tokenIssuer.ErrTokenMissing)
		})

		It("should not hand the credentials to the verifier", func() {
			Expect(fakeVerifier.ValidateArgsForCall(0)).To(Equal(""))
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	When("the token is expired", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer old-token")
			fakeVerifier.ValidateReturns(tokenIssuer.Claims{}, fmt.Errorf("token expired at x: %w", tokenIssuer.ErrTokenExpired))
		})

		It("should return 401", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("token expired"))
			Expect(w.Header().Get("WWW-Authenticate")).To(ContainSubstring("Bearer"))
		})
	})

	When("the token is forged", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer forged")
			fakeVerifier.ValidateReturns(tokenIssuer.Claims{}, tokenIssuer.ErrTokenNotValid)
		})

		It("should return 401", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("invalid token"))
			Expect(nextCalled).To(BeFalse())
		})
	})
})

var _ = Describe("RateLimiter", func() {
	var (
		rl          *middleware.RateLimiter
		fakeLimiter *fake.Limiter
		w           *httptest.ResponseRecorder
		req         *http.Request
		nextCalled  bool
	)

	BeforeEach(func() {
		fakeLimiter = new(fake.Limiter)
		rl = middleware.NewRateLimiter(zap.NewNop().Sugar(), fakeLimiter, "login")
		w = httptest.NewRecorder()
		req = httptest.NewRequest("POST", "/api/usuario/login", nil)
		req.RemoteAddr = "10.0.0.7:51234"
		nextCalled = false
		fakeLimiter.AllowReturns(true, nil)
	})

	JustBeforeEach(func() {
		rl.Limit(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			nextCalled = true
		})).ServeHTTP(w, req)
	})

	It("should key the counter by scope and client ip", func() {
		_, key := fakeLimiter.AllowArgsForCall(0)
		Expect(key).To(Equal("login:10.0.0.7"))
		Expect(nextCalled).To(BeTrue())
	})

	When("the client is over the limit", func() {
		BeforeEach(func() {
			fakeLimiter.AllowReturns(false, nil)
		})

		It("should return 429", func() {
			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the limiter fails", func() {
		BeforeEach(func() {
			fakeLimiter.AllowReturns(false, errors.New("redis down"))
		})

		It("should let the request through", func() {
			Expect(nextCalled).To(BeTrue())
		})
	})
})

var _ = Describe("Logging", func() {
	It("should not alter the response", func() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/healthz", nil)

		middleware.Logging(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusTeapot))
	})
})
