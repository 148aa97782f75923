package jwt_test

import (
	"strings"
	"time"

	tokenIssuer "vagas/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserID:     42,
			Email:      "a@x.com",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Issue and Validate", func() {
		It("should round-trip the user id and email", func() {
			token, _, err := service.Issue(info)
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.Validate(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(uint(42)))
			Expect(claims.Email).To(Equal("a@x.com"))
			Expect(claims.ExpiresAt).To(BeTemporally("~", time.Now().Add(time.Hour), 2*time.Second))
		})

		It("should report the same expiry that the token carries", func() {
			now := time.Now().Truncate(time.Second).Add(999 * time.Millisecond)
			tokenIssuer.TimeNow = func() time.Time { return now }

			token, expiresAt, err := service.Issue(info)
			Expect(err).NotTo(HaveOccurred())
			Expect(expiresAt.Unix()).To(Equal(now.Add(time.Hour).Unix()))

			tokenIssuer.TimeNow = time.Now
			claims, err := service.Validate(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.ExpiresAt.Equal(expiresAt)).To(BeTrue())
		})
	})

	Describe("Validate", func() {
		It("should reject an empty token", func() {
			_, err := service.Validate("")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenMissing))
		})

		It("should reject a malformed token", func() {
			_, err := service.Validate("not.a.token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("should reject a token signed with another secret", func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			token, _, err := other.Issue(info)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(token)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("should reject a tampered token", func() {
			token, _, err := service.Issue(info)
			Expect(err).NotTo(HaveOccurred())

			parts := strings.Split(token, ".")
			parts[2] = strings.Repeat("A", len(parts[2]))
			_, err = service.Validate(strings.Join(parts, "."))
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("should reject an expired token", func() {
			tokenIssuer.TimeNow = func() time.Time {
				return time.Now().Add(-2 * time.Hour)
			}
			token, _, err := service.Issue(info)
			Expect(err).NotTo(HaveOccurred())
			tokenIssuer.TimeNow = time.Now

			_, err = service.Validate(token)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})

		It("should reject a token signed with an unexpected algorithm", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
				"sub": "42",
				"exp": time.Now().Add(time.Hour).Unix(),
			})
			signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
