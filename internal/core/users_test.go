package core_test

import (
	"context"
	"errors"
	"time"

	"vagas/internal/core"
	"vagas/internal/core/fake"
	apperrors "vagas/internal/errors"
	"vagas/internal/repository"
	tokenIssuer "vagas/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt of "testpass"
const testpassHash = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky"

func ptr[T any](v T) *T {
	return &v
}

var _ = Describe("UserService", func() {
	var (
		service    *core.UserService
		fakeUsers  *fake.UserRepository
		fakeTokens *fake.TokenIssuer
		ctx        context.Context
		fakeErr    error
		storedUser repository.User
	)

	BeforeEach(func() {
		fakeUsers = new(fake.UserRepository)
		fakeTokens = new(fake.TokenIssuer)
		service = core.NewUserService(zap.NewNop().Sugar(), fakeUsers, fakeTokens, time.Hour)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		storedUser = repository.User{
			ID:           3,
			Name:         "A",
			Email:        "a@x.com",
			PasswordHash: testpassHash,
			CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		}
	})

	Describe("Register", func() {
		var (
			reg     core.Registration
			profile core.Profile
			err     error
		)

		BeforeEach(func() {
			reg = core.Registration{
				Name:     "A",
				Email:    "  A@X.com ",
				Password: "testpass",
			}
			fakeUsers.CreateUserStub = func(_ context.Context, user repository.User) (repository.User, error) {
				user.ID = 3
				return user, nil
			}
		})

		JustBeforeEach(func() {
			profile, err = service.Register(ctx, reg)
		})

		It("should store a bcrypt hash instead of the password", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeUsers.CreateUserCallCount()).To(Equal(1))

			_, user := fakeUsers.CreateUserArgsForCall(0)
			Expect(user.PasswordHash).NotTo(Equal("testpass"))
			Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("testpass"))).To(Succeed())
		})

		It("should normalize the email", func() {
			_, user := fakeUsers.CreateUserArgsForCall(0)
			Expect(user.Email).To(Equal("a@x.com"))
		})

		It("should return the public profile", func() {
			Expect(profile).To(Equal(core.Profile{ID: 3, Name: "A", Email: "a@x.com"}))
		})

		When("a field is missing", func() {
			BeforeEach(func() {
				reg.Name = ""
			})

			It("should return an invalid input error without storing anything", func() {
				Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeInvalidInput))
				Expect(fakeUsers.CreateUserCallCount()).To(BeZero())
			})
		})

		When("the email is malformed", func() {
			BeforeEach(func() {
				reg.Email = "not-an-email"
			})

			It("should return an invalid input error", func() {
				Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeInvalidInput))
			})
		})

		When("the password is too short", func() {
			BeforeEach(func() {
				reg.Password = "abc"
			})

			It("should return an invalid input error", func() {
				Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeInvalidInput))
			})
		})

		When("the email is already registered", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserStub = nil
				fakeUsers.CreateUserReturns(repository.User{}, repository.ErrEmailTaken)
			})

			It("should return a conflict error", func() {
				Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeConflict))
				Expect(errors.Is(err, repository.ErrEmailTaken)).To(BeTrue())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserStub = nil
				fakeUsers.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return an internal error", func() {
				Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeInternal))
				Expect(apperrors.MessageOf(err)).To(Equal("could not register user"))
			})
		})
	})

	Describe("Login", func() {
		var (
			creds   core.Credentials
			session core.Session
			err     error
			now     time.Time
		)

		BeforeEach(func() {
			now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
			tokenIssuer.TimeNow = func() time.Time { return now }
			DeferCleanup(func() { tokenIssuer.TimeNow = time.Now })

			creds = core.Credentials{Email: "A@x.com", Password: "testpass"}
			fakeUsers.GetUserByEmailReturns(storedUser, nil)
			fakeTokens.IssueReturns("signed-token", now.Add(time.Hour).Add(-time.Second), nil)
		})

		JustBeforeEach(func() {
			session, err = service.Login(ctx, creds)
		})

		It("should look the user up by the normalized email", func() {
			Expect(err).NotTo(HaveOccurred())
			_, email := fakeUsers.GetUserByEmailArgsForCall(0)
			Expect(email).To(Equal("a@x.com"))
		})

		It("should issue a token for the user", func() {
			Expect(fakeTokens.IssueCallCount()).To(Equal(1))
			Expect(fakeTokens.IssueArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
				UserID:     3,
				Email:      "a@x.com",
				Expiration: time.Hour,
			}))
		})

		It("should return the token with the profile", func() {
			Expect(session.Token).To(Equal("signed-token"))
			Expect(session.ExpiresAt).To(Equal(now.Add(time.Hour).Add(-time.Second)))
			Expect(session.User.ID).To(Equal(uint(3)))
			Expect(session.User.Email).To(Equal("a@x.com"))
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				creds.Password = "wrongpass"
			})

			It("should return a generic unauthorized error", func() {
				Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeUnauthorized))
				Expect(apperrors.MessageOf(err)).To(Equal("invalid credentials"))
				Expect(fakeTokens.IssueCallCount()).To(BeZero())
			})
		})

		When("the email is unknown", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return the same unauthorized error as a wrong password", func() {
				Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeUnauthorized))
				Expect(apperrors.MessageOf(err)).To(Equal("invalid credentials"))
				Expect(errors.Is(err, core.ErrInvalidCredentials)).To(BeTrue())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should return an internal error", func() {
				Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeInternal))
			})
		})

		When("the token cannot be signed", func() {
			BeforeEach(func() {
				fakeTokens.IssueReturns("", time.Time{}, fakeErr)
			})

			It("should return an internal error", func() {
				Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeInternal))
				Expect(err).To(MatchError(ContainSubstring("issue token: fake error")))
			})
		})
	})

	Describe("ListUsers", func() {
		It("should return profiles for every stored user", func() {
			fakeUsers.ListUsersReturns([]repository.User{storedUser, {ID: 4, Name: "B", Email: "b@x.com"}}, nil)

			profiles, err := service.ListUsers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(profiles).To(HaveLen(2))
			Expect(profiles[0].Email).To(Equal("a@x.com"))
			Expect(profiles[1].ID).To(Equal(uint(4)))
		})

		It("should return an internal error when the store fails", func() {
			fakeUsers.ListUsersReturns(nil, fakeErr)

			_, err := service.ListUsers(ctx)
			Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeInternal))
		})
	})

	Describe("GetUser", func() {
		It("should return the profile", func() {
			fakeUsers.GetUserByIDReturns(storedUser, nil)

			profile, err := service.GetUser(ctx, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.Name).To(Equal("A"))

			_, id := fakeUsers.GetUserByIDArgsForCall(0)
			Expect(id).To(Equal(uint(3)))
		})

		It("should return a not found error for an unknown id", func() {
			fakeUsers.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)

			_, err := service.GetUser(ctx, 99)
			Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeNotFound))
			Expect(apperrors.MessageOf(err)).To(Equal("user not found"))
		})
	})

	Describe("PatchUser", func() {
		BeforeEach(func() {
			fakeUsers.UpdateUserReturns(repository.User{ID: 3, Name: "B", Email: "a@x.com"}, nil)
		})

		It("should forward only the supplied fields", func() {
			profile, err := service.PatchUser(ctx, 3, core.UserPatch{Name: ptr("B")})
			Expect(err).NotTo(HaveOccurred())
			Expect(profile).To(Equal(core.Profile{ID: 3, Name: "B", Email: "a@x.com"}))

			_, id, changes := fakeUsers.UpdateUserArgsForCall(0)
			Expect(id).To(Equal(uint(3)))
			Expect(changes).To(Equal(repository.UserChanges{Name: ptr("B")}))
		})

		It("should hash a supplied password", func() {
			_, err := service.PatchUser(ctx, 3, core.UserPatch{Password: ptr("newpassword")})
			Expect(err).NotTo(HaveOccurred())

			_, _, changes := fakeUsers.UpdateUserArgsForCall(0)
			Expect(changes.Name).To(BeNil())
			Expect(changes.Email).To(BeNil())
			Expect(changes.PasswordHash).NotTo(BeNil())
			Expect(*changes.PasswordHash).NotTo(Equal("newpassword"))
			Expect(bcrypt.CompareHashAndPassword([]byte(*changes.PasswordHash), []byte("newpassword"))).To(Succeed())
		})

		It("should normalize a supplied email", func() {
			_, err := service.PatchUser(ctx, 3, core.UserPatch{Email: ptr(" B@X.com")})
			Expect(err).NotTo(HaveOccurred())

			_, _, changes := fakeUsers.UpdateUserArgsForCall(0)
			Expect(*changes.Email).To(Equal("b@x.com"))
		})

		It("should reject an empty name", func() {
			_, err := service.PatchUser(ctx, 3, core.UserPatch{Name: ptr("")})
			Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeInvalidInput))
			Expect(fakeUsers.UpdateUserCallCount()).To(BeZero())
		})

		It("should return a not found error for an unknown id", func() {
			fakeUsers.UpdateUserReturns(repository.User{}, repository.ErrUserNotFound)

			_, err := service.PatchUser(ctx, 99, core.UserPatch{Name: ptr("B")})
			Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeNotFound))
		})

		It("should return a conflict error when the email is taken", func() {
			fakeUsers.UpdateUserReturns(repository.User{}, repository.ErrEmailTaken)

			_, err := service.PatchUser(ctx, 3, core.UserPatch{Email: ptr("b@x.com")})
			Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeConflict))
		})
	})

	Describe("ReplaceUser", func() {
		It("should send every field with a hashed password", func() {
			fakeUsers.UpdateUserReturns(storedUser, nil)

			_, err := service.ReplaceUser(ctx, 3, core.Registration{Name: "C", Email: "c@x.com", Password: "secret1"})
			Expect(err).NotTo(HaveOccurred())

			_, _, changes := fakeUsers.UpdateUserArgsForCall(0)
			Expect(*changes.Name).To(Equal("C"))
			Expect(*changes.Email).To(Equal("c@x.com"))
			Expect(bcrypt.CompareHashAndPassword([]byte(*changes.PasswordHash), []byte("secret1"))).To(Succeed())
		})

		It("should require every field", func() {
			_, err := service.ReplaceUser(ctx, 3, core.Registration{Name: "C"})
			Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeInvalidInput))
			Expect(fakeUsers.UpdateUserCallCount()).To(BeZero())
		})
	})

	Describe("DeleteUser", func() {
		It("should return the deleted profile", func() {
			fakeUsers.DeleteUserReturns(storedUser, nil)

			profile, err := service.DeleteUser(ctx, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.ID).To(Equal(uint(3)))
		})

		It("should return a not found error on every delete of a missing id", func() {
			fakeUsers.DeleteUserReturns(repository.User{}, repository.ErrUserNotFound)

			_, err := service.DeleteUser(ctx, 3)
			Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeNotFound))
			_, err = service.DeleteUser(ctx, 3)
			Expect(apperrors.TypeOf(err)).To(Equal(apperrors.ErrTypeNotFound))
		})
	})

	Describe("SeedAdmin", func() {
		It("should seed a single hashed account", func() {
			err := service.SeedAdmin(ctx, core.Registration{Name: "Admin", Email: "Admin@x.com", Password: "changeme"})
			Expect(err).NotTo(HaveOccurred())

			_, users := fakeUsers.SeedUsersArgsForCall(0)
			Expect(users).To(HaveLen(1))
			Expect(users[0].Email).To(Equal("admin@x.com"))
			Expect(bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("changeme"))).To(Succeed())
		})

		It("should reject an invalid account", func() {
			err := service.SeedAdmin(ctx, core.Registration{Name: "Admin", Email: "nope", Password: "changeme"})
			Expect(err).To(MatchError(ContainSubstring("validate seed account")))
			Expect(fakeUsers.SeedUsersCallCount()).To(BeZero())
		})

		It("should wrap store errors", func() {
			fakeUsers.SeedUsersReturns(fakeErr)

			err := service.SeedAdmin(ctx, core.Registration{Name: "Admin", Email: "admin@x.com", Password: "changeme"})
			Expect(err).To(MatchError("seed admin: fake error"))
		})
	})
})
