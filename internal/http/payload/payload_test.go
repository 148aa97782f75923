package payload_test

import (
	"net/http/httptest"
	"strings"
	"time"

	"vagas/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	decode := func(body string, object any) error {
		req := httptest.NewRequest("POST", "/api/usuario/register", strings.NewReader(body))
		return dv.DecodeAndValidateJSONPayload(req, object)
	}

	It("should decode and validate a valid body", func() {
		var reg payload.RegisterRequest
		Expect(decode(`{"name":"A","email":"a@x.com","password":"testpass"}`, &reg)).To(Succeed())
		Expect(reg.Name).To(Equal("A"))
		Expect(reg.ToRegistration().Password).To(Equal("testpass"))
	})

	It("should reject unknown fields", func() {
		var reg payload.RegisterRequest
		err := decode(`{"name":"A","email":"a@x.com","password":"testpass","admin":true}`, &reg)
		Expect(err).To(MatchError(ContainSubstring("unknown field")))
	})

	It("should reject an empty body", func() {
		var reg payload.RegisterRequest
		Expect(decode(``, &reg)).To(MatchError(payload.ErrEmptyBody))
	})

	It("should reject trailing data", func() {
		var login payload.LoginRequest
		err := decode(`{"email":"a@x.com","password":"p"} {}`, &login)
		Expect(err).To(MatchError(ContainSubstring("unexpected data")))
	})

	It("should reject a body above the size limit", func() {
		var reg payload.RegisterRequest
		big := `{"name":"` + strings.Repeat("a", payload.MaxBodyBytes) + `"}`
		Expect(decode(big, &reg)).To(HaveOccurred())
	})

	It("should report validation failures", func() {
		var reg payload.RegisterRequest
		err := decode(`{"name":"A"}`, &reg)
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
		Expect(err).To(MatchError(ContainSubstring("email: cannot be blank")))
	})

	It("should skip validation for types without a Validate method", func() {
		var raw map[string]any
		Expect(decode(`{"anything":1}`, &raw)).To(Succeed())
	})
})

var _ = Describe("PatchUserRequest", func() {
	It("should accept an empty patch", func() {
		Expect(payload.PatchUserRequest{}.Validate()).To(Succeed())
	})

	It("should reject a supplied empty field", func() {
		empty := ""
		Expect(payload.PatchUserRequest{Name: &empty}.Validate()).To(HaveOccurred())
	})

	It("should keep absent fields nil", func() {
		name := "B"
		patch := payload.PatchUserRequest{Name: &name}.ToPatch()
		Expect(*patch.Name).To(Equal("B"))
		Expect(patch.Email).To(BeNil())
		Expect(patch.Password).To(BeNil())
	})
})

var _ = Describe("JobRequest", func() {
	var req payload.JobRequest

	BeforeEach(func() {
		req = payload.JobRequest{
			Title:        "Go developer",
			Description:  "Build APIs",
			PostedAt:     "2024-05-01",
			ContactPhone: "+55 11 99999-0000",
			Status:       "active",
			Company:      "Acme",
		}
	})

	It("should accept a complete request", func() {
		Expect(req.Validate()).To(Succeed())
	})

	DescribeTable("missing fields",
		func(mutate func(*payload.JobRequest), field string) {
			mutate(&req)
			Expect(req.Validate()).To(MatchError(ContainSubstring(field + ": cannot be blank")))
		},
		Entry("title", func(r *payload.JobRequest) { r.Title = "" }, "title"),
		Entry("description", func(r *payload.JobRequest) { r.Description = "" }, "description"),
		Entry("postedAt", func(r *payload.JobRequest) { r.PostedAt = "" }, "postedAt"),
		Entry("contactPhone", func(r *payload.JobRequest) { r.ContactPhone = "" }, "contactPhone"),
		Entry("status", func(r *payload.JobRequest) { r.Status = "" }, "status"),
		Entry("company", func(r *payload.JobRequest) { r.Company = "" }, "company"),
	)

	It("should reject an unparsable date", func() {
		req.PostedAt = "01/05/2024"
		Expect(req.Validate()).To(MatchError(ContainSubstring("postedAt")))
	})

	It("should convert a calendar date to midnight UTC", func() {
		draft := req.ToDraft()
		Expect(draft.PostedAt).To(Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
		Expect(draft.Company).To(Equal("Acme"))
	})

	It("should keep the instant of an RFC 3339 timestamp", func() {
		req.PostedAt = "2024-05-01T10:30:00-03:00"
		draft := req.ToDraft()
		Expect(draft.PostedAt.Equal(time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC))).To(BeTrue())
	})
})
