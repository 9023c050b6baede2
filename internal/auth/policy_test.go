package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/productivity-management/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Policy", func() {
	admin := &Identity{UserID: 1, Role: RoleAdmin}
	manager := &Identity{UserID: 2, Role: RoleManager}
	employee := &Identity{UserID: 3, Role: RoleEmployee}

	DescribeTable("Authorize",
		func(id *Identity, action Action, expected Decision) {
			Expect(Authorize(id, action)).To(Equal(expected))
		},
		Entry("anonymous caller", nil, ActionManageTasks, Unauthenticated),
		Entry("admin approves leave", admin, ActionApproveLeave, Allowed),
		Entry("manager approves leave", manager, ActionApproveLeave, Allowed),
		Entry("employee approves leave", employee, ActionApproveLeave, Forbidden),
		Entry("manager manages tasks", manager, ActionManageTasks, Allowed),
		Entry("employee manages tasks", employee, ActionManageTasks, Forbidden),
		Entry("employee manages milestones", employee, ActionManageMilestones, Forbidden),
		Entry("manager views all data", manager, ActionViewAllData, Allowed),
		Entry("employee manages records", employee, ActionManageRecords, Forbidden),
		Entry("admin deletes user", admin, ActionDeleteUser, Allowed),
		Entry("manager deletes user", manager, ActionDeleteUser, Forbidden),
		Entry("unknown role", &Identity{UserID: 9, Role: "guest"}, ActionViewAllData, Forbidden),
	)

	It("maps decisions onto app errors", func() {
		Expect(Allowed.Err()).To(BeNil())
		Expect(Forbidden.Err()).To(MatchError(internal.ErrForbidden))
		Expect(Unauthenticated.Err()).To(MatchError(internal.ErrUnauthenticated))
	})

	It("authorizes the identity stored in the context", func() {
		ctx := ContextWithIdentity(context.Background(), employee)
		Expect(Require(ctx, ActionManageTasks)).To(MatchError(internal.ErrForbidden))
		Expect(Require(context.Background(), ActionManageTasks)).To(MatchError(internal.ErrUnauthenticated))
		Expect(internal.UserIDFromContext(ctx)).To(Equal(int64(3)))
	})

	Describe("OwnerScope", func() {
		It("scopes employees to themselves", func() {
			scope := OwnerScope(employee)
			Expect(scope).NotTo(BeNil())
			Expect(*scope).To(Equal(int64(3)))
		})

		It("leaves managers and admins unscoped", func() {
			Expect(OwnerScope(manager)).To(BeNil())
			Expect(OwnerScope(admin)).To(BeNil())
		})

		It("checks single rows against the scope", func() {
			own, other := int64(3), int64(4)
			Expect(CanAccessOwned(employee, &own)).To(Succeed())
			Expect(CanAccessOwned(employee, &other)).To(MatchError(internal.ErrUnauthorizedAccess))
			Expect(CanAccessOwned(employee, nil)).To(MatchError(internal.ErrUnauthorizedAccess))
			Expect(CanAccessOwned(manager, &other)).To(Succeed())
			Expect(CanAccessOwned(nil, &own)).To(MatchError(internal.ErrUnauthenticated))
		})
	})
})

var _ = Describe("RBACAuthorization", func() {
	var (
		rbac *RBACAuthorization
		next http.Handler
	)

	BeforeEach(func() {
		rbac = NewRBACAuthorization(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	serve := func(id *Identity) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/leaves/1", nil)
		if id != nil {
			req = req.WithContext(ContextWithIdentity(req.Context(), id))
		}
		rec := httptest.NewRecorder()
		rbac.RequireApproveLeave()(next).ServeHTTP(rec, req)
		return rec
	}

	It("lets managers through", func() {
		Expect(serve(&Identity{UserID: 2, Role: RoleManager}).Code).To(Equal(http.StatusNoContent))
	})

	It("answers 403 with the envelope for employees", func() {
		rec := serve(&Identity{UserID: 3, Role: RoleEmployee})
		Expect(rec.Code).To(Equal(http.StatusForbidden))

		var body map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body["success"]).To(BeFalse())
		Expect(body["error"]).To(Equal("Forbidden: insufficient permissions"))
	})

	It("answers 401 without an identity", func() {
		Expect(serve(nil).Code).To(Equal(http.StatusUnauthorized))
	})
})
