package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/skillbridge/internal/logging"
	"github.com/dmitrijs2005/skillbridge/internal/server/config"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/skillbridge/internal/server/services"
)

type testAPI struct {
	handler http.Handler
	users   *services.UserService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := repomanager.NewInMemoryRepositoryManager()

	userSvc := services.NewUserService(m, cfg, logger)
	srv := NewServer(cfg,
		userSvc,
		services.NewCourseService(m, logger),
		services.NewSessionService(m, logger),
		services.NewDoubtService(m, logger),
		logger,
	)
	return &testAPI{handler: srv.Handler(), users: userSvc}
}

// signup creates an account through the service layer and returns its id
// and a valid bearer token.
func (a *testAPI) signup(t *testing.T, name, email string, role models.Role) (string, string) {
	t.Helper()
	user, token, err := a.users.Register(context.Background(), name, email, "password123", role)
	require.NoError(t, err)
	return user.ID, token
}

func bearer(token string) string {
	return "Bearer " + token
}

func TestRegisterAndDuplicate(t *testing.T) {
	api := newTestAPI(t)

	apitest.New().
		Handler(api.handler).
		Post("/api/register").
		JSON(`{"name":"Alice","email":"alice@example.com","password":"pw123456","type":"student"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		Assert(jsonpath.Equal(`$.user.name`, "Alice")).
		Assert(jsonpath.Equal(`$.user.type`, "student")).
		Assert(jsonpath.Present(`$.token`)).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/register").
		JSON(`{"name":"Other","email":"alice@example.com","password":"pw","type":"mentor"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "User with this email already exists")).
		End()
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)
	api.signup(t, "Alice", "alice@example.com", models.RoleStudent)

	apitest.New().
		Handler(api.handler).
		Post("/api/login").
		JSON(`{"email":"alice@example.com","password":"password123"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		Assert(jsonpath.Equal(`$.user.email`, "alice@example.com")).
		Assert(jsonpath.Present(`$.token`)).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/login").
		JSON(`{"email":"alice@example.com","password":"wrong"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "Invalid email or password")).
		End()
}

func TestAuthMiddleware(t *testing.T) {
	api := newTestAPI(t)

	apitest.New().
		Handler(api.handler).
		Get("/api/profile").
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal(`$.message`, "Access token required")).
		End()

	apitest.New().
		Handler(api.handler).
		Get("/api/profile").
		Header("Authorization", "Bearer not-a-token").
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Invalid or expired token")).
		End()
}

func TestCoursesPublicListing(t *testing.T) {
	api := newTestAPI(t)

	// no token needed on the read side
	apitest.New().
		Handler(api.handler).
		Get("/api/courses").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		End()

	apitest.New().
		Handler(api.handler).
		Get("/api/courses/999").
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal(`$.message`, "Course not found")).
		End()
}

func TestCourseRoleGates(t *testing.T) {
	api := newTestAPI(t)
	_, studentToken := api.signup(t, "Alice", "alice@example.com", models.RoleStudent)
	_, mentorToken := api.signup(t, "John", "john@example.com", models.RoleMentor)

	apitest.New().
		Handler(api.handler).
		Post("/api/courses").
		Header("Authorization", bearer(studentToken)).
		JSON(`{"title":"Go Basics"}`).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Mentor access required")).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/courses").
		Header("Authorization", bearer(mentorToken)).
		JSON(`{"title":"Go Basics","price":49.99,"level":"beginner"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		Assert(jsonpath.Equal(`$.course.title`, "Go Basics")).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/courses/1/enroll").
		Header("Authorization", bearer(mentorToken)).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Student access required")).
		End()
}

func TestCourseOwnership(t *testing.T) {
	api := newTestAPI(t)
	_, ownerToken := api.signup(t, "John", "john@example.com", models.RoleMentor)
	_, otherToken := api.signup(t, "Jane", "jane@example.com", models.RoleMentor)

	apitest.New().
		Handler(api.handler).
		Post("/api/courses").
		Header("Authorization", bearer(ownerToken)).
		JSON(`{"title":"Go Basics"}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.New().
		Handler(api.handler).
		Put("/api/courses/1").
		Header("Authorization", bearer(otherToken)).
		JSON(`{"title":"Hijacked"}`).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Can only edit your own courses")).
		End()

	apitest.New().
		Handler(api.handler).
		Delete("/api/courses/1").
		Header("Authorization", bearer(otherToken)).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Can only delete your own courses")).
		End()

	apitest.New().
		Handler(api.handler).
		Put("/api/courses/1").
		Header("Authorization", bearer(ownerToken)).
		JSON(`{"title":"Go Basics v2"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.course.title`, "Go Basics v2")).
		End()

	apitest.New().
		Handler(api.handler).
		Delete("/api/courses/1").
		Header("Authorization", bearer(ownerToken)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "Course deleted successfully")).
		End()
}

func TestEnrollment(t *testing.T) {
	api := newTestAPI(t)
	_, mentorToken := api.signup(t, "John", "john@example.com", models.RoleMentor)
	_, studentToken := api.signup(t, "Alice", "alice@example.com", models.RoleStudent)

	apitest.New().
		Handler(api.handler).
		Post("/api/courses").
		Header("Authorization", bearer(mentorToken)).
		JSON(`{"title":"Go Basics"}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/courses/1/enroll").
		Header("Authorization", bearer(studentToken)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "Successfully enrolled in course")).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/courses/1/enroll").
		Header("Authorization", bearer(studentToken)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "Already enrolled in this course")).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/courses/999/enroll").
		Header("Authorization", bearer(studentToken)).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal(`$.message`, "Course not found")).
		End()
}

func TestAdminUserSurface(t *testing.T) {
	api := newTestAPI(t)
	_, studentToken := api.signup(t, "Alice", "alice@example.com", models.RoleStudent)
	_, adminToken := api.signup(t, "Admin", "admin@skillbridge.com", models.RoleAdmin)

	apitest.New().
		Handler(api.handler).
		Get("/api/users").
		Header("Authorization", bearer(studentToken)).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Admin access required")).
		End()

	apitest.New().
		Handler(api.handler).
		Get("/api/users").
		Header("Authorization", bearer(adminToken)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		Assert(jsonpath.Len(`$.users`, 2)).
		Assert(jsonpath.NotPresent(`$.users[0].passwordHash`)).
		End()

	apitest.New().
		Handler(api.handler).
		Delete("/api/users/1").
		Header("Authorization", bearer(adminToken)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "User deleted successfully")).
		End()

	apitest.New().
		Handler(api.handler).
		Delete("/api/users/999").
		Header("Authorization", bearer(adminToken)).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal(`$.message`, "User not found")).
		End()
}

func TestProfile(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.signup(t, "Alice", "alice@example.com", models.RoleStudent)

	apitest.New().
		Handler(api.handler).
		Get("/api/profile").
		Header("Authorization", bearer(token)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.user.email`, "alice@example.com")).
		End()

	apitest.New().
		Handler(api.handler).
		Put("/api/profile").
		Header("Authorization", bearer(token)).
		JSON(`{"name":"Alice B.","email":"alice.b@example.com"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.user.name`, "Alice B.")).
		Assert(jsonpath.Equal(`$.user.type`, "student")).
		End()
}

func TestSessionLifecycle(t *testing.T) {
	api := newTestAPI(t)
	mentorID, mentorToken := api.signup(t, "John", "john@example.com", models.RoleMentor)
	_, otherMentorToken := api.signup(t, "Jane", "jane@example.com", models.RoleMentor)
	_, studentToken := api.signup(t, "Alice", "alice@example.com", models.RoleStudent)

	apitest.New().
		Handler(api.handler).
		Post("/api/sessions").
		Header("Authorization", bearer(mentorToken)).
		JSON(`{"mentorId":"`+mentorID+`","subject":"Goroutines"}`).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Student access required")).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/sessions").
		Header("Authorization", bearer(studentToken)).
		JSON(`{"mentorId":"`+mentorID+`","date":"2026-09-10","time":"15:00","subject":"Goroutines"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.session.status`, "pending")).
		End()

	apitest.New().
		Handler(api.handler).
		Put("/api/sessions/1").
		Header("Authorization", bearer(otherMentorToken)).
		JSON(`{"status":"accepted"}`).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Can only manage your own sessions")).
		End()

	apitest.New().
		Handler(api.handler).
		Put("/api/sessions/1").
		Header("Authorization", bearer(mentorToken)).
		JSON(`{"status":"accepted"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.session.status`, "accepted")).
		End()

	apitest.New().
		Handler(api.handler).
		Delete("/api/sessions/1").
		Header("Authorization", bearer(otherMentorToken)).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Can only delete your own sessions")).
		End()

	apitest.New().
		Handler(api.handler).
		Delete("/api/sessions/1").
		Header("Authorization", bearer(studentToken)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "Session deleted successfully")).
		End()
}

func TestDoubts(t *testing.T) {
	api := newTestAPI(t)
	_, mentorToken := api.signup(t, "John", "john@example.com", models.RoleMentor)
	_, studentToken := api.signup(t, "Alice", "alice@example.com", models.RoleStudent)

	apitest.New().
		Handler(api.handler).
		Post("/api/doubts").
		Header("Authorization", bearer(mentorToken)).
		JSON(`{"subject":"Channels","question":"Why?"}`).
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "Student access required")).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/doubts").
		Header("Authorization", bearer(studentToken)).
		JSON(`{"subject":"Channels","question":"When does a send on a nil channel block?"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.doubt.status`, "open")).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/doubts/1/replies").
		Header("Authorization", bearer(mentorToken)).
		JSON(`{"message":"Forever."}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$.doubt.replies`, 1)).
		Assert(jsonpath.Equal(`$.doubt.replies[0].message`, "Forever.")).
		End()

	apitest.New().
		Handler(api.handler).
		Post("/api/doubts/999/replies").
		Header("Authorization", bearer(studentToken)).
		JSON(`{"message":"hello"}`).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal(`$.message`, "Doubt not found")).
		End()

	apitest.New().
		Handler(api.handler).
		Get("/api/doubts").
		Header("Authorization", bearer(studentToken)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$.doubts`, 1)).
		End()
}
