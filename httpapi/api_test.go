package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/taskbox/taskbox/auth"
	"github.com/taskbox/taskbox/auth/gate"
	"github.com/taskbox/taskbox/internal/testutil"
)

func testHandler(t *testing.T) (http.Handler, func()) {
	ctx := context.Background()
	st, cleanup := testutil.AcquireStore(ctx, t)
	codec, err := auth.NewCodec([]byte("0123456789abcdef0123456789abcdef"))
	if err != nil {
		cleanup()
		t.Fatal(err)
	}
	g := gate.New(codec, auth.NewClaimsCache())
	return New(st, codec).Handler(g), cleanup
}

// signupAndLogin registers a user through the API and returns the token
// cookie from the login response plus the new user's id.
func signupAndLogin(t *testing.T, handler http.Handler, name, email, password string) (token string, userID int64) {
	result := apitest.Handler(handler).
		Post("/api/auth/signup").
		JSON(map[string]string{"name": name, "email": email, "password": password}).
		Expect(t).
		Status(http.StatusCreated).
		End()
	var created struct {
		ID int64 `json:"id"`
	}
	result.JSON(&created)

	result = apitest.Handler(handler).
		Post("/api/auth/login").
		JSON(map[string]string{"email": email, "password": password}).
		Expect(t).
		Status(http.StatusOK).
		End()
	for _, c := range result.Response.Cookies() {
		if c.Name == auth.TokenCookie {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("login did not set the token cookie")
	}
	return token, created.ID
}

func TestSignupLoginScenario(t *testing.T) {
	handler, cleanup := testHandler(t)
	defer cleanup()

	apitest.Handler(handler).
		Post("/api/auth/signup").
		JSON(map[string]string{"name": "Ann", "email": "ann@x.com", "password": "pw123456"}).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.name", "Ann")).
		Assert(jsonpath.Equal("$.email", "ann@x.com")).
		Assert(jsonpath.NotPresent("$.password")).
		Assert(jsonpath.NotPresent("$.password_hash")).
		End()

	result := apitest.Handler(handler).
		Post("/api/auth/login").
		JSON(map[string]string{"email": "ann@x.com", "password": "pw123456"}).
		Expect(t).
		Status(http.StatusOK).
		End()
	var token string
	for _, c := range result.Response.Cookies() {
		if c.Name == auth.TokenCookie {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("login did not set the token cookie")
	}

	// protected resource without the cookie
	apitest.Handler(handler).
		Get("/api/tasks").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	// and with it
	apitest.Handler(handler).
		Get("/api/tasks").
		Cookie(auth.TokenCookie, token).
		Expect(t).
		Status(http.StatusOK).
		End()
}

func TestSignupValidation(t *testing.T) {
	handler, cleanup := testHandler(t)
	defer cleanup()

	for _, body := range []map[string]string{
		{"email": "ann@x.com", "password": "pw123456"},
		{"name": "Ann", "password": "pw123456"},
		{"name": "Ann", "email": "ann@x.com"},
	} {
		apitest.Handler(handler).
			Post("/api/auth/signup").
			JSON(body).
			Expect(t).
			Status(http.StatusBadRequest).
			End()
	}

	apitest.Handler(handler).
		Post("/api/auth/signup").
		JSON(map[string]string{"name": "Ann", "email": "ann@x.com", "password": "pw123456"}).
		Expect(t).
		Status(http.StatusCreated).
		End()
	apitest.Handler(handler).
		Post("/api/auth/signup").
		JSON(map[string]string{"name": "Ann Again", "email": "ann@x.com", "password": "other"}).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestLoginFailureIsUniform(t *testing.T) {
	handler, cleanup := testHandler(t)
	defer cleanup()
	signupAndLogin(t, handler, "Ann", "ann@x.com", "pw123456")

	wrongPassword := apitest.Handler(handler).
		Post("/api/auth/login").
		JSON(map[string]string{"email": "ann@x.com", "password": "nope"}).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
	unknownUser := apitest.Handler(handler).
		Post("/api/auth/login").
		JSON(map[string]string{"email": "ghost@x.com", "password": "nope"}).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	// the two failures must be indistinguishable from outside
	var a, b errorBody
	wrongPassword.JSON(&a)
	unknownUser.JSON(&b)
	if a != b {
		t.Fatalf("login failures leak which part was wrong: %+v vs %+v", a, b)
	}
}

func TestLoginValidation(t *testing.T) {
	handler, cleanup := testHandler(t)
	defer cleanup()

	apitest.Handler(handler).
		Post("/api/auth/login").
		JSON(map[string]string{"email": "ann@x.com"}).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
	apitest.Handler(handler).
		Post("/api/auth/login").
		Body("this is not json").
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestTamperedCookieIsRejected(t *testing.T) {
	handler, cleanup := testHandler(t)
	defer cleanup()
	token, _ := signupAndLogin(t, handler, "Ann", "ann@x.com", "pw123456")

	tampered := token[:len(token)-2] + "xx"
	apitest.Handler(handler).
		Get("/api/tasks").
		Cookie(auth.TokenCookie, tampered).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestDashboard(t *testing.T) {
	handler, cleanup := testHandler(t)
	defer cleanup()
	token, _ := signupAndLogin(t, handler, "Ann", "ann@x.com", "pw123456")

	apitest.Handler(handler).
		Post("/api/tasks").
		Cookie(auth.TokenCookie, token).
		JSON(map[string]any{"title": "first"}).
		Expect(t).
		Status(http.StatusCreated).
		End()
	result := apitest.Handler(handler).
		Post("/api/tasks").
		Cookie(auth.TokenCookie, token).
		JSON(map[string]any{"title": "second"}).
		Expect(t).
		Status(http.StatusCreated).
		End()
	var created taskBody
	result.JSON(&created)
	apitest.Handler(handler).
		Put("/api/tasks").
		Cookie(auth.TokenCookie, token).
		JSON(map[string]any{"id": created.ID, "completed": true}).
		Expect(t).
		Status(http.StatusOK).
		End()
	apitest.Handler(handler).
		Post("/api/projects").
		Cookie(auth.TokenCookie, token).
		JSON(map[string]any{"name": "house"}).
		Expect(t).
		Status(http.StatusCreated).
		End()

	apitest.Handler(handler).
		Get("/api/dashboard").
		Cookie(auth.TokenCookie, token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.total_tasks", float64(2))).
		Assert(jsonpath.Equal("$.completed_tasks", float64(1))).
		Assert(jsonpath.Equal("$.pending_tasks", float64(1))).
		Assert(jsonpath.Equal("$.total_projects", float64(1))).
		End()
}
