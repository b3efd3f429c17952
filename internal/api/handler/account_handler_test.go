package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentcast/jobposting-api/internal/core/domain"
	"github.com/talentcast/jobposting-api/internal/core/ports"
)

type stubAccountService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error)
	verifyFn func(ctx context.Context, token string) (*ports.AuthResult, error)
	signinFn func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAccountService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAccountService) Verify(ctx context.Context, token string) (*ports.AuthResult, error) {
	return s.verifyFn(ctx, token)
}

func (s *stubAccountService) Signin(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.signinFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func authResult(id string, verified bool) *ports.AuthResult {
	return &ports.AuthResult{
		Session: ports.Session{Token: "signed." + id, ExpiresAt: time.Now().Add(24 * time.Hour)},
		Account: &domain.Account{
			ID:           id,
			Name:         "Ada",
			CompanyName:  "Acme",
			CompanyEmail: "hr@acme.test",
			Secret:       "secret1",
			IsVerified:   verified,
		},
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			return ck
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func validationIssues(t *testing.T, err error) []domain.Issue {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return verr.Issues
}

const validSignup = `{"name":"Ada","phoneNumber":"5551234567","companyName":"Acme","companyEmail":"hr@acme.test","password":"secret1"}`

func TestAccountHandler_Signup_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
			if in.CompanyEmail != "hr@acme.test" || in.PhoneNumber != "5551234567" || in.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return authResult("acc-1", false), nil
		},
	}
	handler := NewAccountHandler(stub, SessionCookie{Secure: true, MaxAge: 24 * time.Hour})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/v1/user/signup", validSignup), rec)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Signup successful. Please check your email to verify your account." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["accountId"] != "acc-1" {
		t.Fatalf("unexpected account id: %v", resp["accountId"])
	}
	if strings.Contains(rec.Body.String(), "secret1") {
		t.Fatalf("secret leaked in response: %s", rec.Body.String())
	}

	ck := sessionCookie(t, rec)
	if ck.Value != "signed.acc-1" {
		t.Fatalf("unexpected cookie value %q", ck.Value)
	}
	if !ck.HttpOnly || !ck.Secure || ck.SameSite != http.SameSiteStrictMode {
		t.Fatalf("unexpected cookie flags: %+v", ck)
	}
	if ck.MaxAge != 86400 {
		t.Fatalf("expected max-age 86400, got %d", ck.MaxAge)
	}
}

func TestAccountHandler_Signup_ValidationIssues(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub, SessionCookie{})

	body := `{"name":"","phoneNumber":"123","companyName":"Acme","companyEmail":"not-an-email","password":"abc"}`
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/v1/user/signup", body), httptest.NewRecorder())

	issues := validationIssues(t, handler.Signup(c))
	fields := map[string]string{}
	for _, is := range issues {
		fields[is.Field] = is.Tag
	}
	want := map[string]string{"name": "required", "phoneNumber": "min", "companyEmail": "email", "password": "min"}
	for field, tag := range want {
		if fields[field] != tag {
			t.Fatalf("expected %s issue on %s, got %+v", tag, field, issues)
		}
	}
	if len(issues) != len(want) {
		t.Fatalf("expected %d issues, got %+v", len(want), issues)
	}
}

func TestAccountHandler_Signup_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub, SessionCookie{})

	c := e.NewContext(jsonRequest(http.MethodPost, "/api/v1/user/signup", "not-json"), httptest.NewRecorder())

	issues := validationIssues(t, handler.Signup(c))
	if issues[0].Field != "body" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestAccountHandler_Signup_ServiceErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"duplicate email", domain.ErrAccountExists, domain.ErrAccountExists},
		{"mail failed", &domain.EmailDeliveryError{Detail: "550"}, domain.ErrEmailDelivery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAccountService{
				signupFn: func(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
					return nil, tt.err
				},
			}
			handler := NewAccountHandler(stub, SessionCookie{})
			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/api/v1/user/signup", validSignup), rec)

			err := handler.Signup(c)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Fatalf("cookie must not be set on failure")
			}
		})
	}
}

func TestAccountHandler_Verify_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		verifyFn: func(ctx context.Context, token string) (*ports.AuthResult, error) {
			if token != "abc123" {
				t.Fatalf("unexpected token %q", token)
			}
			return authResult("acc-1", true), nil
		},
	}
	handler := NewAccountHandler(stub, SessionCookie{MaxAge: 24 * time.Hour})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/user/verify/abc123", nil), rec)
	c.SetParamNames("token")
	c.SetParamValues("abc123")

	if err := handler.Verify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Account verified successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if ck := sessionCookie(t, rec); ck.Secure {
		t.Fatalf("cookie must not be secure outside production")
	}
}

func TestAccountHandler_Verify_InvalidToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		verifyFn: func(ctx context.Context, token string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidVerificationToken
		},
	}
	handler := NewAccountHandler(stub, SessionCookie{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("token")
	c.SetParamValues("used")

	if err := handler.Verify(c); !errors.Is(err, domain.ErrInvalidVerificationToken) {
		t.Fatalf("expected ErrInvalidVerificationToken, got %v", err)
	}
}

func TestAccountHandler_Signin_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		signinFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "hr@acme.test" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return authResult("acc-1", true), nil
		},
	}
	handler := NewAccountHandler(stub, SessionCookie{MaxAge: 24 * time.Hour})

	rec := httptest.NewRecorder()
	body := `{"companyEmail":"hr@acme.test","password":"secret1"}`
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/v1/user/signin", body), rec)

	if err := handler.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Signin successful" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if resp.User["id"] != "acc-1" || resp.User["companyEmail"] != "hr@acme.test" || resp.User["companyName"] != "Acme" || resp.User["name"] != "Ada" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
	if len(resp.User) != 4 {
		t.Fatalf("user summary must carry exactly four fields: %+v", resp.User)
	}
	sessionCookie(t, rec)
}

func TestAccountHandler_Signin_Failures(t *testing.T) {
	for _, want := range []error{domain.ErrUnknownEmail, domain.ErrInvalidCredentials, domain.ErrAccountNotVerified} {
		t.Run(want.Error(), func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAccountService{
				signinFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
					return nil, want
				},
			}
			handler := NewAccountHandler(stub, SessionCookie{})
			body := `{"companyEmail":"hr@acme.test","password":"secret1"}`
			c := e.NewContext(jsonRequest(http.MethodPost, "/api/v1/user/signin", body), httptest.NewRecorder())

			if err := handler.Signin(c); !errors.Is(err, want) {
				t.Fatalf("expected %v, got %v", want, err)
			}
		})
	}
}

func TestAccountHandler_Signin_ShortPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		signinFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub, SessionCookie{})
	c := e.NewContext(jsonRequest(http.MethodPost, "/", `{"companyEmail":"hr@acme.test","password":"123"}`), httptest.NewRecorder())

	issues := validationIssues(t, handler.Signin(c))
	if len(issues) != 1 || issues[0].Field != "password" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestAccountHandler_Health(t *testing.T) {
	e := newTestEcho()
	handler := NewAccountHandler(&stubAccountService{}, SessionCookie{})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/user/health", nil), rec)
		if err := handler.Health(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK || rec.Body.String() != "Hi there from userRouter" {
			t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
		}
	}
}
