package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentcast/jobposting-api/internal/api/metrics"
	"github.com/talentcast/jobposting-api/internal/core/domain"
	"github.com/talentcast/jobposting-api/internal/core/ports"
)

type AccountHandler struct {
	accounts ports.AccountService
	cookie   SessionCookie
}

func NewAccountHandler(accounts ports.AccountService, cookie SessionCookie) *AccountHandler {
	return &AccountHandler{accounts: accounts, cookie: cookie}
}

// Health handles GET /user/health.
//
// @Summary      Account router health
// @Tags         user
// @Produce      plain
// @Success      200  {string}  string
// @Router       /user/health [get]
func (h *AccountHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Hi there from userRouter")
}

// Signup creates a pending account, mails the verification link and opens a
// session.
//
// @Summary      Sign up a company account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/signup [post]
func (h *AccountHandler) Signup(c echo.Context) error {
	req := Parse[signupRequest](c)
	if !req.OK() {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return req.Err()
	}

	res, err := h.accounts.Signup(c.Request().Context(), ports.SignupInput{
		Name:         req.Value.Name,
		PhoneNumber:  req.Value.PhoneNumber,
		CompanyName:  req.Value.CompanyName,
		CompanyEmail: req.Value.CompanyEmail,
		Password:     req.Value.Password,
	})
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(signupResult(err)).Inc()
		return err
	}
	metrics.SignupsTotal.WithLabelValues("ok").Inc()

	h.cookie.set(c, res.Session)
	return c.JSON(http.StatusCreated, signupResponse{
		Message:   "Signup successful. Please check your email to verify your account.",
		AccountID: res.Account.ID,
	})
}

// Verify consumes a verification token and opens a session.
//
// @Summary      Verify a company email
// @Tags         user
// @Produce      json
// @Param        token  path      string  true  "Verification token from the email link"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  errorResponse
// @Router       /user/verify/{token} [get]
func (h *AccountHandler) Verify(c echo.Context) error {
	res, err := h.accounts.Verify(c.Request().Context(), c.Param("token"))
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrInvalidVerificationToken) {
			result = "invalid_token"
		}
		metrics.VerificationsTotal.WithLabelValues(result).Inc()
		return err
	}
	metrics.VerificationsTotal.WithLabelValues("ok").Inc()

	h.cookie.set(c, res.Session)
	return c.JSON(http.StatusOK, messageResponse{Message: "Account verified successfully"})
}

// Signin authenticates a verified account.
//
// @Summary      Sign in
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  signinResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /user/signin [post]
func (h *AccountHandler) Signin(c echo.Context) error {
	req := Parse[signinRequest](c)
	if !req.OK() {
		metrics.SigninsTotal.WithLabelValues("invalid").Inc()
		return req.Err()
	}

	res, err := h.accounts.Signin(c.Request().Context(), req.Value.CompanyEmail, req.Value.Password)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues(signinResult(err)).Inc()
		return err
	}
	metrics.SigninsTotal.WithLabelValues("ok").Inc()

	h.cookie.set(c, res.Session)
	return c.JSON(http.StatusOK, signinResponse{
		Message: "Signin successful",
		User: accountSummary{
			ID:           res.Account.ID,
			Name:         res.Account.Name,
			CompanyEmail: res.Account.CompanyEmail,
			CompanyName:  res.Account.CompanyName,
		},
	})
}

func signupResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountExists):
		return "conflict"
	case errors.Is(err, domain.ErrEmailDelivery):
		return "email_failed"
	default:
		return "error"
	}
}

func signinResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownEmail), errors.Is(err, domain.ErrInvalidCredentials):
		return "unauthorized"
	case errors.Is(err, domain.ErrAccountNotVerified):
		return "unverified"
	default:
		return "error"
	}
}
