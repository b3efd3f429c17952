package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory account store
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account // by id
	findErr  error
	// hideEmails makes FindByEmail miss so Create's unique check is exercised.
	hideEmails bool
	// setTokenErr fails every SetVerificationToken call.
	setTokenErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	c := *a
	return &c
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.CompanyEmail == a.CompanyEmail {
			return domain.ErrAccountExists
		}
	}
	r.accounts[a.ID] = cloneAccount(a)
	return nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.hideEmails {
		return nil, domain.ErrAccountNotFound
	}
	for _, a := range r.accounts {
		if a.CompanyEmail == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) SetVerificationToken(_ context.Context, id, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setTokenErr != nil {
		return r.setTokenErr
	}
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if a.IsVerified {
		return domain.ErrAlreadyVerified
	}
	a.VerificationToken = token
	return nil
}

func (r *stubAccountRepo) ConsumeVerificationToken(_ context.Context, token string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if !a.IsVerified && a.VerificationToken != "" && a.VerificationToken == token {
			a.Verify(time.Now().UTC())
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrInvalidVerificationToken
}

func (r *stubAccountRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

func (r *stubAccountRepo) byEmail(email string) *domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.CompanyEmail == email {
			return cloneAccount(a)
		}
	}
	return nil
}

// seed stores a ready-made account.
func (r *stubAccountRepo) seed(a *domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[a.ID] = cloneAccount(a)
}

// ---------------------------------------------------------------------------
// In-memory job store
// ---------------------------------------------------------------------------

type stubJobRepo struct {
	mu        sync.Mutex
	jobs      map[string]*domain.JobPosting
	creates   int
	createErr error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.JobPosting)}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.creates++
	c := *j
	r.jobs[j.ID] = &c
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	c := *j
	return &c, nil
}

// ---------------------------------------------------------------------------
// Mailer
// ---------------------------------------------------------------------------

type stubMailer struct {
	mu     sync.Mutex
	failTo map[string]string // recipient -> error
	sent   []domain.MailMessage
	// block makes Send wait for ctx to end.
	block bool
}

func newStubMailer(failing ...string) *stubMailer {
	m := &stubMailer{failTo: make(map[string]string)}
	for _, to := range failing {
		m.failTo[to] = "mailbox unavailable"
	}
	return m
}

func (m *stubMailer) Send(ctx context.Context, msg domain.MailMessage) domain.MailResult {
	if m.block {
		<-ctx.Done()
		return domain.MailFailed(ctx.Err().Error())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	if reason, ok := m.failTo[msg.To]; ok {
		return domain.MailFailed(reason)
	}
	return domain.MailSent("250 OK " + msg.To)
}

func (m *stubMailer) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, msg := range m.sent {
		out = append(out, msg.To)
	}
	return out
}

func (m *stubMailer) last() domain.MailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

// ---------------------------------------------------------------------------
// Delivery log
// ---------------------------------------------------------------------------

type stubDeliveryLog struct {
	mu      sync.Mutex
	records map[string][]domain.NotificationOutcome
	err     error
}

func newStubDeliveryLog() *stubDeliveryLog {
	return &stubDeliveryLog{records: make(map[string][]domain.NotificationOutcome)}
}

func (l *stubDeliveryLog) Record(_ context.Context, jobID string, outcomes []domain.NotificationOutcome) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	l.records[jobID] = append([]domain.NotificationOutcome(nil), outcomes...)
	return nil
}

func (l *stubDeliveryLog) List(_ context.Context, jobID string) ([]domain.NotificationOutcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records[jobID], nil
}

func isHex(s string) bool {
	return strings.Trim(s, "0123456789abcdef") == ""
}
