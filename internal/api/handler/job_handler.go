package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentcast/jobposting-api/internal/api/metrics"
	"github.com/talentcast/jobposting-api/internal/core/domain"
	"github.com/talentcast/jobposting-api/internal/core/ports"
)

const (
	msgJobPosted        = "Job posted successfully"
	msgJobPostedAllSent = "Job posted successfully and emails sent to all candidates"
	msgJobPostedPartial = "Job posted successfully, but some emails failed to send"
)

// JobHandler handles job postings. Every route but Health expects AuthGate.
type JobHandler struct {
	jobs ports.JobService
}

func NewJobHandler(jobs ports.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Health handles GET /job/job-health.
//
// @Summary      Job router health
// @Tags         job
// @Produce      plain
// @Success      200  {string}  string
// @Router       /job/job-health [get]
func (h *JobHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Hi from job router")
}

// Post persists a job posting and mails its candidates.
//
// @Summary      Post a job
// @Tags         job
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      postJobRequest  true  "Job posting"
// @Success      201   {object}  postJobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /job/post [post]
func (h *JobHandler) Post(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	req := Parse[postJobRequest](c)
	if !req.OK() {
		return req.Err()
	}
	// The validator has already checked the layout.
	endDate, err := time.Parse(time.RFC3339, req.Value.EndDate)
	if err != nil {
		return &domain.ValidationError{Issues: []domain.Issue{{
			Field: "endDate", Tag: "datetime", Message: "endDate must be an ISO 8601 UTC date-time ending in Z",
		}}}
	}

	res, err := h.jobs.PostJob(c.Request().Context(), who, ports.PostJobInput{
		Title:           req.Value.JobTitle,
		Description:     req.Value.JobDescription,
		ExperienceLevel: domain.ExperienceLevel(req.Value.ExperienceLevel),
		Candidates:      req.Value.Candidates,
		EndDate:         endDate,
	})
	if err != nil {
		return err
	}
	metrics.JobsPostedTotal.WithLabelValues(string(res.Job.ExperienceLevel)).Inc()

	resp := postJobResponse{Message: msgJobPosted, JobID: res.Job.ID}
	if res.Report != nil {
		observeFanout(res.Report)
		resp.EmailResults = res.Report.Outcomes
		resp.Message = msgJobPostedPartial
		if res.Report.AllSucceeded {
			resp.Message = msgJobPostedAllSent
		}
	}
	return c.JSON(http.StatusCreated, resp)
}

// Notifications returns the recorded candidate outcomes of a posting.
//
// @Summary      Candidate notification outcomes
// @Tags         job
// @Produce      json
// @Security     CookieAuth
// @Param        jobId  path      string  true  "Job posting id"
// @Success      200    {object}  notificationsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /job/{jobId}/notifications [get]
func (h *JobHandler) Notifications(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	jobID := c.Param("jobId")
	outcomes, err := h.jobs.Notifications(c.Request().Context(), who, jobID)
	if err != nil {
		return err
	}
	if outcomes == nil {
		outcomes = []domain.NotificationOutcome{}
	}
	return c.JSON(http.StatusOK, notificationsResponse{JobID: jobID, EmailResults: outcomes})
}

func observeFanout(r *domain.FanoutReport) {
	metrics.FanoutDuration.Observe(r.Elapsed.Seconds())
	for _, o := range r.Outcomes {
		result := "sent"
		if !o.Success {
			result = "failed"
		}
		metrics.NotificationsTotal.WithLabelValues(result).Inc()
	}
}
