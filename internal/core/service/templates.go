package service

import (
	"bytes"
	"fmt"
	"html/template"
)

var verificationTmpl = template.Must(template.New("verification").Parse(`
<p>Please verify your account using this token:</p>
<a href="{{.Link}}">Click here to verify your email</a>
`))

var opportunityTmpl = template.Must(template.New("opportunity").Parse(`
<h1>New Job Opportunity</h1>
<p>Dear Candidate,</p>
<p>We have a new job opportunity that might interest you:</p>
<h2>{{.Title}}</h2>
<p><strong>Company:</strong> {{.CompanyName}}</p>
<p><strong>Experience Level:</strong> {{.Level}}</p>
<p><strong>Job Description:</strong></p>
<p>{{.Description}}</p>
<p><strong>Application Deadline:</strong> {{.Deadline}}</p>
<p>If you're interested, please apply through our platform.</p>
<p>Best regards,<br>{{.SenderName}}<br>{{.CompanyName}}</p>
`))

type verificationData struct {
	Link string
}

// JobDetails is what a candidate notification says about the posting.
type JobDetails struct {
	Title       string
	Description string
	Level       string
	Deadline    string
}

// Sender identifies who a candidate notification comes from.
type Sender struct {
	Name        string
	CompanyName string
}

type opportunityData struct {
	JobDetails
	SenderName  string
	CompanyName string
}

func renderVerification(link string) (string, error) {
	return render(verificationTmpl, verificationData{Link: link})
}

func renderOpportunity(from Sender, job JobDetails) (string, error) {
	return render(opportunityTmpl, opportunityData{
		JobDetails:  job,
		SenderName:  from.Name,
		CompanyName: from.CompanyName,
	})
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}
