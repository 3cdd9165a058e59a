package entities

import "time"

// ProjectStatus is toggled by account managers independently of the sale.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "Active"
	ProjectStatusPaused    ProjectStatus = "Paused"
	ProjectStatusCompleted ProjectStatus = "Completed"
)

// ChecklistStep names one of the 11 project workflow steps.
type ChecklistStep string

const (
	StepMeetingScheduled       ChecklistStep = "meeting_scheduled"
	StepMeetingMinutesSent     ChecklistStep = "meeting_minutes_sent"
	StepContentCalendarSent    ChecklistStep = "content_calendar_sent"
	StepClientApprovalReceived ChecklistStep = "client_approval_received"
	StepWorkStarted            ChecklistStep = "work_started"
	StepSocialMediaLinks       ChecklistStep = "social_media_links"
	StepSpreadsheetLinkAdded   ChecklistStep = "spreadsheet_link_added"
	StepQCRequestsCreated      ChecklistStep = "qc_requests_created"
	StepRedoLoopsCompleted     ChecklistStep = "redo_loops_completed"
	StepAllWorkCompleted       ChecklistStep = "all_work_completed"
	StepMonthlyReviewSent      ChecklistStep = "monthly_review_sent"
)

// ChecklistSteps lists every step in workflow order.
var ChecklistSteps = []ChecklistStep{
	StepMeetingScheduled,
	StepMeetingMinutesSent,
	StepContentCalendarSent,
	StepClientApprovalReceived,
	StepWorkStarted,
	StepSocialMediaLinks,
	StepSpreadsheetLinkAdded,
	StepQCRequestsCreated,
	StepRedoLoopsCompleted,
	StepAllWorkCompleted,
	StepMonthlyReviewSent,
}

type StepState struct {
	Done bool       `json:"done"`
	Date *time.Time `json:"date,omitempty"`
}

// ProjectChecklist holds the 11 independent workflow steps. No step depends
// on another one.
type ProjectChecklist struct {
	MeetingScheduled       StepState `json:"meeting_scheduled"`
	MeetingMinutesSent     StepState `json:"meeting_minutes_sent"`
	ContentCalendarSent    StepState `json:"content_calendar_sent"`
	ClientApprovalReceived StepState `json:"client_approval_received"`
	WorkStarted            StepState `json:"work_started"`
	SocialMediaLinks       StepState `json:"social_media_links"`
	SpreadsheetLinkAdded   StepState `json:"spreadsheet_link_added"`
	QCRequestsCreated      StepState `json:"qc_requests_created"`
	RedoLoopsCompleted     StepState `json:"redo_loops_completed"`
	AllWorkCompleted       StepState `json:"all_work_completed"`
	MonthlyReviewSent      StepState `json:"monthly_review_sent"`
}

// Step returns a pointer to the named step, or nil when the name is unknown.
func (c *ProjectChecklist) Step(step ChecklistStep) *StepState {
	switch step {
	case StepMeetingScheduled:
		return &c.MeetingScheduled
	case StepMeetingMinutesSent:
		return &c.MeetingMinutesSent
	case StepContentCalendarSent:
		return &c.ContentCalendarSent
	case StepClientApprovalReceived:
		return &c.ClientApprovalReceived
	case StepWorkStarted:
		return &c.WorkStarted
	case StepSocialMediaLinks:
		return &c.SocialMediaLinks
	case StepSpreadsheetLinkAdded:
		return &c.SpreadsheetLinkAdded
	case StepQCRequestsCreated:
		return &c.QCRequestsCreated
	case StepRedoLoopsCompleted:
		return &c.RedoLoopsCompleted
	case StepAllWorkCompleted:
		return &c.AllWorkCompleted
	case StepMonthlyReviewSent:
		return &c.MonthlyReviewSent
	}
	return nil
}

// DoneCount returns how many steps are marked done.
func (c ProjectChecklist) DoneCount() int {
	n := 0
	for _, step := range ChecklistSteps {
		if c.Step(step).Done {
			n++
		}
	}
	return n
}

type QCStatus string

const (
	QCStatusPending  QCStatus = "Pending"
	QCStatusApproved QCStatus = "Approved"
	QCStatusRedo     QCStatus = "Redo"
)

type QCRequest struct {
	ID           string     `json:"id"`
	Details      string     `json:"details"`
	Status       QCStatus   `json:"status"`
	RequestDate  time.Time  `json:"request_date"`
	Feedback     string     `json:"feedback,omitempty"`
	ResolvedDate *time.Time `json:"resolved_date,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type TimelineEntry struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}

// Project is the account-management record spawned by a sale handover.
//
// Storage model:
//   - Unique on sale_id (1:1 with the originating sale)
//   - Version is the optimistic concurrency token, as on Sale.
type Project struct {
	ID                  string           `json:"id"`
	SaleID              string           `json:"sale_id"`
	ClientName          string           `json:"client_name"`
	CompanyName         string           `json:"company_name,omitempty"`
	Status              ProjectStatus    `json:"status"`
	Checklist           ProjectChecklist `json:"checklist"`
	SocialLinks         []SocialLink     `json:"social_links"`
	ContentCalendarLink string           `json:"content_calendar_link,omitempty"`
	QCRequests          []QCRequest      `json:"qc_requests"`
	Timeline            []TimelineEntry  `json:"timeline"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	Version             int64            `json:"version"`
}

// NewProject seeds the project spawned by pushing sale. Every step starts
// not done.
func NewProject(id string, sale Sale, user string, now time.Time) Project {
	return Project{
		ID:          id,
		SaleID:      sale.ID,
		ClientName:  sale.ClientName,
		CompanyName: sale.CompanyName,
		Status:      ProjectStatusActive,
		SocialLinks: []SocialLink{},
		QCRequests:  []QCRequest{},
		Timeline: []TimelineEntry{
			{Action: "Project created from handover", Timestamp: now, User: user},
		},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

// AppendTimeline records an action on the project history.
func (p *Project) AppendTimeline(action, user string, now time.Time) {
	p.Timeline = append(p.Timeline, TimelineEntry{Action: action, Timestamp: now, User: user})
}

// PendingQC counts QC requests still waiting on a reviewer.
func (p Project) PendingQC() int {
	n := 0
	for _, q := range p.QCRequests {
		if q.Status == QCStatusPending {
			n++
		}
	}
	return n
}
