package repository

import "salesops/internal/domain/entities"

// DynamoDB item shapes. Money is stored as decimal strings and dates as
// RFC3339Nano strings.

type paymentRecordItem struct {
	Amount     string `dynamodbav:"amount"`
	Date       string `dynamodbav:"date"`
	Method     string `dynamodbav:"method,omitempty"`
	Notes      string `dynamodbav:"notes,omitempty"`
	RecordedBy string `dynamodbav:"recorded_by"`
}

type paymentItem struct {
	Amount          string              `dynamodbav:"amount"`
	CollectedAmount string              `dynamodbav:"collected_amount"`
	PendingAmount   string              `dynamodbav:"pending_amount"`
	PaymentType     string              `dynamodbav:"payment_type"`
	Status          string              `dynamodbav:"status"`
	History         []paymentRecordItem `dynamodbav:"history"`
}

type handoverChecklistItem struct {
	EmailSentToAccounts             bool `dynamodbav:"email_sent_to_accounts"`
	EmailSentToBackend              bool `dynamodbav:"email_sent_to_backend"`
	EmailSentForPaymentConfirmation bool `dynamodbav:"email_sent_for_payment_confirmation"`
	WhatsappGroupCreated            bool `dynamodbav:"whatsapp_group_created"`
}

type saleItem struct {
	ID           string                `dynamodbav:"id"`
	ClientName   string                `dynamodbav:"client_name"`
	ClientPhone  string                `dynamodbav:"client_phone"`
	CompanyName  string                `dynamodbav:"company_name,omitempty"`
	Price        string                `dynamodbav:"price,omitempty"`
	Notes        string                `dynamodbav:"notes,omitempty"`
	Requirements string                `dynamodbav:"requirements,omitempty"`
	Status       string                `dynamodbav:"status"`
	Payment      *paymentItem          `dynamodbav:"payment,omitempty"`
	Checklist    handoverChecklistItem `dynamodbav:"checklist"`
	IsLocked     bool                  `dynamodbav:"is_locked"`
	CreatedBy    string                `dynamodbav:"created_by"`
	AssignedTo   string                `dynamodbav:"assigned_to"`
	CreatedAt    string                `dynamodbav:"created_at"`
	UpdatedAt    string                `dynamodbav:"updated_at"`
	Version      int64                 `dynamodbav:"version"`
}

type stepItem struct {
	Done bool   `dynamodbav:"done"`
	Date string `dynamodbav:"date,omitempty"`
}

type qcRequestItem struct {
	ID           string `dynamodbav:"id"`
	Details      string `dynamodbav:"details"`
	Status       string `dynamodbav:"status"`
	RequestDate  string `dynamodbav:"request_date"`
	Feedback     string `dynamodbav:"feedback,omitempty"`
	ResolvedDate string `dynamodbav:"resolved_date,omitempty"`
}

type socialLinkItem struct {
	Platform string `dynamodbav:"platform"`
	URL      string `dynamodbav:"url"`
}

type timelineItem struct {
	Action    string `dynamodbav:"action"`
	Timestamp string `dynamodbav:"timestamp"`
	User      string `dynamodbav:"user"`
}

type projectItem struct {
	SaleID              string              `dynamodbav:"sale_id"`
	ID                  string              `dynamodbav:"id"`
	ClientName          string              `dynamodbav:"client_name"`
	CompanyName         string              `dynamodbav:"company_name,omitempty"`
	Status              string              `dynamodbav:"status"`
	Checklist           map[string]stepItem `dynamodbav:"checklist"`
	SocialLinks         []socialLinkItem    `dynamodbav:"social_links"`
	ContentCalendarLink string              `dynamodbav:"content_calendar_link,omitempty"`
	QCRequests          []qcRequestItem     `dynamodbav:"qc_requests"`
	Timeline            []timelineItem      `dynamodbav:"timeline"`
	CreatedAt           string              `dynamodbav:"created_at"`
	UpdatedAt           string              `dynamodbav:"updated_at"`
	Version             int64               `dynamodbav:"version"`
}

func toSaleItem(s entities.Sale) saleItem {
	it := saleItem{
		ID:           s.ID,
		ClientName:   s.ClientName,
		ClientPhone:  s.ClientPhone,
		CompanyName:  s.CompanyName,
		Notes:        s.Notes,
		Requirements: s.Requirements,
		Status:       string(s.Status),
		Checklist:    handoverChecklistItem(s.Checklist),
		IsLocked:     s.IsLocked,
		CreatedBy:    s.CreatedBy,
		AssignedTo:   s.AssignedTo,
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
		Version:      s.Version,
	}
	if s.Price != nil {
		it.Price = s.Price.String()
	}
	if s.Payment != nil {
		p := s.Payment
		pi := &paymentItem{
			Amount:          p.Amount.String(),
			CollectedAmount: p.CollectedAmount.String(),
			PendingAmount:   p.PendingAmount.String(),
			PaymentType:     string(p.PaymentType),
			Status:          string(p.Status),
			History:         make([]paymentRecordItem, 0, len(p.History)),
		}
		for _, r := range p.History {
			pi.History = append(pi.History, paymentRecordItem{
				Amount:     r.Amount.String(),
				Date:       formatTime(r.Date),
				Method:     r.Method,
				Notes:      r.Notes,
				RecordedBy: r.RecordedBy,
			})
		}
		it.Payment = pi
	}
	return it
}

func fromSaleItem(it saleItem) (entities.Sale, error) {
	s := entities.Sale{
		ID:           it.ID,
		ClientName:   it.ClientName,
		ClientPhone:  it.ClientPhone,
		CompanyName:  it.CompanyName,
		Notes:        it.Notes,
		Requirements: it.Requirements,
		Status:       entities.SaleStatus(it.Status),
		Checklist:    entities.HandoverChecklist(it.Checklist),
		IsLocked:     it.IsLocked,
		CreatedBy:    it.CreatedBy,
		AssignedTo:   it.AssignedTo,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
		Version:      it.Version,
	}
	if it.Price != "" {
		price := parseDecimal(it.Price)
		s.Price = &price
	}
	if it.Payment != nil {
		pi := it.Payment
		p := &entities.Payment{
			Amount:          parseDecimal(pi.Amount),
			CollectedAmount: parseDecimal(pi.CollectedAmount),
			PendingAmount:   parseDecimal(pi.PendingAmount),
			PaymentType:     entities.PaymentType(pi.PaymentType),
			Status:          entities.PaymentStatus(pi.Status),
			History:         make([]entities.PaymentRecord, 0, len(pi.History)),
		}
		for _, r := range pi.History {
			p.History = append(p.History, entities.PaymentRecord{
				Amount:     parseDecimal(r.Amount),
				Date:       parseTime(r.Date),
				Method:     r.Method,
				Notes:      r.Notes,
				RecordedBy: r.RecordedBy,
			})
		}
		s.Payment = p
	}
	if err := checkPayment(s); err != nil {
		return entities.Sale{}, err
	}
	return s, nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		SaleID:              p.SaleID,
		ID:                  p.ID,
		ClientName:          p.ClientName,
		CompanyName:         p.CompanyName,
		Status:              string(p.Status),
		Checklist:           make(map[string]stepItem, len(entities.ChecklistSteps)),
		SocialLinks:         make([]socialLinkItem, 0, len(p.SocialLinks)),
		ContentCalendarLink: p.ContentCalendarLink,
		QCRequests:          make([]qcRequestItem, 0, len(p.QCRequests)),
		Timeline:            make([]timelineItem, 0, len(p.Timeline)),
		CreatedAt:           formatTime(p.CreatedAt),
		UpdatedAt:           formatTime(p.UpdatedAt),
		Version:             p.Version,
	}
	checklist := p.Checklist
	for _, name := range entities.ChecklistSteps {
		st := checklist.Step(name)
		it.Checklist[string(name)] = stepItem{Done: st.Done, Date: formatTimePtr(st.Date)}
	}
	for _, l := range p.SocialLinks {
		it.SocialLinks = append(it.SocialLinks, socialLinkItem(l))
	}
	for _, q := range p.QCRequests {
		it.QCRequests = append(it.QCRequests, qcRequestItem{
			ID:           q.ID,
			Details:      q.Details,
			Status:       string(q.Status),
			RequestDate:  formatTime(q.RequestDate),
			Feedback:     q.Feedback,
			ResolvedDate: formatTimePtr(q.ResolvedDate),
		})
	}
	for _, e := range p.Timeline {
		it.Timeline = append(it.Timeline, timelineItem{Action: e.Action, Timestamp: formatTime(e.Timestamp), User: e.User})
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	p := entities.Project{
		ID:                  it.ID,
		SaleID:              it.SaleID,
		ClientName:          it.ClientName,
		CompanyName:         it.CompanyName,
		Status:              entities.ProjectStatus(it.Status),
		SocialLinks:         make([]entities.SocialLink, 0, len(it.SocialLinks)),
		ContentCalendarLink: it.ContentCalendarLink,
		QCRequests:          make([]entities.QCRequest, 0, len(it.QCRequests)),
		Timeline:            make([]entities.TimelineEntry, 0, len(it.Timeline)),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		Version:             it.Version,
	}
	for name, st := range it.Checklist {
		if dst := p.Checklist.Step(entities.ChecklistStep(name)); dst != nil {
			*dst = entities.StepState{Done: st.Done, Date: parseTimePtr(st.Date)}
		}
	}
	for _, l := range it.SocialLinks {
		p.SocialLinks = append(p.SocialLinks, entities.SocialLink(l))
	}
	for _, q := range it.QCRequests {
		p.QCRequests = append(p.QCRequests, entities.QCRequest{
			ID:           q.ID,
			Details:      q.Details,
			Status:       entities.QCStatus(q.Status),
			RequestDate:  parseTime(q.RequestDate),
			Feedback:     q.Feedback,
			ResolvedDate: parseTimePtr(q.ResolvedDate),
		})
	}
	for _, e := range it.Timeline {
		p.Timeline = append(p.Timeline, entities.TimelineEntry{Action: e.Action, Timestamp: parseTime(e.Timestamp), User: e.User})
	}
	return p
}

type auditDetailsItem struct {
	SaleID    string `dynamodbav:"sale_id,omitempty"`
	ProjectID string `dynamodbav:"project_id,omitempty"`
}

type auditItem struct {
	ID             string           `dynamodbav:"id"`
	Action         string           `dynamodbav:"action"`
	PerformedBy    string           `dynamodbav:"performed_by"`
	PerformerName  string           `dynamodbav:"performer_name,omitempty"`
	PerformerRole  string           `dynamodbav:"performer_role,omitempty"`
	TargetResource string           `dynamodbav:"target_resource,omitempty"`
	Details        auditDetailsItem `dynamodbav:"details"`
	CreatedAt      string           `dynamodbav:"created_at"`
}

func toAuditItem(a entities.AuditLog) auditItem {
	return auditItem{
		ID:             a.ID,
		Action:         a.Action,
		PerformedBy:    a.PerformedBy,
		PerformerName:  a.PerformerName,
		PerformerRole:  string(a.PerformerRole),
		TargetResource: a.TargetResource,
		Details:        auditDetailsItem(a.Details),
		CreatedAt:      formatTime(a.CreatedAt),
	}
}

func fromAuditItem(it auditItem) entities.AuditLog {
	return entities.AuditLog{
		ID:             it.ID,
		Action:         it.Action,
		PerformedBy:    it.PerformedBy,
		PerformerName:  it.PerformerName,
		PerformerRole:  entities.Role(it.PerformerRole),
		TargetResource: it.TargetResource,
		Details:        entities.AuditDetails(it.Details),
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
