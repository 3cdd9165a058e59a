package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"
	mock_interfaces "salesops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var am = entities.Actor{ID: "u-am", Name: "Ana", Role: entities.RoleAccountManager}

func newProjectUseCase(t *testing.T) (*ProjectUseCase, *mock_interfaces.MockIProjectRepository, *mock_interfaces.MockIEventPublisher) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	events := mock_interfaces.NewMockIEventPublisher(ctrl)
	return NewProjectUseCase(repo, events, WithProjectClock(func() time.Time { return testNow })), repo, events
}

func activeProject() entities.Project {
	return entities.NewProject("p-1", prospect("s-1"), "Maya", testNow.Add(-time.Hour))
}

func expectSaved(t *testing.T, repo *mock_interfaces.MockIProjectRepository, events *mock_interfaces.MockIEventPublisher, expected int64) {
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), expected).DoAndReturn(
		func(_ context.Context, p entities.Project, v int64) (entities.Project, error) {
			if p.Version != v+1 || !p.UpdatedAt.Equal(testNow) {
				t.Fatalf("unexpected write: version %d updated_at %v", p.Version, p.UpdatedAt)
			}
			return p, nil
		})
	events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entities.Event) {
		if e.Name != entities.EventProjectUpdated {
			t.Fatalf("expected project_updated, got %s", e.Name)
		}
	})
}

func TestProjectUseCase_GetProject(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _ := newProjectUseCase(t)
		_, err := uc.GetProject(context.Background(), am, "")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Project{}, nil)
		_, err := uc.GetProject(context.Background(), am, "p-9")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_ListProjects(t *testing.T) {
	uc, repo, _ := newProjectUseCase(t)
	a, b := activeProject(), activeProject()
	b.ID = "p-2"
	b.CreatedAt = a.CreatedAt.Add(time.Minute)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Project{a, b}, nil)

	got, err := uc.ListProjects(context.Background(), am)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "p-2" {
		t.Fatalf("expected newest first, got %s", got[0].ID)
	}
}

func TestProjectUseCase_UpdateChecklistStep(t *testing.T) {
	t.Run("paused", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		p := activeProject()
		p.Status = entities.ProjectStatusPaused
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		_, err := uc.UpdateChecklistStep(context.Background(), am, "p-1", ChecklistStepInput{Step: "work_started", Done: true})
		if !errors.Is(err, ErrProjectPaused) {
			t.Fatalf("expected ErrProjectPaused, got %v", err)
		}
	})

	t.Run("unknown step", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(activeProject(), nil)

		_, err := uc.UpdateChecklistStep(context.Background(), am, "p-1", ChecklistStepInput{Step: "coffee", Done: true})
		if !errors.Is(err, ErrInvalidChecklistStep) {
			t.Fatalf("expected ErrInvalidChecklistStep, got %v", err)
		}
	})

	t.Run("date defaults to now and timeline grows", func(t *testing.T) {
		uc, repo, events := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(activeProject(), nil)
		expectSaved(t, repo, events, 1)

		got, err := uc.UpdateChecklistStep(context.Background(), am, "p-1", ChecklistStepInput{Step: "meeting_scheduled", Done: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		step := got.Checklist.MeetingScheduled
		if !step.Done || step.Date == nil || !step.Date.Equal(testNow) {
			t.Fatalf("unexpected step: %+v", step)
		}
		if len(got.Timeline) != 2 || got.Timeline[1].User != "Ana" {
			t.Fatalf("unexpected timeline: %+v", got.Timeline)
		}
	})

	t.Run("steps are independent", func(t *testing.T) {
		uc, repo, events := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(activeProject(), nil)
		expectSaved(t, repo, events, 1)

		got, err := uc.UpdateChecklistStep(context.Background(), am, "p-1", ChecklistStepInput{Step: "monthly_review_sent", Done: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Checklist.DoneCount() != 1 || !got.Checklist.MonthlyReviewSent.Done {
			t.Fatalf("unexpected checklist: %+v", got.Checklist)
		}
	})

	t.Run("social links stored", func(t *testing.T) {
		uc, repo, events := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(activeProject(), nil)
		expectSaved(t, repo, events, 1)

		links := []entities.SocialLink{{Platform: "instagram", URL: "https://instagram.com/acme"}}
		got, err := uc.UpdateChecklistStep(context.Background(), am, "p-1", ChecklistStepInput{Step: "social_media_links", Done: true, Links: links})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.SocialLinks) != 1 || got.SocialLinks[0].Platform != "instagram" {
			t.Fatalf("unexpected links: %+v", got.SocialLinks)
		}
	})

	t.Run("spreadsheet link stored", func(t *testing.T) {
		uc, repo, events := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(activeProject(), nil)
		expectSaved(t, repo, events, 1)

		when := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		got, err := uc.UpdateChecklistStep(context.Background(), am, "p-1",
			ChecklistStepInput{Step: "spreadsheet_link_added", Done: true, Date: &when, Link: " https://sheets/x "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ContentCalendarLink != "https://sheets/x" || !got.Checklist.SpreadsheetLinkAdded.Date.Equal(when) {
			t.Fatalf("unexpected project: %+v", got)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(activeProject(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).Return(entities.Project{}, interfaces.ErrVersionConflict)

		_, err := uc.UpdateChecklistStep(context.Background(), am, "p-1", ChecklistStepInput{Step: "work_started", Done: true})
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestProjectUseCase_QCLoop(t *testing.T) {
	t.Run("create requires details", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(activeProject(), nil)
		_, err := uc.CreateQCRequest(context.Background(), am, "p-1", "  ")
		if !errors.Is(err, ErrQCDetailsRequired) {
			t.Fatalf("expected ErrQCDetailsRequired, got %v", err)
		}
	})

	t.Run("create on paused project", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		p := activeProject()
		p.Status = entities.ProjectStatusPaused
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		_, err := uc.CreateQCRequest(context.Background(), am, "p-1", "Review reel")
		if !errors.Is(err, ErrProjectPausedQC) {
			t.Fatalf("expected ErrProjectPausedQC, got %v", err)
		}
	})

	t.Run("first request marks step", func(t *testing.T) {
		uc, repo, events := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(activeProject(), nil)
		expectSaved(t, repo, events, 1)

		got, err := uc.CreateQCRequest(context.Background(), am, "p-1", "Review reel")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.QCRequests) != 1 || got.QCRequests[0].Status != entities.QCStatusPending || got.QCRequests[0].ID == "" {
			t.Fatalf("unexpected requests: %+v", got.QCRequests)
		}
		if !got.Checklist.QCRequestsCreated.Done || got.PendingQC() != 1 {
			t.Fatalf("expected qc_requests_created done")
		}
	})

	t.Run("second request keeps first step date", func(t *testing.T) {
		uc, repo, events := newProjectUseCase(t)
		p := activeProject()
		first := testNow.Add(-24 * time.Hour)
		p.Checklist.QCRequestsCreated = entities.StepState{Done: true, Date: &first}
		p.QCRequests = []entities.QCRequest{{ID: "q-1", Details: "a", Status: entities.QCStatusApproved, RequestDate: first}}
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		expectSaved(t, repo, events, 1)

		got, err := uc.CreateQCRequest(context.Background(), am, "p-1", "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Checklist.QCRequestsCreated.Date.Equal(first) || len(got.QCRequests) != 2 || got.QCRequests[0].ID != "q-1" {
			t.Fatalf("unexpected project: %+v", got)
		}
	})

	withPending := func() entities.Project {
		p := activeProject()
		p.QCRequests = []entities.QCRequest{
			{ID: "q-1", Details: "first", Status: entities.QCStatusApproved, RequestDate: testNow},
			{ID: "q-2", Details: "second", Status: entities.QCStatusPending, RequestDate: testNow},
		}
		return p
	}

	t.Run("invalid verdict", func(t *testing.T) {
		uc, _, _ := newProjectUseCase(t)
		_, err := uc.ResolveQCRequest(context.Background(), am, "p-1", "q-2", entities.QCStatusPending, "")
		if !errors.Is(err, ErrInvalidQCStatus) {
			t.Fatalf("expected ErrInvalidQCStatus, got %v", err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(withPending(), nil)
		_, err := uc.ResolveQCRequest(context.Background(), am, "p-1", "q-9", entities.QCStatusApproved, "")
		if !errors.Is(err, ErrQCRequestNotFound) {
			t.Fatalf("expected ErrQCRequestNotFound, got %v", err)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(withPending(), nil)
		_, err := uc.ResolveQCRequest(context.Background(), am, "p-1", "q-1", entities.QCStatusRedo, "")
		if !errors.Is(err, ErrQCAlreadyResolved) {
			t.Fatalf("expected ErrQCAlreadyResolved, got %v", err)
		}
	})

	t.Run("paused project", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		p := withPending()
		p.Status = entities.ProjectStatusPaused
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		_, err := uc.ResolveQCRequest(context.Background(), am, "p-1", "q-2", entities.QCStatusApproved, "")
		if !errors.Is(err, ErrProjectPausedQC) {
			t.Fatalf("expected ErrProjectPausedQC, got %v", err)
		}
	})

	t.Run("redo keeps order and stamps resolution", func(t *testing.T) {
		uc, repo, events := newProjectUseCase(t)
		original := withPending()
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(original, nil)
		expectSaved(t, repo, events, 1)

		got, err := uc.ResolveQCRequest(context.Background(), am, "p-1", "q-2", entities.QCStatusRedo, " colors off ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q := got.QCRequests[1]
		if got.QCRequests[0].ID != "q-1" || q.Status != entities.QCStatusRedo || q.Feedback != "colors off" || q.ResolvedDate == nil {
			t.Fatalf("unexpected requests: %+v", got.QCRequests)
		}
		if original.QCRequests[1].Status != entities.QCStatusPending {
			t.Fatalf("loaded project was modified")
		}
	})
}

func TestProjectUseCase_ToggleStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _, _ := newProjectUseCase(t)
		_, err := uc.ToggleStatus(context.Background(), am, "p-1", "Archived")
		if !errors.Is(err, ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
	})

	t.Run("pause then resume", func(t *testing.T) {
		uc, repo, events := newProjectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(activeProject(), nil)
		expectSaved(t, repo, events, 1)

		got, err := uc.ToggleStatus(context.Background(), am, "p-1", entities.ProjectStatusPaused)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ProjectStatusPaused || got.Timeline[len(got.Timeline)-1].Action != "Status changed to Paused" {
			t.Fatalf("unexpected project: %+v", got)
		}

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(got, nil)
		expectSaved(t, repo, events, 2)
		got, err = uc.ToggleStatus(context.Background(), am, "p-1", entities.ProjectStatusActive)
		if err != nil || got.Status != entities.ProjectStatusActive {
			t.Fatalf("expected active, got %v %v", got.Status, err)
		}
	})

	t.Run("completed is terminal", func(t *testing.T) {
		uc, repo, _ := newProjectUseCase(t)
		p := activeProject()
		p.Status = entities.ProjectStatusCompleted
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		_, err := uc.ToggleStatus(context.Background(), am, "p-1", entities.ProjectStatusActive)
		if !errors.Is(err, ErrProjectCompleted) {
			t.Fatalf("expected ErrProjectCompleted, got %v", err)
		}
	})
}
