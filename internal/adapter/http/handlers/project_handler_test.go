package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"salesops/internal/adapter/http/handlers/mocks"
	"salesops/internal/domain/entities"
	"salesops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProjectRouter(uc usecase.IProjectUseCase, actor *entities.Actor) *gin.Engine {
	h := NewProjectHandler(uc)
	r := gin.New()
	if actor != nil {
		r.Use(withActor(*actor))
	}
	r.GET("/v1/projects", h.ListProjects)
	r.GET("/v1/projects/:id", h.GetProject)
	r.PUT("/v1/projects/:id/checklist", h.UpdateChecklist)
	r.POST("/v1/projects/:id/qc", h.CreateQCRequest)
	r.PUT("/v1/projects/:id/qc/:qcId", h.ResolveQCRequest)
	r.PUT("/v1/projects/:id/status", h.ToggleStatus)
	return r
}

func TestProjectHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().ListProjects(gomock.Any(), accounts).Return(nil, nil)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodGet, "/v1/projects", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Count int               `json:"count"`
			Data  []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Count != 0 || body.Data == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("progress is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		p := entities.Project{ID: "p-1", Status: entities.ProjectStatusActive}
		p.Checklist.MeetingScheduled.Done = true
		p.Checklist.WorkStarted.Done = true
		uc.EXPECT().GetProject(gomock.Any(), accounts, "p-1").Return(p, nil)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodGet, "/v1/projects/p-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data struct {
				Progress int `json:"progress"`
			} `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Data.Progress != 18 {
			t.Fatalf("expected progress 18, got %d", body.Data.Progress)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().GetProject(gomock.Any(), accounts, "nope").Return(entities.Project{}, usecase.ErrProjectNotFound)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodGet, "/v1/projects/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_UpdateChecklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().UpdateChecklistStep(gomock.Any(), accounts, "p-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Actor, _ string, in usecase.ChecklistStepInput) (entities.Project, error) {
				if in.Step != "" {
					t.Fatalf("expected empty step, got %q", in.Step)
				}
				return entities.Project{}, usecase.ErrInvalidChecklistStep
			})

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodPut, "/v1/projects/p-1/checklist", `{"done":true}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_CHECKLIST_STEP" {
			t.Fatalf("expected INVALID_CHECKLIST_STEP, got %s", body.Code)
		}
	})

	t.Run("camel case step with links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().UpdateChecklistStep(gomock.Any(), accounts, "p-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Actor, _ string, in usecase.ChecklistStepInput) (entities.Project, error) {
				if in.Step != string(entities.StepSocialMediaLinks) || !in.Done || len(in.Links) != 1 || in.Links[0].Platform != "instagram" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Project{ID: "p-1"}, nil
			})

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodPut, "/v1/projects/p-1/checklist",
			`{"step":"socialMediaLinks","done":true,"meta":{"links":[{"platform":"instagram","url":"https://instagram.com/acme"}]}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("paused project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().UpdateChecklistStep(gomock.Any(), accounts, "p-1", gomock.Any()).Return(entities.Project{}, usecase.ErrProjectPaused)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodPut, "/v1/projects/p-1/checklist", `{"step":"work_started","done":true}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "Project is paused. Resume to edit." {
			t.Fatalf("unexpected message: %s", body.Message)
		}
	})

	t.Run("unknown step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().UpdateChecklistStep(gomock.Any(), accounts, "p-1", gomock.Any()).Return(entities.Project{}, usecase.ErrInvalidChecklistStep)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodPut, "/v1/projects/p-1/checklist", `{"step":"lunch","done":true}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_QC(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create requires details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().CreateQCRequest(gomock.Any(), accounts, "p-1", "").Return(entities.Project{}, usecase.ErrQCDetailsRequired)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodPost, "/v1/projects/p-1/qc", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "QC_DETAILS_REQUIRED" {
			t.Fatalf("expected QC_DETAILS_REQUIRED, got %s", body.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().CreateQCRequest(gomock.Any(), accounts, "p-1", "Review reel").Return(entities.Project{ID: "p-1"}, nil)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodPost, "/v1/projects/p-1/qc", `{"details":"Review reel"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("resolve passes verdict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		qc := entities.Actor{ID: "u-qc", Role: entities.RoleQC}
		uc.EXPECT().ResolveQCRequest(gomock.Any(), qc, "p-1", "qc-1", entities.QCStatusRedo, "Fix colors").
			Return(entities.Project{ID: "p-1"}, nil)

		w := doJSON(newProjectRouter(uc, &qc), http.MethodPut, "/v1/projects/p-1/qc/qc-1", `{"status":"Redo","feedback":"Fix colors"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("resolve on paused project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().ResolveQCRequest(gomock.Any(), accounts, "p-1", "qc-1", entities.QCStatusApproved, "").
			Return(entities.Project{}, usecase.ErrProjectPausedQC)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodPut, "/v1/projects/p-1/qc/qc-1", `{"status":"Approved"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestProjectHandler_ToggleStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().ToggleStatus(gomock.Any(), accounts, "p-1", entities.ProjectStatus("Sleeping")).
			Return(entities.Project{}, usecase.ErrInvalidProjectStatus)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodPut, "/v1/projects/p-1/status", `{"status":"Sleeping"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().ToggleStatus(gomock.Any(), accounts, "p-1", entities.ProjectStatusPaused).
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusPaused}, nil)

		w := doJSON(newProjectRouter(uc, &accounts), http.MethodPut, "/v1/projects/p-1/status", `{"status":"Paused"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_EmptyPayloadsReachUsecaseValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := usecase.NewProjectUseCase(nil, nil)

	cases := []struct {
		name, method, path, code string
	}{
		{"resolve without status", http.MethodPut, "/v1/projects/p-1/qc/qc-1", "INVALID_QC_STATUS"},
		{"toggle without status", http.MethodPut, "/v1/projects/p-1/status", "INVALID_PROJECT_STATUS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(newProjectRouter(uc, &accounts), tc.method, tc.path, `{}`)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if body := decodeError(t, w); body.Code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, body.Code)
			}
		})
	}
}
