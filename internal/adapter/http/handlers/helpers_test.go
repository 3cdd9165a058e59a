package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesops/internal/adapter/http/middleware"
	"salesops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	manager   = entities.Actor{ID: "u-mgr", Name: "Maya", Role: entities.RoleSalesManager}
	executive = entities.Actor{ID: "u-exec", Name: "Eli", Role: entities.RoleSalesExecutive}
	accounts  = entities.Actor{ID: "u-am", Name: "Ana", Role: entities.RoleAccountManager}
)

func withActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body == "" {
		buf = &bytes.Buffer{}
	} else {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}
