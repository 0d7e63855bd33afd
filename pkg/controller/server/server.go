package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ghbackup/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/utils/errutil"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
)

const successMessage = "all repos were successfully backed up"

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"response":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type backupOutcome struct {
	Repository string `json:"repository"`
	Status     string `json:"status"`
	Key        string `json:"key,omitempty"`
	Size       int64  `json:"size,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type backupResponse struct {
	Response string          `json:"response"`
	Run      string          `json:"run,omitempty"`
	Total    int             `json:"total"`
	Failed   int             `json:"failed"`
	Outcomes []backupOutcome `json:"outcomes,omitempty"`
}

func newBackupResponse(result *model.BackupResult) *backupResponse {
	resp := &backupResponse{
		Response: successMessage,
		Run:      result.RunTimestamp.String(),
		Total:    result.Total(),
		Failed:   result.Failed(),
	}
	if result.Failed() > 0 {
		resp.Response = result.Summary()
	}

	for _, o := range result.Outcomes {
		resp.Outcomes = append(resp.Outcomes, backupOutcome{
			Repository: o.Repository.FullName(),
			Status:     string(o.Status),
			Key:        o.Key.String(),
			Size:       o.Size,
			Reason:     o.Reason,
		})
	}

	return resp
}

// New returns a server that runs a backup with input on POST /backup. Only
// one backup runs at a time, an overlapping request gets 409.
func New(uc interfaces.UseCase, input *model.BackupInput) *Server {
	var running sync.Mutex

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Post("/backup", func(w http.ResponseWriter, r *http.Request) {
		if !running.TryLock() {
			writeJSON(w, http.StatusConflict, &backupResponse{Response: "backup is already running"})
			return
		}
		defer running.Unlock()

		// A run must not stop halfway when the client disconnects.
		ctx := context.WithoutCancel(r.Context())

		result, err := uc.BackupRepositories(ctx, input)
		if err != nil {
			errutil.HandleError(ctx, "fail to run backup", err)
			writeJSON(w, http.StatusInternalServerError, &backupResponse{Response: err.Error()})
			return
		}

		if err := result.Err(); err != nil {
			errutil.HandleError(ctx, "some repositories were not backed up", err)
			writeJSON(w, http.StatusInternalServerError, newBackupResponse(result))
			return
		}

		writeJSON(w, http.StatusOK, newBackupResponse(result))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
