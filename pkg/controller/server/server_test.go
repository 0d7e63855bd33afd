package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/ghbackup/pkg/controller/server"
	"github.com/m-mizutani/ghbackup/pkg/domain/mock"
	"github.com/m-mizutani/ghbackup/pkg/domain/model"
	"github.com/m-mizutani/ghbackup/pkg/domain/types"
	"github.com/m-mizutani/ghbackup/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

type response struct {
	Response string `json:"response"`
	Run      string `json:"run"`
	Total    int    `json:"total"`
	Failed   int    `json:"failed"`
	Outcomes []struct {
		Repository string `json:"repository"`
		Status     string `json:"status"`
		Key        string `json:"key"`
		Reason     string `json:"reason"`
	} `json:"outcomes"`
}

func postBackup(t *testing.T, srv *server.Server) (*httptest.ResponseRecorder, *response) {
	req := httptest.NewRequest(http.MethodPost, "/backup", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	var resp response
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, &resp
}

func TestHealth(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{}, &model.BackupInput{})

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestBackup(t *testing.T) {
	repoA := model.Repository{Owner: "acme", Name: "a"}
	repoB := model.Repository{Owner: "acme", Name: "b"}
	ts := types.RunTimestamp("2024-03-01T12:00:00.000Z")

	t.Run("all repositories backed up", func(t *testing.T) {
		input := &model.BackupInput{Mode: model.ModeOrganisation, Organisation: "acme"}
		mockUC := &mock.UseCaseMock{
			BackupRepositoriesFunc: func(ctx context.Context, in *model.BackupInput) (*model.BackupResult, error) {
				gt.V(t, in).Equal(input)
				return &model.BackupResult{
					RunTimestamp: ts,
					Outcomes: []model.Outcome{
						model.BackedUp(repoA, types.NewObjectKey(ts, "acme", "a"), 10),
					},
				}, nil
			},
		}

		rec, resp := postBackup(t, server.New(mockUC, input))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")
		gt.V(t, resp.Response).Equal("all repos were successfully backed up")
		gt.V(t, resp.Run).Equal("2024-03-01T12:00:00.000Z")
		gt.V(t, resp.Total).Equal(1)
		gt.V(t, resp.Outcomes[0].Key).Equal("2024-03-01T12:00:00.000Z/acme/a.tar.gz")
		gt.V(t, len(mockUC.BackupRepositoriesCalls())).Equal(1)
	})

	t.Run("partial failure returns 500 with summary", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			BackupRepositoriesFunc: func(ctx context.Context, in *model.BackupInput) (*model.BackupResult, error) {
				return &model.BackupResult{
					RunTimestamp: ts,
					Outcomes: []model.Outcome{
						model.BackedUp(repoA, types.NewObjectKey(ts, "acme", "a"), 10),
						model.FetchFailed(repoB, errors.New("404 Not Found")),
					},
				}, nil
			},
		}

		rec, resp := postBackup(t, server.New(mockUC, &model.BackupInput{}))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.V(t, resp.Response).Equal("1 of 2 repos were not backed up")
		gt.V(t, resp.Failed).Equal(1)
		gt.V(t, resp.Outcomes[1].Status).Equal("fetch_failed")
		gt.V(t, resp.Outcomes[1].Reason).Equal("404 Not Found")
	})

	t.Run("aborted run returns 500", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			BackupRepositoriesFunc: func(ctx context.Context, in *model.BackupInput) (*model.BackupResult, error) {
				return nil, errors.New("401 Bad credentials")
			},
		}

		rec, resp := postBackup(t, server.New(mockUC, &model.BackupInput{}))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.V(t, resp.Response).Equal("401 Bad credentials")
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, &model.BackupInput{})
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/backup", nil))
		gt.V(t, rec.Code).Equal(http.StatusMethodNotAllowed)
	})

	t.Run("overlapping run is rejected", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		mockUC := &mock.UseCaseMock{
			BackupRepositoriesFunc: func(ctx context.Context, in *model.BackupInput) (*model.BackupResult, error) {
				close(started)
				<-release
				return &model.BackupResult{RunTimestamp: ts}, nil
			},
		}
		srv := server.New(mockUC, &model.BackupInput{})

		done := make(chan int)
		go func() {
			rec := httptest.NewRecorder()
			srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/backup", nil))
			done <- rec.Code
		}()
		<-started

		rec, resp := postBackup(t, srv)
		gt.V(t, rec.Code).Equal(http.StatusConflict)
		gt.V(t, resp.Response).Equal("backup is already running")

		close(release)
		gt.V(t, <-done).Equal(http.StatusOK)
	})

	t.Run("client disconnect does not cancel the run", func(t *testing.T) {
		reqID, ctx := logging.CtxRequestID(context.Background())
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		mockUC := &mock.UseCaseMock{
			BackupRepositoriesFunc: func(ctx context.Context, in *model.BackupInput) (*model.BackupResult, error) {
				gt.NoError(t, ctx.Err())
				id, _ := logging.CtxRequestID(ctx)
				gt.V(t, id).Equal(reqID)
				return &model.BackupResult{
					RunTimestamp: ts,
					Outcomes: []model.Outcome{
						model.BackedUp(repoA, types.NewObjectKey(ts, "acme", "a"), 10),
					},
				}, nil
			},
		}
		srv := server.New(mockUC, &model.BackupInput{})

		req := httptest.NewRequest(http.MethodPost, "/backup", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, len(mockUC.BackupRepositoriesCalls())).Equal(1)
	})
}
