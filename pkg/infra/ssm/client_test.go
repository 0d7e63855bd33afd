package ssm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/ghbackup/pkg/infra/ssm"
	"github.com/m-mizutani/gt"
)

func TestGetParameter(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("X-Amz-Target")).Equal("AmazonSSM.GetParameter")

		var req struct {
			Name           string
			WithDecryption bool
		}
		body := gt.R1(io.ReadAll(r.Body)).NoError(t)
		gt.NoError(t, json.Unmarshal(body, &req))
		gt.True(t, req.WithDecryption)

		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		switch req.Name {
		case "GITHUB_PAT":
			_, _ = w.Write([]byte(`{"Parameter":{"Name":"GITHUB_PAT","Type":"SecureString","Value":"ghp_test"}}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"__type":"ParameterNotFound","message":"not found"}`))
		}
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := gt.R1(ssm.New(ctx, ssm.WithRegion("us-east-1"), ssm.WithEndpoint(srv.URL))).NoError(t)

	value := gt.R1(client.GetParameter(ctx, "GITHUB_PAT")).NoError(t)
	gt.V(t, value).Equal("ghp_test")

	_, err := client.GetParameter(ctx, "MISSING")
	gt.Error(t, err)
}
