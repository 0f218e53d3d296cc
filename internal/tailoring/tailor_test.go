package tailoring

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	reply    string
	err      error
	requests []llm.Request
}

func (f *fakeClient) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Text: f.reply, Model: "fake-model"}, nil
}

func (f *fakeClient) Model() string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func newTestService(client llm.Client) (*Service, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	return NewService(client, logrus.NewEntry(logger)), &buf
}

var candidates = []types.BulletEntry{
	{Bullet: "Built a Go ingestion service on Kafka"},
	{Bullet: "Led Kubernetes migration"},
}

func TestTailor_ReturnsModelOrder(t *testing.T) {
	client := &fakeClient{reply: `{"bullets": ["B", "A"]}`}
	svc, _ := newTestService(client)

	bullets, err := svc.Tailor(context.Background(), "Go backend role", "Backend Engineer", "Acme", candidates)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, bullets)
	require.Len(t, client.requests, 1, "exactly one completion call")
	assert.True(t, client.requests[0].JSON)
}

func TestTailor_PromptContents(t *testing.T) {
	client := &fakeClient{reply: `{"bullets": []}`}
	svc, _ := newTestService(client)

	_, err := svc.Tailor(context.Background(), "We need Go.\r\n\r\n\r\n\r\nAnd  Kafka.", "Backend Engineer", "Acme", candidates)
	require.NoError(t, err)

	req := client.requests[0]
	assert.Contains(t, req.System, "8-12")
	assert.Contains(t, req.System, `{"bullets"`)
	assert.Contains(t, req.User, "JOB TITLE: Backend Engineer")
	assert.Contains(t, req.User, "COMPANY: Acme")
	assert.Contains(t, req.User, "We need Go.\n\nAnd Kafka.")
	assert.Contains(t, req.User, "- Built a Go ingestion service on Kafka\n- Led Kubernetes migration")
}

func TestTailor_DoesNotMutateCandidates(t *testing.T) {
	input := []types.BulletEntry{{Bullet: "Original"}}
	client := &fakeClient{reply: `{"bullets": ["Rewritten"]}`}
	svc, _ := newTestService(client)

	_, err := svc.Tailor(context.Background(), "jd", "t", "c", input)
	require.NoError(t, err)

	assert.Equal(t, "Original", input[0].Bullet)
}

func TestTailor_ReplyShapes(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    []string
		wantLog string
	}{
		{"missing bullets key", `{"items": ["A"]}`, []string{}, "no bullets key"},
		{"bullets not a list", `{"bullets": "A"}`, []string{}, "not a list"},
		{"bullets null", `{"bullets": null}`, []string{}, "not a list"},
		{"non-string element", `{"bullets": ["A", 2]}`, []string{}, "not a string"},
		{"top-level array", `["A", "B"]`, []string{}, "not a JSON object"},
		{"code fenced", "```json\n{\"bullets\": [\"A\"]}\n```", []string{"A"}, ""},
		{"empty list", `{"bullets": []}`, []string{}, "expected 8-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, logs := newTestService(&fakeClient{reply: tt.reply})

			bullets, err := svc.Tailor(context.Background(), "jd", "t", "c", candidates)
			require.NoError(t, err)

			assert.Equal(t, tt.want, bullets)
			assert.NotNil(t, bullets)
			if tt.wantLog != "" {
				assert.Contains(t, logs.String(), tt.wantLog)
			}
		})
	}
}

func TestTailor_CountOutsideRangeIsWarningOnly(t *testing.T) {
	svc, logs := newTestService(&fakeClient{reply: `{"bullets": ["A", "B"]}`})

	bullets, err := svc.Tailor(context.Background(), "jd", "t", "c", candidates)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, bullets)
	assert.Contains(t, logs.String(), "level=warning")
	assert.Contains(t, logs.String(), "model returned 2 bullets")
}

func TestTailor_NonJSONReply(t *testing.T) {
	svc, _ := newTestService(&fakeClient{reply: "Sure! Here are your bullets: ..."})

	bullets, err := svc.Tailor(context.Background(), "jd", "t", "c", candidates)
	require.Error(t, err)
	assert.Nil(t, bullets)

	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestTailor_TransportFailure(t *testing.T) {
	cause := errors.New("connection refused")
	svc, _ := newTestService(&fakeClient{err: cause})

	_, err := svc.Tailor(context.Background(), "jd", "t", "c", candidates)
	require.Error(t, err)

	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.ErrorIs(t, err, cause)
}

func TestTailor_NilClient(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.Tailor(context.Background(), "jd", "t", "c", candidates)

	var serviceErr *ServiceError
	assert.ErrorAs(t, err, &serviceErr)
}

func TestBuildUserPrompt_HTMLJobDescription(t *testing.T) {
	prompt, err := buildUserPrompt(`<div class="job-description"><p>Write Go</p></div>`, "SWE", "Acme", nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, "JOB DESCRIPTION:\nWrite Go\n")
	assert.NotContains(t, prompt, "<p>")
}

func TestBuildUserPrompt_KeepsTagsMentionedInProse(t *testing.T) {
	jd := "Senior Frontend Engineer\nBuild UIs with semantic <div> layouts, <form> validation and accessible controls.\nRequirements: 5 years of React and TypeScript."
	prompt, err := buildUserPrompt(jd, "SWE", "Acme", nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, jd)
}

func TestServiceError_Error(t *testing.T) {
	err := &ServiceError{Message: "boom"}
	assert.Equal(t, "tailoring service error: boom", err.Error())

	wrapped := &ServiceError{Message: "boom", Cause: errors.New("cause")}
	assert.Equal(t, "tailoring service error: boom: cause", wrapped.Error())
}
