package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stockwise/internal/dto"
	"stockwise/internal/repository"
	"stockwise/internal/service"
	"stockwise/pkg/cache"
	"stockwise/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatService struct {
	reply string
	err   error
	got   dto.ConversationRequest
}

func (f *fakeChatService) Reply(_ context.Context, req dto.ConversationRequest) (string, error) {
	f.got = req
	return f.reply, f.err
}

func newTestServer(chat service.ChatService) *echo.Echo {
	e := echo.New()
	sessions := repository.NewQuestionnaireSessionRepository(cache.NewCache(time.Minute, time.Minute), time.Minute)
	svc := &service.Service{
		ChatService: chat,
		RiskService: service.NewRiskService(logger.NewNop(), sessions),
	}
	NewHttpAPIHandler(context.Background(), e, logger.NewNop(), goValidator.New(), svc).SetupRoutes()
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestChatHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		reply      string
		err        error
		wantStatus int
		wantBody   string
		wantMsgs   int
	}{
		{
			name:       "reply",
			body:       `{"messages":[{"role":"user","content":"AAPL stock price"}],"riskProfile":{"profile":"Moderate"}}`,
			reply:      "Apple is trading at $178.72.",
			wantStatus: http.StatusOK,
			wantBody:   `{"content":"Apple is trading at $178.72."}`,
			wantMsgs:   1,
		},
		{
			name:       "non-array messages defaults to empty",
			body:       `{"messages":"hello"}`,
			reply:      "Hi!",
			wantStatus: http.StatusOK,
			wantBody:   `{"content":"Hi!"}`,
		},
		{
			name:       "completion failure",
			body:       `{"messages":[]}`,
			err:        errors.New("openai chat completion: quota exceeded"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"openai chat completion: quota exceeded"}`,
		},
		{
			name:       "not json",
			body:       `{"messages":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request body"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &fakeChatService{reply: tt.reply, err: tt.err}
			e := newTestServer(chat)

			rec := do(t, e, http.MethodPost, "/api/chat", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if tt.wantStatus != http.StatusBadRequest {
				assert.NotNil(t, chat.got.Messages)
				assert.Len(t, chat.got.Messages, tt.wantMsgs)
			}
		})
	}
}

func TestChatHandler_EmptyBody(t *testing.T) {
	chat := &fakeChatService{reply: "Hello"}
	e := newTestServer(chat)

	rec := do(t, e, http.MethodPost, "/api/chat", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, chat.got.Messages)
	assert.Empty(t, chat.got.Messages)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type sessionData struct {
	ID        string            `json:"id"`
	Step      int               `json:"step"`
	Completed bool              `json:"completed"`
	Answers   map[string]string `json:"answers"`
	Result    *struct {
		Score   int    `json:"score"`
		Profile string `json:"profile"`
	} `json:"result"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestRiskAssessHandler(t *testing.T) {
	e := newTestServer(&fakeChatService{})

	rec := do(t, e, http.MethodPost, "/api/risk/assess",
		`{"answers":{"experience":"some","risk":"wait","goal":"balanced","timeHorizon":"medium","volatility":"maybe"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Score    int    `json:"score"`
		MaxScore int    `json:"max_score"`
		Profile  string `json:"profile"`
		Data     struct {
			Allocation []struct {
				AssetClass string `json:"asset_class"`
				Percentage int    `json:"percentage"`
			} `json:"allocation"`
		} `json:"data"`
	}
	decode(t, rec, &result)
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, 15, result.MaxScore)
	assert.Equal(t, "Moderate", result.Profile)
	assert.Len(t, result.Data.Allocation, 5)

	rec = do(t, e, http.MethodPost, "/api/risk/assess", `{"answers":{"experience":"some"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var answersErr service.AnswersError
	decode(t, rec, &answersErr)
	assert.Equal(t, []string{"risk", "goal", "timeHorizon", "volatility"}, answersErr.Missing)

	rec = do(t, e, http.MethodPost, "/api/risk/assess", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRiskStaticHandlers(t *testing.T) {
	e := newTestServer(&fakeChatService{})

	rec := do(t, e, http.MethodGet, "/api/risk/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var questions []struct {
		ID string `json:"id"`
	}
	decode(t, rec, &questions)
	assert.Len(t, questions, 5)

	rec = do(t, e, http.MethodGet, "/api/risk/profiles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profiles []struct {
		Profile string `json:"profile"`
	}
	decode(t, rec, &profiles)
	assert.Len(t, profiles, 3)
}

func TestRiskSessionHandlers(t *testing.T) {
	e := newTestServer(&fakeChatService{})

	rec := do(t, e, http.MethodPost, "/api/risk/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var s sessionData
	decode(t, rec, &s)
	require.NotEmpty(t, s.ID)
	base := "/api/risk/sessions/" + s.ID

	rec = do(t, e, http.MethodPost, base+"/next", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, e, http.MethodPost, base+"/answer", `{"value":"nope"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, e, http.MethodPost, base+"/answer", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, v := range []string{"experienced", "buy", "aggressive", "long", "yes"} {
		rec = do(t, e, http.MethodPost, base+"/answer", `{"value":"`+v+`"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		rec = do(t, e, http.MethodPost, base+"/next", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	s = sessionData{}
	decode(t, rec, &s)
	assert.True(t, s.Completed)
	require.NotNil(t, s.Result)
	assert.Equal(t, 15, s.Result.Score)
	assert.Equal(t, "Aggressive", s.Result.Profile)

	rec = do(t, e, http.MethodPost, base+"/back", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, e, http.MethodPost, base+"/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	s = sessionData{}
	decode(t, rec, &s)
	assert.False(t, s.Completed)
	assert.Empty(t, s.Answers)

	rec = do(t, e, http.MethodGet, base, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRiskSessionHandlers_BadIDs(t *testing.T) {
	e := newTestServer(&fakeChatService{})

	rec := do(t, e, http.MethodGet, "/api/risk/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/risk/sessions/c7b5cf4e-5b2a-4a8e-9a4e-3c1c1c9b7f00", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodDelete, "/api/risk/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
