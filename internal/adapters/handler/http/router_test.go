package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/livepoll/internal/adapters/auth"
	"github.com/vncsmyrnk/livepoll/internal/adapters/realtime"
	"github.com/vncsmyrnk/livepoll/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/services"
	"github.com/vncsmyrnk/livepoll/internal/lib/logger"
)

type testApp struct {
	server *httptest.Server
	hub    *realtime.Hub
	store  *memory.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log := logger.Discard()
	store := memory.NewStore()
	hub := realtime.NewHub(log)

	jwtIssuer := auth.NewJWTIssuer("test-secret", time.Hour)
	authService := services.NewAuthService(log, store.Users(), auth.NewBcryptHasher(4), jwtIssuer, jwtIssuer)
	resultsService := services.NewResultsService(store.Polls())
	pollService := services.NewPollService(store.Polls())
	voteService := services.NewVoteService(log, store.Votes(), resultsService, hub)

	handler := NewHandler(Handlers{
		Auth:     NewAuthHandler(authService, log),
		Polls:    NewPollHandler(pollService, resultsService, log),
		Votes:    NewVoteHandler(voteService, log),
		Realtime: realtime.NewHandler(hub, log, nil),
	}, authService, log, RouterOptions{AllowedOrigins: []string{"*"}})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &testApp{server: srv, hub: hub, store: store}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

// signUp registers a fresh user and returns a bearer token for them.
func (a *testApp) signUp(t *testing.T) string {
	t.Helper()
	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 12)

	status, _ := a.do(t, http.MethodPost, "/register", "", map[string]string{
		"name": gofakeit.Name(), "email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, status)

	status, body := a.do(t, http.MethodPost, "/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, status)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (a *testApp) createPoll(t *testing.T, token string) domain.Poll {
	t.Helper()
	status, body := a.do(t, http.MethodPost, "/polls", token, map[string]any{
		"question": "Favorite color?",
		"options":  []string{"Red", "Blue"},
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var poll domain.Poll
	require.NoError(t, json.Unmarshal(body, &poll))
	return poll
}

func (a *testApp) vote(t *testing.T, token string, pollID, optionID int64) (int, []byte) {
	t.Helper()
	return a.do(t, http.MethodPost, fmt.Sprintf("/polls/%d/vote", pollID), token, map[string]int64{"optionId": optionID})
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	status, body := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)
	payload := map[string]string{"name": "Ada", "email": "ada@example.com", "password": "s3cret"}

	status, body := app.do(t, http.MethodPost, "/register", "", payload)
	require.Equal(t, http.StatusOK, status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "User created successfully", resp["message"])
	user := resp["user"].(map[string]any)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, string(body), "s3cret")

	status, body = app.do(t, http.MethodPost, "/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.ErrUserExists.Error(), errorMessage(t, body))

	// The rejected duplicate took no id, so the next user is the second one.
	status, body = app.do(t, http.MethodPost, "/register", "", map[string]string{
		"name": "Grace", "email": "grace@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.EqualValues(t, 2, resp["user"].(map[string]any)["id"])

	status, body = app.do(t, http.MethodPost, "/register", "", map[string]string{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.ErrInvalidInput.Error(), errorMessage(t, body))
}

func TestRegister_PasswordTooLong(t *testing.T) {
	app := newTestApp(t)

	status, body := app.do(t, http.MethodPost, "/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": strings.Repeat("a", 73),
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.ErrInvalidInput.Error(), errorMessage(t, body))

	// Nothing was stored, so the email is still free.
	status, _ = app.do(t, http.MethodPost, "/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": strings.Repeat("a", 72),
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	status, _ := app.do(t, http.MethodPost, "/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := app.do(t, http.MethodPost, "/login", "", map[string]string{
		"email": "ada@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, status)
	var resp loginResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "Ada", resp.User.Name)
	assert.Equal(t, int64(1), resp.User.ID)

	for _, creds := range []map[string]string{
		{"email": "ada@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": "s3cret"},
		{},
	} {
		status, body = app.do(t, http.MethodPost, "/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, domain.ErrInvalidCredentials.Error(), errorMessage(t, body))
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/polls"},
		{http.MethodPost, "/polls/1/vote"},
		{http.MethodGet, "/votes"},
		{http.MethodGet, "/mypolls"},
	}
	for _, rt := range routes {
		status, body := app.do(t, rt.method, rt.path, "", map[string]any{})
		assert.Equal(t, http.StatusUnauthorized, status, rt.path)
		assert.Equal(t, domain.ErrMissingToken.Error(), errorMessage(t, body))

		status, body = app.do(t, rt.method, rt.path, "garbage", map[string]any{})
		assert.Equal(t, http.StatusUnauthorized, status, rt.path)
		assert.Equal(t, domain.ErrInvalidToken.Error(), errorMessage(t, body))
	}
}

func TestCreatePoll_Validation(t *testing.T) {
	app := newTestApp(t)
	token := app.signUp(t)

	bodies := []map[string]any{
		{"question": "Only one?", "options": []string{"A"}},
		{"question": "", "options": []string{"A", "B"}},
		{"question": "Blank?", "options": []string{"A", "  "}},
	}
	for _, b := range bodies {
		status, body := app.do(t, http.MethodPost, "/polls", token, b)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, domain.ErrInvalidPoll.Error(), errorMessage(t, body))
	}
}

func TestVotingScenario(t *testing.T) {
	app := newTestApp(t)
	creator := app.signUp(t)
	u1 := app.signUp(t)
	u2 := app.signUp(t)

	poll := app.createPoll(t, creator)
	require.Len(t, poll.Options, 2)
	assert.True(t, poll.IsPublished)
	optA, optB := poll.Options[0].ID, poll.Options[1].ID
	assert.Equal(t, int64(1), optA)
	assert.Equal(t, int64(2), optB)

	status, body := app.vote(t, u1, poll.ID, optA)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.JSONEq(t, `{"message":"Vote recorded"}`, string(body))
	assertTally(t, app, poll.ID, 1, "100.00", "0.00")

	status, body = app.vote(t, u1, poll.ID, optB)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.ErrAlreadyVoted.Error(), errorMessage(t, body))
	assertTally(t, app, poll.ID, 1, "100.00", "0.00")

	status, _ = app.vote(t, u2, poll.ID, optB)
	require.Equal(t, http.StatusOK, status)
	assertTally(t, app, poll.ID, 2, "50.00", "50.00")

	status, body = app.do(t, http.MethodGet, "/votes", creator, nil)
	require.Equal(t, http.StatusOK, status)
	var votes []domain.VoteDetail
	require.NoError(t, json.Unmarshal(body, &votes))
	require.Len(t, votes, 2)
	assert.Equal(t, "Favorite color?", votes[0].PollQuestion)
	assert.Equal(t, "Red", votes[0].ChosenOption)
	assert.Equal(t, "Blue", votes[1].ChosenOption)

	status, body = app.do(t, http.MethodGet, "/polls", "", nil)
	require.Equal(t, http.StatusOK, status)
	var polls []domain.Poll
	require.NoError(t, json.Unmarshal(body, &polls))
	require.Len(t, polls, 1)
	assert.Len(t, polls[0].Options[0].Votes, 1)
	assert.Contains(t, string(body), `"pollOptionId"`)
}

func assertTally(t *testing.T, app *testApp, pollID, total int64, percentages ...string) {
	t.Helper()
	status, body := app.do(t, http.MethodGet, fmt.Sprintf("/polls/%d/results", pollID), "", nil)
	require.Equal(t, http.StatusOK, status)

	var res domain.PollResults
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, total, res.TotalVotes)
	require.Len(t, res.Results, len(percentages))
	for i, p := range percentages {
		assert.Equal(t, p, res.Results[i].Percentage.String())
		assert.Contains(t, string(body), `"percentage":`+p)
	}
}

func TestVote_InvalidOption(t *testing.T) {
	app := newTestApp(t)
	token := app.signUp(t)
	first := app.createPoll(t, token)
	second := app.createPoll(t, token)

	tests := map[string]struct {
		path string
		body any
		err  error
	}{
		"option of another poll": {fmt.Sprintf("/polls/%d/vote", first.ID), map[string]int64{"optionId": second.Options[0].ID}, domain.ErrInvalidOption},
		"unknown poll":           {"/polls/999/vote", map[string]int64{"optionId": first.Options[0].ID}, domain.ErrInvalidOption},
		"missing option":         {fmt.Sprintf("/polls/%d/vote", first.ID), map[string]any{}, domain.ErrInvalidOption},
		"malformed poll id":      {"/polls/abc/vote", map[string]int64{"optionId": 1}, domain.ErrInvalidPollID},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status, body := app.do(t, http.MethodPost, tt.path, token, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.err.Error(), errorMessage(t, body))
		})
	}

	assertTally(t, app, first.ID, 0, "0.00", "0.00")
}

func TestResults_Errors(t *testing.T) {
	app := newTestApp(t)

	status, body := app.do(t, http.MethodGet, "/polls/42/results", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.ErrPollNotFound.Error(), errorMessage(t, body))

	status, _ = app.do(t, http.MethodGet, "/polls/nope/results", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMyPolls(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUp(t)
	bob := app.signUp(t)

	mine := app.createPoll(t, alice)
	app.createPoll(t, bob)

	status, body := app.do(t, http.MethodGet, "/mypolls", alice, nil)
	require.Equal(t, http.StatusOK, status)
	var polls []domain.Poll
	require.NoError(t, json.Unmarshal(body, &polls))
	require.Len(t, polls, 1)
	assert.Equal(t, mine.ID, polls[0].ID)
}

func TestVoteBroadcastsToSubscribers(t *testing.T) {
	app := newTestApp(t)
	creator := app.signUp(t)
	voter := app.signUp(t)
	poll := app.createPoll(t, creator)
	other := app.createPoll(t, creator)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(app.server.URL, "http") + "/ws"
	watcher, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer watcher.CloseNow()
	bystander, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer bystander.CloseNow()

	require.NoError(t, wsjson.Write(ctx, watcher, map[string]any{"event": "joinPoll", "data": poll.ID}))
	require.NoError(t, wsjson.Write(ctx, bystander, map[string]any{"event": "joinPoll", "data": other.ID}))
	require.Eventually(t, func() bool {
		return app.hub.Subscribers(poll.ID) == 1 && app.hub.Subscribers(other.ID) == 1
	}, 2*time.Second, 10*time.Millisecond)

	status, _ := app.vote(t, voter, poll.ID, poll.Options[0].ID)
	require.Equal(t, http.StatusOK, status)

	var msg realtime.Message
	require.NoError(t, wsjson.Read(ctx, watcher, &msg))
	assert.Equal(t, realtime.EventPollUpdated, msg.Event)

	var update domain.PollResults
	require.NoError(t, json.Unmarshal(msg.Data, &update))
	assert.Equal(t, poll.ID, update.PollID)
	assert.Equal(t, "Favorite color?", update.Question)
	assert.Equal(t, int64(1), update.TotalVotes)
	assert.Equal(t, "100.00", update.Results[0].Percentage.String())

	// The bystander watches a different poll and must not get anything.
	readCtx, cancelRead := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancelRead()
	_, _, err = bystander.Read(readCtx)
	assert.Error(t, err)
}

func TestWriteJSON_LogsEncodeFailures(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))
	rec := httptest.NewRecorder()

	writeJSON(rec, log, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Contains(t, logs.String(), "failed to encode JSON response")
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/polls", nil)

	writeError(rec, req, logger.Discard(), fmt.Errorf("postgres.pollRepository.GetAll: %w", errors.New("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
