package mail

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/starford/billabong/internal/apperr"
	"github.com/starford/billabong/internal/index"
	"github.com/starford/billabong/internal/models"
	"github.com/starford/billabong/internal/testutil"
)

type fakeSender struct {
	mu       sync.Mutex
	calls    []Params
	accounts []models.EmailJSConfig
	err      error
}

func (f *fakeSender) Send(_ context.Context, account models.EmailJSConfig, p Params) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, p)
	f.accounts = append(f.accounts, account)
	return f.err
}

var testCfg = models.EmailJSConfig{PublicKey: "pk", ServiceID: "svc", TemplateID: "tpl", WebsiteName: "Sailing Billabong"}

var validForm = Form{FromName: "Ann", FromEmail: "ann@example.com", Message: "Is Saturday free?"}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestReadiness_TimesOut(t *testing.T) {
	t.Parallel()

	r := NewReadiness()
	require.False(t, r.Ready())
	start := time.Now()
	_, err := r.Wait(context.Background(), 20*time.Millisecond)
	require.ErrorIs(t, err, apperr.ErrServiceNotReady)
	require.Less(t, time.Since(start), time.Second)
}

func TestReadiness_ResolvedWhileWaiting(t *testing.T) {
	t.Parallel()

	r := NewReadiness()
	s := &fakeSender{}
	go func() {
		time.Sleep(10 * time.Millisecond)
		r.Resolve(s)
	}()
	got, err := r.Wait(context.Background(), 2*time.Second)
	require.NoError(t, err)
	require.Same(t, s, got)

	r.Resolve(&fakeSender{})
	got, err = r.Wait(context.Background(), time.Millisecond)
	require.NoError(t, err)
	require.Same(t, s, got, "first resolution wins")
}

func TestReadiness_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReadiness().Wait(ctx, time.Minute)
	require.ErrorIs(t, err, apperr.ErrServiceNotReady)
}

func TestBuildParams(t *testing.T) {
	t.Parallel()

	p := BuildParams(Form{FromName: "Ann", FromEmail: "ann@example.com", Message: "hi"}, "", DefaultRecipient)
	require.Equal(t, DefaultSubject, p["subject"])
	require.Equal(t, DefaultWebsite, p["website"])
	require.Equal(t, "Ann", p["name"])
	require.Equal(t, "ann@example.com", p["email"])
	require.Equal(t, DefaultRecipient, p["to_email"])
	require.Equal(t, DefaultRecipient, p["contactEmail"])

	p = BuildParams(Form{Subject: "Booking"}, "Other", "x@example.com")
	require.Equal(t, "Booking", p["subject"])
	require.Equal(t, "Other", p["website"])
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	ok := StatusFor(nil)
	require.Equal(t, "success", ok.Status)
	require.Equal(t, MessageSent, ok.Message)
	require.Equal(t, 5000, ok.HideAfterMS)
	require.True(t, ok.SubmitEnabled)

	bad := StatusFor(apperr.ErrServiceNotReady)
	require.Equal(t, "error", bad.Status)
	require.Equal(t, MessageFailed, bad.Message)
	require.True(t, bad.SubmitEnabled)
}

func TestDispatcher_Validation(t *testing.T) {
	t.Parallel()

	ready := NewReadiness()
	s := &fakeSender{}
	ready.Resolve(s)
	d := NewDispatcher(ready, Options{Logger: quietLogger()})

	_, err := d.Send(context.Background(), testCfg, Form{FromName: "Ann", FromEmail: "not-an-email", Message: "x"})
	require.ErrorIs(t, err, apperr.ErrInvalid)
	require.True(t, IsValidation(err))
	require.Empty(t, s.calls)
}

func TestDispatcher_SendsOnceAndRecords(t *testing.T) {
	t.Parallel()

	db := testutil.TestDB(t)
	ready := NewReadiness()
	s := &fakeSender{}
	ready.Resolve(s)
	d := NewDispatcher(ready, Options{Log: db, Logger: quietLogger()})

	id, err := d.Send(context.Background(), testCfg, validForm)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Len(t, s.calls, 1)
	require.Equal(t, "Is Saturday free?", s.calls[0]["message"])

	subs, err := db.ListSubmissions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, id, subs[0].ID)
	require.Equal(t, index.StatusSent, subs[0].Status)
	require.Equal(t, DefaultSubject, subs[0].Subject)
}

func TestDispatcher_SendFailureIsNotRetried(t *testing.T) {
	t.Parallel()

	db := testutil.TestDB(t)
	ready := NewReadiness()
	s := &fakeSender{err: errors.New("quota exceeded")}
	ready.Resolve(s)
	d := NewDispatcher(ready, Options{Log: db, Logger: quietLogger()})

	_, err := d.Send(context.Background(), testCfg, validForm)
	require.ErrorIs(t, err, apperr.ErrSendFailed)
	require.Len(t, s.calls, 1)

	subs, _ := db.ListSubmissions(context.Background(), 10)
	require.Len(t, subs, 1)
	require.Equal(t, index.StatusFailed, subs[0].Status)
	require.Contains(t, subs[0].Error, "quota exceeded")
}

func TestDispatcher_NotReady(t *testing.T) {
	t.Parallel()

	db := testutil.TestDB(t)
	d := NewDispatcher(NewReadiness(), Options{ReadyTimeout: 20 * time.Millisecond, Log: db, Logger: quietLogger()})

	_, err := d.Send(context.Background(), testCfg, validForm)
	require.ErrorIs(t, err, apperr.ErrServiceNotReady)

	subs, _ := db.ListSubmissions(context.Background(), 10)
	require.Len(t, subs, 1)
	require.Equal(t, index.StatusNotReady, subs[0].Status)
}

func TestInit(t *testing.T) {
	t.Parallel()

	r := NewReadiness()
	require.False(t, Init(r, "", "", models.EmailJSConfig{PublicKey: "pk"}))
	require.False(t, r.Ready())
	require.True(t, Init(r, "", "", testCfg))
	require.True(t, r.Ready())
}

func TestClient_Send(t *testing.T) {
	t.Parallel()

	var (
		got                     sendRequest
		method, path, mediaType string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path, mediaType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "")
	err := c.Send(context.Background(), testCfg, Params{"message": "hello"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, method)
	require.Equal(t, "/api/v1.0/email/send", path)
	require.Equal(t, "application/json", mediaType)
	require.Equal(t, "svc", got.ServiceID)
	require.Equal(t, "tpl", got.TemplateID)
	require.Equal(t, "pk", got.UserID)
	require.Empty(t, got.AccessToken)
	require.Equal(t, "hello", got.TemplateParams["message"])
}

func TestClient_SendError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "The public key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").Send(context.Background(), models.EmailJSConfig{PublicKey: "bad"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 400")
	require.Contains(t, err.Error(), "public key is invalid")
}

func TestDispatcher_UsesAccountOfEachSend(t *testing.T) {
	t.Parallel()

	r := NewReadiness()
	s := &fakeSender{}
	r.Resolve(s)
	d := NewDispatcher(r, Options{Logger: quietLogger()})

	rotated := testCfg
	rotated.PublicKey, rotated.ServiceID, rotated.TemplateID = "pk2", "svc2", "tpl2"
	for _, cfg := range []models.EmailJSConfig{testCfg, rotated} {
		_, err := d.Send(context.Background(), cfg, validForm)
		require.NoError(t, err)
	}
	require.Equal(t, []models.EmailJSConfig{testCfg, rotated}, s.accounts)
}

func TestClient_SendsPerCallPublicKey(t *testing.T) {
	t.Parallel()

	var keys []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got sendRequest
		_ = json.NewDecoder(r.Body).Decode(&got)
		keys = append(keys, got.UserID+"/"+got.ServiceID)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	for _, pk := range []string{"pk1", "pk2"} {
		account := models.EmailJSConfig{PublicKey: pk, ServiceID: "svc-" + pk, TemplateID: "tpl"}
		require.NoError(t, c.Send(context.Background(), account, nil))
	}
	require.Equal(t, []string{"pk1/svc-pk1", "pk2/svc-pk2"}, keys)
}
