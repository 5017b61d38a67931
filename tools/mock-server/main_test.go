package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

func testServer(t *testing.T, posts int) *httptest.Server {
	t.Helper()
	store := newFeedStore(posts, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	srv := httptest.NewServer(newMux(testLogger(), store, []string{"public_profile", "user_posts"}, 10))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, rawURL, token string, form url.Values) *http.Response {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req, err := http.NewRequest(method, rawURL, body)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("executing request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}

func TestTokenHandler_ClientCredentials(t *testing.T) {
	srv := testServer(t, 0)

	resp := do(t, http.MethodPost, srv.URL+"/v19.0/oauth/access_token", "", url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"123"},
		"client_secret": {"s3cret"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, want %d", resp.StatusCode, http.StatusOK)
	}

	body := decode[map[string]any](t, resp)
	tok, _ := body["access_token"].(string)
	if !strings.HasPrefix(tok, "mock-app-") {
		t.Errorf("access_token=%q, want mock-app- prefix", tok)
	}
	if body["token_type"] != "bearer" {
		t.Errorf("token_type=%v, want bearer", body["token_type"])
	}
}

func TestTokenHandler_AuthorizationCode(t *testing.T) {
	srv := testServer(t, 0)

	resp := do(t, http.MethodPost, srv.URL+"/v19.0/oauth/access_token", "", url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {"abc"},
		"client_id":     {"123"},
		"client_secret": {"s3cret"},
	})
	body := decode[map[string]any](t, resp)
	tok, _ := body["access_token"].(string)
	if !strings.HasPrefix(tok, "mock-user-") {
		t.Errorf("access_token=%q, want mock-user- prefix", tok)
	}
}

func TestTokenHandler_MissingCredentials(t *testing.T) {
	srv := testServer(t, 0)

	resp := do(t, http.MethodPost, srv.URL+"/v19.0/oauth/access_token", "", url.Values{
		"grant_type": {"client_credentials"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if body := decode[graphError](t, resp); body.Error.Code != 101 {
		t.Errorf("code=%d, want 101", body.Error.Code)
	}
}

func TestRequireToken(t *testing.T) {
	srv := testServer(t, 5)

	resp := do(t, http.MethodGet, srv.URL+"/v19.0/me/feed", "bogus", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
	if body := decode[graphError](t, resp); body.Error.Code != 190 {
		t.Errorf("code=%d, want 190", body.Error.Code)
	}
}

func TestPermissionsHandler(t *testing.T) {
	srv := testServer(t, 0)

	resp := do(t, http.MethodGet, srv.URL+"/v19.0/me/permissions", "mock-user", nil)
	body := decode[struct {
		Data []struct {
			Permission string `json:"permission"`
			Status     string `json:"status"`
		} `json:"data"`
	}](t, resp)

	if len(body.Data) != 2 {
		t.Fatalf("permissions=%d, want 2", len(body.Data))
	}
	if body.Data[1].Permission != "user_posts" || body.Data[1].Status != "granted" {
		t.Errorf("got %+v, want user_posts granted", body.Data[1])
	}
}

func TestFeedHandler_FollowsNextLinks(t *testing.T) {
	srv := testServer(t, 25)

	var (
		ids   []string
		pages int
		next  = srv.URL + "/v19.0/me/feed?fields=id,message"
	)
	for next != "" {
		resp := do(t, http.MethodGet, next, "mock-user", nil)
		body := decode[feedResponse](t, resp)
		pages++
		for _, p := range body.Data {
			ids = append(ids, p.ID)
		}
		next = ""
		if body.Paging != nil {
			next = body.Paging.Next
		}
		if next != "" && !strings.Contains(next, "fields=id%2Cmessage") {
			t.Errorf("next=%q does not carry the original query", next)
		}
	}

	if pages != 3 {
		t.Errorf("pages=%d, want 3", pages)
	}
	if len(ids) != 25 {
		t.Fatalf("posts=%d, want 25", len(ids))
	}
	if ids[0] != "1000_25" || ids[24] != "1000_1" {
		t.Errorf("order=%s..%s, want newest first", ids[0], ids[24])
	}
}

func TestFeedHandler_Empty(t *testing.T) {
	srv := testServer(t, 0)

	resp := do(t, http.MethodGet, srv.URL+"/v19.0/me/feed", "mock-user", nil)
	body := decode[feedResponse](t, resp)
	if body.Data == nil || len(body.Data) != 0 {
		t.Errorf("data=%v, want empty array", body.Data)
	}
	if body.Paging != nil {
		t.Error("expected no paging for an empty feed")
	}
}

func TestFeedHandler_BadCursor(t *testing.T) {
	srv := testServer(t, 3)

	resp := do(t, http.MethodGet, srv.URL+"/v19.0/me/feed?after=!!", "mock-user", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status=%d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestPostHandler(t *testing.T) {
	srv := testServer(t, 2)

	resp := do(t, http.MethodPost, srv.URL+"/v19.0/me/feed", "mock-user", url.Values{
		"name": {"Release notes"},
		"link": {"https://example.com/notes"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, want %d", resp.StatusCode, http.StatusOK)
	}
	if body := decode[map[string]string](t, resp); body["id"] != "1000_3" {
		t.Errorf("id=%q, want 1000_3", body["id"])
	}

	feed := decode[feedResponse](t, do(t, http.MethodGet, srv.URL+"/v19.0/me/feed", "mock-user", nil))
	if feed.Data[0].Message != "Release notes" {
		t.Errorf("newest message=%q, want Release notes", feed.Data[0].Message)
	}
}

func TestPostHandler_EmptyPost(t *testing.T) {
	srv := testServer(t, 0)

	resp := do(t, http.MethodPost, srv.URL+"/v19.0/me/feed", "mock-user", url.Values{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status=%d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
