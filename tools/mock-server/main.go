// Package main implements a mock Facebook Graph API server for local
// development. It issues tokens, reports granted permissions, serves a
// synthetic cursor-paginated feed and accepts feed posts, so sdp can run
// without a real Facebook app.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const tokenPrefix = "mock-"

type graphError struct {
	Error graphErrorBody `json:"error"`
}

type graphErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

type post struct {
	ID          string `json:"id"`
	Message     string `json:"message,omitempty"`
	From        *from  `json:"from,omitempty"`
	CreatedTime string `json:"created_time"`
	Link        string `json:"link,omitempty"`
}

type from struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type feedResponse struct {
	Data   []post  `json:"data"`
	Paging *paging `json:"paging,omitempty"`
}

type paging struct {
	Cursors cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

type cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// feedStore holds the synthetic feed. New posts are prepended.
type feedStore struct {
	mu    sync.Mutex
	posts []post
	seq   int
}

func newFeedStore(n int, start time.Time) *feedStore {
	s := &feedStore{}
	for i := n; i >= 1; i-- {
		s.posts = append(s.posts, post{
			ID:          fmt.Sprintf("1000_%d", i),
			Message:     fmt.Sprintf("mock post %d", i),
			From:        &from{ID: "1000", Name: "Mock Page"},
			CreatedTime: start.Add(time.Duration(i) * time.Minute).Format("2006-01-02T15:04:05-0700"),
		})
	}
	s.seq = n
	return s
}

func (s *feedStore) page(offset, limit int) ([]post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset >= len(s.posts) {
		return []post{}, false
	}
	end := min(offset+limit, len(s.posts))
	out := make([]post, end-offset)
	copy(out, s.posts[offset:end])
	return out, end < len(s.posts)
}

func (s *feedStore) add(p post) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	p.ID = fmt.Sprintf("1000_%d", s.seq)
	s.posts = append([]post{p}, s.posts...)
	return p.ID
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	posts := flag.Int("posts", 60, "number of synthetic posts in the feed")
	pageSize := flag.Int("page-size", 25, "default feed page size")
	granted := flag.String("permissions", "public_profile,user_posts,pages_manage_posts", "comma-separated granted permissions")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := newFeedStore(*posts, time.Now().Add(-24*time.Hour))
	perms := strings.Split(*granted, ",")

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Graph server", "addr", addr, "posts", *posts)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, store, perms, *pageSize)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, store *feedStore, perms []string, pageSize int) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /{version}/oauth/access_token", tokenHandler(logger))
	mux.HandleFunc("GET /{version}/me/permissions", requireToken(permissionsHandler(perms)))
	mux.HandleFunc("GET /{version}/{id}/feed", requireToken(feedHandler(logger, store, pageSize)))
	mux.HandleFunc("POST /{version}/{id}/feed", requireToken(postHandler(logger, store)))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeGraphError(w http.ResponseWriter, status, code int, msg string) {
	writeJSON(w, status, graphError{Error: graphErrorBody{
		Message: msg,
		Type:    "OAuthException",
		Code:    code,
	}})
}

// requireToken rejects requests without a mock bearer token the way Graph
// rejects invalid tokens: code 190.
func requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || !strings.HasPrefix(tok, tokenPrefix) {
			writeGraphError(w, http.StatusUnauthorized, 190, "Invalid OAuth access token.")
			return
		}
		next(w, r)
	}
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeGraphError(w, http.StatusBadRequest, 100, "malformed form body")
			return
		}
		if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
			logger.Warn("token request missing client credentials")
			writeGraphError(w, http.StatusBadRequest, 101, "Missing client_id or client_secret parameter.")
			return
		}

		kind := "app"
		if r.PostForm.Get("grant_type") == "authorization_code" {
			if r.PostForm.Get("code") == "" {
				writeGraphError(w, http.StatusBadRequest, 100, "Missing code parameter.")
				return
			}
			kind = "user"
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": tokenPrefix + kind + "-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   5183944,
			"token_type":   "bearer",
		})
		logger.Info("issued mock token", "kind", kind)
	}
}

func permissionsHandler(perms []string) http.HandlerFunc {
	type entry struct {
		Permission string `json:"permission"`
		Status     string `json:"status"`
	}
	data := make([]entry, 0, len(perms))
	for _, p := range perms {
		if p = strings.TrimSpace(p); p != "" {
			data = append(data, entry{Permission: p, Status: "granted"})
		}
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": data})
	}
}

func encodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

func decodeCursor(c string) (int, error) {
	b, err := base64.RawURLEncoding.DecodeString(c)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(string(b))
}

func feedHandler(logger *slog.Logger, store *feedStore, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit := pageSize
		if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
			limit = v
		}

		offset := 0
		if after := q.Get("after"); after != "" {
			v, err := decodeCursor(after)
			if err != nil || v < 0 {
				writeGraphError(w, http.StatusBadRequest, 100, "Invalid after cursor.")
				return
			}
			offset = v
		}

		posts, more := store.page(offset, limit)
		resp := feedResponse{Data: posts}
		if len(posts) > 0 {
			resp.Paging = &paging{Cursors: cursors{
				Before: encodeCursor(offset),
				After:  encodeCursor(offset + len(posts)),
			}}
			if more {
				next := url.Values{}
				for k, v := range q {
					next[k] = v
				}
				next.Set("limit", strconv.Itoa(limit))
				next.Set("after", resp.Paging.Cursors.After)
				resp.Paging.Next = "http://" + r.Host + r.URL.Path + "?" + next.Encode()
			}
		}

		writeJSON(w, http.StatusOK, resp)
		logger.Info("feed", "id", r.PathValue("id"), "offset", offset, "returned", len(posts), "more", more)
	}
}

func postHandler(logger *slog.Logger, store *feedStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeGraphError(w, http.StatusBadRequest, 100, "malformed form body")
			return
		}

		p := post{
			Message:     r.PostForm.Get("message"),
			Link:        r.PostForm.Get("link"),
			CreatedTime: time.Now().Format("2006-01-02T15:04:05-0700"),
			From:        &from{ID: "1000", Name: "Mock Page"},
		}
		if name := r.PostForm.Get("name"); name != "" && p.Message == "" {
			p.Message = name
		}
		if p.Message == "" && p.Link == "" && r.PostForm.Get("description") == "" {
			writeGraphError(w, http.StatusBadRequest, 100, "Post must contain a link or message.")
			return
		}

		id := store.add(p)
		writeJSON(w, http.StatusOK, map[string]string{"id": id})
		logger.Info("posted", "target", r.PathValue("id"), "id", id)
	}
}
