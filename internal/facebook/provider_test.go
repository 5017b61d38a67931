package facebook_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/social-data-provider/internal/facebook"
	"github.com/donaldgifford/social-data-provider/internal/graph"
	graphMocks "github.com/donaldgifford/social-data-provider/internal/graph/mocks"
	"github.com/donaldgifford/social-data-provider/internal/notify"
	notifyMocks "github.com/donaldgifford/social-data-provider/internal/notify/mocks"
	"github.com/donaldgifford/social-data-provider/pkg/provider"
)

var feedParams = url.Values{"fields": {"id,message,from,created_time,link,full_picture"}}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func page(ids ...string) *graph.Page {
	p := &graph.Page{Data: make([]json.RawMessage, 0, len(ids))}
	for _, id := range ids {
		p.Data = append(p.Data, json.RawMessage(`{"id":"`+id+`","message":"msg `+id+`"}`))
	}
	return p
}

func ids(records []facebook.Schema) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func newInitialized(t *testing.T, opts ...facebook.Option) (*facebook.Provider, *graphMocks.MockSession) {
	t.Helper()

	sess := graphMocks.NewMockSession(t)
	sess.EXPECT().SetIdentity(mock.Anything).Return().Once()

	p := facebook.New(sess, append([]facebook.Option{facebook.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, p.Initialize(&facebook.OAuthTokens{AppID: "123", AppSecret: "s3cret"}))
	return p, sess
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tokens  *facebook.OAuthTokens
		wantErr error
	}{
		{name: "nil tokens", tokens: nil, wantErr: provider.ErrInvalidCredentials},
		{name: "missing app id", tokens: &facebook.OAuthTokens{AppSecret: "x"}, wantErr: provider.ErrInvalidCredentials},
		{name: "valid tokens", tokens: &facebook.OAuthTokens{AppID: "123", AppSecret: "x", CallbackURI: "https://example.com/cb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sess := graphMocks.NewMockSession(t)
			if tt.wantErr == nil {
				sess.EXPECT().SetIdentity(graph.Identity{
					AppID:       tt.tokens.AppID,
					AppSecret:   tt.tokens.AppSecret,
					RedirectURL: tt.tokens.CallbackURI,
				}).Return().Once()
			}

			p := facebook.New(sess, facebook.WithLogger(quietLogger()))
			err := p.Initialize(tt.tokens)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, p.Initialized())
				return
			}
			require.NoError(t, err)
			assert.True(t, p.Initialized())
		})
	}
}

func TestInitialize_InvalidAfterValid(t *testing.T) {
	t.Parallel()

	p, _ := newInitialized(t)

	require.ErrorIs(t, p.Initialize(nil), provider.ErrInvalidCredentials)
	assert.True(t, p.Initialized(), "a rejected Initialize leaves earlier state alone")
}

func TestInitialize_NilSession(t *testing.T) {
	t.Parallel()

	p := facebook.New(nil, facebook.WithLogger(quietLogger()))
	require.ErrorIs(t, p.Initialize(&facebook.OAuthTokens{AppID: "1"}), provider.ErrNoActiveSession)
}

func TestSession(t *testing.T) {
	t.Parallel()

	sess := graphMocks.NewMockSession(t)
	p := facebook.New(sess, facebook.WithLogger(quietLogger()))

	_, err := p.Session()
	require.ErrorIs(t, err, provider.ErrNotInitialized)

	sess.EXPECT().SetIdentity(mock.Anything).Return().Once()
	require.NoError(t, p.Initialize(&facebook.OAuthTokens{AppID: "1"}))

	got, err := p.Session()
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		loginErr error
		want     bool
	}{
		{name: "accepted", want: true},
		{name: "rejected", loginErr: &graph.Error{StatusCode: 400, Message: "Error validating application"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, sess := newInitialized(t)
			sess.EXPECT().Login(mock.Anything, []string{facebook.PermissionPublicProfile}).
				Return(tt.loginErr).Once()

			ok, err := p.Login(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestLogin_NotInitialized(t *testing.T) {
	t.Parallel()

	p := facebook.New(graphMocks.NewMockSession(t), facebook.WithLogger(quietLogger()))

	ok, err := p.Login(context.Background())
	require.ErrorIs(t, err, provider.ErrNotInitialized)
	assert.False(t, ok)
}

func TestLogin_CancelledContext(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sess.EXPECT().Login(mock.Anything, mock.Anything).Return(context.Canceled).Once()

	ok, err := p.Login(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

func TestLoginWithPermissions(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	perms := []string{facebook.PermissionUserPosts, facebook.PermissionPagesManagePosts}

	sess.EXPECT().Login(mock.Anything, perms).Return(nil).Twice()

	requested := slices.Clone(perms)
	ok, err := p.LoginWithPermissions(context.Background(), requested)
	require.NoError(t, err)
	assert.True(t, ok)

	requested[0] = "mutated"
	assert.Equal(t, perms, p.Permissions())

	// later implicit logins reuse the stored set
	ok, err = p.Login(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWithPermissions(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t, facebook.WithPermissions(facebook.PermissionUserPosts))
	sess.EXPECT().Login(mock.Anything, []string{facebook.PermissionUserPosts}).Return(nil).Once()

	ok, err := p.Login(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	sess.EXPECT().Logout(mock.Anything).Return(nil).Once()

	require.NoError(t, p.Logout(context.Background()))
}

func TestFetch_AggregatesAcrossPages(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	cursor := graphMocks.NewMockCursor(t)

	sess.EXPECT().LoggedIn().Return(true).Once()
	sess.EXPECT().NewPaginatedQuery("me/feed", feedParams).Return(cursor).Once()
	cursor.EXPECT().First(mock.Anything).Return(page("a", "b", "c"), nil).Once()
	cursor.EXPECT().HasNext().Return(true).Once()
	cursor.EXPECT().Next(mock.Anything).Return(page("d", "e"), nil).Once()

	records, err := p.Fetch(context.Background(), facebook.DataConfig{Query: "me"}, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(records))
	assert.Equal(t, "msg d", records[3].Message)
}

func TestFetch_SinglePage(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	cursor := graphMocks.NewMockCursor(t)

	sess.EXPECT().LoggedIn().Return(true).Once()
	sess.EXPECT().NewPaginatedQuery("1234/feed", feedParams).Return(cursor).Once()
	cursor.EXPECT().First(mock.Anything).Return(page("a", "b"), nil).Once()
	cursor.EXPECT().HasNext().Return(false).Once()

	records, err := p.Fetch(context.Background(), facebook.DataConfig{Query: "1234"}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(records))
}

func TestFetch_DecodesItems(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	cursor := graphMocks.NewMockCursor(t)

	item := `{
		"id": "10_20",
		"message": "hello",
		"from": {"id": "10", "name": "Page Name"},
		"created_time": "2024-03-01T12:30:00+0000",
		"link": "https://example.com/a",
		"full_picture": "https://example.com/a.jpg"
	}`

	sess.EXPECT().LoggedIn().Return(true).Once()
	sess.EXPECT().NewPaginatedQuery("me/feed", feedParams).Return(cursor).Once()
	cursor.EXPECT().First(mock.Anything).
		Return(&graph.Page{Data: []json.RawMessage{json.RawMessage(item)}}, nil).Once()
	cursor.EXPECT().HasNext().Return(false).Once()

	records, err := p.Fetch(context.Background(), facebook.DataConfig{Query: "me"}, 20)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "10_20", got.ID)
	assert.Equal(t, "hello", got.Message)
	require.NotNil(t, got.From)
	assert.Equal(t, "Page Name", got.From.Name)
	assert.True(t, got.CreatedTime.Equal(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, "https://example.com/a", got.Link)
	assert.Equal(t, "https://example.com/a.jpg", got.FullPicture)
}

func TestFetch_LogsInOnceWhenNotAuthenticated(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	cursor := graphMocks.NewMockCursor(t)

	sess.EXPECT().LoggedIn().Return(false).Once()
	sess.EXPECT().Login(mock.Anything, mock.Anything).Return(nil).Once()
	sess.EXPECT().NewPaginatedQuery("me/feed", feedParams).Return(cursor).Once()
	cursor.EXPECT().First(mock.Anything).Return(page("a"), nil).Once()
	cursor.EXPECT().HasNext().Return(false).Once()

	records, err := p.Fetch(context.Background(), facebook.DataConfig{Query: "me"}, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(records))
}

func TestFetch_LoginFailure(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)

	sess.EXPECT().LoggedIn().Return(false).Once()
	sess.EXPECT().Login(mock.Anything, mock.Anything).
		Return(&graph.Error{StatusCode: 400, Message: "bad secret"}).Once()

	records, err := p.Fetch(context.Background(), facebook.DataConfig{Query: "me"}, 20)
	require.ErrorIs(t, err, provider.ErrNotAuthenticated)
	assert.Nil(t, records)
}

func TestFetch_ExpiredTokenRetriesFromFirstPage(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	stale := graphMocks.NewMockCursor(t)
	fresh := graphMocks.NewMockCursor(t)

	sess.EXPECT().LoggedIn().Return(true).Once()
	sess.EXPECT().NewPaginatedQuery("me/feed", feedParams).Return(stale).Once()
	sess.EXPECT().NewPaginatedQuery("me/feed", feedParams).Return(fresh).Once()
	sess.EXPECT().Login(mock.Anything, mock.Anything).Return(nil).Once()

	stale.EXPECT().First(mock.Anything).Return(page("a", "b"), nil).Once()
	stale.EXPECT().HasNext().Return(true).Once()
	stale.EXPECT().Next(mock.Anything).
		Return(nil, &graph.Error{StatusCode: 400, Code: 190, Message: "Session has expired"}).Once()

	fresh.EXPECT().First(mock.Anything).Return(page("a", "b"), nil).Once()
	fresh.EXPECT().HasNext().Return(true).Once()
	fresh.EXPECT().Next(mock.Anything).Return(page("c"), nil).Once()
	fresh.EXPECT().HasNext().Return(false).Once()

	records, err := p.Fetch(context.Background(), facebook.DataConfig{Query: "me"}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(records), "accumulator starts over on retry")
}

func TestFetch_ExpiredTokenTwice(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	cursor := graphMocks.NewMockCursor(t)
	expired := &graph.Error{StatusCode: 401, Code: 190, Message: "expired"}

	sess.EXPECT().LoggedIn().Return(true).Once()
	sess.EXPECT().NewPaginatedQuery("me/feed", feedParams).Return(cursor).Twice()
	sess.EXPECT().Login(mock.Anything, mock.Anything).Return(nil).Once()
	cursor.EXPECT().First(mock.Anything).Return(nil, expired).Twice()

	_, err := p.Fetch(context.Background(), facebook.DataConfig{Query: "me"}, 10)
	require.ErrorIs(t, err, provider.ErrAuthRequired)
	require.ErrorIs(t, err, graph.ErrInvalidToken)
}

func TestFetch_QueryFailure(t *testing.T) {
	t.Parallel()

	p, sess := newInitialized(t)
	cursor := graphMocks.NewMockCursor(t)

	sess.EXPECT().LoggedIn().Return(true).Once()
	sess.EXPECT().NewPaginatedQuery("me/feed", feedParams).Return(cursor).Once()
	cursor.EXPECT().First(mock.Anything).Return(page("a"), nil).Once()
	cursor.EXPECT().HasNext().Return(true).Once()
	cursor.EXPECT().Next(mock.Anything).
		Return(nil, &graph.Error{StatusCode: 400, Code: 100, Message: "Unsupported get request"}).Once()

	records, err := p.Fetch(context.Background(), facebook.DataConfig{Query: "me"}, 10)
	require.Error(t, err)
	assert.Nil(t, records)

	var qerr *provider.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, 1, qerr.Page)
	assert.Contains(t, err.Error(), "Unsupported get request")
}

func TestFetch_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config facebook.DataConfig
		max    int
	}{
		{name: "empty query", config: facebook.DataConfig{}, max: 20},
		{name: "negative max", config: facebook.DataConfig{Query: "me"}, max: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, _ := newInitialized(t)

			_, err := p.Fetch(context.Background(), tt.config, tt.max)
			require.ErrorIs(t, err, provider.ErrInvalidArgument)
		})
	}
}

func TestFetch_NotInitialized(t *testing.T) {
	t.Parallel()

	p := facebook.New(graphMocks.NewMockSession(t), facebook.WithLogger(quietLogger()))

	_, err := p.Fetch(context.Background(), facebook.DataConfig{Query: "me"}, 20)
	require.ErrorIs(t, err, provider.ErrNotInitialized)
}

func TestPostToFeed(t *testing.T) {
	t.Parallel()

	wantParams := url.Values{
		"name":        {"Release notes"},
		"link":        {"https://example.com/notes"},
		"description": {"What changed"},
	}

	t.Run("posted and notified", func(t *testing.T) {
		t.Parallel()

		n := notifyMocks.NewMockNotifier(t)
		p, sess := newInitialized(t, facebook.WithNotifier(n), facebook.WithPostTarget("4567"))

		sess.EXPECT().LoggedIn().Return(true).Once()
		sess.EXPECT().PostFeed(mock.Anything, "4567", wantParams).
			Return(&graph.PostResult{ID: "4567_89"}, nil).Once()
		n.EXPECT().PostPublished(mock.Anything, &notify.PostNotice{
			Provider:    facebook.Name,
			Target:      "4567",
			PostID:      "4567_89",
			Title:       "Release notes",
			Link:        "https://example.com/notes",
			Description: "What changed",
		}).Return(nil).Once()

		ok, err := p.PostToFeed(context.Background(), "Release notes", "https://example.com/notes", "What changed")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("notification failure still posts", func(t *testing.T) {
		t.Parallel()

		n := notifyMocks.NewMockNotifier(t)
		p, sess := newInitialized(t, facebook.WithNotifier(n))

		sess.EXPECT().LoggedIn().Return(true).Once()
		sess.EXPECT().PostFeed(mock.Anything, "me", wantParams).
			Return(&graph.PostResult{ID: "1_2"}, nil).Once()
		n.EXPECT().PostPublished(mock.Anything, mock.Anything).
			Return(errors.New("webhook down")).Once()

		ok, err := p.PostToFeed(context.Background(), "Release notes", "https://example.com/notes", "What changed")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()

		n := notifyMocks.NewMockNotifier(t)
		p, sess := newInitialized(t, facebook.WithNotifier(n))

		sess.EXPECT().LoggedIn().Return(true).Once()
		sess.EXPECT().PostFeed(mock.Anything, "me", wantParams).Return(nil, &graph.Error{
			StatusCode:  403,
			Code:        200,
			Message:     "(#200) permissions error",
			UserMessage: "You can't post here.",
		}).Once()

		ok, err := p.PostToFeed(context.Background(), "Release notes", "https://example.com/notes", "What changed")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("login once then post", func(t *testing.T) {
		t.Parallel()

		n := notifyMocks.NewMockNotifier(t)
		p, sess := newInitialized(t, facebook.WithNotifier(n))

		sess.EXPECT().LoggedIn().Return(false).Once()
		sess.EXPECT().Login(mock.Anything, mock.Anything).Return(nil).Once()
		sess.EXPECT().PostFeed(mock.Anything, "me", wantParams).
			Return(&graph.PostResult{ID: "1_3"}, nil).Once()
		n.EXPECT().PostPublished(mock.Anything, mock.Anything).Return(nil).Once()

		ok, err := p.PostToFeed(context.Background(), "Release notes", "https://example.com/notes", "What changed")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("login rejected", func(t *testing.T) {
		t.Parallel()

		n := notifyMocks.NewMockNotifier(t)
		p, sess := newInitialized(t, facebook.WithNotifier(n))

		sess.EXPECT().LoggedIn().Return(false).Once()
		sess.EXPECT().Login(mock.Anything, mock.Anything).Return(errors.New("denied")).Once()

		ok, err := p.PostToFeed(context.Background(), "Release notes", "https://example.com/notes", "What changed")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty post", func(t *testing.T) {
		t.Parallel()

		p, _ := newInitialized(t)

		ok, err := p.PostToFeed(context.Background(), "", "", "")
		require.ErrorIs(t, err, provider.ErrInvalidArgument)
		assert.False(t, ok)
	})
}
