package graph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const permissionGranted = "granted"

// LoggedIn reports whether the session holds a token that has not expired.
func (c *Client) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token.Valid()
}

// Login authenticates the session.
//
// With a configured access token, Login checks the token against
// /me/permissions and requires every requested permission to be granted.
// Otherwise it requests an app access token through the OAuth2 client
// credentials grant.
func (c *Client) Login(ctx context.Context, permissions []string) error {
	c.mu.Lock()
	id := c.identity
	c.mu.Unlock()

	if id.AppID == "" {
		return ErrNoIdentity
	}

	var (
		tok *oauth2.Token
		err error
	)
	if id.AccessToken != "" {
		tok, err = c.validateAccessToken(ctx, id.AccessToken, permissions)
	} else {
		tok, err = c.appToken(ctx, id, permissions)
	}
	if err != nil {
		return err
	}

	c.setToken(tok)
	return nil
}

// Logout drops the session token. Calling it on a logged-out session is a
// no-op.
func (c *Client) Logout(_ context.Context) error {
	c.setToken(nil)
	return nil
}

// AuthCodeURL returns the Facebook login dialog URL for the configured
// identity. The user is redirected to the identity's RedirectURL with a code
// that ExchangeCode turns into a user access token.
func (c *Client) AuthCodeURL(state string, permissions []string) string {
	c.mu.Lock()
	id := c.identity
	c.mu.Unlock()

	return c.oauthConfig(id, permissions).AuthCodeURL(state)
}

// ExchangeCode trades a login dialog code for a user access token and stores
// it on the session.
func (c *Client) ExchangeCode(ctx context.Context, code string) error {
	c.mu.Lock()
	id := c.identity
	c.mu.Unlock()

	if id.AppID == "" {
		return ErrNoIdentity
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)

	tok, err := c.oauthConfig(id, nil).Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchanging code: %w", translateOAuthError(err))
	}

	c.setToken(tok)
	return nil
}

func (c *Client) appToken(
	ctx context.Context,
	id Identity,
	permissions []string,
) (*oauth2.Token, error) {
	cfg := clientcredentials.Config{
		ClientID:     id.AppID,
		ClientSecret: id.AppSecret,
		TokenURL:     c.tokenURL,
		Scopes:       permissions,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	if err := c.wait(ctx, http.MethodPost); err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)

	tok, err := cfg.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting app token: %w", translateOAuthError(err))
	}
	return tok, nil
}

type permissionsResponse struct {
	Data []struct {
		Permission string `json:"permission"`
		Status     string `json:"status"`
	} `json:"data"`
}

func (c *Client) validateAccessToken(
	ctx context.Context,
	accessToken string,
	permissions []string,
) (*oauth2.Token, error) {
	var resp permissionsResponse
	if err := c.getJSON(ctx, accessToken, c.endpoint("me/permissions", nil), &resp); err != nil {
		return nil, fmt.Errorf("validating access token: %w", err)
	}

	granted := make(map[string]bool, len(resp.Data))
	for _, p := range resp.Data {
		granted[p.Permission] = p.Status == permissionGranted
	}

	var missing []string
	for _, p := range permissions {
		if !granted[p] {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, strings.Join(missing, ", "))
	}

	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}, nil
}

func (c *Client) setToken(tok *oauth2.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = tok
}

// AccessToken returns the token the session currently holds, for callers
// that persist a user token obtained through ExchangeCode.
func (c *Client) AccessToken() (string, error) {
	return c.currentToken()
}

// currentToken returns the session's access token or ErrNotLoggedIn.
func (c *Client) currentToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.token.Valid() {
		return "", ErrNotLoggedIn
	}
	return c.token.AccessToken, nil
}

// translateOAuthError turns an oauth2 token endpoint failure into a Graph
// *Error when the body carries a Graph error envelope.
func translateOAuthError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return parseError(re.Response.StatusCode, re.Body)
	}
	return err
}
