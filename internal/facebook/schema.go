package facebook

import (
	"github.com/donaldgifford/social-data-provider/internal/graph"
)

// Permissions commonly requested by feed readers and publishers.
const (
	PermissionPublicProfile        = "public_profile"
	PermissionUserPosts            = "user_posts"
	PermissionPagesReadUserContent = "pages_read_user_content"
	PermissionPagesManagePosts     = "pages_manage_posts"
	PermissionPublishToGroups      = "publish_to_groups"
)

// OAuthTokens holds the application credentials the provider is initialized
// with. AccessToken is optional: when empty, Login requests an app token.
type OAuthTokens struct {
	AppID       string `json:"app_id" yaml:"app_id"`
	AppSecret   string `json:"-" yaml:"app_secret"`
	CallbackURI string `json:"callback_uri" yaml:"callback_uri"`
	AccessToken string `json:"-" yaml:"access_token"`
}

// DataConfig describes a feed query. Query is the Graph node whose feed is
// read: a page or user id, or "me".
type DataConfig struct {
	Query string `json:"query"`
}

// Schema is a single feed item.
type Schema struct {
	ID          string     `json:"id"`
	Message     string     `json:"message,omitempty"`
	From        *From      `json:"from,omitempty"`
	CreatedTime graph.Time `json:"created_time"`
	Link        string     `json:"link,omitempty"`
	FullPicture string     `json:"full_picture,omitempty"`
}

// From identifies the author of a feed item.
type From struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
