package oauth

import (
	"net/url"
	"testing"

	"boardingpass-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/sheets/v4"
)

func TestSheetsOAuth_GenerateAuthURL(t *testing.T) {
	o := NewSheetsOAuth("client-id", "secret", "", "http://localhost:8090/oauth2callback", logger.NewNopLogger())

	authURL, err := url.Parse(o.GenerateAuthURL("xyz"))
	require.NoError(t, err)

	q := authURL.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "xyz", q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, sheets.SpreadsheetsReadonlyScope, q.Get("scope"))
	assert.Equal(t, "http://localhost:8090/oauth2callback", q.Get("redirect_uri"))
}

func TestSheetsOAuth_TokenToJSON(t *testing.T) {
	o := NewSheetsOAuth("id", "secret", "", "", logger.NewNopLogger())

	out, err := o.TokenToJSON(&oauth2.Token{RefreshToken: "refresh-me"})
	require.NoError(t, err)
	assert.Contains(t, out, `"refresh_token": "refresh-me"`)
}
