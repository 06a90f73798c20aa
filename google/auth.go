package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// Authorize returns an HTTP client using the OAuth2 token cached in the tokens directory
// by Authenticate.
func Authorize(credentials, scope, tokens string) (*http.Client, error) {
	config, err := configFromFile(credentials, scope)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(TokensFile(credentials, scope, tokens))
	if err != nil {
		return nil, fmt.Errorf("missing or invalid OAuth2 token - run 'authorise' to create one (%v)", err)
	}

	return config.Client(context.Background(), token), nil
}

// Authenticate runs the OAuth2 installed application flow, prompting for the authorisation
// code on 'in' and saving the resulting token to the tokens directory.
func Authenticate(ctx context.Context, credentials, scope, tokens string, in io.Reader, out io.Writer) (string, error) {
	config, err := configFromFile(credentials, scope)
	if err != nil {
		return "", err
	}

	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Fprintf(out, "Go to the following link in your browser then type the authorization code:\n\n  %v\n\n", url)

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return "", fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	file := TokensFile(credentials, scope, tokens)
	if err := saveToken(file, token); err != nil {
		return "", err
	}

	return file, nil
}

// TokensFile returns the path of the token cache for the credentials and scope e.g.
// <tokens>/credentials.sheets.
func TokensFile(credentials, scope, tokens string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	switch {
	case strings.HasPrefix(scope, SHEETS):
		return filepath.Join(tokens, fmt.Sprintf("%s.sheets", name))

	default:
		return filepath.Join(tokens, fmt.Sprintf("%s.tokens", name))
	}
}

func configFromFile(credentials, scope string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	return google.ConfigFromJSON(b, scope)
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(file string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth2 token (%v)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
