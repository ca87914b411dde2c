package drive

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// runLoopbackFlow performs the installed-app authorization flow: it starts a
// loopback redirect listener on an ephemeral port, prints the consent URL,
// and exchanges the returned code for a token.
func runLoopbackFlow(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("start redirect listener: %w", err)
	}
	defer listener.Close()

	flowConf := *conf
	flowConf.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr().String())

	state := uuid.NewString()
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/callback" {
			http.NotFound(w, r)
			return
		}
		query := r.URL.Query()
		if query.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			errCh <- fmt.Errorf("authorization response state mismatch")
			return
		}
		if denial := query.Get("error"); denial != "" {
			http.Error(w, "authorization denied", http.StatusForbidden)
			errCh <- fmt.Errorf("authorization denied: %s", denial)
			return
		}
		fmt.Fprintln(w, "Authorization complete. You can close this tab and return to the terminal.")
		codeCh <- query.Get("code")
	})}
	go func() {
		_ = server.Serve(listener)
	}()
	defer server.Close()

	authURL := flowConf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Fprintf(os.Stderr, "Open this link in your browser to authorize setlister:\n\n  %s\n\n", authURL)

	select {
	case code := <-codeCh:
		token, err := flowConf.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("exchange authorization code: %w", err)
		}
		return token, nil
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
