package cli

import (
	"fmt"

	"github.com/taskdeck/taskdeck/internal/client"
	"github.com/taskdeck/taskdeck/internal/daemon"
)

// newSession builds a client session against the configured or flag-supplied
// server address.
func newSession() (*client.Session, error) {
	url := serverURL
	if url == "" {
		cfg, err := daemon.LoadConfig()
		if err != nil {
			return nil, err
		}
		url = fmt.Sprintf("http://%s:%d", cfg.API.Host, cfg.API.Port)
	}
	return client.NewSession(client.New(url)), nil
}

// checkbox renders a completed flag the way the web page does.
func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}
