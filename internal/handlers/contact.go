package handlers

import (
	"context"

	"github.com/jpmayor1/portfolio/internal"
	"github.com/jpmayor1/portfolio/pkg/contact"
)

// DefaultContactPath is where the contact form posts.
const DefaultContactPath = "/api/contact"

// Relay is the part of *contact.Relay the handler depends on.
type Relay interface {
	Submit(ctx context.Context, s contact.Submission) contact.Outcome
}

// Contact exposes the contact relay over HTTP.
type Contact struct {
	relay Relay
	path  string
}

// NewContact creates the contact form handler. An empty path selects
// DefaultContactPath.
func NewContact(relay Relay, path string) *Contact {
	if path == "" {
		path = DefaultContactPath
	}
	return &Contact{relay: relay, path: path}
}

// Routes implements internal.Handler.
func (h *Contact) Routes(r internal.Router) {
	r.POST(h.path, h.submit)
}

type contactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// submit answers 200 {message, id} on delivery and {error} with the
// outcome's status otherwise.
func (h *Contact) submit(c internal.Context) error {
	var sub contact.Submission
	if err := c.BindJSON(&sub); err != nil {
		return err
	}

	out := h.relay.Submit(c.Context(), sub)
	if !out.OK() {
		return c.JSON(out.StatusCode, errorResponse{Error: out.Message})
	}
	return c.JSON(out.StatusCode, contactResponse{Message: out.Message, ID: out.ProviderID})
}
