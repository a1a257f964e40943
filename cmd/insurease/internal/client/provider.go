package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/SilasBach/insurease/cmd/insurease/internal/auth"
	"github.com/SilasBach/insurease/pkg/sdk"
)

// Provider yields SDK clients and restored sessions backed by the
// credential store. Each is built at most once per process.
type Provider struct {
	serverURL string

	storeOnce sync.Once
	store     sdk.CredentialStore
	storeErr  error

	sdkOnce   sync.Once
	sdkClient *sdk.Client
	sdkErr    error

	sessionOnce sync.Once
	session     *sdk.Session
	sessionErr  error
}

// NewProvider constructs a new Provider bound to the given server URL.
func NewProvider(serverURL string) *Provider {
	return &Provider{serverURL: serverURL}
}

// Store returns the CLI's file-backed credential store.
func (p *Provider) Store() (sdk.CredentialStore, error) {
	p.storeOnce.Do(func() {
		p.store, p.storeErr = auth.NewFileStore()
	})
	return p.store, p.storeErr
}

// SDKClient returns the shared SDK client for the configured server.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		p.sdkClient, p.sdkErr = sdk.NewClient(p.serverURL)
	})
	return p.sdkClient, p.sdkErr
}

// NewSession builds an unvalidated session wired to the credential store.
// The login and register commands use this directly; everything else
// should go through Session, which also restores and validates.
func (p *Provider) NewSession() (*sdk.Session, error) {
	client, err := p.SDKClient()
	if err != nil {
		return nil, err
	}
	store, err := p.Store()
	if err != nil {
		return nil, err
	}
	return sdk.NewSession(client, sdk.WithCredentialStore(store)), nil
}

// Session returns a session restored from the stored credential and
// validated against the server. It fails when no valid session exists.
func (p *Provider) Session(ctx context.Context) (*sdk.Session, error) {
	p.sessionOnce.Do(func() {
		session, err := p.NewSession()
		if err != nil {
			p.sessionErr = err
			return
		}

		ctx, cancel := ensureTimeout(ctx, 10*time.Second)
		defer cancel()

		if session.Restore(ctx) == nil {
			p.sessionErr = errors.New("not logged in; please run `insurease auth login`")
			return
		}
		p.session = session
	})
	if p.sessionErr != nil {
		return nil, p.sessionErr
	}
	return p.session, nil
}

func ensureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	return ctxWithTimeout, cancel
}
