package client

// SessionGuard reacts to unauthorized responses by invalidating the
// credential store. The expiry callback fires once per transition from
// authenticated to logged out, never on repeat invocations.
type SessionGuard struct {
	store     *CredentialStore
	onExpired func()
}

// NewSessionGuard creates a guard over the store. onExpired may be nil.
func NewSessionGuard(store *CredentialStore, onExpired func()) *SessionGuard {
	return &SessionGuard{store: store, onExpired: onExpired}
}

// OnUnauthorized clears the store. No-op when already logged out.
func (g *SessionGuard) OnUnauthorized() {
	if !g.store.IsAuthenticated() {
		return
	}
	_ = g.store.ClearSession()
	if g.onExpired != nil {
		g.onExpired()
	}
}
