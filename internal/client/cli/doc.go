// Package cli implements the interactive screens of the PayTrack client.
//
// Each screen follows the same pattern: fetch what it needs from the API on
// entry (concurrently when more than one collection is involved), render from
// that screen-local state, and issue mutations on user action. Nothing is
// cached across screens; leaving and re-entering a screen re-fetches. The
// only durable state is the login session, owned by the services package.
package cli
