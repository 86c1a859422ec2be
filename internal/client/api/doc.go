// Package api implements the FinKeeper HTTP client: a single configured
// network client shared by all resource call wrappers, plus the refresh
// coordinator that serializes token-refresh attempts.
//
// Every resource call returns the backend's uniform envelope; callers must
// check Envelope.Success before trusting Envelope.Data. Expired-session
// 401 responses never reach callers: the coordinator either retries the
// original request once after a shared refresh, or rejects it with
// ErrReauthRequired once the session is known invalid.
package api
