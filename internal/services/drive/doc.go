// Package drive wraps the Google Drive v3 API surface the pipeline uses and
// manages its OAuth credentials.
//
// Client exposes the five operations the pipeline needs (document export,
// folder listing, folder lookup/creation, file copy, delete) behind the API
// interface so stage code and tests never touch the generated client
// directly. TokenManager implements the two-state credential contract: a
// cached token that is valid or refreshable is reused silently, otherwise the
// interactive loopback flow runs once and the result is persisted for future
// invocations.
package drive
