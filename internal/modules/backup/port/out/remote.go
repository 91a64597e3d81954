package out

import "context"

// RemoteStore holds one backup document on a remote server.
type RemoteStore interface {
	// Probe checks that the server is reachable and the credentials
	// are accepted.
	Probe(ctx context.Context) error
	Upload(ctx context.Context, data []byte) error
	// Download returns ErrBackupNotFound when no backup exists yet.
	Download(ctx context.Context) ([]byte, error)
}
