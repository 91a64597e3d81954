package domain

import "fmt"

// RemoteFilename is the fixed object name the backup lives under on
// the WebDAV server.
const RemoteFilename = "tempo-backup.json"

// HTTPError reports a WebDAV request that reached the server but came
// back with a status outside the accepted set for its verb.
type HTTPError struct {
	Op   string
	Code int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("webdav %s: unexpected status %d", e.Op, e.Code)
}
