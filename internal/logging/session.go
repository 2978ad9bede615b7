package logging

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	sessionFilePrefix = "session_"
	sessionFileSuffix = ".log"
)

// GenerateSessionID creates a sortable session identifier.
// Format: YYYYMMDD_HHMMSS_xxxx, e.g. 20261019_205106_a7b3
func GenerateSessionID() string {
	return generateSessionID(time.Now())
}

func generateSessionID(now time.Time) string {
	id := uuid.New()
	return now.Format("20060102_150405") + "_" + id.String()[:4]
}

// SessionFilename returns the log file name for a session.
func SessionFilename(sessionID string) string {
	return sessionFilePrefix + sessionID + sessionFileSuffix
}

// ParseSessionFilename is the inverse of SessionFilename.
func ParseSessionFilename(filename string) (string, bool) {
	if !strings.HasPrefix(filename, sessionFilePrefix) || !strings.HasSuffix(filename, sessionFileSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(filename, sessionFilePrefix), sessionFileSuffix)
	if id == "" {
		return "", false
	}
	return id, true
}
