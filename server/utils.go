package main

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"

	t "github.com/sycs/chat/server/store/types"
)

const (
	// Maximum length of a message body in grapheme clusters.
	maxContentLength = 3000
	// Maximum length of a thread title in grapheme clusters.
	maxTitleLength = 128
	// Maximum length of a display name in grapheme clusters.
	maxUsernameLength = 64
)

// Mention handles: lowercase latin letters, digits, underscores.
var handleRegexp = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

// validContent checks that a message body is non-blank and does not exceed
// the limit. Length is counted in grapheme clusters, not bytes.
func validContent(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}
	return uniseg.GraphemeClusterCount(content) <= maxContentLength
}

// validTitle checks a thread title.
func validTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return false
	}
	return uniseg.GraphemeClusterCount(title) <= maxTitleLength
}

// validUsername checks a display name.
func validUsername(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	return uniseg.GraphemeClusterCount(name) <= maxUsernameLength
}

// validHandle checks a unique mention handle.
func validHandle(handle string) bool {
	return handleRegexp.MatchString(handle)
}

// getBearerToken extracts the auth token from the Authorization header,
// falling back to the "token" form value.
func getBearerToken(req *http.Request) string {
	if hdr := req.Header.Get("Authorization"); hdr != "" {
		if strings.HasPrefix(hdr, "Bearer ") {
			return strings.TrimSpace(hdr[len("Bearer "):])
		}
		return ""
	}
	return req.FormValue("token")
}

// Room name prefixes for the two room kinds.
const (
	roomThreadPrefix = "thread:"
	roomDMPrefix     = "dm:"
)

// threadRoom returns the fanout room name of a group thread.
func threadRoom(threadId t.Uid) string {
	return roomThreadPrefix + threadId.String()
}

// dmRoom returns the fanout room name of a DM channel.
func dmRoom(channelId t.Uid) string {
	return roomDMPrefix + channelId.String()
}

// parseRoom splits a room name into its kind prefix and decoded id.
// Returns a zero Uid if the name is not a valid room reference.
func parseRoom(room string) (string, t.Uid) {
	var prefix, tail string
	switch {
	case strings.HasPrefix(room, roomThreadPrefix):
		prefix, tail = roomThreadPrefix, room[len(roomThreadPrefix):]
	case strings.HasPrefix(room, roomDMPrefix):
		prefix, tail = roomDMPrefix, room[len(roomDMPrefix):]
	default:
		return "", t.ZeroUid
	}

	id := t.ParseUid(tail)
	if id.IsZero() {
		return "", t.ZeroUid
	}
	return prefix, id
}

func isNullValue(i interface{}) bool {
	// Del control character.
	const clearValue = "␡"
	if str, ok := i.(string); ok {
		return str == clearValue
	}
	return false
}
