package enums

import "fmt"

// ChatMode is the coarse UI mode for a session. Once checkout starts in
// browse mode the session flips to chat and stays there.
type ChatMode string

const (
	ChatModeBrowse ChatMode = "browse"
	ChatModeChat   ChatMode = "chat"
)

var validChatModes = []ChatMode{
	ChatModeBrowse,
	ChatModeChat,
}

// String implements fmt.Stringer.
func (m ChatMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ChatMode.
func (m ChatMode) IsValid() bool {
	for _, candidate := range validChatModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseChatMode converts raw input into a ChatMode.
func ParseChatMode(value string) (ChatMode, error) {
	for _, candidate := range validChatModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid chat mode %q", value)
}
