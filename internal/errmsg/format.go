// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Track list construction
	OpConstructTrackList Op = "build track list"
	OpReadTrackTags      Op = "read track tags"

	// Playback
	OpStartPlayback  Op = "start playback"
	OpOpenDevice     Op = "open audio device"
	OpPromoteThread  Op = "promote output thread priority"
	OpDecodeFile     Op = "decode file"
	OpParseSkipTime  Op = "parse skip time"
	OpParseCLIArgs   Op = "parse command-line arguments"
	OpLoadConfig     Op = "load configuration"

	// Peripheral integrations
	OpMPRISRegister Op = "register MPRIS interface"
	OpSendNotify    Op = "send desktop notification"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
