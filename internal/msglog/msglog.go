// Package msglog holds the in-game message log.
package msglog

import "fmt"

// Severity classifies a log message; the display colours messages by it.
type Severity int

const (
	Info Severity = iota
	Alert
	StatusChange
	Success
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Alert:
		return "alert"
	case StatusChange:
		return "status_change"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Message is one line of the log.
type Message struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Log is an ordered sequence of messages, oldest first.
type Log struct {
	Messages []Message `json:"messages"`
}

// Add appends text as-is with the given severity.
func (l *Log) Add(severity Severity, text string) {
	l.Messages = append(l.Messages, Message{Text: text, Severity: severity})
}

func (l *Log) addf(severity Severity, format string, args []any) {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	l.Add(severity, format)
}

func (l *Log) Info(format string, args ...any)    { l.addf(Info, format, args) }
func (l *Log) Alert(format string, args ...any)   { l.addf(Alert, format, args) }
func (l *Log) Status(format string, args ...any)  { l.addf(StatusChange, format, args) }
func (l *Log) Success(format string, args ...any) { l.addf(Success, format, args) }

// Len returns the number of messages.
func (l *Log) Len() int {
	return len(l.Messages)
}

// Last returns the most recent message, or false if the log is empty.
func (l *Log) Last() (Message, bool) {
	if len(l.Messages) == 0 {
		return Message{}, false
	}
	return l.Messages[len(l.Messages)-1], true
}

// Tail returns up to n most recent messages, oldest first.
func (l *Log) Tail(n int) []Message {
	if n <= 0 {
		return nil
	}
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}
