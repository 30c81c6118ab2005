package mail

import "context"

// Message is a mail captured by MemorySender.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// MemorySender collects mail in memory. Test use only.
type MemorySender struct {
	Sent []Message
}

var _ Sender = (*MemorySender)(nil)

// NewMemorySender creates a new MemorySender.
func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

// Send records the message.
func (s *MemorySender) Send(_ context.Context, to, subject, htmlBody string) error {
	s.Sent = append(s.Sent, Message{To: to, Subject: subject, HTMLBody: htmlBody})
	return nil
}
