package notification

import (
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

// Attachment is a file sent with a message
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is one rendered email to one recipient
type Message struct {
	To         kernel.Email
	ToName     string
	ReplyTo    kernel.Email
	Subject    string
	Body       string
	Attachment *Attachment
}

// DispatchJob is the queued request to notify about an application
type DispatchJob struct {
	ApplicationID kernel.ApplicationID `json:"application_id"`
	EnqueuedAt    time.Time            `json:"enqueued_at"`
}

// DispatchResult reports what one dispatch delivered
type DispatchResult struct {
	ApplicationID  kernel.ApplicationID `json:"application_id"`
	Eligible       int                  `json:"eligible"`
	Delivered      []string             `json:"delivered"`
	Failed         map[string]string    `json:"failed,omitempty"`
	ResumeAttached bool                 `json:"resume_attached"`
	SentAt         time.Time            `json:"sent_at"`
}

// EmailSent is true once any recipient accepted the message
func (r *DispatchResult) EmailSent() bool {
	return len(r.Delivered) > 0
}
