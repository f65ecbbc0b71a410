package notificationsrv

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/fsx"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/Abraxas-365/crewdesk/recruitment/notification"
	"github.com/Abraxas-365/crewdesk/recruitment/settings"
)

type fakeStore struct {
	mu     sync.Mutex
	apps   map[kernel.ApplicationID]*application.Application
	audits map[kernel.ApplicationID]application.NotificationAudit
}

func newFakeStore(apps ...application.Application) *fakeStore {
	s := &fakeStore{
		apps:   make(map[kernel.ApplicationID]*application.Application),
		audits: make(map[kernel.ApplicationID]application.NotificationAudit),
	}
	for i := range apps {
		a := apps[i]
		s.apps[a.ID] = &a
	}
	return s
}

func (s *fakeStore) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	cp := *a
	return &cp, nil
}

func (s *fakeStore) UpdateNotification(ctx context.Context, id kernel.ApplicationID, audit application.NotificationAudit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audits[id] = audit
	return nil
}

type fakeRecipients []settings.EmailRecipient

func (f fakeRecipients) ListActive(ctx context.Context) ([]settings.EmailRecipient, error) {
	return slices.DeleteFunc(slices.Clone(f), func(r settings.EmailRecipient) bool { return !r.IsActive }), nil
}

type fakeFiles map[string][]byte

func (f fakeFiles) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if data, ok := f[path]; ok {
		return data, nil
	}
	return nil, fsx.ErrFileNotFound()
}

func (f fakeFiles) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	data, err := f.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []notification.Message
	fail map[kernel.Email]bool
}

func (m *fakeMailer) Send(ctx context.Context, msg notification.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail[msg.To] {
		return errors.New("mailbox unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func recipient(email, nationality string, active bool) settings.EmailRecipient {
	r := settings.EmailRecipient{
		ID:       kernel.RecipientID(email),
		Email:    kernel.Email(email),
		Name:     strings.Split(email, "@")[0],
		IsActive: active,
	}
	if nationality != "" {
		n := kernel.Nationality(nationality)
		r.Nationality = &n
	}
	return r
}

func candidate(withResume bool) application.Application {
	app := application.Application{
		ID:          "app-1",
		FullName:    "Juan dela Cruz",
		Email:       "juan@example.com",
		Nationality: "Filipino",
		Position:    "Oiler",
		Status:      application.ApplicationStatusPending,
	}
	if withResume {
		app.ResumePath = "resumes/app-1_1.pdf"
		app.ResumeFilename = "juan.pdf"
		app.ResumeURL = "https://cdn.test/resumes/app-1_1.pdf"
	}
	return app
}

var sentAt = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func newTestDispatcher(store *fakeStore, recipients fakeRecipients, files fakeFiles, mailer *fakeMailer) *Dispatcher {
	d := NewDispatcher(store, recipients, files, mailer, "https://crew.example.com/")
	d.now = func() time.Time { return sentAt }
	return d
}

func TestDispatch_EligibilityAndFanOut(t *testing.T) {
	store := newFakeStore(candidate(true))
	recipients := fakeRecipients{
		recipient("all@example.com", "", true),
		recipient("ph@example.com", " filipino", true),
		recipient("id@example.com", "Indonesian", true),
		recipient("off@example.com", "", false),
		recipient("broken@example.com", "", true),
	}
	files := fakeFiles{"resumes/app-1_1.pdf": []byte("%PDF")}
	mailer := &fakeMailer{fail: map[kernel.Email]bool{"broken@example.com": true}}

	result, err := newTestDispatcher(store, recipients, files, mailer).Dispatch(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if result.Eligible != 3 {
		t.Errorf("expected 3 eligible recipients, got %d", result.Eligible)
	}
	if strings.Join(result.Delivered, ",") != "all@example.com,ph@example.com" {
		t.Errorf("unexpected deliveries %v", result.Delivered)
	}
	if _, ok := result.Failed["broken@example.com"]; !ok {
		t.Errorf("failed recipient should be reported: %v", result.Failed)
	}

	for _, msg := range mailer.sent {
		if msg.ReplyTo != "juan@example.com" {
			t.Errorf("reply-to should be the candidate, got %s", msg.ReplyTo)
		}
		if msg.Subject != "New application: Oiler - Juan dela Cruz" {
			t.Errorf("unexpected subject %q", msg.Subject)
		}
		if msg.Attachment == nil || msg.Attachment.Filename != "juan.pdf" || msg.Attachment.ContentType != "application/pdf" {
			t.Errorf("expected resume attachment, got %+v", msg.Attachment)
		}
		if !strings.Contains(msg.Body, "https://crew.example.com/careers/admin") {
			t.Errorf("body should link the dashboard")
		}
	}

	audit := store.audits["app-1"]
	if !audit.EmailSent || !audit.ResumeAttached || !audit.EmailSentAt.Equal(sentAt) || len(audit.EmailRecipients) != 2 {
		t.Errorf("unexpected audit %+v", audit)
	}
}

func TestDispatch_NoEligibleRecipients(t *testing.T) {
	store := newFakeStore(candidate(true))
	mailer := &fakeMailer{}
	recipients := fakeRecipients{recipient("id@example.com", "Indonesian", true)}

	result, err := newTestDispatcher(store, recipients, fakeFiles{}, mailer).Dispatch(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("zero recipients is not an error: %v", err)
	}
	if result.EmailSent() || len(mailer.sent) != 0 {
		t.Errorf("nothing should be sent")
	}

	audit, ok := store.audits["app-1"]
	if !ok {
		t.Fatal("not-sent outcome must still be recorded")
	}
	if audit.EmailSent || audit.ResumeAttached || audit.EmailRecipients == nil || len(audit.EmailRecipients) != 0 {
		t.Errorf("unexpected audit %+v", audit)
	}
}

func TestDispatch_ResumeFetchFailureDegrades(t *testing.T) {
	store := newFakeStore(candidate(true))
	mailer := &fakeMailer{}
	recipients := fakeRecipients{recipient("all@example.com", "", true)}

	result, err := newTestDispatcher(store, recipients, fakeFiles{}, mailer).Dispatch(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if !result.EmailSent() || result.ResumeAttached {
		t.Errorf("expected sent without attachment, got %+v", result)
	}
	if mailer.sent[0].Attachment != nil {
		t.Errorf("no attachment expected")
	}
	if !strings.Contains(mailer.sent[0].Body, "https://cdn.test/resumes/app-1_1.pdf") {
		t.Errorf("body should fall back to the resume link")
	}
}

func TestDispatch_AllSendsFail(t *testing.T) {
	store := newFakeStore(candidate(true))
	files := fakeFiles{"resumes/app-1_1.pdf": []byte("%PDF")}
	mailer := &fakeMailer{fail: map[kernel.Email]bool{"all@example.com": true}}
	recipients := fakeRecipients{recipient("all@example.com", "", true)}

	if _, err := newTestDispatcher(store, recipients, files, mailer).Dispatch(context.Background(), "app-1"); err != nil {
		t.Fatalf("send failures are not a dispatch error: %v", err)
	}

	audit := store.audits["app-1"]
	if audit.EmailSent || audit.ResumeAttached {
		t.Errorf("attachment only counts when a send succeeded: %+v", audit)
	}
}

func TestDispatch_UnknownApplication(t *testing.T) {
	d := newTestDispatcher(newFakeStore(), nil, fakeFiles{}, &fakeMailer{})
	if _, err := d.Dispatch(context.Background(), "ghost"); err == nil {
		t.Error("expected not found")
	}
}

type recordingQueue struct {
	mu   sync.Mutex
	jobs []notification.DispatchJob
}

func (q *recordingQueue) Enqueue(ctx context.Context, job notification.DispatchJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Dequeue(ctx context.Context, timeout time.Duration) (*notification.DispatchJob, error) {
	return nil, nil
}

func TestQueueTrigger(t *testing.T) {
	q := &recordingQueue{}
	if err := NewQueueTrigger(q).Trigger(context.Background(), "app-9"); err != nil {
		t.Fatalf("trigger failed: %v", err)
	}
	if len(q.jobs) != 1 || q.jobs[0].ApplicationID != "app-9" || q.jobs[0].EnqueuedAt.IsZero() {
		t.Errorf("unexpected jobs %+v", q.jobs)
	}
}
