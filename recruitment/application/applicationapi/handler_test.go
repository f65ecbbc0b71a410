package applicationapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
	"github.com/Abraxas-365/crewdesk/pkg/fsx"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/Abraxas-365/crewdesk/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/crewdesk/recruitment/job"
	"github.com/gofiber/fiber/v2"
)

type memRepo struct {
	mu   sync.Mutex
	apps map[kernel.ApplicationID]*application.Application
}

func (r *memRepo) Create(ctx context.Context, a *application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.apps[a.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.apps[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, application.ErrApplicationNotFound()
}

func (r *memRepo) List(ctx context.Context) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]application.Application, 0, len(r.apps))
	for _, a := range r.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (r *memRepo) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.ApplicationStatus) error {
	return nil
}

func (r *memRepo) UpdateResume(ctx context.Context, id kernel.ApplicationID, path, filename string, url kernel.BucketURL) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return application.ErrApplicationNotFound()
	}
	a.ResumePath, a.ResumeFilename, a.ResumeURL = path, filename, url
	return nil
}

func (r *memRepo) UpdateNotification(ctx context.Context, id kernel.ApplicationID, audit application.NotificationAudit) error {
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id kernel.ApplicationID) error { return nil }

func (r *memRepo) DeleteMany(ctx context.Context, ids []kernel.ApplicationID) ([]kernel.ApplicationID, error) {
	return nil, nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}

type jobTable map[kernel.JobID]*job.Job

func (t jobTable) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	if j, ok := t[id]; ok {
		return j, nil
	}
	return nil, job.ErrJobNotFound()
}

type memFS struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (f *memFS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[path]
	if !ok {
		return nil, fsx.ErrFileNotFound()
	}
	return data, nil
}

func (f *memFS) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	data, err := f.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *memFS) WriteFile(ctx context.Context, path string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = data
	return nil
}

func (f *memFS) WriteFileStream(ctx context.Context, path string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return f.WriteFile(ctx, path, data)
}

func (f *memFS) DeleteFile(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, path)
	return nil
}

func (f *memFS) Exists(ctx context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.files[path]
	return ok, nil
}

func (f *memFS) Join(elem ...string) string { return strings.Join(elem, "/") }
func (f *memFS) URL(path string) string      { return "https://cdn.test/" + path }

func (f *memFS) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.files)
}

type nopTrigger struct{}

func (nopTrigger) Trigger(ctx context.Context, id kernel.ApplicationID) error { return nil }

func newTestApp() (*fiber.App, *memRepo, *memFS) {
	repo := &memRepo{apps: make(map[kernel.ApplicationID]*application.Application)}
	fs := &memFS{files: make(map[string][]byte)}
	jobs := jobTable{"job-1": {ID: "job-1", Title: "Chief Engineer", Status: job.JobStatusActive}}

	svc := applicationsrv.NewApplicationService(repo, jobs, fs, nopTrigger{})

	app := fiber.New(fiber.Config{
		BodyLimit: 8 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *errx.Error
			if errors.As(err, &e) {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	RegisterRoutes(app, NewHandlers(svc), auth.NewTokenMiddleware(nil, nil))
	return app, repo, fs
}

type resumePart struct {
	filename    string
	contentType string
	data        []byte
}

func formFields() map[string]string {
	return map[string]string{
		"full_name":        "Juan dela Cruz",
		"email":            "juan@example.com",
		"phone":            "+63 912 345 6789",
		"date_of_birth":    "1990-04-12",
		"nationality":      "Filipino",
		"position":         "Chief Engineer",
		"years_experience": "12",
		"expected_salary":  "9500",
		"job_id":           "job-1",
	}
}

func multipartBody(t *testing.T, fields map[string]string, resume *resumePart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if resume != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="resume"; filename="`+resume.filename+`"`)
		h.Set("Content-Type", resume.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(resume.data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestSubmitApplicationHandler(t *testing.T) {
	missingPhone := formFields()
	delete(missingPhone, "phone")

	tests := []struct {
		name       string
		fields     map[string]string
		resume     *resumePart
		status     int
		wantCode   errx.Code
		wantResume application.ResumeState
		wantFiles  int
		wantStored int
	}{
		{
			name:       "with pdf resume",
			fields:     formFields(),
			resume:     &resumePart{"cv.pdf", "application/pdf", []byte("%PDF-1.7 resume")},
			status:     fiber.StatusCreated,
			wantResume: application.ResumeStateStored,
			wantFiles:  1,
			wantStored: 1,
		},
		{
			name:       "without resume",
			fields:     formFields(),
			status:     fiber.StatusCreated,
			wantResume: application.ResumeStateNone,
			wantStored: 1,
		},
		{
			name:     "executable resume",
			fields:   formFields(),
			resume:   &resumePart{"cv.exe", "application/x-msdownload", []byte("MZ")},
			status:   fiber.StatusBadRequest,
			wantCode: application.CodeInvalidAttachment,
		},
		{
			name:     "pdf name with executable type",
			fields:   formFields(),
			resume:   &resumePart{"cv.pdf", "application/x-msdownload", []byte("MZ")},
			status:   fiber.StatusBadRequest,
			wantCode: application.CodeInvalidAttachment,
		},
		{
			name:     "oversized resume",
			fields:   formFields(),
			resume:   &resumePart{"cv.pdf", "application/pdf", make([]byte, applicationsrv.MaxResumeSize+1)},
			status:   fiber.StatusBadRequest,
			wantCode: application.CodeInvalidAttachment,
		},
		{
			name:     "missing phone",
			fields:   missingPhone,
			status:   fiber.StatusBadRequest,
			wantCode: application.CodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, repo, fs := newTestApp()

			body, contentType := multipartBody(t, tt.fields, tt.resume)
			req := httptest.NewRequest("POST", "/api/careers/applications", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}

			var got map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}

			if tt.wantCode != "" {
				if got["code"] != string(tt.wantCode) {
					t.Errorf("code = %v, want %s", got["code"], tt.wantCode)
				}
			} else {
				if got["resume_state"] != string(tt.wantResume) {
					t.Errorf("resume_state = %v, want %s", got["resume_state"], tt.wantResume)
				}
				if got["job_title"] != "Chief Engineer" {
					t.Errorf("job_title = %v", got["job_title"])
				}
			}

			if n := repo.count(); n != tt.wantStored {
				t.Errorf("stored applications = %d, want %d", n, tt.wantStored)
			}
			if n := fs.count(); n != tt.wantFiles {
				t.Errorf("uploaded files = %d, want %d", n, tt.wantFiles)
			}
		})
	}
}
