package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/config"
	"github.com/Abraxas-365/crewdesk/pkg/fsx"
	"github.com/Abraxas-365/crewdesk/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/crewdesk/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin/adminapi"
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin/admininfra"
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin/adminsrv"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth/authinfra"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session/sessioninfra"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/Abraxas-365/crewdesk/recruitment/application/applicationapi"
	"github.com/Abraxas-365/crewdesk/recruitment/application/applicationinfra"
	"github.com/Abraxas-365/crewdesk/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/crewdesk/recruitment/job/jobapi"
	"github.com/Abraxas-365/crewdesk/recruitment/job/jobinfra"
	"github.com/Abraxas-365/crewdesk/recruitment/job/jobsrv"
	"github.com/Abraxas-365/crewdesk/recruitment/notification"
	"github.com/Abraxas-365/crewdesk/recruitment/notification/notificationinfra"
	"github.com/Abraxas-365/crewdesk/recruitment/notification/notificationsrv"
	"github.com/Abraxas-365/crewdesk/recruitment/notification/worker"
	"github.com/Abraxas-365/crewdesk/recruitment/settings/settingsapi"
	"github.com/Abraxas-365/crewdesk/recruitment/settings/settingsinfra"
	"github.com/Abraxas-365/crewdesk/recruitment/settings/settingssrv"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// localFilesRoute is where the local storage driver's directory is served
const localFilesRoute = "/files"

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	LocalFS    *fsxlocal.LocalFileSystem
	S3Client   *s3.Client
	Sessions   *session.FallbackStore
	PgSessions *sessioninfra.PostgresBackend
	Queue      *notificationinfra.RedisQueue

	// IAM
	TokenService   auth.TokenService
	AuthService    *auth.AuthService
	AdminService   *adminsrv.AdminService
	AuthMiddleware *auth.TokenMiddleware

	// Recruitment
	JobService          *jobsrv.JobService
	ApplicationService  *applicationsrv.ApplicationService
	SettingsService     *settingssrv.SettingsService
	Dispatcher          *notificationsrv.Dispatcher
	NotificationWorkers *worker.NotificationWorker

	// Handlers
	AuthHandlers        *auth.AuthHandlers
	AdminHandlers       *adminapi.AdminHandlers
	JobHandlers         *jobapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	SettingsHandlers    *settingsapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	c.initInfrastructure()
	c.initServices()

	return c
}

func (c *Container) initInfrastructure() {
	logx.Info("Initializing infrastructure...")

	// 1. Database
	db, err := sqlx.Connect("postgres", c.Config.Database.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
	c.DB = db

	// 2. Redis. A dead Redis is survivable: sessions fall back and
	// dispatch enqueue failures are absorbed by the submission flow.
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Address(),
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Redis.Ping(pingCtx).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. File storage
	switch c.Config.Storage.Driver {
	case config.StorageDriverLocal:
		baseURL := c.Config.Storage.PublicBaseURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("http://localhost:%d%s", c.Config.Server.Port, localFilesRoute)
		}
		local, err := fsxlocal.NewLocalFileSystem(c.Config.Storage.LocalDir, baseURL)
		if err != nil {
			logx.Fatalf("Failed to prepare local storage: %v", err)
		}
		c.LocalFS = local
		c.FileSystem = local
	default:
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(c.Config.Storage.Region))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(awsCfg)
		s3fs := fsxs3.NewS3FileSystem(c.S3Client, c.Config.Storage.Bucket, c.Config.Storage.Prefix)
		if c.Config.Storage.PublicBaseURL != "" {
			s3fs = s3fs.WithPublicBaseURL(c.Config.Storage.PublicBaseURL)
		}
		c.FileSystem = s3fs
	}

	// 4. Sessions: redis, then postgres, then process memory
	c.PgSessions = sessioninfra.NewPostgresBackend(c.DB)
	c.Sessions = session.NewFallbackStore(
		c.Config.Auth.Session.TTL,
		sessioninfra.NewRedisBackend(c.Redis),
		c.PgSessions,
		sessioninfra.NewMemoryBackend(),
	)

	// 5. Dispatch queue
	c.Queue = notificationinfra.NewRedisQueue(c.Redis, c.Config.Notify.Queue)
}

func (c *Container) initServices() {
	// --- Repositories ---
	adminRepo := admininfra.NewPostgresAdminRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	recipientRepo := settingsinfra.NewPostgresRecipientRepository(c.DB)
	agencyRepo := settingsinfra.NewPostgresAgencyRepository(c.DB)
	optionRepo := settingsinfra.NewPostgresOptionRepository(c.DB)

	// --- IAM ---
	passwordSvc := authinfra.NewBcryptPasswordService(c.Config.Auth.Password.BcryptCost)
	c.TokenService = auth.NewJWTServiceFromConfig(&c.Config.Auth.JWT)
	c.AuthService = auth.NewAuthService(adminRepo, passwordSvc, c.Sessions, c.TokenService)
	c.AdminService = adminsrv.NewAdminService(adminRepo, passwordSvc)
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService, c.Sessions)

	// --- Notification ---
	c.Dispatcher = notificationsrv.NewDispatcher(
		applicationRepo,
		recipientRepo,
		c.FileSystem,
		c.newMailer(),
		c.Config.Server.PublicBaseURL,
	)
	c.NotificationWorkers = worker.NewNotificationWorker(c.Dispatcher, c.Queue, c.Config.Notify.Workers)
	trigger := notificationsrv.NewQueueTrigger(c.Queue)

	// --- Recruitment ---
	c.JobService = jobsrv.NewJobService(jobRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, jobRepo, c.FileSystem, trigger)
	c.SettingsService = settingssrv.NewSettingsService(recipientRepo, agencyRepo, optionRepo)

	// --- Handlers ---
	c.AuthHandlers = auth.NewAuthHandlers(c.AuthService)
	c.AdminHandlers = adminapi.NewAdminHandlers(c.AdminService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.SettingsHandlers = settingsapi.NewHandlers(c.SettingsService)

	logx.Info("Services initialized")
}

func (c *Container) newMailer() notification.Mailer {
	if !c.Config.Email.UsesSMTP() {
		logx.Warn("SMTP is not configured, notifications will be printed to the console")
		return notificationinfra.NewConsoleMailer()
	}
	mailer, err := notificationinfra.NewSMTPMailer(c.Config.Email)
	if err != nil {
		logx.Fatalf("Failed to configure SMTP mailer: %v", err)
	}
	return mailer
}

// Bootstrap clears expired fallback sessions and seeds the first super
// admin when configured
func (c *Container) Bootstrap(ctx context.Context) {
	if n, err := c.PgSessions.PurgeExpired(ctx); err != nil {
		logx.Warnf("Failed to purge expired sessions: %v", err)
	} else if n > 0 {
		logx.Infof("Purged %d expired sessions", n)
	}

	if !c.Config.Bootstrap.Enabled() {
		return
	}
	created, err := c.AdminService.EnsureBootstrapAdmin(ctx, c.Config.Bootstrap.Username, c.Config.Bootstrap.Password)
	if err != nil {
		logx.Errorf("Failed to bootstrap admin: %v", err)
		return
	}
	if created {
		logx.Infof("Bootstrap admin %q created", c.Config.Bootstrap.Username)
	}
}

// Close releases the infrastructure connections
func (c *Container) Close() {
	if err := c.Redis.Close(); err != nil {
		logx.Warnf("Failed to close Redis: %v", err)
	}
	if err := c.DB.Close(); err != nil {
		logx.Warnf("Failed to close database: %v", err)
	}
}
