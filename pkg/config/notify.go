package config

type NotifyConfig struct {
	Queue   string
	Workers int
}

func loadNotifyConfig() NotifyConfig {
	return NotifyConfig{
		Queue:   getEnv("NOTIFY_QUEUE", "notifications:applications"),
		Workers: getEnvInt("NOTIFY_WORKERS", 2),
	}
}
