package config

type StorageDriver string

const (
	StorageDriverS3    StorageDriver = "s3"
	StorageDriverLocal StorageDriver = "local"
)

type StorageConfig struct {
	Driver        StorageDriver
	Region        string
	Bucket        string
	Prefix        string
	PublicBaseURL string
	LocalDir      string
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Driver:        StorageDriver(getEnv("STORAGE_DRIVER", string(StorageDriverS3))),
		Region:        getEnv("AWS_REGION", "us-east-1"),
		Bucket:        getEnv("AWS_BUCKET", ""),
		Prefix:        getEnv("STORAGE_PREFIX", "uploads"),
		PublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", ""),
		LocalDir:      getEnv("LOCAL_STORAGE_DIR", "./data/uploads"),
	}
}
