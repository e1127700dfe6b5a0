package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		PublicURL  string
		UseSSL     bool
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
)

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env                           string
		Port                          string
		Version                       string
		Timezone                      string
		EndpointPrefix                string
		MailerQueue                   string
		MaxRequests                   int
		ShutdownTimeout               int
		RequestBodyLimitInMegabyte    int
		LockExpirationInSeconds       int
		PrescriptionMaxUploadSizeInMB int64
		DoctorAvatarMaxUploadSizeInMB int64
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
