package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"
	"clinicbook-service/internal/app/delivery/http/routers"
	"clinicbook-service/internal/app/drivers/database"
	"clinicbook-service/internal/app/drivers/logger"
	"clinicbook-service/internal/app/drivers/mailer"
	"clinicbook-service/internal/app/drivers/messaging"
	"clinicbook-service/internal/app/drivers/storage"
	"clinicbook-service/internal/app/services/core/auth"
	"clinicbook-service/internal/app/services/core/bookings"
	"clinicbook-service/internal/app/services/core/clinics"
	"clinicbook-service/internal/app/services/core/doctors"
	"clinicbook-service/internal/app/services/core/treatments"
	"clinicbook-service/internal/app/services/core/users"
	"clinicbook-service/internal/app/services/shared/locker"
	mailerservice "clinicbook-service/internal/app/services/shared/mailer"
	"clinicbook-service/internal/app/services/shared/mailworker"
	redisrepo "clinicbook-service/internal/app/services/shared/redis"
	miniostorage "clinicbook-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	smtpClient := mailer.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	worker, err := mailworker.NewWorker(rabbitMQ, smtpClient, zapLogger, internalConfig.App.MailerQueue)
	if err != nil {
		log.Fatalf("Error creating mail worker: %v", err)
	}
	if err := worker.Start(); err != nil {
		log.Fatalf("Error starting mail worker: %v", err)
	}
	bootstrap.MailWorkerStop = worker.Stop

	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	objectStorage := miniostorage.NewMinioStorage(minioClient, bootstrap.DriverConfig)

	mailerService, err := mailerservice.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.MailerQueue)
	if err != nil {
		log.Fatalf("Error creating mailer service: %v", err)
	}

	// Repositories
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	paymentRepository := bookings.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	clinicRepository := clinics.NewClinicMongoRepository(bootstrap.MongoDB, dbName)
	treatmentRepository := treatments.NewTreatmentMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		paymentRepository,
		userRepository,
		doctorRepository,
		clinicRepository,
		treatmentRepository,
		objectStorage,
		mailerService,
		lockService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, clinicRepository, objectStorage, bootstrap.InternalConfig, bootstrap.Logger)
	treatmentUsecase := treatments.NewTreatmentUsecase(treatmentRepository, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userRepository, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(userRepository, bootstrap.InternalConfig, bootstrap.Logger)

	// Controllers
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase, bootstrap.InternalConfig)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)
	treatmentController := controllers.NewTreatmentController(bootstrap.Logger, treatmentUsecase)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Middlewares
	httpMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		bookingController,
		authController,
		doctorController,
		treatmentController,
		userController,
	)
}
