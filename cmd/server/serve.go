package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/api/route"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/application"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/cache"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/database"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/dispatch"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/mirror"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/notification"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/offers"
)

type appConfig struct {
	Env  string `mapstructure:"env"`
	Port string `mapstructure:"port"`
}

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serves the nextlevel api",
		RunE:  run,
	}
}

func SetLogs() {
	now := time.Now()
	logFileName := now.Format("2006-01-02") + ".log"
	logFilePath := path.Join("./storage/logs", logFileName)

	if err := os.MkdirAll("./storage/logs", 0755); err != nil {
		logrus.Error("error creating log directory:", err)
		return
	}

	file, err := os.OpenFile(logFilePath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		logrus.Error("error opening log file:", err)
		return
	}

	mw := io.MultiWriter(os.Stdout, file)
	logrus.SetOutput(mw)
}

func run(cmd *cobra.Command, args []string) error {
	SetLogs()

	conf := &appConfig{}
	if subv := viper.Sub("app"); subv != nil {
		if err := subv.Unmarshal(conf); err != nil {
			return err
		}
	}
	if conf.Port == "" {
		conf.Port = "5002"
	}
	logrus.Infof("App starting in %s environment", conf.Env)

	dbConf, err := database.InitConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.Connect(ctx, dbConf, 10, 2*time.Second)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.Error("unable to close connection to database", err)
		}
	}()

	store := docstore.NewMongo(db)

	var snapshots mirror.SnapshotStore
	cacheConf, err := cache.InitConfig()
	if err == nil && cacheConf.Host != "" {
		redisCache := cache.New(cacheConf)
		defer func() {
			if err := redisCache.Close(); err != nil {
				logrus.Error("unable to close connection to cache", err)
			}
		}()
		snapshots = mirror.NewCacheSnapshotStore(redisCache)
	} else {
		logrus.Warn("cache not configured, mirror snapshots will not persist")
	}

	notificationSvc := notification.NewService(store, snapshots, logrus.StandardLogger())
	defer notificationSvc.Close()

	dispatcher := dispatch.New(store, notificationSvc, logrus.StandardLogger())
	ledger := application.NewLedger(store, dispatcher, snapshots, logrus.StandardLogger())
	if err := ledger.Watch(context.Background()); err != nil {
		return err
	}
	defer ledger.Close()

	offerSvc := offers.NewService(store)

	app := fiber.New(fiber.Config{
		AppName: "nextlevel_backend",
	})
	app.Use(route.RecoverPanic())
	app.Use(route.RequestID())

	if err := route.RegisterApplicationRoutes(app, ledger, offerSvc); err != nil {
		return err
	}
	if err := route.RegisterNotificationRoutes(app, notificationSvc); err != nil {
		return err
	}
	if err := route.RegisterOfferRoutes(app, offerSvc); err != nil {
		return err
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		<-ch
		logrus.Info("signal caught. shutting down...")
		if err := app.Shutdown(); err != nil {
			logrus.Error(err)
		}
	}()

	logrus.Infof("API started at http://127.0.0.1:%s", conf.Port)
	return app.Listen(fmt.Sprintf(":%s", conf.Port))
}
