package commands

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Leerling-hub/Booking/cache"
	"github.com/Leerling-hub/Booking/config"
	"github.com/Leerling-hub/Booking/events"
	"github.com/Leerling-hub/Booking/server"
	"github.com/Leerling-hub/Booking/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func ServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.SuppressServer() {
				log.Println("APP_ENV=test, not starting the server")
				return nil
			}

			log.Printf("Configuration loaded: Env=%s, Port=%s, DBDriver=%s, MemcachedHost=%q",
				cfg.Env, cfg.Port, cfg.DBDriver, cfg.MemcachedHost)

			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			// Change events go to RabbitMQ when a broker is configured
			var publisher events.Publisher = events.NopPublisher{}
			if cfg.RabbitMQURL != "" {
				rabbit, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.EventsQueue)
				if err != nil {
					return err
				}
				defer rabbit.Close()
				publisher = rabbit
			}

			accounts := cache.NewAccountCache(cfg.MemcachedHost, cfg.AccountCacheTTL)
			hasher := utils.NewPasswordHasher(cfg.BcryptCost)
			tokens := utils.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

			if cfg.Env == "production" {
				gin.SetMode(gin.ReleaseMode)
			}
			router := server.NewRouter(server.NewServices(db, hasher, tokens, accounts, publisher))

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, ":"+cfg.Port, router)
		},
	}
}
