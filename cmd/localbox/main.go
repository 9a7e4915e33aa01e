package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudflare/tableflip"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/oarkflow/browser"
	"github.com/urfave/cli/v2"

	"github.com/izonak/localbox/config"
	"github.com/izonak/localbox/internal/entities"
	"github.com/izonak/localbox/internal/http/middlewares"
	"github.com/izonak/localbox/internal/logging"
	"github.com/izonak/localbox/internal/routes"
	"github.com/izonak/localbox/internal/storage"
	"github.com/izonak/localbox/internal/utils"
)

func main() {
	entities.CliApp = &cli.App{
		Name:    "localbox",
		Usage:   "Self-hosted personal file storage with automatic categorization",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Aliases: []string{"i"}, Usage: "IP address to serve on"},
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port to listen on"},
			&cli.StringFlag{Name: "storage", Aliases: []string{"s"}, Usage: "Storage root directory"},
		},
		Action: run,
	}
	if err := entities.CliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	env := config.Load()
	overrideFromFlags(c)
	cfg := entities.Config

	logger := logging.Default(cfg.GetBool("app.debug"))
	ctx := context.Background()

	store, err := storage.New(cfg.GetString("app.storage_path"), logger.With("component", "storage"))
	if err != nil {
		return err
	}
	logger.Info(ctx, "storage ready", "root", store.Base())

	app := setupServer(store, logger)

	addr := fmt.Sprintf("%s:%s", cfg.GetString("app.host"), cfg.GetString("app.port"))
	if cfg.GetBool("app.open_browser") && !utils.IsSudo() {
		go func() {
			time.Sleep(300 * time.Millisecond)
			_ = browser.OpenURL("http://" + addr)
		}()
	}
	return gracefulListen(app, addr, env, logger)
}

// overrideFromFlags lets command-line flags win over env configuration.
func overrideFromFlags(c *cli.Context) {
	current, ok := entities.Config.Get("app").(map[string]any)
	if !ok {
		return
	}
	changed := false
	for flag, key := range map[string]string{"host": "host", "port": "port", "storage": "storage_path"} {
		if c.IsSet(flag) {
			current[key] = c.String(flag)
			changed = true
		}
	}
	if changed {
		entities.Config.Add("app", current)
	}
}

func setupServer(store *storage.Store, logger logging.Logger) *fiber.App {
	cfg := entities.Config
	app := fiber.New(fiber.Config{
		AppName: cfg.GetString("app.name"),
		// PATCH chunk bodies are buffered; cap them well below the total
		// upload limit and let clients send multiple chunks.
		BodyLimit: 128 << 20,
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders:  "*",
		ExposeHeaders: "Location, Upload-Offset, Upload-Length, Tus-Resumable, Tus-Version, Tus-Extension, Tus-Max-Size",
	}))
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(middlewares.SecureHeaders())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.GetInt("limiter.max"),
		Expiration: time.Duration(cfg.GetInt("limiter.expiration_seconds")) * time.Second,
	}))

	if publicPath := cfg.GetString("app.public_path"); utils.Exists(publicPath) {
		app.Static("/", publicPath, fiber.Static{
			Compress:  true,
			ByteRange: true,
		})
	}

	routes.Api(app, store, logger, cfg.GetInt64("upload.max_size"))
	return app
}

// gracefulListen serves on a tableflip listener so SIGHUP swaps in a new
// binary without dropping in-flight requests.
func gracefulListen(app *fiber.App, addr, env string, logger logging.Logger) error {
	upg, err := tableflip.New(tableflip.Options{})
	if err != nil {
		return fmt.Errorf("initializing tableflip: %w", err)
	}
	defer upg.Stop()

	ctx := context.Background()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP)
		for range sig {
			logger.Info(ctx, "received SIGHUP, upgrading")
			if err := upg.Upgrade(); err != nil {
				logger.Error(ctx, "upgrade failed", "error", err)
			}
		}
	}()

	ln, err := upg.Fds.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	defer ln.Close()

	logger.Info(ctx, "server starting", "addr", "http://"+addr, "env", env)
	go func() {
		if err := app.Listener(ln); err != nil {
			logger.Error(ctx, "serve failed", "error", err)
			os.Exit(1)
		}
	}()

	if err := upg.Ready(); err != nil {
		return fmt.Errorf("signaling readiness: %w", err)
	}
	<-upg.Exit()
	logger.Info(ctx, "exiting")
	return nil
}
