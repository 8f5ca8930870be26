package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"endlessvault/auth"
	"endlessvault/cart"
	"endlessvault/catalog"
	"endlessvault/checkout"
	"endlessvault/config"
	"endlessvault/controllers"
	"endlessvault/database"
	"endlessvault/logger"
	"endlessvault/notify"
	"endlessvault/routes"
)

func main() {

	config.LoadEnv()

	log := logger.New("endlessvault", config.GetEnv("LOG_LEVEL", "info"))

	db, err := database.Connect(os.Getenv("MONGO_URI"), os.Getenv("DB_NAME"))
	if err != nil {
		log.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}
	log.Info("connected to MongoDB")

	repo := catalog.NewMongoRepository(db.Items())
	signal := catalog.NewReloadSignal()

	store := catalog.NewStore(repo, log)
	store.Watch(signal)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.Refresh(ctx); err != nil {
		log.Warn("initial catalog load failed, starting empty", "error", err)
	}
	cancel()

	cartStore := cart.New()
	editor := catalog.NewEditor(repo, signal, log)

	mailer := notify.NewSMTPMailer(
		config.GetEnv("SMTP_HOST", "smtp.gmail.com"),
		config.GetEnvInt("SMTP_PORT", 587),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		config.GetEnv("MAIL_FROM", "orders@endlessvault.local"),
		os.Getenv("MAIL_TO"),
		log,
	)

	secret := []byte(os.Getenv("JWT_SECRET"))

	r := gin.Default()
	r.SetTrustedProxies(nil)

	routes.Register(r, routes.Deps{
		Auth: &controllers.AuthController{
			Auth:      auth.NewEnvAuthenticator(os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")),
			Secret:    secret,
			Blacklist: db.BlacklistTokens(),
		},
		Browse:    &controllers.BrowseController{Store: store, View: catalog.NewView(store)},
		Admin:     &controllers.AdminController{Editor: editor, Store: store, View: catalog.NewView(store)},
		Cart:      &controllers.CartController{Cart: cartStore, Store: store},
		Checkout:  &controllers.CheckoutController{Service: checkout.New(cartStore, mailer, log)},
		Secret:    secret,
		Blacklist: db.BlacklistTokens(),
	})

	port := config.GetEnv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
