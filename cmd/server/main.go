package main

import (
	"fmt"
	"net/http"

	"adminpanel/auth"
	"adminpanel/config"
	"adminpanel/db"
	"adminpanel/db/mongo"
	"adminpanel/db/postgres"
	"adminpanel/handlers"
	"adminpanel/repository"
	"adminpanel/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var store db.DB
	var userRepo repository.UserRepository
	var categoryRepo repository.CategoryRepository
	var productRepo repository.ProductRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		// Run migrations (for Postgres)
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		store = pg
		if err := store.Connect(); err != nil {
			panic(err)
		}
		defer store.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		categoryRepo = repository.NewPostgresCategoryRepo(pg.Conn)
		productRepo = repository.NewPostgresProductRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		store = mg
		if err := store.Connect(); err != nil {
			panic(err)
		}
		defer store.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		categoryRepo = repository.NewMongoCategoryRepo(mg.Client)
		productRepo = repository.NewMongoProductRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	authMW := auth.NewMiddleware(cfg.JWTSecret)
	authHandler := &handlers.AuthHandler{Repo: userRepo, Secret: cfg.JWTSecret}
	userHandler := &handlers.UserHandler{Repo: userRepo}
	categoryHandler := &handlers.CategoryHandler{Repo: categoryRepo}
	productHandler := &handlers.ProductHandler{Repo: productRepo}
	uploadHandler := &handlers.UploadHandler{Dir: cfg.UploadDir, Storage: cfg.UploadStorage}

	// Setup routes
	routes.SetupRoutes(authMW, authHandler, userHandler, productHandler, categoryHandler, uploadHandler, cfg.UploadDir)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
