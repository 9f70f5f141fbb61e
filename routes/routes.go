package routes

import (
	"net/http"
	"strings"

	"adminpanel/auth"
	"adminpanel/handlers"
	"adminpanel/utils/response"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	response.Error(w, http.StatusMethodNotAllowed, "Invalid request method")
}

func SetupRoutes(
	authMW *auth.Middleware,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	productHandler *handlers.ProductHandler,
	categoryHandler *handlers.CategoryHandler,
	uploadHandler *handlers.UploadHandler,
	uploadDir string,
) {
	handle := func(pattern string, fn http.HandlerFunc) {
		http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(fn))))
	}
	postOnly := func(fn http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w)
				return
			}
			fn(w, r)
		}
	}

	// Auth routes
	handle("/api/auth/register", postOnly(authHandler.Register))
	handle("/api/auth/login", postOnly(authHandler.Login))
	handle("/api/auth/logout", postOnly(authHandler.Logout))

	// User routes
	handle("/api/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			authMW.RequireAuth(userHandler.List)(w, r)
		case http.MethodPost:
			authMW.RequireAdmin(userHandler.Create)(w, r)
		default:
			methodNotAllowed(w)
		}
	})
	handle("/api/users/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/users/")
		if id == "" {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		switch r.Method {
		case http.MethodGet:
			authMW.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				userHandler.Get(w, r, id)
			})(w, r)
		case http.MethodPut:
			authMW.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				userHandler.Update(w, r, id)
			})(w, r)
		case http.MethodDelete:
			authMW.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				userHandler.Delete(w, r, id)
			})(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// Product routes
	handle("/api/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			authMW.RequireAuth(productHandler.List)(w, r)
		case http.MethodPost:
			authMW.RequireAdmin(productHandler.Create)(w, r)
		default:
			methodNotAllowed(w)
		}
	})
	handle("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/products/")
		if id == "" {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		switch r.Method {
		case http.MethodGet:
			authMW.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				productHandler.Get(w, r, id)
			})(w, r)
		case http.MethodPut:
			authMW.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				productHandler.Update(w, r, id)
			})(w, r)
		case http.MethodDelete:
			authMW.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				productHandler.Delete(w, r, id)
			})(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// Category routes, including the dropdown listing
	handle("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			authMW.RequireAuth(categoryHandler.List)(w, r)
		case http.MethodPost:
			authMW.RequireAdmin(categoryHandler.Create)(w, r)
		default:
			methodNotAllowed(w)
		}
	})
	handle("/api/categories/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/categories/")
		if id == "" {
			response.Error(w, http.StatusNotFound, "Category not found")
			return
		}
		if id == "dropdown" {
			if r.Method != http.MethodGet {
				methodNotAllowed(w)
				return
			}
			authMW.RequireAuth(categoryHandler.Dropdown)(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			authMW.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				categoryHandler.Get(w, r, id)
			})(w, r)
		case http.MethodPut:
			authMW.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				categoryHandler.Update(w, r, id)
			})(w, r)
		case http.MethodDelete:
			authMW.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				categoryHandler.Delete(w, r, id)
			})(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// Image upload
	handle("/api/upload", postOnly(authMW.RequireAuth(uploadHandler.Upload)))

	// Health check
	handle("/api/health", handlers.Health)

	// Serve uploaded files
	http.Handle("/uploads/", withCORS(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))))

	// Root route
	handle("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			response.Error(w, http.StatusNotFound, "Not found")
			return
		}
		response.JSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to Admin Panel Backend API",
			"version": "1.0.0",
		})
	})
}
