package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	_ "github.com/lib/pq"
)

var (
	db    *sql.DB
	store *sessions.CookieStore
)

func main() {
	cfg := loadConfig()

	// Database connection
	var err error
	db, err = sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}
	fmt.Println("Database connection successful!")

	// Configure session store with proper cookie settings
	store = sessions.NewCookieStore([]byte(cfg.SessionKey))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = false // Set to true in production with HTTPS
	store.Options.SameSite = http.SameSiteLaxMode

	r := mux.NewRouter()

	// Static files
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./static/"))))

	// Pages
	r.HandleFunc("/", homeHandler).Methods("GET")
	r.HandleFunc("/restaurants", restaurantsPageHandler).Methods("GET")
	r.HandleFunc("/restaurants/{id:[0-9]+}", restaurantPageHandler).Methods("GET")

	// API routes
	r.HandleFunc("/api/register", registerHandler).Methods("POST")
	r.HandleFunc("/api/login", loginHandler).Methods("POST")
	r.HandleFunc("/api/logout", logoutHandler).Methods("POST")
	r.HandleFunc("/api/check-auth", checkAuthHandler).Methods("GET")
	r.HandleFunc("/api/restaurants", requireAuth(getRestaurantsHandler)).Methods("GET")
	r.HandleFunc("/api/restaurants", requireAuth(createRestaurantHandler)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", requireAuth(getRestaurantHandler)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/export", requireAuth(exportShiftsHandler)).Methods("GET")
	r.HandleFunc("/api/shifts", requireAuth(createShiftHandler)).Methods("POST")

	fmt.Println("Server starting on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
