package main

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

const sessionTimeout = 30 * time.Minute

// Page handlers
func homeHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "./static/login.html")
}

func restaurantsPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "./static/restaurants.html")
}

func restaurantPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "./static/restaurant.html")
}

// Authentication handlers
func registerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if input.Email == "" || input.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	var id int
	err = db.QueryRow("INSERT INTO users (email, name, password) VALUES ($1, $2, $3) RETURNING id",
		input.Email, input.Name, string(hashedPassword)).Scan(&id)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if credentials.Email == "" || credentials.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	var user User
	var hashedPassword string
	err := db.QueryRow("SELECT id, email, name, password FROM users WHERE email = $1",
		credentials.Email).Scan(&user.ID, &user.Email, &user.Name, &hashedPassword)

	if err != nil {
		// Same message whether the user is unknown or the password is wrong.
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(credentials.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	session, _ := store.Get(r, "session")
	session.Values["user_id"] = user.ID
	session.Values["email"] = user.Email
	session.Values["last_activity"] = time.Now().Unix()
	session.Save(r, w)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func logoutHandler(w http.ResponseWriter, r *http.Request) {
	session, _ := store.Get(r, "session")
	session.Values["user_id"] = nil
	session.Options.MaxAge = -1
	session.Save(r, w)
	w.WriteHeader(http.StatusOK)
}

func checkAuthHandler(w http.ResponseWriter, r *http.Request) {
	session, err := store.Get(r, "session")
	if err != nil {
		http.Error(w, "Session error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	lastActivity, ok := session.Values["last_activity"].(int64)
	if !ok || time.Now().Unix()-lastActivity > int64(sessionTimeout.Seconds()) {
		session.Options.MaxAge = -1
		session.Save(r, w)
		http.Error(w, "Session expired", http.StatusUnauthorized)
		return
	}

	userID, ok := session.Values["user_id"].(int)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	session.Values["last_activity"] = time.Now().Unix()
	session.Save(r, w)

	var user User
	err = db.QueryRow("SELECT id, email, name FROM users WHERE id = $1", userID).
		Scan(&user.ID, &user.Email, &user.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "User not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "session")

		lastActivity, ok := session.Values["last_activity"].(int64)
		if !ok || time.Now().Unix()-lastActivity > int64(sessionTimeout.Seconds()) {
			session.Options.MaxAge = -1
			session.Save(r, w)
			http.Error(w, "Session expired", http.StatusUnauthorized)
			return
		}

		if _, ok := session.Values["user_id"].(int); !ok {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		session.Values["last_activity"] = time.Now().Unix()
		session.Save(r, w)

		next(w, r)
	}
}

func sessionUserID(r *http.Request) (int, bool) {
	session, _ := store.Get(r, "session")
	userID, ok := session.Values["user_id"].(int)
	return userID, ok
}

// userHasRestaurant reports whether the user is linked to the restaurant.
// Every shift write and restaurant read is gated on this.
func userHasRestaurant(userID, restaurantID int) (bool, error) {
	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM user_restaurants WHERE user_id = $1 AND restaurant_id = $2)",
		userID, restaurantID).Scan(&exists)
	return exists, err
}

// Restaurant handlers
func getRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	rows, err := db.Query(`
        SELECT r.id, r.name, COUNT(s.id)
        FROM restaurants r
        JOIN user_restaurants ur ON ur.restaurant_id = r.id
        LEFT JOIN shifts s ON s.restaurant_id = r.id
        WHERE ur.user_id = $1
        GROUP BY r.id, r.name
        ORDER BY r.name`, userID)
	if err != nil {
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	restaurants := []Restaurant{}
	for rows.Next() {
		var restaurant Restaurant
		if err := rows.Scan(&restaurant.ID, &restaurant.Name, &restaurant.ShiftCount); err != nil {
			http.Error(w, "Row scanning error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		restaurants = append(restaurants, restaurant)
	}

	if err = rows.Err(); err != nil {
		http.Error(w, "Rows iteration error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurants)
}

func createRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var input struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if input.Name == "" {
		http.Error(w, "Restaurant name required", http.StatusBadRequest)
		return
	}

	tx, err := db.Begin()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer tx.Rollback()

	var restaurantID int
	err = tx.QueryRow("INSERT INTO restaurants (name) VALUES ($1) RETURNING id", input.Name).Scan(&restaurantID)
	if err != nil {
		http.Error(w, "Error creating restaurant", http.StatusInternalServerError)
		return
	}

	_, err = tx.Exec("INSERT INTO user_restaurants (user_id, restaurant_id) VALUES ($1, $2)", userID, restaurantID)
	if err != nil {
		http.Error(w, "Error linking restaurant", http.StatusInternalServerError)
		return
	}

	if err = tx.Commit(); err != nil {
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(Restaurant{ID: restaurantID, Name: input.Name})
}

func getRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	restaurantID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	var restaurant Restaurant
	err = db.QueryRow(`
        SELECT r.id, r.name
        FROM restaurants r
        JOIN user_restaurants ur ON ur.restaurant_id = r.id
        WHERE r.id = $1 AND ur.user_id = $2`, restaurantID, userID).
		Scan(&restaurant.ID, &restaurant.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	shifts, err := loadShifts(restaurantID)
	if err != nil {
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"restaurant": restaurant,
		"shifts":     shifts,
	})
}

func loadShifts(restaurantID int) ([]Shift, error) {
	rows, err := db.Query(`
        SELECT id, date::text, day_of_week, checks, covers,
               net_revenue, total_with_tax, average_check_per_cover,
               wine_sales, wine_percent, beer_sales, beer_percent,
               liquor_sales, liquor_percent, food_sales, food_percent,
               credit_tips, cash_tips, total_tips, average_tip_percent,
               credit_tips_after_tipout, tipout_percent,
               restaurant_id, user_id, created_at::text
        FROM shifts
        WHERE restaurant_id = $1
        ORDER BY date DESC, created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []Shift{}
	for rows.Next() {
		var s Shift
		err := rows.Scan(&s.ID, &s.Date, &s.DayOfWeek, &s.Checks, &s.Covers,
			&s.NetRevenue, &s.TotalWithTax, &s.AverageCheckPerCover,
			&s.WineSales, &s.WinePercent, &s.BeerSales, &s.BeerPercent,
			&s.LiquorSales, &s.LiquorPercent, &s.FoodSales, &s.FoodPercent,
			&s.CreditTips, &s.CashTips, &s.TotalTips, &s.AverageTipPercent,
			&s.CreditTipsAfterTipout, &s.TipoutPercent,
			&s.RestaurantID, &s.UserID, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Shift handlers
func createShiftHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var raw RawShiftInput
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := validateShiftInput(raw); err != nil {
		if errors.Is(err, ErrMissingFields) {
			http.Error(w, "Missing required fields", http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	restaurantID := parseCount(raw.RestaurantID)
	linked, err := userHasRestaurant(userID, restaurantID)
	if err != nil {
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !linked {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}

	shift := deriveShift(raw)
	shift.UserID = userID

	err = db.QueryRow(`
        INSERT INTO shifts (date, day_of_week, checks, covers,
                            net_revenue, total_with_tax, average_check_per_cover,
                            wine_sales, wine_percent, beer_sales, beer_percent,
                            liquor_sales, liquor_percent, food_sales, food_percent,
                            credit_tips, cash_tips, total_tips, average_tip_percent,
                            credit_tips_after_tipout, tipout_percent,
                            restaurant_id, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
                $16, $17, $18, $19, $20, $21, $22, $23)
        RETURNING id, created_at::text`,
		shift.Date, shift.DayOfWeek, shift.Checks, shift.Covers,
		shift.NetRevenue, shift.TotalWithTax, shift.AverageCheckPerCover,
		shift.WineSales, shift.WinePercent, shift.BeerSales, shift.BeerPercent,
		shift.LiquorSales, shift.LiquorPercent, shift.FoodSales, shift.FoodPercent,
		shift.CreditTips, shift.CashTips, shift.TotalTips, shift.AverageTipPercent,
		shift.CreditTipsAfterTipout, shift.TipoutPercent,
		shift.RestaurantID, shift.UserID).Scan(&shift.ID, &shift.CreatedAt)
	if err != nil {
		fmt.Printf("Error creating shift: %v\n", err)
		http.Error(w, "Error creating shift", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"message": "Shift created successfully",
		"shift":   shift,
	})
}

// exportShiftsHandler writes the restaurant's shifts as CSV with currency and
// percent columns formatted per the shiftColumns classification.
func exportShiftsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	restaurantID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	linked, err := userHasRestaurant(userID, restaurantID)
	if err != nil {
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !linked {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	shifts, err := loadShifts(restaurantID)
	if err != nil {
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=shifts-%d.csv", restaurantID))

	cw := csv.NewWriter(w)
	cw.Write(shiftColumnNames())
	for i := range shifts {
		cw.Write(shiftColumnValues(&shifts[i]))
	}
	cw.Flush()
}
