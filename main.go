package main

import (
	auth "Driveline/internal/auth"
	bearing "Driveline/internal/calc/bearing"
	hub "Driveline/internal/calc/hub"
	autodesign "Driveline/internal/calc/premium/autodesign"
	batch "Driveline/internal/calc/premium/batch"
	importer "Driveline/internal/calc/premium/importer"
	recommend "Driveline/internal/calc/premium/recommend"
	report "Driveline/internal/calc/report"
	rotorloads "Driveline/internal/calc/rotorloads"
	drivetrain "Driveline/internal/drivetrain"
	profile "Driveline/internal/profile"
	repo "Driveline/internal/repo"
	"context"
	"database/sql"

	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")

	secureApi.HandleFunc("/projects", profileH.SaveProject).Methods("POST")
	secureApi.HandleFunc("/projects", profileH.ListProjects).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", profileH.GetProject).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", profileH.DeleteProject).Methods("DELETE")

	drivetrainH := &drivetrain.Handler{}
	rotorloadsH := &rotorloads.Handler{}
	bearingH := &bearing.Handler{}
	hubH := &hub.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	autodesignH := &autodesign.Handler{}

	secureApi.HandleFunc("/tools/drivetrain/calc", drivetrainH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/rotorloads/calc", rotorloadsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bearing/calc", bearingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/hub/calc", hubH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/premium/batch/drivetrain", batchH.Drivetrain).Methods("POST")
	secureApi.HandleFunc("/premium/import/spectrum", importerH.Spectrum).Methods("POST")
	secureApi.HandleFunc("/premium/recommend/bearing", recommendH.Bearing).Methods("POST")
	secureApi.HandleFunc("/premium/autodesign/topology", autodesignH.Topology).Methods("POST")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)

}
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
