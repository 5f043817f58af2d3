package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/siriwatk/employee-directory-go/internal/config"
	appHTTP "github.com/siriwatk/employee-directory-go/internal/handler/http"
	"github.com/siriwatk/employee-directory-go/internal/pkg/database"
	"github.com/siriwatk/employee-directory-go/internal/repository/postgresql"
	serviceAuth "github.com/siriwatk/employee-directory-go/internal/service/auth"
	serviceEmployee "github.com/siriwatk/employee-directory-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)

	authService := serviceAuth.NewAuthService(employeeRepo, cfg.Auth.BcryptCost)
	employeeService := serviceEmployee.NewEmployeeService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeService)

	router := appHTTP.NewRouter(cfg, authHandler, employeeHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}

	db.Close()
	fmt.Println("PostgreSQL pool closed.")
}
