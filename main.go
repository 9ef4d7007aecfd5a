package main

import (
	"net/http"

	"tasksaathi/backend/config"
	"tasksaathi/backend/handlers"
	"tasksaathi/backend/middleware"
	"tasksaathi/backend/routes"
	"tasksaathi/backend/supabase"
)

func main() {

	config.LoadEnv()
	config.InitLogger()
	supabase.Init()
	handlers.InitEvents()

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	port := config.Getenv("PORT", "8080")
	config.Logger.Info("Server is running on port ", port)
	config.Logger.Fatal(http.ListenAndServe(":"+port, handler))
}
