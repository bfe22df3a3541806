package di

import (
	"posada/internal/seed"
	"posada/transport/http"
)

// App bundles everything main needs to bring the service up: the HTTP
// transport and the seeder that loads the starter catalog.
type App struct {
	HTTP   *http.HTTP
	Seeder *seed.Seeder
}

func NewApp(http *http.HTTP, seeder *seed.Seeder) *App {
	return &App{
		HTTP:   http,
		Seeder: seeder,
	}
}
