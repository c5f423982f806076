package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "pet-care-tracker/docs"
	mem "pet-care-tracker/internal/adapters/storage/memory"
	pg "pet-care-tracker/internal/adapters/storage/postgres"
	"pet-care-tracker/internal/domain/catalog"
	"pet-care-tracker/internal/domain/events"
	"pet-care-tracker/internal/domain/households"
	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/savedevents"
	"pet-care-tracker/internal/middleware"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Zona horaria para cortes de día. nil = time.Local.
	Timezone *time.Location

	// Logger de requests. nil = sin logging (tests).
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLog(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		hhRepo    households.Repository
		petRepo   pets.Repository
		eventRepo events.Repository
		catRepo   catalog.Repository
		savedRepo savedevents.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		hhRepo = pg.NewHouseholdsRepo(db)
		petRepo = pg.NewPetsRepo(db)
		eventRepo = pg.NewEventsRepo(db)
		catRepo = pg.NewCatalogRepo(db)
		savedRepo = pg.NewSavedEventsRepo(db)
	} else {
		hhRepo = mem.NewHouseholdRepo()
		petRepo = mem.NewPetRepo()
		eventRepo = mem.NewEventRepo()
		catRepo = mem.NewCatalogRepo()
		savedRepo = mem.NewSavedEventRepo()
	}

	loc := opts.Timezone
	if loc == nil {
		loc = time.Local
	}

	petDir := pets.NewDirectory(petRepo)

	// Services por módulo
	hhSvc := households.NewService(hhRepo)
	petsSvc := pets.NewService(petRepo)
	eventsSvc := events.NewService(eventRepo, petDir, loc)
	catSvc := catalog.NewService(catRepo)
	savedSvc := savedevents.NewService(savedRepo, eventsSvc, petDir)

	// Rutas por módulo
	households.RegisterRoutes(r, hhSvc)
	pets.RegisterRoutes(r, petsSvc, hhSvc)
	events.RegisterRoutes(r, eventsSvc, hhSvc)
	catalog.RegisterRoutes(r, catSvc, hhSvc)
	savedevents.RegisterRoutes(r, savedSvc, hhSvc)

	return r
}
