package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"time"

	"basis/internal/config"
	db "basis/internal/db/query"
	"basis/internal/repository"
	"basis/internal/totalizer"
	"basis/internal/util"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

func main() {
	var (
		year       = flag.Int("year", time.Now().Year(), "calendar year to report")
		profileArg = flag.String("profiles", "", "comma-separated profile ids; empty means all profiles")
		configPath = flag.String("config", ".", "directory containing appsettings.yaml")
	)
	flag.Parse()
	ctx := context.Background()

	log := util.NewLogger("info", false)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log = util.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)

	dbConn, err := db.New(cfg.Database.DSN())
	if err != nil {
		log.Fatal(err)
	}
	repo := repository.NewPostgresProfileRepository(dbConn, log)

	profileIDs, err := parseProfileIDs(*profileArg)
	if err != nil {
		log.Fatal(err)
	}
	if len(profileIDs) == 0 {
		profileIDs, err = repo.ListProfileIDs(ctx)
		if err != nil {
			log.Fatal(err)
		}
	}

	report, err := totalizer.New(repo).GetTotals(ctx, *year, profileIDs)
	if err != nil {
		log.Fatal(err)
	}

	bytes, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(bytes))
}

func parseProfileIDs(arg string) ([]uuid.UUID, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, nil
	}
	parts := strings.Split(arg, ",")
	out := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid profile id %q: %w", part, err)
		}
		out = append(out, id)
	}
	return out, nil
}
