package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	basis_errors "basis/internal"
	"basis/internal/avgprice"
	"basis/internal/config"
	db "basis/internal/db/query"
	"basis/internal/repository"
	"basis/internal/service"
	"basis/internal/util"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// lineEntry is one record of the JSON export format:
// [{"date": "2023-05-01", "display_order": 1, "type": "BUY",
//   "quantity": "0.5", "unit_price": "60000", "comment": "dca"}]
type lineEntry struct {
	Date         string          `json:"date"`
	DisplayOrder int32           `json:"display_order"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Comment      string          `json:"comment"`
}

func main() {
	var (
		file       = flag.String("file", "lines.json", "JSON file with lines to import")
		profileArg = flag.String("profile", "", "existing profile id; empty creates a new profile")
		name       = flag.String("name", "imported", "name for a newly created profile")
		assetName  = flag.String("asset", "BTC", "asset name for a newly created profile")
		precision  = flag.Int("precision", 8, "asset precision for a newly created profile")
		currency   = flag.String("currency", "EUR", "currency for a newly created profile")
		methodArg  = flag.String("method", "average", "calculation method: average or fifo")
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
	svc := service.NewProfileService(repo)

	profileID, err := resolveProfileID(ctx, svc, *profileArg, *name, *assetName, int32(*precision), *currency, *methodArg)
	if err != nil {
		log.Fatal(err)
	}

	entries, err := parseEntriesFromFile(*file)
	if err != nil {
		log.Fatal(err)
	}

	for _, entry := range entries {
		if err := addEntry(ctx, svc, profileID, entry); err != nil {
			entryStr, _ := json.Marshal(entry)
			log.Fatalf("failed to import entry %s: %v", string(entryStr), err)
		}
	}
	log.Infof("imported %d lines into profile %s", len(entries), profileID)
}

func resolveProfileID(ctx context.Context, svc service.ProfileService, profileArg, name, assetName string, precision int32, currency, methodArg string) (uuid.UUID, error) {
	if profileArg == "" {
		method, err := avgprice.ParseCalculationMethod(methodArg)
		if err != nil {
			return uuid.Nil, err
		}
		profile, err := svc.CreateProfile(ctx, name, avgprice.Asset{Name: assetName, Precision: precision}, currency, method)
		if err != nil {
			return uuid.Nil, err
		}
		return profile.ID, nil
	}

	id, err := uuid.Parse(profileArg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid profile id %q: %w", profileArg, err)
	}
	_, err = svc.GetProfile(ctx, id)
	var notFoundErr basis_errors.ErrProfileNotFound
	if errors.As(err, &notFoundErr) {
		return uuid.Nil, fmt.Errorf("profile %s does not exist; omit -profile to create one", id)
	}
	return id, err
}

func parseEntriesFromFile(path string) ([]lineEntry, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	var entries []lineEntry
	err = json.Unmarshal(f, &entries)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal file into entries: %w", err)
	}
	return entries, nil
}

func addEntry(ctx context.Context, svc service.ProfileService, profileID uuid.UUID, entry lineEntry) error {
	date, err := time.Parse("2006-01-02", entry.Date)
	if err != nil {
		return err
	}
	lineType, err := avgprice.ParseLineType(entry.Type)
	if err != nil {
		return err
	}
	_, err = svc.AddLine(ctx, profileID, date, entry.DisplayOrder, lineType, entry.Quantity, entry.UnitPrice, entry.Comment)
	return err
}
