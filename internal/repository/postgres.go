package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	basis_errors "basis/internal"
	"basis/internal/avgprice"
	"basis/internal/db/models/postgres/public/model"
	. "basis/internal/db/models/postgres/public/table"
	"basis/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type postgresProfileRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProfileRepository(dbConn *sql.DB, log *logrus.Logger) ProfileRepository {
	return &postgresProfileRepository{db: dbConn, log: log}
}

func (r *postgresProfileRepository) LoadProfile(ctx context.Context, id uuid.UUID) (*avgprice.Profile, error) {
	stmt := AvgPriceProfile.
		SELECT(AvgPriceProfile.AllColumns).
		WHERE(AvgPriceProfile.ProfileID.EQ(postgres.UUID(id)))

	var profileRow model.AvgPriceProfile
	err := stmt.QueryContext(ctx, r.db, &profileRow)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, basis_errors.ErrProfileNotFound{ProfileID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", id, err)
	}

	lineStmt := AvgPriceLine.
		SELECT(AvgPriceLine.AllColumns).
		WHERE(AvgPriceLine.ProfileID.EQ(postgres.UUID(id))).
		ORDER_BY(AvgPriceLine.Date.ASC(), AvgPriceLine.DisplayOrder.ASC())

	var lineRows []model.AvgPriceLine
	err = lineStmt.QueryContext(ctx, r.db, &lineRows)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines of profile %s: %w", id, err)
	}

	profile, err := profileFromDb(profileRow, lineRows)
	if err != nil {
		return nil, err
	}
	// hydrated totals are derived state; a fresh replay is the oracle
	if err := profile.Recalculate(); err != nil {
		return nil, fmt.Errorf("failed to replay profile %s after load: %w", id, err)
	}
	return profile, nil
}

func (r *postgresProfileRepository) SaveProfile(ctx context.Context, profile *avgprice.Profile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if profile.Version == 0 {
		stmt := AvgPriceProfile.
			INSERT(AvgPriceProfile.AllColumns).
			MODEL(profileToDb(profile, profile.Version+1))
		if _, err := stmt.ExecContext(ctx, tx); err != nil {
			return fmt.Errorf("failed to insert profile %s: %w", profile.ID, err)
		}
	} else {
		row := profileToDb(profile, profile.Version+1)
		stmt := AvgPriceProfile.
			UPDATE(AvgPriceProfile.MutableColumns).
			MODEL(row).
			WHERE(
				AvgPriceProfile.ProfileID.EQ(postgres.UUID(profile.ID)).
					AND(AvgPriceProfile.Version.EQ(postgres.Int32(profile.Version))),
			)
		result, err := stmt.ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to update profile %s: %w", profile.ID, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return basis_errors.ErrStaleProfile{ProfileID: profile.ID, Version: profile.Version}
		}
	}

	// lines are replaced wholesale; the profile owns them exclusively
	deleteStmt := AvgPriceLine.DELETE().
		WHERE(AvgPriceLine.ProfileID.EQ(postgres.UUID(profile.ID)))
	if _, err := deleteStmt.ExecContext(ctx, tx); err != nil {
		return fmt.Errorf("failed to clear lines of profile %s: %w", profile.ID, err)
	}

	if len(profile.Lines) > 0 {
		lineRows := make([]model.AvgPriceLine, 0, len(profile.Lines))
		for _, line := range profile.Lines {
			lineRows = append(lineRows, lineToDb(line))
		}
		insertStmt := AvgPriceLine.
			INSERT(AvgPriceLine.AllColumns).
			MODELS(lineRows)
		if _, err := insertStmt.ExecContext(ctx, tx); err != nil {
			return fmt.Errorf("failed to insert lines of profile %s: %w", profile.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	profile.Version++
	r.log.WithFields(logrus.Fields{
		"profileId": profile.ID,
		"version":   profile.Version,
		"lines":     len(profile.Lines),
	}).Debug("saved profile")
	return nil
}

func (r *postgresProfileRepository) DeleteProfile(ctx context.Context, profile *avgprice.Profile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	deleteLines := AvgPriceLine.DELETE().
		WHERE(AvgPriceLine.ProfileID.EQ(postgres.UUID(profile.ID)))
	if _, err := deleteLines.ExecContext(ctx, tx); err != nil {
		return fmt.Errorf("failed to delete lines of profile %s: %w", profile.ID, err)
	}

	deleteProfile := AvgPriceProfile.DELETE().
		WHERE(AvgPriceProfile.ProfileID.EQ(postgres.UUID(profile.ID)))
	result, err := deleteProfile.ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", profile.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return basis_errors.ErrProfileNotFound{ProfileID: profile.ID}
	}

	return tx.Commit()
}

func (r *postgresProfileRepository) ListProfileIDs(ctx context.Context) ([]uuid.UUID, error) {
	stmt := AvgPriceProfile.SELECT(AvgPriceProfile.ProfileID)

	var rows []model.AvgPriceProfile
	if err := stmt.QueryContext(ctx, r.db, &rows); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	out := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		out[i] = row.ProfileID
	}
	return out, nil
}

func profileToDb(p *avgprice.Profile, version int32) model.AvgPriceProfile {
	var icon *string
	if p.Icon != "" {
		icon = util.StringPtr(p.Icon)
	}
	return model.AvgPriceProfile{
		ProfileID:         p.ID,
		Name:              p.Name,
		AssetName:         p.Asset.Name,
		AssetPrecision:    p.Asset.Precision,
		Visible:           p.Visible,
		Icon:              icon,
		Currency:          p.Currency,
		CalculationMethod: p.Method.String(),
		Version:           version,
		CreatedAt:         time.Now().UTC(),
		ModifiedAt:        time.Now().UTC(),
	}
}

func profileFromDb(row model.AvgPriceProfile, lineRows []model.AvgPriceLine) (*avgprice.Profile, error) {
	method, err := avgprice.ParseCalculationMethod(row.CalculationMethod)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", row.ProfileID, err)
	}

	profile := &avgprice.Profile{
		ID:   row.ProfileID,
		Name: row.Name,
		Asset: avgprice.Asset{
			Name:      row.AssetName,
			Precision: row.AssetPrecision,
		},
		Visible:  row.Visible,
		Currency: row.Currency,
		Method:   method,
		Version:  row.Version,
	}
	if row.Icon != nil {
		profile.Icon = *row.Icon
	}

	profile.Lines = make([]*avgprice.Line, 0, len(lineRows))
	for _, lineRow := range lineRows {
		line, err := lineFromDb(lineRow)
		if err != nil {
			return nil, err
		}
		profile.Lines = append(profile.Lines, line)
	}
	return profile, nil
}

func lineToDb(line *avgprice.Line) model.AvgPriceLine {
	var comment *string
	if line.Comment != "" {
		comment = util.StringPtr(line.Comment)
	}
	return model.AvgPriceLine{
		LineID:       line.ID,
		ProfileID:    line.ProfileID,
		Date:         line.Date,
		DisplayOrder: line.DisplayOrder,
		LineType:     string(line.Type),
		Quantity:     line.Quantity,
		Amount:       line.Amount,
		Comment:      comment,
		CreatedAt:    time.Now().UTC(),
		ModifiedAt:   time.Now().UTC(),
	}
}

func lineFromDb(row model.AvgPriceLine) (*avgprice.Line, error) {
	lineType, err := avgprice.ParseLineType(row.LineType)
	if err != nil {
		return nil, fmt.Errorf("line %s: %w", row.LineID, err)
	}
	line := &avgprice.Line{
		ID:           row.LineID,
		ProfileID:    row.ProfileID,
		Date:         row.Date,
		DisplayOrder: row.DisplayOrder,
		Type:         lineType,
		Quantity:     row.Quantity,
		Amount:       row.Amount,
	}
	if row.Comment != nil {
		line.Comment = *row.Comment
	}
	return line, nil
}
