// Package service implements spreadsheet bulk import of players.
package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	importerModel "github.com/vaibhavgupta5/ipl-auction/internal/importer/model"
	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	playerRepository "github.com/vaibhavgupta5/ipl-auction/internal/player/repository"
)

// Service defines importer business logic methods.
type Service interface {
	// ListFields returns the importable field schema.
	ListFields(ctx context.Context) *importerModel.FieldsResponse

	// ImportPlayers reads an XLSX stream and upserts one player per
	// data row. The mapping pairs schema field names with spreadsheet
	// header names; an empty mapping matches headers to field names
	// directly. Bad rows are reported, not fatal.
	ImportPlayers(ctx context.Context, r io.Reader, mapping map[string]string) (*importerModel.ImportResponse, error)
}

type service struct {
	playerRepo playerRepository.Repository
	logger     *zap.SugaredLogger
}

// New creates a new importer service instance.
func New(playerRepo playerRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{playerRepo: playerRepo, logger: logger}
}

// ListFields returns the importable field schema.
func (s *service) ListFields(ctx context.Context) *importerModel.FieldsResponse {
	fields := importerModel.Fields()
	return &importerModel.FieldsResponse{Fields: fields, Total: len(fields)}
}

// ImportPlayers reads an XLSX stream and upserts one player per data row.
func (s *service) ImportPlayers(ctx context.Context, r io.Reader, mapping map[string]string) (*importerModel.ImportResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, importerModel.ErrInvalidFile
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, importerModel.ErrNoRows
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, importerModel.ErrInvalidFile
	}
	if len(rows) < 2 {
		return nil, importerModel.ErrNoRows
	}

	columns, err := resolveColumns(rows[0], mapping)
	if err != nil {
		return nil, err
	}

	resp := &importerModel.ImportResponse{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blankRow(row) {
			continue
		}

		player, err := buildPlayer(row, columns)
		if err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, importerModel.RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		if _, err := s.playerRepo.Upsert(ctx, player); err != nil {
			s.logger.Errorw("error upserting imported player", "row", rowNum, "player_id", player.ID, "error", err)
			resp.Failed++
			resp.Errors = append(resp.Errors, importerModel.RowError{Row: rowNum, Message: "could not save player"})
			continue
		}
		resp.Imported++
	}

	s.logger.Infow("player import finished", "imported", resp.Imported, "failed", resp.Failed)
	return resp, nil
}

// boundColumn ties a schema field to the spreadsheet column it reads.
type boundColumn struct {
	field importerModel.Field
	index int
}

// resolveColumns turns the header row plus the mapping into bound
// columns. Every mapping key must name a schema field, every mapping
// value must name a header, and "name" must end up bound.
func resolveColumns(header []string, mapping map[string]string) ([]boundColumn, error) {
	headerIndex := make(map[string]int, len(header))
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	if len(mapping) == 0 {
		mapping = make(map[string]string)
		for _, f := range importerModel.Fields() {
			if _, ok := headerIndex[f.Name]; ok {
				mapping[f.Name] = f.Name
			}
		}
	}

	columns := make([]boundColumn, 0, len(mapping))
	nameBound := false
	for fieldName, headerName := range mapping {
		field, ok := importerModel.FieldByName(fieldName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", importerModel.ErrUnknownField, fieldName)
		}
		idx, ok := headerIndex[headerName]
		if !ok {
			return nil, fmt.Errorf("%w: header %q not found", importerModel.ErrInvalidMapping, headerName)
		}
		if field.Name == "name" {
			nameBound = true
		}
		columns = append(columns, boundColumn{field: field, index: idx})
	}
	if !nameBound {
		return nil, importerModel.ErrNameNotMapped
	}
	return columns, nil
}

func buildPlayer(row []string, columns []boundColumn) (*playerModel.Player, error) {
	player := &playerModel.Player{
		Status:      playerModel.StatusUnsold,
		BestBowling: "0/0",
	}
	for _, col := range columns {
		var raw string
		if col.index < len(row) {
			raw = row[col.index]
		}
		if err := col.field.Apply(player, raw); err != nil {
			return nil, err
		}
	}
	if player.Year == 0 {
		player.Year = time.Now().Year()
	}
	player.ID = playerModel.SlugID(player.Name, player.Year)
	return player, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
