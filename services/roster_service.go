package services

import (
	"context"
	"fmt"
	"strings"

	"rinkside_server/models"
)

// RosterService owns roster documents. Roster ids derive from
// team/season/year so a re-imported roster replaces the old one.
type RosterService struct {
	DB *DatabaseService
}

// NewRosterService wires the roster service.
func NewRosterService(db *DatabaseService) *RosterService {
	return &RosterService{DB: db}
}

// RosterID builds the deterministic document id for a team's season
// roster.
func RosterID(teamName, season, year string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(teamName), " ", "-"))
	return fmt.Sprintf("%s-%s-%s", slug, strings.ToLower(season), year)
}

// CreateRoster stores a roster, deriving the id when absent.
func (rs *RosterService) CreateRoster(ctx context.Context, doc Document) (Document, error) {
	if docString(doc, "id") == "" {
		doc["id"] = RosterID(docString(doc, "teamName"), docString(doc, "season"), docString(doc, "year"))
	}
	return rs.DB.Create(ctx, models.ContainerRosters, doc)
}

// GetRosters lists rosters per the filter semantics of the façade.
func (rs *RosterService) GetRosters(ctx context.Context, filters RosterFilters) ([]Document, error) {
	return rs.DB.GetRosters(ctx, filters)
}

// UpdateRoster applies a partial update.
func (rs *RosterService) UpdateRoster(ctx context.Context, id string, partial Document) (Document, error) {
	return rs.DB.Update(ctx, models.ContainerRosters, id, partial)
}

// DeleteRoster removes a roster.
func (rs *RosterService) DeleteRoster(ctx context.Context, id string) error {
	existing, err := rs.DB.GetByID(ctx, models.ContainerRosters, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("roster %s: %w", id, ErrNotFound)
	}
	return rs.DB.Delete(ctx, models.ContainerRosters, id)
}

// AppendSubPlayer adds the synthetic "Sub" player used when a team
// skates a substitute. Idempotent: a roster that already carries one
// is returned unchanged.
func (rs *RosterService) AppendSubPlayer(ctx context.Context, id string) (Document, error) {
	roster, err := rs.DB.GetByID(ctx, models.ContainerRosters, id)
	if err != nil {
		return nil, err
	}
	if roster == nil {
		return nil, fmt.Errorf("roster %s: %w", id, ErrNotFound)
	}

	var typed models.Roster
	if err := ToModel(roster, &typed); err != nil {
		return nil, err
	}
	for _, p := range typed.Players {
		if p.Name == "Sub" {
			return roster, nil
		}
	}
	typed.Players = append(typed.Players, models.Player{Name: "Sub", Position: "skater"})
	rosterDoc, err := DocumentFromModel(typed)
	if err != nil {
		return nil, err
	}
	return rs.DB.Update(ctx, models.ContainerRosters, id, Document{"players": rosterDoc["players"]})
}
