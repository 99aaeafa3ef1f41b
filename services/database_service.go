package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"rinkside_server/models"
	"rinkside_server/utils"
)

// Document is the schemaless shape the façade moves around. Typed
// models exist for readers; writes go through schema validation on
// these maps so no caller can bypass it.
type Document = map[string]interface{}

// DatabaseService is the single façade over the document store. All
// writes pass through schema validation and stamp timestamps; list
// queries go through the injected TTL cache.
type DatabaseService struct {
	Dynamo      *DynamoService
	Cache       *QueryCache
	TablePrefix string

	GameListTTL     time.Duration
	FilteredGameTTL time.Duration

	now func() time.Time
}

// NewDatabaseService wires the façade with its cache and TTLs.
func NewDatabaseService(dynamo *DynamoService, cache *QueryCache, tablePrefix string, listTTL, filteredTTL time.Duration) *DatabaseService {
	return &DatabaseService{
		Dynamo:          dynamo,
		Cache:           cache,
		TablePrefix:     tablePrefix,
		GameListTTL:     listTTL,
		FilteredGameTTL: filteredTTL,
		now:             time.Now,
	}
}

func (db *DatabaseService) table(container string) string {
	return db.TablePrefix + container
}

func (db *DatabaseService) timestamp() string {
	return db.now().UTC().Format(time.RFC3339)
}

// validate runs the container's schema, if one is registered. Schema
// violations are hard failures; there is no silent fallback.
func validate(container string, doc Document) error {
	schema, ok := SchemaForContainer(container)
	if !ok {
		return nil
	}
	res := schema.Validate(doc)
	for _, w := range res.Warnings {
		log.Warn().Str("container", container).Str("warning", w).Msg("schema warning")
	}
	if !res.IsValid {
		return &ValidationError{Container: container, Errors: res.Errors, Warnings: res.Warnings}
	}
	return nil
}

// Create sanitizes, validates, timestamps and writes a new document,
// then invalidates every cached query against the container.
func (db *DatabaseService) Create(ctx context.Context, container string, doc Document) (Document, error) {
	doc = SanitizeDocument(doc)

	if schema, ok := SchemaForContainer(container); ok {
		now := db.timestamp()
		if _, declared := schema["createdAt"]; declared {
			doc["createdAt"] = now
		}
		if _, declared := schema["updatedAt"]; declared {
			doc["updatedAt"] = now
		}
	}
	if err := validate(container, doc); err != nil {
		return nil, err
	}
	if err := db.Dynamo.PutItem(ctx, db.table(container), doc); err != nil {
		return nil, err
	}
	db.Cache.InvalidatePrefix(container)
	return doc, nil
}

// Update reads the existing document, shallow-merges the partial over
// it, re-validates the merged result and replaces it.
func (db *DatabaseService) Update(ctx context.Context, container, id string, partial Document) (Document, error) {
	existing, err := db.GetByID(ctx, container, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("'%s' %s: %w", container, id, ErrNotFound)
	}

	merged := make(Document, len(existing)+len(partial))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range SanitizeDocument(partial) {
		merged[k] = v
	}
	if schema, ok := SchemaForContainer(container); ok {
		if _, declared := schema["updatedAt"]; declared {
			merged["updatedAt"] = db.timestamp()
		}
	}
	if err := validate(container, merged); err != nil {
		return nil, err
	}
	if err := db.Dynamo.PutItem(ctx, db.table(container), merged); err != nil {
		return nil, err
	}
	db.Cache.InvalidatePrefix(container)
	return merged, nil
}

// Upsert writes a document without the read-merge-validate cycle.
// Used for singleton records (attendance snapshots, config).
func (db *DatabaseService) Upsert(ctx context.Context, container string, doc Document) (Document, error) {
	doc = SanitizeDocument(doc)
	if err := db.Dynamo.PutItem(ctx, db.table(container), doc); err != nil {
		return nil, err
	}
	db.Cache.InvalidatePrefix(container)
	return doc, nil
}

// Delete removes a document by id.
func (db *DatabaseService) Delete(ctx context.Context, container, id string) error {
	if err := db.Dynamo.DeleteItem(ctx, db.table(container), id); err != nil {
		return err
	}
	db.Cache.InvalidatePrefix(container)
	return nil
}

// GetByID returns the document or nil when absent. Absence is not an
// error here; callers that need 404 semantics check for nil.
func (db *DatabaseService) GetByID(ctx context.Context, container, id string) (Document, error) {
	item, err := db.Dynamo.GetItem(ctx, db.table(container), id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	var doc Document
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal '%s' item: %w", container, err)
	}
	return doc, nil
}

// Query scans a container and filters with a Go predicate. League
// containers are small enough that the scan-and-filter path is the
// query engine here; a nil predicate returns everything.
func (db *DatabaseService) Query(ctx context.Context, container string, pred func(Document) bool) ([]Document, error) {
	items, err := db.Dynamo.ScanItems(ctx, db.table(container), 0)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(items))
	for _, item := range items {
		var doc Document
		if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal '%s' item: %w", container, err)
		}
		if pred == nil || pred(doc) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// GameFilters narrows a game list query. ID wins over everything else
// and bypasses the cache.
type GameFilters struct {
	ID       string
	Division string
	DateFrom string
	DateTo   string
}

// GetGames lists games. Non-id queries are cached: 2 minutes when
// date-filtered, 5 minutes otherwise.
func (db *DatabaseService) GetGames(ctx context.Context, filters GameFilters) ([]Document, error) {
	if filters.ID != "" {
		return db.Query(ctx, models.ContainerGames, func(doc Document) bool {
			return docString(doc, "id") == filters.ID || docString(doc, "gameId") == filters.ID
		})
	}

	cacheKey := fmt.Sprintf("%s:division=%s:from=%s:to=%s",
		models.ContainerGames, strings.ToLower(filters.Division), filters.DateFrom, filters.DateTo)
	if cached, ok := db.Cache.Get(cacheKey); ok {
		return cloneDocs(cached.([]Document)), nil
	}

	docs, err := db.Query(ctx, models.ContainerGames, func(doc Document) bool {
		if filters.Division != "" && !strings.EqualFold(filters.Division, "all") {
			if !strings.EqualFold(docString(doc, "division"), filters.Division) {
				return false
			}
		}
		date := docString(doc, "gameDate")
		if filters.DateFrom != "" && date < filters.DateFrom {
			return false
		}
		if filters.DateTo != "" && date > filters.DateTo {
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	ttl := db.GameListTTL
	if filters.DateFrom != "" || filters.DateTo != "" {
		ttl = db.FilteredGameTTL
	}
	db.Cache.Set(cacheKey, cloneDocs(docs), ttl)
	return docs, nil
}

// RosterFilters narrows a roster query. GameID resolves the game first
// and returns the home and away rosters; that path fails loudly when
// the game or either roster is missing.
type RosterFilters struct {
	ID       string
	GameID   string
	TeamName string
	Season   string
	Year     string
}

// GetRosters lists rosters per the filter semantics above.
func (db *DatabaseService) GetRosters(ctx context.Context, filters RosterFilters) ([]Document, error) {
	if filters.ID != "" {
		doc, err := db.GetByID(ctx, models.ContainerRosters, filters.ID)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, fmt.Errorf("roster %s: %w", filters.ID, ErrNotFound)
		}
		return []Document{doc}, nil
	}

	if filters.GameID != "" {
		games, err := db.GetGames(ctx, GameFilters{ID: filters.GameID})
		if err != nil {
			return nil, err
		}
		if len(games) == 0 {
			return nil, fmt.Errorf("game %s: %w", filters.GameID, ErrNotFound)
		}
		game := games[0]
		homeTeam := docString(game, "homeTeam")
		awayTeam := docString(game, "awayTeam")
		if homeTeam == "" || awayTeam == "" {
			return nil, fmt.Errorf("game %s is missing team data", filters.GameID)
		}

		var rosters []Document
		for _, team := range []string{homeTeam, awayTeam} {
			matches, err := db.rostersForTeam(ctx, team, docString(game, "season"), docString(game, "year"))
			if err != nil {
				return nil, err
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no roster for team '%s': %w", team, ErrNotFound)
			}
			rosters = append(rosters, matches...)
		}
		return rosters, nil
	}

	return db.Query(ctx, models.ContainerRosters, func(doc Document) bool {
		if filters.TeamName != "" && !strings.EqualFold(docString(doc, "teamName"), filters.TeamName) {
			return false
		}
		if filters.Season != "" && docString(doc, "season") != filters.Season {
			return false
		}
		if filters.Year != "" && docString(doc, "year") != filters.Year {
			return false
		}
		return true
	})
}

func (db *DatabaseService) rostersForTeam(ctx context.Context, team, season, year string) ([]Document, error) {
	return db.Query(ctx, models.ContainerRosters, func(doc Document) bool {
		if !strings.EqualFold(docString(doc, "teamName"), team) {
			return false
		}
		if season != "" && docString(doc, "season") != season {
			return false
		}
		if year != "" && docString(doc, "year") != year {
			return false
		}
		return true
	})
}

// GetGameEvents fetches goals and penalties in parallel, tags each
// with its event type, and returns the union newest-first.
func (db *DatabaseService) GetGameEvents(ctx context.Context, gameID string) ([]Document, error) {
	byGame := func(doc Document) bool {
		return gameID == "" || docString(doc, "gameId") == gameID
	}

	var goals, penalties []Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goals, err = db.Query(gctx, models.ContainerGoals, byGame)
		return err
	})
	g.Go(func() error {
		var err error
		penalties, err = db.Query(gctx, models.ContainerPenalties, byGame)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	events := make([]Document, 0, len(goals)+len(penalties))
	for _, doc := range goals {
		doc["eventType"] = models.EventTypeGoal
		events = append(events, normalizeRecordedAt(doc))
	}
	for _, doc := range penalties {
		doc["eventType"] = models.EventTypePenalty
		events = append(events, normalizeRecordedAt(doc))
	}
	sort.SliceStable(events, func(i, j int) bool {
		return docString(events[i], "recordedAt") > docString(events[j], "recordedAt")
	})
	return events, nil
}

// GetTeamDivision resolves a team's division from roster data. Every
// failure collapses to the Unknown sentinel: this is best-effort
// enrichment, never a reason to fail the enclosing request.
func (db *DatabaseService) GetTeamDivision(ctx context.Context, teamName, season, year string) string {
	items, err := db.Dynamo.ScanItems(ctx, db.table(models.ContainerRosters), 0)
	if err != nil {
		log.Warn().Err(err).Str("team", teamName).Msg("division lookup failed")
		return models.DivisionUnknown
	}
	for _, item := range items {
		if !strings.EqualFold(utils.ExtractString(item, "teamName"), teamName) {
			continue
		}
		if season != "" && utils.ExtractString(item, "season") != season {
			continue
		}
		if year != "" && utils.ExtractString(item, "year") != year {
			continue
		}
		if division := utils.ExtractString(item, "division"); division != "" {
			return division
		}
	}
	return models.DivisionUnknown
}

func normalizeRecordedAt(doc Document) Document {
	if docString(doc, "recordedAt") == "" {
		doc["recordedAt"] = docString(doc, "createdAt")
	}
	return doc
}

func docString(doc Document, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

func docInt(doc Document, key string) int {
	switch v := doc[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func cloneDocs(docs []Document) []Document {
	out := make([]Document, len(docs))
	for i, doc := range docs {
		clone := make(Document, len(doc))
		for k, v := range doc {
			clone[k] = v
		}
		out[i] = clone
	}
	return out
}
