package services

import (
	"fmt"
	"regexp"

	"rinkside_server/models"
)

// Field types understood by the validator.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Field is one declarative field rule. Zero values mean "no
// constraint" (MinLength 0, no pattern, no enum, ...).
type Field struct {
	Required   bool
	Type       string
	MinLength  int
	MaxLength  int
	Pattern    *regexp.Regexp
	Enum       []string
	MinItems   int
	MaxItems   int
	ItemSchema Schema // applied to object items of an array field
}

// Schema maps field names to rules for one container's documents.
type Schema map[string]Field

// ValidationResult is the outcome of checking one document. Unknown
// fields only ever produce warnings; they never block a write.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// Validate checks a document against the schema.
func (s Schema) Validate(doc map[string]interface{}) ValidationResult {
	res := ValidationResult{IsValid: true}

	for name, field := range s {
		value, present := doc[name]
		if !present || value == nil {
			if field.Required {
				res.Errors = append(res.Errors, fmt.Sprintf("missing required field '%s'", name))
			}
			continue
		}
		res.Errors = append(res.Errors, checkField(name, field, value)...)
	}

	for name := range doc {
		if _, known := s[name]; !known {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown field '%s'", name))
		}
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

func checkField(name string, field Field, value interface{}) []string {
	var errs []string

	switch field.Type {
	case TypeString:
		str, ok := value.(string)
		if !ok {
			return []string{fmt.Sprintf("field '%s' must be a string", name)}
		}
		if field.MinLength > 0 && len(str) < field.MinLength {
			errs = append(errs, fmt.Sprintf("field '%s' must be at least %d characters", name, field.MinLength))
		}
		if field.MaxLength > 0 && len(str) > field.MaxLength {
			errs = append(errs, fmt.Sprintf("field '%s' must be at most %d characters", name, field.MaxLength))
		}
		if field.Pattern != nil && !field.Pattern.MatchString(str) {
			errs = append(errs, fmt.Sprintf("field '%s' does not match the expected format", name))
		}
		if len(field.Enum) > 0 && !contains(field.Enum, str) {
			errs = append(errs, fmt.Sprintf("field '%s' must be one of %v", name, field.Enum))
		}
	case TypeNumber:
		if !isNumber(value) {
			errs = append(errs, fmt.Sprintf("field '%s' must be a number", name))
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			errs = append(errs, fmt.Sprintf("field '%s' must be a boolean", name))
		}
	case TypeArray:
		items, ok := value.([]interface{})
		if !ok {
			return []string{fmt.Sprintf("field '%s' must be an array", name)}
		}
		if field.MinItems > 0 && len(items) < field.MinItems {
			errs = append(errs, fmt.Sprintf("field '%s' must have at least %d items", name, field.MinItems))
		}
		if field.MaxItems > 0 && len(items) > field.MaxItems {
			errs = append(errs, fmt.Sprintf("field '%s' must have at most %d items", name, field.MaxItems))
		}
		if field.ItemSchema != nil {
			for i, item := range items {
				obj, ok := item.(map[string]interface{})
				if !ok {
					errs = append(errs, fmt.Sprintf("field '%s[%d]' must be an object", name, i))
					continue
				}
				sub := field.ItemSchema.Validate(obj)
				for _, e := range sub.Errors {
					errs = append(errs, fmt.Sprintf("%s[%d]: %s", name, i, e))
				}
			}
		}
	case TypeObject:
		if _, ok := value.(map[string]interface{}); !ok {
			errs = append(errs, fmt.Sprintf("field '%s' must be an object", name))
		}
	}

	return errs
}

func isNumber(value interface{}) bool {
	switch value.(type) {
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^\d{1,2}:\d{2}`)
	clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

var playerSchema = Schema{
	"name":         {Required: true, Type: TypeString, MinLength: 1, MaxLength: 100},
	"firstName":    {Type: TypeString, MaxLength: 50},
	"lastName":     {Type: TypeString, MaxLength: 50},
	"jerseyNumber": {Type: TypeString, MaxLength: 3},
	"position":     {Type: TypeString, MaxLength: 20},
}

// containerSchemas is the registry the database façade consults before
// every write. Containers without a schema (attendance, submissions,
// config) are written as-is.
var containerSchemas = map[string]Schema{
	models.ContainerGames: {
		"id":            {Required: true, Type: TypeString, MinLength: 1},
		"gameId":        {Type: TypeString},
		"homeTeam":      {Required: true, Type: TypeString, MinLength: 1, MaxLength: 100},
		"awayTeam":      {Required: true, Type: TypeString, MinLength: 1, MaxLength: 100},
		"division":      {Type: TypeString, MaxLength: 50},
		"season":        {Type: TypeString, MaxLength: 20},
		"year":          {Type: TypeString, MaxLength: 8},
		"gameDate":      {Required: true, Type: TypeString, Pattern: datePattern},
		"gameTime":      {Required: true, Type: TypeString, Pattern: timePattern},
		"status":        {Type: TypeString, Enum: []string{models.StatusScheduled, models.StatusInProgress, models.StatusSubmitted, models.StatusCompleted}},
		"homeTeamGoals": {Type: TypeNumber},
		"awayTeamGoals": {Type: TypeNumber},
		"homeTeamShots": {Type: TypeNumber},
		"awayTeamShots": {Type: TypeNumber},
		"createdAt":     {Type: TypeString},
		"updatedAt":     {Type: TypeString},
	},
	models.ContainerRosters: {
		"id":        {Required: true, Type: TypeString, MinLength: 1},
		"teamName":  {Required: true, Type: TypeString, MinLength: 1, MaxLength: 100},
		"division":  {Type: TypeString, MaxLength: 50},
		"season":    {Required: true, Type: TypeString, MaxLength: 20},
		"year":      {Required: true, Type: TypeString, MaxLength: 8},
		"players":   {Required: true, Type: TypeArray, MinItems: 1, ItemSchema: playerSchema},
		"createdAt": {Type: TypeString},
		"updatedAt": {Type: TypeString},
	},
	models.ContainerGoals: {
		"id":            {Required: true, Type: TypeString, MinLength: 1},
		"gameId":        {Required: true, Type: TypeString, MinLength: 1},
		"teamName":      {Required: true, Type: TypeString, MinLength: 1, MaxLength: 100},
		"playerName":    {Required: true, Type: TypeString, MinLength: 1, MaxLength: 100},
		"assistedBy":    {Type: TypeString, MaxLength: 100},
		"period":        {Required: true, Type: TypeNumber},
		"timeRemaining": {Type: TypeString, Pattern: clockPattern},
		"shotType":      {Type: TypeString, MaxLength: 30},
		"goalType":      {Type: TypeString, MaxLength: 30},
		"breakaway":     {Type: TypeBoolean},
		"recordedAt":    {Type: TypeString},
		"analytics":     {Type: TypeObject},
	},
	models.ContainerPenalties: {
		"id":            {Required: true, Type: TypeString, MinLength: 1},
		"gameId":        {Required: true, Type: TypeString, MinLength: 1},
		"teamName":      {Required: true, Type: TypeString, MinLength: 1, MaxLength: 100},
		"playerName":    {Required: true, Type: TypeString, MinLength: 1, MaxLength: 100},
		"penaltyType":   {Required: true, Type: TypeString, MinLength: 1, MaxLength: 50},
		"length":        {Type: TypeString, MaxLength: 10},
		"period":        {Required: true, Type: TypeNumber},
		"timeRemaining": {Type: TypeString, Pattern: clockPattern},
		"recordedAt":    {Type: TypeString},
		"analytics":     {Type: TypeObject},
	},
}

// SchemaForContainer returns the registered schema for a container.
func SchemaForContainer(container string) (Schema, bool) {
	s, ok := containerSchemas[container]
	return s, ok
}
