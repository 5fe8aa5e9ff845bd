package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"ingatlan/agent/internal/models"
)

const delimiter = "#"

// Minimum field counts per record kind.
const (
	realEstateFields = 6
	panelFields      = 8
)

var (
	ErrFieldCount   = errors.New("record has too few fields")
	ErrUnknownKind  = errors.New("unknown record kind")
	ErrUnknownGenre = errors.New("unknown genre")
)

// Parser turns delimited listing records into properties. It performs no
// I/O; callers hand it already-read lines.
type Parser struct {
	logger *logrus.Logger
}

// NewParser creates a parser that reports malformed records to the logger.
func NewParser(logger *logrus.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseLine parses a single record of the form
// KIND#city#pricePerSqm#areaSqm#numberOfRooms#GENRE[#floor#insulated].
func (p *Parser) ParseLine(line string) (models.Property, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) < realEstateFields {
		return nil, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}

	kind := fields[0]
	city := fields[1]

	pricePerSqm, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price per sqm %q: %w", fields[2], err)
	}

	areaSqm, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("invalid area %q: %w", fields[3], err)
	}

	numberOfRooms, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid room count %q: %w", fields[4], err)
	}

	genre, err := models.ParseGenre(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenre, fields[5])
	}

	switch kind {
	case "REALESTATE":
		return models.NewRealEstate(city, pricePerSqm, areaSqm, numberOfRooms, genre), nil
	case "PANEL":
		if len(fields) < panelFields {
			return nil, fmt.Errorf("%w: panel record needs %d fields, got %d", ErrFieldCount, panelFields, len(fields))
		}
		floor, err := strconv.Atoi(fields[6])
		if err != nil {
			return nil, fmt.Errorf("invalid floor %q: %w", fields[6], err)
		}
		isInsulated := strings.EqualFold(fields[7], "yes")
		return models.NewPanel(city, pricePerSqm, areaSqm, numberOfRooms, genre, floor, isInsulated), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ParseAll parses every line independently, in order. Malformed lines are
// logged and skipped; a bad record never stops the batch.
func (p *Parser) ParseAll(lines []string) []models.Property {
	properties := make([]models.Property, 0, len(lines))
	for _, line := range lines {
		property, err := p.ParseLine(line)
		if err != nil {
			p.logger.WithError(err).WithField("line", line).Warn("Skipping malformed record")
			continue
		}
		properties = append(properties, property)
	}
	return properties
}
