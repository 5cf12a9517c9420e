// Package fixture decodes the land-record fixture: the records that make up
// the Record Store plus the catalog reference data shipped with them.
package fixture

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/landsecure/landsecure/internal/domain"
	"github.com/landsecure/landsecure/internal/domain/catalog"
	"github.com/landsecure/landsecure/internal/domain/land"
)

//go:embed landsecure.yaml
var embedded []byte

// Fixture is a fully validated fixture.
type Fixture struct {
	Records       []land.Record
	States        []catalog.State
	Verifications []catalog.Verification
	Auctions      []catalog.Auction
}

// Embedded returns a copy of the fixture compiled into the binary.
func Embedded() []byte {
	return bytes.Clone(embedded)
}

// LoadEmbedded parses the compiled-in fixture.
func LoadEmbedded() (Fixture, error) {
	return Parse(embedded)
}

// LoadFile reads and parses a fixture file from disk.
func LoadFile(path string) (Fixture, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML (or JSON, which YAML accepts) and validates every record.
// Unknown keys are rejected so typos in hand-edited fixtures surface at startup.
func Parse(data []byte) (Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var dto fileDTO
	if err := dec.Decode(&dto); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixture{}, fmt.Errorf("%w: empty document", domain.ErrInvalidFixture)
		}
		return Fixture{}, fmt.Errorf("%w: %w", domain.ErrInvalidFixture, err)
	}

	f := Fixture{Records: make([]land.Record, 0, len(dto.Records))}
	for i := range dto.Records {
		r, err := land.New(paramsFromDTO(&dto.Records[i]))
		if err != nil {
			return Fixture{}, fmt.Errorf("record %d: %w", i, err)
		}
		f.Records = append(f.Records, r)
	}
	for _, s := range dto.States {
		f.States = append(f.States, stateFromDTO(s))
	}
	for _, v := range dto.Verifications {
		f.Verifications = append(f.Verifications, verificationFromDTO(v))
	}
	for _, a := range dto.Auctions {
		f.Auctions = append(f.Auctions, auctionFromDTO(a))
	}
	return f, nil
}

// Encode renders f as a JSON snapshot that Parse reads back.
func Encode(f *Fixture) ([]byte, error) {
	var dto fileDTO
	for i := range f.Records {
		dto.Records = append(dto.Records, recordToDTO(&f.Records[i]))
	}
	for _, s := range f.States {
		dto.States = append(dto.States, stateToDTO(s))
	}
	for _, v := range f.Verifications {
		dto.Verifications = append(dto.Verifications, verificationToDTO(v))
	}
	for _, a := range f.Auctions {
		dto.Auctions = append(dto.Auctions, auctionToDTO(a))
	}

	data, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("encode fixture: %w", err)
	}
	return data, nil
}
