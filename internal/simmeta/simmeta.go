package simmeta

import (
	"encoding/json"

	"github.com/xyproto/randomstring"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
)

var Log = logger.GetLogger()

const IDENTIFIER_DEFAULT_LEN = 10

type MetaData struct {
	SoftwareVersion string `json:"software_version"`
	Identifier      string `json:"identifier"`
	Levels          int    `json:"levels"`
	Elevators       int    `json:"elevators"`
	Capacity        int    `json:"capacity"`
	Strategy        string `json:"strategy"`
}

// New fills in a random identifier when none is given.
func New(softwareVersion, identifier string) *MetaData {
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN)
		Log.Warn().Msgf("No session identifier provided, generated random identifier \"%v\"", identifier)
	}
	return &MetaData{
		SoftwareVersion: softwareVersion,
		Identifier:      identifier,
	}
}

func (metaData *MetaData) String() string {
	jsonData, err := json.Marshal(metaData)

	if err != nil {
		Log.Error().Msg("Error Serialising MetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}
