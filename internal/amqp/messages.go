package amqp

import (
	"encoding/json"
	"time"
)

// ReportGeneratedMessage announces that a category report was written
// to its sink.
type ReportGeneratedMessage struct {
	Category      string    `json:"category"`
	ReferenceDate string    `json:"reference_date"`
	Records       int       `json:"records"`
	Path          string    `json:"path"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewReportGeneratedMessage(category, referenceDate string, records int, path string) *ReportGeneratedMessage {
	return &ReportGeneratedMessage{
		Category:      category,
		ReferenceDate: referenceDate,
		Records:       records,
		Path:          path,
		Timestamp:     time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ReportGeneratedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportGeneratedMessageFromJSON decodes a message from JSON bytes.
func ReportGeneratedMessageFromJSON(data []byte) (*ReportGeneratedMessage, error) {
	var msg ReportGeneratedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
