package model

import "time"

const EnvelopeVersion = "v1"

type Envelope struct {
	Version  string       `json:"version"`
	Success  bool         `json:"success"`
	Data     any          `json:"data,omitempty"`
	Error    *ErrorBody   `json:"error"`
	Warnings []string     `json:"warnings,omitempty"`
	Meta     EnvelopeMeta `json:"meta"`
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Verb    string `json:"verb,omitempty"`
	Field   string `json:"field,omitempty"`
}

type EnvelopeMeta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Network   string    `json:"network,omitempty"`
	History   string    `json:"history,omitempty"`
}

// Translation is the data payload of a successful legacy translation.
type Translation struct {
	Verb        string   `json:"verb"`
	NetworkID   string   `json:"network_id"`
	Legacy      []string `json:"legacy"`
	Tokens      []string `json:"tokens"`
	CommandLine string   `json:"command_line"`
}

// HistoryEntry is one stored translation.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Verb      string    `json:"verb"`
	NetworkID string    `json:"network_id"`
	Legacy    []string  `json:"legacy"`
	Tokens    []string  `json:"tokens"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryClearResult struct {
	Deleted int64 `json:"deleted"`
}

// PlainText is the line printed for a translation in plain output mode.
func (t Translation) PlainText() string {
	return t.CommandLine
}
