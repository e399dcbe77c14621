package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/store"
)

// Status texts reported by the diagnostics endpoint
const (
	BackendRunning        = "✅ Running"
	DatabaseNotAvailable  = "❌ Not Available"
	DatabaseAvailable     = "✅ Available"
	DatabaseUninitialized = "⚠️  Available but not initialized"
	DatabaseWorking       = "✅ Connected & Working"
	SettingSet            = "✅ Set"
	SettingNotSet         = "❌ Not Set"
	StatusConnected       = "Connected"
	StatusNotConnected    = "Not Connected"
)

const (
	maxCollections  = 10
	maxErrorMessage = 50
)

// Status is the diagnostics record. Configuration values are reported by
// presence only.
//
// swagger:model
type Status struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// StoreSettings records which store settings were provided
type StoreSettings struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

type DiagnosticsService interface {
	TestDatabase(ctx context.Context) *Status
}

type diagnosticsService struct {
	gateway  store.Gateway
	settings StoreSettings
	logger   hclog.Logger
}

// NewDiagnosticsService creates the diagnostics service. gw may be nil
// when no gateway could be constructed at all.
func NewDiagnosticsService(gw store.Gateway, settings StoreSettings, logger hclog.Logger) DiagnosticsService {
	return &diagnosticsService{
		gateway:  gw,
		settings: settings,
		logger:   logger,
	}
}

// TestDatabase reports store reachability. It never fails: every error,
// including a panic in the gateway, ends up in the Database field.
func (s *diagnosticsService) TestDatabase(ctx context.Context) (status *Status) {
	status = &Status{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		ConnectionStatus: StatusNotConnected,
		Collections:      []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered from panic while testing database", "panic", r)
			status.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxErrorMessage)
		}
		status.DatabaseURL = presence(s.settings.DatabaseURLSet)
		status.DatabaseName = presence(s.settings.DatabaseNameSet)
	}()

	if s.gateway == nil {
		return status
	}

	if !s.gateway.Initialized() {
		status.Database = DatabaseUninitialized
		return status
	}

	status.Database = DatabaseAvailable
	status.ConnectionStatus = StatusConnected

	names, err := s.gateway.ListCollections(ctx)
	if err != nil {
		s.logger.Warn("Unable to list collections", "database", s.gateway.Name(), "error", err)
		status.Database = "⚠️  Connected but Error: " + truncate(storeMessage(err), maxErrorMessage)
		return status
	}

	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	status.Collections = names
	status.Database = DatabaseWorking

	return status
}

// storeMessage drops the gateway's operation prefix so the truncated text
// keeps the database's own message
func storeMessage(err error) string {
	var se *store.Error
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return err.Error()
}

func presence(set bool) string {
	if set {
		return SettingSet
	}
	return SettingNotSet
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
