package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/store"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestTestDatabase(t *testing.T) {
	manyCollections := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		manyCollections = append(manyCollections, fmt.Sprintf("c%02d", i))
	}

	testCases := []struct {
		name     string
		gateway  store.Gateway
		settings StoreSettings
		want     Status
	}{
		{
			name:    "No gateway",
			gateway: nil,
			want: Status{
				Backend:          BackendRunning,
				Database:         DatabaseNotAvailable,
				DatabaseURL:      SettingNotSet,
				DatabaseName:     SettingNotSet,
				ConnectionStatus: StatusNotConnected,
				Collections:      []string{},
			},
		},
		{
			name:     "Offline gateway",
			gateway:  store.NewOffline(nil),
			settings: StoreSettings{DatabaseURLSet: true},
			want: Status{
				Backend:          BackendRunning,
				Database:         DatabaseUninitialized,
				DatabaseURL:      SettingSet,
				DatabaseName:     SettingNotSet,
				ConnectionStatus: StatusNotConnected,
				Collections:      []string{},
			},
		},
		{
			name: "Connected",
			gateway: &fakeGateway{
				initialized: true,
				listCollectionsFunc: func(ctx context.Context) ([]string, error) {
					return []string{"product", "order"}, nil
				},
			},
			settings: StoreSettings{DatabaseURLSet: true, DatabaseNameSet: true},
			want: Status{
				Backend:          BackendRunning,
				Database:         DatabaseWorking,
				DatabaseURL:      SettingSet,
				DatabaseName:     SettingSet,
				ConnectionStatus: StatusConnected,
				Collections:      []string{"product", "order"},
			},
		},
		{
			name: "Collections capped at ten",
			gateway: &fakeGateway{
				initialized: true,
				listCollectionsFunc: func(ctx context.Context) ([]string, error) {
					return manyCollections, nil
				},
			},
			settings: StoreSettings{DatabaseURLSet: true, DatabaseNameSet: true},
			want: Status{
				Backend:          BackendRunning,
				Database:         DatabaseWorking,
				DatabaseURL:      SettingSet,
				DatabaseName:     SettingSet,
				ConnectionStatus: StatusConnected,
				Collections:      manyCollections[:10],
			},
		},
		{
			name: "Connected with error",
			gateway: &fakeGateway{
				initialized: true,
				listCollectionsFunc: func(ctx context.Context) ([]string, error) {
					return nil, &store.Error{Op: "list collections", Err: errors.New("server selection error: context deadline exceeded, current topology")}
				},
			},
			settings: StoreSettings{DatabaseURLSet: true, DatabaseNameSet: true},
			want: Status{
				Backend:          BackendRunning,
				Database:         "⚠️  Connected but Error: server selection error: context deadline exceeded,",
				DatabaseURL:      SettingSet,
				DatabaseName:     SettingSet,
				ConnectionStatus: StatusConnected,
				Collections:      []string{},
			},
		},
		{
			name: "Panicking gateway",
			gateway: &fakeGateway{
				initialized: true,
				listCollectionsFunc: func(ctx context.Context) ([]string, error) {
					panic("nil connection pool")
				},
			},
			want: Status{
				Backend:          BackendRunning,
				Database:         "❌ Error: nil connection pool",
				DatabaseURL:      SettingNotSet,
				DatabaseName:     SettingNotSet,
				ConnectionStatus: StatusConnected,
				Collections:      []string{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewDiagnosticsService(tc.gateway, tc.settings, hclog.NewNullLogger())

			var status *Status
			assert.NotPanics(t, func() {
				status = svc.TestDatabase(context.Background())
			})
			assert.Equal(t, &tc.want, status)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, strings.Repeat("a", 50), truncate(strings.Repeat("a", 80), 50))
	assert.Equal(t, "✅✅", truncate("✅✅✅", 2))
}
