package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Errorf("BcryptCost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.CookieName != defaultCookieName {
		t.Errorf("CookieName = %q, want %q", cfg.Auth.CookieName, defaultCookieName)
	}
	if cfg.Catalog.DefaultRadiusKm != defaultRadiusKm || cfg.Catalog.MaxRadiusKm != defaultMaxRadiusKm {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Database == nil || cfg.Moderation == nil || cfg.PubSub == nil {
		t.Fatal("expected empty sections to be allocated")
	}
	if cfg.Worker.Port != defaultWorkerPort {
		t.Errorf("Worker.Port = %d, want %d", cfg.Worker.Port, defaultWorkerPort)
	}
	if cfg.Database.PoolMonitorInterval != defaultPoolMonitorInterval {
		t.Errorf("PoolMonitorInterval = %v, want %v", cfg.Database.PoolMonitorInterval, defaultPoolMonitorInterval)
	}
	if cfg.Database.PoolWaitWarnThreshold != defaultPoolWaitWarnThreshold {
		t.Errorf("PoolWaitWarnThreshold = %v, want %v", cfg.Database.PoolWaitWarnThreshold, defaultPoolWaitWarnThreshold)
	}
}

func TestApplyDefaults_KeepsDisabledPoolMonitor(t *testing.T) {
	cfg := &Config{Database: &DatabaseConfig{PoolMonitorInterval: -1}}
	applyDefaults(cfg)

	if cfg.Database.PoolMonitorInterval != -1 {
		t.Errorf("PoolMonitorInterval = %v, want -1", cfg.Database.PoolMonitorInterval)
	}
}

func TestApplyDefaults_MaxRadiusNeverBelowDefault(t *testing.T) {
	cfg := &Config{Catalog: &CatalogConfig{DefaultRadiusKm: 80, MaxRadiusKm: 10}}
	applyDefaults(cfg)

	if cfg.Catalog.MaxRadiusKm != 80 {
		t.Errorf("MaxRadiusKm = %v, want 80", cfg.Catalog.MaxRadiusKm)
	}
}
