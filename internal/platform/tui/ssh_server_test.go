package tui

import (
	"testing"
	"time"
)

func TestSSHServerConfigDefaults(t *testing.T) {
	d := DefaultSSHServerConfig()

	got := SSHServerConfig{}.withDefaults()
	if got.Address != d.Address || got.DBPath != d.DBPath {
		t.Errorf("empty config should take default address and db, got %+v", got)
	}
	if got.IdleTimeout != d.IdleTimeout || got.TickRate != d.TickRate {
		t.Errorf("empty config should take default timeout and rate, got %+v", got)
	}

	custom := SSHServerConfig{
		Address:     ":2222",
		DBPath:      "/tmp/results.db",
		IdleTimeout: time.Minute,
		TickRate:    60,
	}.withDefaults()
	if custom.Address != ":2222" || custom.DBPath != "/tmp/results.db" || custom.IdleTimeout != time.Minute || custom.TickRate != 60 {
		t.Errorf("explicit fields should be kept, got %+v", custom)
	}
}
