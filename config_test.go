package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "midibridge.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
serial:
  name: /dev/ttyAMA0
  baud: 31250
monitor:
  listen: 127.0.0.1:8080
  origins:
    - http://localhost:3000
channels: [0, 9]
thru: true
runningStatus: true
`)
	var config appConfig
	if err := config.load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if config.Serial.Name != "/dev/ttyAMA0" || config.Serial.Baud != 31250 {
		t.Errorf("serial = %+v", config.Serial)
	}
	if config.Monitor.Listen != "127.0.0.1:8080" || len(config.Monitor.AllowedOrigins) != 1 {
		t.Errorf("monitor = %+v", config.Monitor)
	}
	if len(config.Channels) != 2 || config.Channels[1] != 9 {
		t.Errorf("channels = %v", config.Channels)
	}
	if !config.Thru || !config.RunningStatus {
		t.Errorf("thru = %v, runningStatus = %v", config.Thru, config.RunningStatus)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field": "serial:\n  name: COM6\nspeed: 9600\n",
		"bad channel":   "channels: [16]\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			var config appConfig
			if err := config.load(writeConfig(t, content)); err == nil {
				t.Error("load succeeded")
			}
		})
	}

	var config appConfig
	err := config.load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "could not open config file") {
		t.Errorf("load of missing file = %v", err)
	}
}
