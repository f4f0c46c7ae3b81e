package transport

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")

	if cfg.PortName != "/dev/ttyACM0" {
		t.Errorf("PortName = %q", cfg.PortName)
	}
	if cfg.BaudRate != 1000000 {
		t.Errorf("BaudRate = %d, want 1000000", cfg.BaudRate)
	}
	if cfg.BufferSize != 64 {
		t.Errorf("BufferSize = %d, want 64", cfg.BufferSize)
	}
	if cfg.ReadTimeout != time.Second || cfg.WriteTimeout != time.Second {
		t.Errorf("timeouts = %v / %v, want 1s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.Driver != "serial" {
		t.Errorf("Driver = %q, want serial", cfg.Driver)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing port",
			cfg:     Config{},
			wantErr: "port name is required",
		},
		{
			name:    "unknown driver",
			cfg:     Config{PortName: "COM3", Driver: "carrier-pigeon"},
			wantErr: "unknown driver",
		},
		{
			name: "defaults filled",
			cfg:  Config{PortName: "COM3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Validate() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Driver != DefaultDriver || cfg.BaudRate != DefaultBaudRate ||
				cfg.BufferSize != DefaultBufferSize || cfg.ReadTimeout != DefaultReadTimeout {
				t.Errorf("defaults not applied: %+v", cfg)
			}
		})
	}
}

func TestDrivers(t *testing.T) {
	names := strings.Join(Drivers(), ",")

	for _, want := range []string{"serial", "jacobsa"} {
		if !strings.Contains(names, want) {
			t.Errorf("Drivers() = %s, missing %s", names, want)
		}
	}
	if runtime.GOOS != "windows" && !strings.Contains(names, "term") {
		t.Errorf("Drivers() = %s, missing term", names)
	}
}

func TestOpenMissingPort(t *testing.T) {
	for _, driver := range Drivers() {
		t.Run(driver, func(t *testing.T) {
			cfg := DefaultConfig("/dev/does-not-exist-gbxcart")
			cfg.Driver = driver

			port, err := Open(cfg)
			if err == nil {
				_ = port.Close()
				t.Fatal("expected error opening a missing port")
			}
			if !strings.Contains(err.Error(), "does-not-exist-gbxcart") {
				t.Errorf("error should name the port, got: %v", err)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(ErrTimeout) {
		t.Error("IsTimeout(ErrTimeout) = false")
	}
	if !IsTimeout(fmt.Errorf("read chunk: %w", ErrTimeout)) {
		t.Error("IsTimeout(wrapped) = false")
	}
	if IsTimeout(fmt.Errorf("broken pipe")) {
		t.Error("IsTimeout(other) = true")
	}
	if IsTimeout(nil) {
		t.Error("IsTimeout(nil) = true")
	}
}
