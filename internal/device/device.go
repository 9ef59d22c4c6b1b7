// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package device resolves the identifier the scan history is partitioned by.
package device

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/MKhiriev/scan-history/internal/logger"
)

// UnknownDevice is used whenever no identifier can be determined. Scans
// recorded under it are still listed, just not tied to real hardware.
const UnknownDevice = "UNKNOWN_DEVICE"

// Provider returns the identifier of the device the client runs on. The
// result is never empty.
type Provider interface {
	CurrentDeviceID() string
}

// Normalize trims id and substitutes [UnknownDevice] for an empty value.
func Normalize(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return UnknownDevice
	}
	return id
}

// Static is a Provider with a fixed identifier.
type Static string

func (s Static) CurrentDeviceID() string {
	return Normalize(string(s))
}

var linuxIDFiles = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
	"/sys/class/dmi/id/product_uuid",
}

// SystemProvider reads a hardware or OS installation identifier. A
// configured override wins over detection. The value is resolved once and
// cached.
type SystemProvider struct {
	override string
	goos     string
	readFile func(name string) ([]byte, error)
	command  func(name string, args ...string) ([]byte, error)

	once sync.Once
	id   string

	logger *logger.Logger
}

// NewSystemProvider returns a provider for the running platform.
func NewSystemProvider(override string, log *logger.Logger) *SystemProvider {
	return &SystemProvider{
		override: override,
		goos:     runtime.GOOS,
		readFile: os.ReadFile,
		command: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
		logger: log,
	}
}

func (p *SystemProvider) CurrentDeviceID() string {
	p.once.Do(func() {
		if id := strings.TrimSpace(p.override); id != "" {
			p.id = id
			return
		}

		id, err := p.detect()
		if err != nil {
			p.logger.Warn().Err(err).Str("os", p.goos).Msg("device id unavailable, using " + UnknownDevice)
		}
		p.id = Normalize(id)
	})
	return p.id
}

func (p *SystemProvider) detect() (string, error) {
	switch p.goos {
	case "linux":
		return p.linuxID()
	case "darwin":
		return p.darwinID()
	case "windows":
		return p.windowsID()
	default:
		return "", errors.New("unsupported platform: " + p.goos)
	}
}

func (p *SystemProvider) linuxID() (string, error) {
	for _, path := range linuxIDFiles {
		data, err := p.readFile(path)
		if err != nil {
			continue
		}
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}
	return "", errors.New("no machine id file found")
}

func (p *SystemProvider) darwinID() (string, error) {
	out, err := p.command("ioreg", "-rd1", "-c", "IOPlatformExpertDevice")
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "IOPlatformUUID") {
			continue
		}
		parts := strings.Split(line, "\"")
		if len(parts) >= 4 {
			return parts[3], nil
		}
	}
	return "", errors.New("no IOPlatformUUID found")
}

func (p *SystemProvider) windowsID() (string, error) {
	out, err := p.command("reg", "query", `HKLM\SOFTWARE\Microsoft\Cryptography`, "/v", "MachineGuid")
	if err != nil {
		return "", err
	}
	for _, line := range bytes.Split(out, []byte("\n")) {
		fields := strings.Fields(string(line))
		if len(fields) == 3 && fields[0] == "MachineGuid" {
			return fields[2], nil
		}
	}
	return "", errors.New("no MachineGuid found")
}
