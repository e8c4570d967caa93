// pkg/platform/detect.go
package platform

import (
	"fmt"
	"strings"
)

// Kind identifies the family of the running system
type Kind string

const (
	// KindRedHat covers Fedora, RHEL, CentOS and derivatives
	KindRedHat Kind = "redhat"
	// KindDebian covers Debian, Ubuntu and derivatives
	KindDebian Kind = "debian"
	// KindDarwin covers macOS
	KindDarwin Kind = "darwin"
	// KindUnknown is every signal the detector cannot resolve
	KindUnknown Kind = "unknown"
)

// osReleasePath is the standard distro identification file on Linux
const osReleasePath = "/etc/os-release"

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Kind      Kind     // Platform family
	Available []string // Package manager binaries found on PATH
}

// Detect inspects the running system and classifies it. Signals that cannot
// be resolved map to KindUnknown; Detect itself never fails.
func Detect(p Provider) *Platform {
	if p == nil {
		p = OSProvider{}
	}

	plat := &Platform{
		OS:        p.GOOS(),
		Arch:      p.GOARCH(),
		Kind:      KindUnknown,
		Available: []string{},
	}

	for _, mgr := range []string{"apt-get", "dnf", "yum", "brew"} {
		if commandExists(p, mgr) {
			plat.Available = append(plat.Available, mgr)
		}
	}

	switch plat.OS {
	case "darwin":
		plat.Kind = KindDarwin
	case "linux":
		plat.Kind = detectLinuxKind(p, plat.Available)
	}

	return plat
}

// detectLinuxKind classifies a Linux system by /etc/os-release, falling back
// to which package manager binaries are installed
func detectLinuxKind(p Provider, available []string) Kind {
	if data, err := p.ReadFile(osReleasePath); err == nil {
		if kind := classifyOSRelease(string(data)); kind != KindUnknown {
			return kind
		}
	}

	// No usable os-release; infer from the installed tooling
	if contains(available, "apt-get") {
		return KindDebian
	}
	if contains(available, "dnf") || contains(available, "yum") {
		return KindRedHat
	}

	return KindUnknown
}

// classifyOSRelease maps the ID and ID_LIKE fields of an os-release document
// to a platform kind
func classifyOSRelease(data string) Kind {
	ids := []string{}
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "ID=") || strings.HasPrefix(line, "ID_LIKE=") {
			value := strings.TrimPrefix(strings.TrimPrefix(line, "ID_LIKE="), "ID=")
			value = strings.Trim(value, `"`)
			ids = append(ids, strings.Fields(value)...)
		}
	}

	for _, id := range ids {
		switch id {
		case "debian", "ubuntu", "linuxmint":
			return KindDebian
		case "rhel", "fedora", "centos", "rocky", "almalinux":
			return KindRedHat
		}
	}

	return KindUnknown
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (kind: %s, available: %v)",
		p.OS, p.Arch, p.Kind, p.Available)
}
