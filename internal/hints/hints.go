// Package hints builds the "hint:" suffixes appended to CLI error messages.
//
// Every hint has the form "\n  hint: <text>" so it lands on its own line
// under the error it explains. An empty string means there is nothing
// useful to add.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mad-scientist-star/barones-site/internal/fileutil"
)

// Environment variables that steer the headless browser.
const (
	EnvBrowserBin = "ROD_BROWSER_BIN"
	EnvNoSandbox  = "ROD_NO_SANDBOX"
)

// ciVariables are set by the CI systems we know about.
var ciVariables = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// InContainer reports whether the process runs inside a container.
// Replaced in tests.
var InContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// BrowserEnv is the browser-related part of the process environment.
type BrowserEnv struct {
	Bin       string // ROD_BROWSER_BIN
	NoSandbox bool   // ROD_NO_SANDBOX=1
	CI        bool
	Container bool
}

// ReadBrowserEnv reads a BrowserEnv through getenv, usually os.Getenv.
func ReadBrowserEnv(getenv func(string) string) BrowserEnv {
	env := BrowserEnv{
		Bin:       getenv(EnvBrowserBin),
		NoSandbox: getenv(EnvNoSandbox) == "1",
		Container: InContainer(),
	}
	for _, name := range ciVariables {
		if getenv(name) != "" {
			env.CI = true
			break
		}
	}
	return env
}

// Sandboxless reports whether Chrome must run without its sandbox.
// Prebuilt browser images and CI runners usually lack the kernel
// features the sandbox needs.
func (e BrowserEnv) Sandboxless() bool {
	return e.NoSandbox || e.CI || e.Bin != ""
}

// ForBrowserConnect explains how to get a browser started in env.
func ForBrowserConnect(env BrowserEnv) string {
	var tips []string
	if (env.CI || env.Container) && !env.NoSandbox {
		tips = append(tips, "set "+EnvNoSandbox+"=1 for Docker/CI")
	}
	if env.Bin == "" {
		tips = append(tips, "set "+EnvBrowserBin+" to use an installed Chrome")
	}
	return join(tips)
}

// ForTimeout suggests a longer export timeout.
func ForTimeout() string {
	return line("for slow machines, raise --timeout")
}

// ForConfigNotFound names --config and, when searched, the per-user
// config file that could be created.
func ForConfigNotFound(searched []string) string {
	text := "use --config /path/to/site.yaml"
	for _, p := range searched {
		if strings.Contains(filepath.ToSlash(p), "/barones-site/") {
			return line(text + " or create " + p)
		}
	}
	return line(text)
}

// ForOutputDirectory is appended when the output cannot be written.
func ForOutputDirectory() string {
	return line("check parent directory exists and is writable")
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return line("available: " + strings.Join(available, ", "))
}

// ForMissingLogo points at the brand catalog and, for a custom asset
// directory, the folder the image belongs in.
func ForMissingLogo(assetPath string) string {
	if assetPath == "" {
		return line("check the image names in content/brand.yaml")
	}
	return line("add the image to " + filepath.Join(assetPath, "logos") + " or fix content/brand.yaml")
}

// ForInvalidSelection gives the valid logo range for a catalog of n logos.
func ForInvalidSelection(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return line("the only logo is 1")
	}
	return line(fmt.Sprintf("pick a logo between 1 and %d", n))
}

// ForAddressInUse suggests another listen address.
func ForAddressInUse(addr string) string {
	return line(addr + " is taken; pass --addr with another port")
}

func line(text string) string {
	if text == "" {
		return ""
	}
	return "\n  hint: " + text
}

func join(tips []string) string {
	return line(strings.Join(tips, "; "))
}
