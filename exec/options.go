package exec

// config separates global settings, fixed at creation, from local settings
// that apply to a single Run and override them.
type config struct {
	globalEnv           map[string]string
	globalDir           string
	globalTimeout       string
	globalInheritEnv    bool
	globalDisableColors bool
	globalPassthrough   bool

	localEnv           map[string]string
	localDir           string
	localTimeout       string
	localInheritEnv    *bool
	localDisableColors *bool
	localPassthrough   *bool
}

// colorEnv disables color output in most CLI tools.
var colorEnv = map[string]string{
	"NO_COLOR":       "1",
	"TERM":           "dumb",
	"CLICOLOR":       "0",
	"CLICOLOR_FORCE": "0",
	"FORCE_COLOR":    "0",
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// effectiveEnv merges global and local variables; local wins.
func (c *config) effectiveEnv() map[string]string {
	env := make(map[string]string, len(c.globalEnv)+len(c.localEnv))
	for k, v := range c.globalEnv {
		env[k] = v
	}
	for k, v := range c.localEnv {
		env[k] = v
	}

	if c.effectiveDisableColors() {
		for k, v := range colorEnv {
			env[k] = v
		}
	}

	return env
}

func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveTimeout() string {
	if c.localTimeout != "" {
		return c.localTimeout
	}
	return c.globalTimeout
}

func (c *config) effectiveInheritEnv() bool {
	return boolOr(c.localInheritEnv, c.globalInheritEnv)
}

func (c *config) effectiveDisableColors() bool {
	return boolOr(c.localDisableColors, c.globalDisableColors)
}

func (c *config) effectivePassthrough() bool {
	return boolOr(c.localPassthrough, c.globalPassthrough)
}

// resetLocal clears per-run settings. Called at the end of every Run.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localTimeout = ""
	c.localInheritEnv = nil
	c.localDisableColors = nil
	c.localPassthrough = nil
}

func boolOr(local *bool, global bool) bool {
	if local != nil {
		return *local
	}
	return global
}
