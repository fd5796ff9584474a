package config

import (
	"strconv"

	"gmplayer/internal/storage"

	"github.com/google/uuid"
)

// Keys for AppSettings in DB
const (
	KeyCloseBehavior    = "close_behavior"
	KeyEffectTint       = "effect_tint"
	KeyEnableControlAPI = "enable_control_api"
	KeyControlAPIToken  = "control_api_token"
	KeyControlAPIPort   = "control_api_port"
	KeyTrayTooltip      = "tray_tooltip"
)

// Close behaviors for the main window's close button.
const (
	CloseBehaviorAsk  = "ask"  // frontend shows a dialog
	CloseBehaviorTray = "tray" // hide to tray
	CloseBehaviorQuit = "quit" // exit the app
)

type ConfigManager struct {
	storage *storage.Storage
}

func NewConfigManager(s *storage.Storage) *ConfigManager {
	return &ConfigManager{storage: s}
}

// GetCloseBehavior returns what the main window's close button does.
func (c *ConfigManager) GetCloseBehavior() string {
	val, err := c.storage.GetString(KeyCloseBehavior)
	switch {
	case err != nil || val == "":
		return CloseBehaviorAsk
	case val == CloseBehaviorTray || val == CloseBehaviorQuit || val == CloseBehaviorAsk:
		return val
	default:
		return CloseBehaviorAsk
	}
}

func (c *ConfigManager) SetCloseBehavior(behavior string) error {
	return c.storage.SetString(KeyCloseBehavior, behavior)
}

// GetEffectTint returns the stored acrylic tint as RGBA.
func (c *ConfigManager) GetEffectTint() (r, g, b, a uint8) {
	val, err := c.storage.GetString(KeyEffectTint)
	if err != nil || len(val) != 8 {
		return 30, 30, 30, 200 // Default acrylic base
	}
	parse := func(s string) uint8 {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0
		}
		return uint8(v)
	}
	return parse(val[0:2]), parse(val[2:4]), parse(val[4:6]), parse(val[6:8])
}

func (c *ConfigManager) SetEffectTint(r, g, b, a uint8) error {
	const hex = "0123456789abcdef"
	buf := make([]byte, 0, 8)
	for _, v := range []uint8{r, g, b, a} {
		buf = append(buf, hex[v>>4], hex[v&0x0f])
	}
	return c.storage.SetString(KeyEffectTint, string(buf))
}

func (c *ConfigManager) GetEnableControlAPI() bool {
	val, err := c.storage.GetString(KeyEnableControlAPI)
	if err != nil {
		return false
	}
	return val == "true"
}

func (c *ConfigManager) SetEnableControlAPI(enabled bool) error {
	val := "false"
	if enabled {
		val = "true"
	}
	return c.storage.SetString(KeyEnableControlAPI, val)
}

func (c *ConfigManager) GetControlAPIPort() int {
	valStr, err := c.storage.GetString(KeyControlAPIPort)
	if err != nil || valStr == "" {
		return 27232 // Default
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 27232
	}
	return val
}

func (c *ConfigManager) SetControlAPIPort(port int) error {
	return c.storage.SetString(KeyControlAPIPort, strconv.Itoa(port))
}

// GetControlAPIToken returns the bearer token for the local control
// API, generating and persisting one on first use.
func (c *ConfigManager) GetControlAPIToken() string {
	val, err := c.storage.GetString(KeyControlAPIToken)
	if err != nil || val == "" {
		token := uuid.NewString()
		c.storage.SetString(KeyControlAPIToken, token)
		return token
	}
	return val
}

// GetTrayTooltip returns the last tray tooltip, e.g. "Song - Artist".
func (c *ConfigManager) GetTrayTooltip() string {
	val, err := c.storage.GetString(KeyTrayTooltip)
	if err != nil || val == "" {
		return "GMPlayer"
	}
	return val
}

func (c *ConfigManager) SetTrayTooltip(text string) error {
	return c.storage.SetString(KeyTrayTooltip, text)
}
