package storage

// WindowState is the persisted geometry for one window label.
// Visibility is deliberately not a column: every window starts hidden
// on relaunch and the frontend controls the reveal moment.
type WindowState struct {
	Label       string `gorm:"primaryKey" json:"label"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Maximized   bool   `json:"maximized"`
	Fullscreen  bool   `json:"fullscreen"`
	Decorations bool   `json:"decorations"`
	UpdatedAt   string `json:"updated_at"`
}

// TableName specifies the table name for WindowState
func (WindowState) TableName() string {
	return "window_states"
}

// AppSetting is a simple key/value settings row
type AppSetting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

// TableName specifies the table name for AppSetting
func (AppSetting) TableName() string {
	return "app_settings"
}
